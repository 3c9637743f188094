package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/taskboard/taskboard/internal/constants"
)

// Config is the fully resolved application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Mail     MailConfig     `yaml:"mail"`
	Redis    RedisConfig    `yaml:"redis"`
	Reminder ReminderConfig `yaml:"reminder"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Port string `yaml:"port"`
}

// DatabaseConfig configures the postgres connection
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

// MailConfig configures the outbound mail transport
type MailConfig struct {
	Service       string  `yaml:"service"`
	User          string  `yaml:"user"`
	Password      string  `yaml:"password"`
	SMTPHost      string  `yaml:"smtp_host"`
	SMTPPort      int     `yaml:"smtp_port"`
	RatePerSecond float64 `yaml:"rate_per_second"`
}

// RedisConfig configures the optional redis run lock. An empty Addr disables it.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// ReminderConfig configures the reminder dispatcher
type ReminderConfig struct {
	Schedule      string        `yaml:"schedule"`
	Timezone      string        `yaml:"timezone"`
	LookaheadDays int           `yaml:"lookahead_days"`
	Concurrency   int           `yaml:"concurrency"`
	Dedupe        bool          `yaml:"dedupe"`
	RunTimeout    time.Duration `yaml:"run_timeout"`
}

// LogConfig configures the logger
type LogConfig struct {
	Level string `yaml:"level"`
}

// Error reports every missing or invalid configuration key at once.
type Error struct {
	Missing []string
	Invalid []string
}

func (e *Error) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required configuration: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid configuration: "+strings.Join(e.Invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

// Default returns the configuration used before the file and the environment are applied.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		Database: DatabaseConfig{
			Port:    5432,
			User:    "postgres",
			Name:    "postgres",
			SSLMode: "disable",
		},
		Reminder: ReminderConfig{
			Schedule:      "0 0 * * *",
			Timezone:      "UTC",
			LookaheadDays: 3,
			Concurrency:   1,
			Dedupe:        true,
			RunTimeout:    5 * time.Minute,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads .env (if present), the optional YAML file named by TASKBOARD_CONFIG_PATH and the
// environment, in that order of increasing precedence, then validates the result.
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv(constants.EnvConfigPath); path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, err
		}
	}

	var invalid []string
	applyEnv(cfg, &invalid)
	if len(invalid) > 0 {
		return nil, &Error{Invalid: invalid}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fails fast when a required value is absent.
func (c *Config) Validate() error {
	var e Error
	if c.Database.Host == "" {
		e.Missing = append(e.Missing, constants.EnvDBHost)
	}
	if c.Database.Password == "" {
		e.Missing = append(e.Missing, constants.EnvDBPassword)
	}
	if c.Mail.Service == "" && c.Mail.SMTPHost == "" {
		e.Missing = append(e.Missing, constants.EnvEmailService)
	}
	if c.Mail.User == "" {
		e.Missing = append(e.Missing, constants.EnvEmailUser)
	}
	if c.Mail.Password == "" {
		e.Missing = append(e.Missing, constants.EnvEmailPass)
	}

	if c.Reminder.LookaheadDays < 0 {
		e.Invalid = append(e.Invalid, constants.EnvReminderLookaheadDays)
	}
	if c.Reminder.Concurrency < 1 {
		e.Invalid = append(e.Invalid, constants.EnvReminderConcurrency)
	}
	if c.Mail.RatePerSecond < 0 {
		e.Invalid = append(e.Invalid, constants.EnvMailRatePerSecond)
	}
	if _, err := time.LoadLocation(c.Reminder.Timezone); err != nil {
		e.Invalid = append(e.Invalid, constants.EnvReminderTimezone)
	}

	if len(e.Missing) > 0 || len(e.Invalid) > 0 {
		return &e
	}
	return nil
}

// Location returns the zone used to compute the reminder window.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Reminder.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config, invalid *[]string) {
	cfg.Server.Port = GetEnv(constants.EnvPort, cfg.Server.Port)
	cfg.Log.Level = GetEnv(constants.EnvLogLevel, cfg.Log.Level)

	cfg.Database.Host = GetEnv(constants.EnvDBHost, cfg.Database.Host)
	cfg.Database.Port = getEnvAsInt(constants.EnvDBPort, cfg.Database.Port, invalid)
	cfg.Database.User = GetEnv(constants.EnvDBUser, cfg.Database.User)
	cfg.Database.Password = GetEnv(constants.EnvDBPassword, cfg.Database.Password)
	cfg.Database.Name = GetEnv(constants.EnvDBName, cfg.Database.Name)
	cfg.Database.SSLMode = GetEnv(constants.EnvDBSSLMode, cfg.Database.SSLMode)

	cfg.Mail.Service = GetEnv(constants.EnvEmailService, cfg.Mail.Service)
	cfg.Mail.User = GetEnv(constants.EnvEmailUser, cfg.Mail.User)
	cfg.Mail.Password = GetEnv(constants.EnvEmailPass, cfg.Mail.Password)
	cfg.Mail.SMTPHost = GetEnv(constants.EnvSMTPHost, cfg.Mail.SMTPHost)
	cfg.Mail.SMTPPort = getEnvAsInt(constants.EnvSMTPPort, cfg.Mail.SMTPPort, invalid)
	cfg.Mail.RatePerSecond = getEnvAsFloat(constants.EnvMailRatePerSecond, cfg.Mail.RatePerSecond, invalid)

	cfg.Redis.Addr = GetEnv(constants.EnvRedisAddr, cfg.Redis.Addr)
	cfg.Redis.Password = GetEnv(constants.EnvRedisPassword, cfg.Redis.Password)
	cfg.Redis.DB = getEnvAsInt(constants.EnvRedisDB, cfg.Redis.DB, invalid)

	cfg.Reminder.Schedule = GetEnv(constants.EnvReminderSchedule, cfg.Reminder.Schedule)
	cfg.Reminder.Timezone = GetEnv(constants.EnvReminderTimezone, cfg.Reminder.Timezone)
	cfg.Reminder.LookaheadDays = getEnvAsInt(constants.EnvReminderLookaheadDays, cfg.Reminder.LookaheadDays, invalid)
	cfg.Reminder.Concurrency = getEnvAsInt(constants.EnvReminderConcurrency, cfg.Reminder.Concurrency, invalid)
	cfg.Reminder.Dedupe = getEnvAsBool(constants.EnvReminderDedupe, cfg.Reminder.Dedupe, invalid)
	cfg.Reminder.RunTimeout = getEnvAsDuration(constants.EnvReminderRunTimeout, cfg.Reminder.RunTimeout, invalid)
}

// GetEnv retrieves the value of an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int, invalid *[]string) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*invalid = append(*invalid, key)
		return fallback
	}
	return v
}

func getEnvAsFloat(key string, fallback float64, invalid *[]string) float64 {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*invalid = append(*invalid, key)
		return fallback
	}
	return v
}

func getEnvAsBool(key string, fallback bool, invalid *[]string) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		*invalid = append(*invalid, key)
		return fallback
	}
	return v
}

func getEnvAsDuration(key string, fallback time.Duration, invalid *[]string) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		*invalid = append(*invalid, key)
		return fallback
	}
	return v
}
