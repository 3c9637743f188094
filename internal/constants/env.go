// Package constants provides centralized definitions of constants used throughout the application
package constants

// Environment variable names
const (
	// EnvConfigPath points at an optional YAML file loaded before the environment is applied
	EnvConfigPath = "TASKBOARD_CONFIG_PATH"

	// EnvPort is the port the API listens on
	EnvPort = "PORT"
	// EnvLogLevel is the logrus level name
	EnvLogLevel = "LOG_LEVEL"

	// EnvDBHost is the database host (the persistence service endpoint)
	EnvDBHost = "DB_HOST"
	// EnvDBPort is the database port
	EnvDBPort = "DB_PORT"
	// EnvDBUser is the database user
	EnvDBUser = "DB_USER"
	// EnvDBPassword is the database password (the persistence service credential)
	EnvDBPassword = "DB_PASSWORD"
	// EnvDBName is the database name
	EnvDBName = "DB_NAME"
	// EnvDBSSLMode is the postgres sslmode
	EnvDBSSLMode = "DB_SSL_MODE"

	// EnvEmailService is a well-known mail service name, e.g. "gmail"
	EnvEmailService = "EMAIL_SERVICE"
	// EnvEmailUser is the mail account identity, also used as the sender address
	EnvEmailUser = "EMAIL_USER"
	// EnvEmailPass is the mail account secret
	EnvEmailPass = "EMAIL_PASS"
	// EnvSMTPHost overrides the host resolved from EMAIL_SERVICE
	EnvSMTPHost = "SMTP_HOST"
	// EnvSMTPPort overrides the port resolved from EMAIL_SERVICE
	EnvSMTPPort = "SMTP_PORT"
	// EnvMailRatePerSecond caps outgoing sends; 0 disables the limit
	EnvMailRatePerSecond = "MAIL_RATE_PER_SECOND"

	// EnvRedisAddr enables the redis-backed run lock when set
	EnvRedisAddr = "REDIS_ADDR"
	// EnvRedisPassword is the redis password
	EnvRedisPassword = "REDIS_PASSWORD"
	// EnvRedisDB is the redis logical database
	EnvRedisDB = "REDIS_DB"

	// EnvReminderSchedule is the cron spec for the daily reminder run
	EnvReminderSchedule = "REMINDER_SCHEDULE"
	// EnvReminderTimezone is the IANA zone used to compute "today"
	EnvReminderTimezone = "REMINDER_TIMEZONE"
	// EnvReminderLookaheadDays is the size of the look-ahead window in days
	EnvReminderLookaheadDays = "REMINDER_LOOKAHEAD_DAYS"
	// EnvReminderConcurrency bounds parallel sends within a run
	EnvReminderConcurrency = "REMINDER_CONCURRENCY"
	// EnvReminderDedupe toggles the delivery ledger
	EnvReminderDedupe = "REMINDER_DEDUPE"
	// EnvReminderRunTimeout bounds a single run
	EnvReminderRunTimeout = "REMINDER_RUN_TIMEOUT"
)
