// Package app assembles the API server and the reminder dispatcher from configuration
package app

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/taskboard/taskboard/config"
	"github.com/taskboard/taskboard/internal/api/middleware"
	"github.com/taskboard/taskboard/internal/db/repos"
	"github.com/taskboard/taskboard/internal/mail"
	"github.com/taskboard/taskboard/internal/reminder"
	"github.com/taskboard/taskboard/internal/services"
	"github.com/taskboard/taskboard/pkg/api/v1/handlers"
	"github.com/taskboard/taskboard/pkg/api/v1/routes"
)

// NewApp creates the fiber app serving the v1 API over db. runner handles reminder dispatch
// requests.
func NewApp(db *gorm.DB, runner handlers.ReminderRunner) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	app.Use(middleware.Logger())

	ratingRepo := repos.NewRatingRepository(db)
	api := handlers.NewAPIHandler(
		services.NewProjectService(repos.NewProjectRepository(db), ratingRepo),
		services.NewTaskService(repos.NewTaskRepository(db)),
		services.NewCollaboratorService(repos.NewCollaboratorRepository(db)),
		services.NewRatingService(ratingRepo),
	)

	routes.RegisterRoutes(app, routes.Handlers{
		Project:      handlers.NewProjectHandler(api),
		Task:         handlers.NewTaskHandler(api),
		Collaborator: handlers.NewCollaboratorHandler(api),
		Rating:       handlers.NewRatingHandler(api),
		Reminder:     handlers.NewReminderHandler(runner),
	})
	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(handlers.ErrorResponse{
		Error: err.Error(),
	})
}

// NewSender creates the SMTP sender for the configured mail account
func NewSender(cfg config.MailConfig) (*mail.SMTPSender, error) {
	return mail.NewSMTPSender(mail.Options{
		Service:       cfg.Service,
		User:          cfg.User,
		Password:      cfg.Password,
		Host:          cfg.SMTPHost,
		Port:          cfg.SMTPPort,
		RatePerSecond: cfg.RatePerSecond,
	})
}

// NewLocker returns a redis lock when redis is configured and an in-process lock otherwise.
// The redis client, when created, is returned so the caller can close it.
func NewLocker(cfg *config.Config) (reminder.Locker, *redis.Client) {
	if cfg.Redis.Addr == "" {
		return reminder.NewLocalLocker(), nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	// the lock outlives a run that hits its timeout by a minute at most
	ttl := cfg.Reminder.RunTimeout + time.Minute
	return reminder.NewRedisLocker(client, reminder.DefaultLockKey, ttl), client
}

// NewDispatcher wires the reminder dispatcher to the database, the mail sender and the lock
func NewDispatcher(cfg *config.Config, db *gorm.DB, sender mail.Sender, locker reminder.Locker) *reminder.Dispatcher {
	return reminder.NewDispatcher(
		repos.NewProjectRepository(db),
		repos.NewCollaboratorRepository(db),
		repos.NewReminderRepository(db),
		sender,
		locker,
		reminder.Options{
			From:          cfg.Mail.User,
			Location:      cfg.Location(),
			LookaheadDays: cfg.Reminder.LookaheadDays,
			Concurrency:   cfg.Reminder.Concurrency,
			Dedupe:        cfg.Reminder.Dedupe,
			RunTimeout:    cfg.Reminder.RunTimeout,
		},
	)
}
