package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/taskboard/taskboard/config"
	"github.com/taskboard/taskboard/internal/app"
	"github.com/taskboard/taskboard/internal/db"
	"github.com/taskboard/taskboard/internal/logger"
	"github.com/taskboard/taskboard/internal/reminder"
	"github.com/taskboard/taskboard/internal/scheduler"
	"github.com/taskboard/taskboard/pkg/api/v1/handlers"
)

// Flag names
const (
	flagNoScheduler = "no-scheduler"
	flagMigrate     = "migrate"
)

const shutdownTimeout = 10 * time.Second

// loadConfig loads the configuration and configures the logger from it
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}
	logger.InitializeAndConfigure(cfg.Log.Level)
	return cfg, nil
}

func openDB(cfg *config.Config, migrate bool) (*gorm.DB, error) {
	return db.New(db.Options{
		Host:        cfg.Database.Host,
		User:        cfg.Database.User,
		Password:    cfg.Database.Password,
		DBName:      cfg.Database.Name,
		Port:        cfg.Database.Port,
		SSLMode:     cfg.Database.SSLMode,
		LogLevel:    gormlogger.Warn,
		AutoMigrate: migrate,
	})
}

// newDispatcher builds the dispatcher with its mail sender and run lock. The returned func
// releases what was opened.
func newDispatcher(cfg *config.Config, database *gorm.DB) (*reminder.Dispatcher, func(), error) {
	sender, err := app.NewSender(cfg.Mail)
	if err != nil {
		return nil, nil, fmt.Errorf("error configuring mail transport: %w", err)
	}
	locker, redisClient := app.NewLocker(cfg)
	closeFn := func() {
		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				logger.Warnf("Failed to close redis client: %v", err)
			}
		}
	}
	return app.NewDispatcher(cfg, database, sender, locker), closeFn, nil
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the API server and the daily reminder scheduler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			noScheduler, err := cmd.Flags().GetBool(flagNoScheduler)
			if err != nil {
				return fmt.Errorf("error getting %s flag: %w", flagNoScheduler, err)
			}
			migrate, err := cmd.Flags().GetBool(flagMigrate)
			if err != nil {
				return fmt.Errorf("error getting %s flag: %w", flagMigrate, err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			database, err := openDB(cfg, migrate)
			if err != nil {
				return err
			}
			dispatcher, closeFn, err := newDispatcher(cfg, database)
			if err != nil {
				return err
			}
			defer closeFn()

			var sched *scheduler.Scheduler
			if !noScheduler {
				// the dispatcher applies the run timeout itself
				sched, err = scheduler.New(dispatcher, cfg.Reminder.Schedule, cfg.Location(), 0)
				if err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := app.NewApp(database, dispatcher)
			errCh := make(chan error, 1)
			go func() {
				logger.Infof("Starting API server on port %s", cfg.Server.Port)
				errCh <- server.Listen(":" + cfg.Server.Port)
			}()
			if sched != nil {
				sched.Start()
			}

			var serveErr error
			select {
			case <-ctx.Done():
				logger.Info("Shutting down")
			case serveErr = <-errCh:
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if sched != nil {
				if err := sched.Stop(shutdownCtx); err != nil {
					logger.Warnf("Reminder run still in progress at shutdown: %v", err)
				}
			}
			if err := server.ShutdownWithContext(shutdownCtx); err != nil {
				logger.Errorf("Error shutting down API server: %v", err)
			}
			return serveErr
		},
	}
	cmd.Flags().Bool(flagNoScheduler, false, "Serve the API without the reminder scheduler")
	cmd.Flags().Bool(flagMigrate, true, "Migrate the database schema on startup")
	return cmd
}

func newDispatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dispatch",
		Short: "Send reminder emails for projects starting soon, once, then exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			database, err := openDB(cfg, false)
			if err != nil {
				return err
			}
			dispatcher, closeFn, err := newDispatcher(cfg, database)
			if err != nil {
				return err
			}
			defer closeFn()

			summary, runErr := dispatcher.Run(cmd.Context())
			out := handlers.DispatchResponse{Message: handlers.MsgRemindersSent, Summary: summary}
			if runErr != nil {
				out = handlers.DispatchResponse{
					Error:   handlers.ErrMsgRemindersFailed,
					Details: runErr.Error(),
					Summary: summary,
				}
			}
			if err := printJSON(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			if runErr != nil {
				return runErr
			}
			if summary.Failed > 0 {
				return errors.New("some reminder emails could not be delivered")
			}
			return nil
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if _, err := openDB(cfg, true); err != nil {
				return err
			}
			logger.Info("Database schema is up to date")
			return nil
		},
	}
}
