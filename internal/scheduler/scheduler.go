// Package scheduler triggers the reminder run on a cron schedule
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/taskboard/taskboard/internal/logger"
	"github.com/taskboard/taskboard/internal/reminder"
)

// DefaultSchedule runs once a day at midnight
const DefaultSchedule = "0 0 * * *"

// Runner is the job fired on every tick
type Runner interface {
	Run(ctx context.Context) (*reminder.Summary, error)
}

// Scheduler fires a Runner on a standard five-field cron expression
type Scheduler struct {
	cron    *cron.Cron
	runner  Runner
	timeout time.Duration
	entry   cron.EntryID
}

// New creates a scheduler for spec in loc. timeout bounds each run; zero means no bound.
func New(runner Runner, spec string, loc *time.Location, timeout time.Duration) (*Scheduler, error) {
	if spec == "" {
		spec = DefaultSchedule
	}
	if loc == nil {
		loc = time.UTC
	}

	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		runner:  runner,
		timeout: timeout,
	}
	id, err := s.cron.AddFunc(spec, s.tick)
	if err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}
	s.entry = id
	return s, nil
}

// Start begins firing in the background
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Infof("Reminder scheduler started, next run at %s", s.Next().Format(time.RFC3339))
}

// Stop stops firing and waits for a running job to finish or ctx to be done
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		logger.Info("Reminder scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Next returns the time of the next run
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.entry).Next
}

func (s *Scheduler) tick() {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	summary, err := s.runner.Run(ctx)
	if err != nil {
		if reminder.IsRunInProgress(err) {
			logger.Warn("Skipping scheduled reminder run: another run is in progress")
			return
		}
		logger.Errorf("Scheduled reminder run failed: %v", err)
		return
	}
	logger.InfoWithFields("Scheduled reminder run completed", logger.Fields{
		"run_id":    summary.RunID,
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
		"skipped":   summary.Skipped,
	})
}
