// Package reminder sends collaborators an email shortly before their project starts
package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/taskboard/taskboard/internal/db/models"
	"github.com/taskboard/taskboard/internal/logger"
	"github.com/taskboard/taskboard/internal/mail"
)

// ProjectSource lists the projects whose realization date lies in an inclusive range
type ProjectSource interface {
	ListStartingBetween(ctx context.Context, from, to models.Date) ([]models.Project, error)
}

// CollaboratorSource lists the collaborators of a project
type CollaboratorSource interface {
	ListByProject(ctx context.Context, projectID string) ([]models.Collaborator, error)
}

// DeliveryLedger remembers which reminders were already sent
type DeliveryLedger interface {
	Delivered(ctx context.Context, projectID, email string, date models.Date) (bool, error)
	Record(ctx context.Context, delivery *models.ReminderDelivery) error
}

// OutcomeStatus is the result of one recipient's reminder
type OutcomeStatus string

// Outcome statuses
const (
	OutcomeSent    OutcomeStatus = "sent"
	OutcomeFailed  OutcomeStatus = "failed"
	OutcomeSkipped OutcomeStatus = "skipped"
)

// Outcome is what happened to one (project, collaborator) reminder
type Outcome struct {
	ProjectID   string        `json:"project_id"`
	ProjectName string        `json:"project_name"`
	Email       string        `json:"email"`
	Status      OutcomeStatus `json:"status"`
	Error       string        `json:"error,omitempty"`
}

// Summary reports a dispatcher run
type Summary struct {
	RunID       string      `json:"run_id"`
	WindowStart models.Date `json:"window_start"`
	WindowEnd   models.Date `json:"window_end"`
	Projects    int         `json:"projects"`
	Attempted   int         `json:"attempted"`
	Succeeded   int         `json:"succeeded"`
	Failed      int         `json:"failed"`
	Skipped     int         `json:"skipped"`
	Outcomes    []Outcome   `json:"outcomes"`
}

func (s *Summary) add(o Outcome) {
	switch o.Status {
	case OutcomeSent:
		s.Attempted++
		s.Succeeded++
	case OutcomeFailed:
		s.Attempted++
		s.Failed++
	case OutcomeSkipped:
		s.Skipped++
	}
	s.Outcomes = append(s.Outcomes, o)
}

// Options tunes a Dispatcher
type Options struct {
	// From is the sender address of every reminder
	From          string
	Location      *time.Location
	LookaheadDays int
	// Concurrency bounds parallel sends within a project; 1 sends strictly one after another
	Concurrency int
	// Dedupe skips recipients the ledger already holds for the project's current date
	Dedupe     bool
	RunTimeout time.Duration
	// Clock returns the current time; defaults to time.Now
	Clock func() time.Time
}

// Dispatcher runs the reminder batch
type Dispatcher struct {
	projects      ProjectSource
	collaborators CollaboratorSource
	ledger        DeliveryLedger
	sender        mail.Sender
	locker        Locker
	opts          Options
}

// NewDispatcher creates a dispatcher. ledger and locker may be nil.
func NewDispatcher(
	projects ProjectSource,
	collaborators CollaboratorSource,
	ledger DeliveryLedger,
	sender mail.Sender,
	locker Locker,
	opts Options,
) *Dispatcher {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.LookaheadDays <= 0 {
		opts.LookaheadDays = DefaultLookaheadDays
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Dispatcher{
		projects:      projects,
		collaborators: collaborators,
		ledger:        ledger,
		sender:        sender,
		locker:        locker,
		opts:          opts,
	}
}

// Run sends one reminder to every collaborator of every project starting within the look-ahead
// window. A failed send is recorded in the summary and the run goes on. A failed query stops the
// run; the summary of what was already done is returned alongside the error.
func (d *Dispatcher) Run(ctx context.Context) (*Summary, error) {
	if d.locker != nil {
		release, err := d.locker.Acquire(ctx)
		if err != nil {
			return nil, err
		}
		defer func() {
			// the run context may already be done; releasing must still happen
			if err := release(context.Background()); err != nil {
				logger.Warnf("Failed to release reminder run lock: %v", err)
			}
		}()
	}

	if d.opts.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.opts.RunTimeout)
		defer cancel()
	}

	from, to := Window(d.opts.Clock(), d.opts.Location, d.opts.LookaheadDays)
	summary := &Summary{
		RunID:       uuid.NewString(),
		WindowStart: from,
		WindowEnd:   to,
		Outcomes:    []Outcome{},
	}

	logger.InfoWithFields("Fetching projects starting soon", logger.Fields{
		"run_id": summary.RunID,
		"from":   from.String(),
		"to":     to.String(),
	})
	projects, err := d.projects.ListStartingBetween(ctx, from, to)
	if err != nil {
		logger.ErrorWithFields("Failed to fetch projects", logger.Fields{"run_id": summary.RunID, "error": err})
		return summary, err
	}
	summary.Projects = len(projects)
	logger.Infof("Found %d projects starting between %s and %s", len(projects), from, to)

	for _, project := range projects {
		if project.RealizationDate == nil {
			continue
		}
		collaborators, err := d.collaborators.ListByProject(ctx, project.ID)
		if err != nil {
			logger.ErrorWithFields("Failed to fetch collaborators", logger.Fields{
				"run_id":  summary.RunID,
				"project": project.Name,
				"error":   err,
			})
			return summary, fmt.Errorf("failed to list collaborators of project %s: %w", project.Name, err)
		}
		logger.Infof("Found %d collaborators for project %s", len(collaborators), project.Name)

		for _, o := range d.notifyProject(ctx, summary.RunID, project, collaborators) {
			summary.add(o)
		}
	}

	logger.InfoWithFields("Reminder run finished", logger.Fields{
		"run_id":    summary.RunID,
		"projects":  summary.Projects,
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
		"skipped":   summary.Skipped,
	})
	return summary, nil
}

// notifyProject sends the project's reminders through a bounded pool. Outcomes keep the order of
// collaborators.
func (d *Dispatcher) notifyProject(ctx context.Context, runID string, project models.Project, collaborators []models.Collaborator) []Outcome {
	outcomes := make([]Outcome, len(collaborators))
	g := new(errgroup.Group)
	g.SetLimit(d.opts.Concurrency)

	for i, c := range collaborators {
		i, c := i, c
		g.Go(func() error {
			outcomes[i] = d.notify(ctx, runID, project, c.Email)
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

func (d *Dispatcher) notify(ctx context.Context, runID string, project models.Project, email string) Outcome {
	outcome := Outcome{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		Email:       email,
	}
	fields := logger.Fields{"run_id": runID, "project": project.Name, "email": email}
	date := *project.RealizationDate

	if d.opts.Dedupe && d.ledger != nil {
		delivered, err := d.ledger.Delivered(ctx, project.ID, email, date)
		if err != nil {
			fields["error"] = err
			logger.ErrorWithFields("Failed to check reminder ledger", fields)
			outcome.Status = OutcomeFailed
			outcome.Error = err.Error()
			return outcome
		}
		if delivered {
			logger.DebugWithFields("Reminder already sent, skipping", fields)
			outcome.Status = OutcomeSkipped
			return outcome
		}
	}

	logger.InfoWithFields("Sending reminder email", fields)
	if err := d.sender.Send(ctx, NewMessage(d.opts.From, project, email)); err != nil {
		fields["error"] = err
		logger.ErrorWithFields("Failed to send reminder email", fields)
		outcome.Status = OutcomeFailed
		outcome.Error = err.Error()
		return outcome
	}
	outcome.Status = OutcomeSent

	if d.ledger != nil {
		err := d.ledger.Record(ctx, &models.ReminderDelivery{
			ProjectID:       project.ID,
			Email:           email,
			RealizationDate: date,
			RunID:           runID,
			SentAt:          d.opts.Clock().UTC(),
		})
		if err != nil {
			fields["error"] = err
			logger.WarnWithFields("Reminder sent but not recorded", fields)
		}
	}
	return outcome
}

// IsRunInProgress reports whether err means another run holds the lock
func IsRunInProgress(err error) bool {
	return errors.Is(err, ErrRunInProgress)
}
