package test

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/taskboard/taskboard/internal/db/repos"
	"github.com/taskboard/taskboard/internal/reminder"
	"github.com/taskboard/taskboard/pkg/api/v1/client"
	"github.com/taskboard/taskboard/test/mocks"
	"github.com/taskboard/taskboard/test/testdb"
)

// DefaultTestTimeout is the default timeout for test suites.
const DefaultTestTimeout = 30 * time.Second

// TestSender is the From address of reminders sent by the suite
const TestSender = "noreply@taskboard.test"

// Suite encapsulates all components needed for integration testing.
// It provides a complete test setup with:
//   - In-memory database
//   - Real API server
//   - Real API client
//   - Mocked mail transport
type Suite struct {
	t *testing.T

	// Server components
	App    *fiber.App
	Server *httptest.Server

	// Client components
	APIClient client.Client

	// Database components
	DB               *gorm.DB
	ProjectRepo      *repos.ProjectRepository
	CollaboratorRepo *repos.CollaboratorRepository
	ReminderRepo     *repos.ReminderRepository

	// Reminder components
	MockSender *mocks.Sender
	Locker     *reminder.LocalLocker
	Dispatcher *reminder.Dispatcher

	clockMu sync.Mutex
	now     time.Time

	ctx        context.Context
	cancelFunc context.CancelFunc
	cleanup    func()
}

// NewSuite creates a new test suite. The suite must be cleaned up after use by calling Cleanup.
func NewSuite(t *testing.T) *Suite {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), DefaultTestTimeout)
	s := &Suite{
		t:          t,
		ctx:        ctx,
		cancelFunc: cancel,
		now:        time.Now().UTC(),
	}
	s.cleanup = func() {
		if s.Server != nil {
			s.Server.Close()
		}
		if s.cancelFunc != nil {
			s.cancelFunc()
		}
	}

	SetupTestDB(s)
	SetupReminders(s)
	SetupServer(s)

	return s
}

// SetupTestDB gives the suite a fresh migrated in-memory database
func SetupTestDB(s *Suite) {
	s.DB = testdb.New(s.t)
	s.ProjectRepo = repos.NewProjectRepository(s.DB)
	s.CollaboratorRepo = repos.NewCollaboratorRepository(s.DB)
	s.ReminderRepo = repos.NewReminderRepository(s.DB)
}

// SetupReminders wires a dispatcher to the database, a mock sender that accepts every message,
// and the suite clock.
func SetupReminders(s *Suite) {
	s.MockSender = &mocks.Sender{}
	s.Locker = reminder.NewLocalLocker()
	s.Dispatcher = reminder.NewDispatcher(
		s.ProjectRepo,
		s.CollaboratorRepo,
		s.ReminderRepo,
		s.MockSender,
		s.Locker,
		reminder.Options{
			From:   TestSender,
			Dedupe: true,
			Clock:  s.Now,
		},
	)
}

// AcceptAllMail makes every send succeed
func (s *Suite) AcceptAllMail() {
	s.MockSender.On("Send", mock.Anything, mock.Anything).Return(nil)
}

// SetNow moves the suite clock
func (s *Suite) SetNow(now time.Time) {
	s.clockMu.Lock()
	defer s.clockMu.Unlock()
	s.now = now
}

// Now returns the suite clock
func (s *Suite) Now() time.Time {
	s.clockMu.Lock()
	defer s.clockMu.Unlock()
	return s.now
}

// Cleanup tears down the test suite, releasing all resources.
func (s *Suite) Cleanup() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

// Context returns the suite's context, which is canceled when the suite is cleaned up.
func (s *Suite) Context() context.Context {
	return s.ctx
}

// Require returns a require.Assertions instance for this suite.
func (s *Suite) Require() *require.Assertions {
	return require.New(s.t)
}
