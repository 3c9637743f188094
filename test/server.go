package test

import (
	"net/http/httptest"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/taskboard/taskboard/internal/app"
	"github.com/taskboard/taskboard/pkg/api/v1/client"
)

// testClientTimeout is the timeout for test API client requests
const testClientTimeout = 5 * time.Second

// SetupServer starts the real API server for the suite and points an API client at it
func SetupServer(s *Suite) {
	s.App = app.NewApp(s.DB, s.Dispatcher)

	// Create test server using adaptor to convert Fiber app to http.Handler
	s.Server = httptest.NewServer(adaptor.FiberApp(s.App))

	apiClient, err := client.NewClient(&client.Options{
		BaseURL: s.Server.URL,
		Timeout: testClientTimeout,
	})
	s.Require().NoError(err, "Failed to create API client")
	s.APIClient = apiClient
}
