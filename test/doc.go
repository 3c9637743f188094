// Package test provides infrastructure and utilities for integration testing in taskboard.
//
// A Suite runs the real API server over an in-memory database, talks to it through the real API
// client, and replaces the mail transport with a mock so reminder runs can be inspected.
//
// Example Usage:
//
//	func TestExample(t *testing.T) {
//	    s := test.NewSuite(t)
//	    defer s.Cleanup()
//
//	    // Use s.APIClient to make requests
//	    // Use s.MockSender to inspect or fail deliveries
//	}
package test
