package mocks

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/taskboard/taskboard/internal/mail"
)

// Sender is a mock for mail.Sender. It also keeps every message it was asked to send.
type Sender struct {
	mock.Mock

	mu   sync.Mutex
	sent []mail.Message
}

// Send records msg and returns the configured error
func (m *Sender) Send(ctx context.Context, msg mail.Message) error {
	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()

	args := m.Called(ctx, msg)
	return args.Error(0)
}

// Sent returns a copy of the messages passed to Send
func (m *Sender) Sent() []mail.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mail.Message(nil), m.sent...)
}

// SendTo matches a message addressed to email
func SendTo(email string) interface{} {
	return mock.MatchedBy(func(msg mail.Message) bool { return msg.To == email })
}
