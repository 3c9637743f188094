// Package mail delivers plain-text email over SMTP
package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/time/rate"
	"gopkg.in/gomail.v2"
)

// ErrUnknownService is returned when EMAIL_SERVICE names a provider without known SMTP settings
var ErrUnknownService = errors.New("unknown email service")

// Message is a single plain-text email
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Sender delivers one message
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Dialer is the subset of gomail.Dialer used by SMTPSender
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Server describes how to reach an SMTP server
type Server struct {
	Host string
	Port int
	// SSL selects implicit TLS instead of STARTTLS
	SSL bool
}

var wellKnownServices = map[string]Server{
	"gmail":     {Host: "smtp.gmail.com", Port: 465, SSL: true},
	"outlook":   {Host: "smtp-mail.outlook.com", Port: 587},
	"hotmail":   {Host: "smtp-mail.outlook.com", Port: 587},
	"office365": {Host: "smtp.office365.com", Port: 587},
	"yahoo":     {Host: "smtp.mail.yahoo.com", Port: 465, SSL: true},
	"icloud":    {Host: "smtp.mail.me.com", Port: 587},
	"zoho":      {Host: "smtp.zoho.com", Port: 465, SSL: true},
	"sendgrid":  {Host: "smtp.sendgrid.net", Port: 587},
	"mailgun":   {Host: "smtp.mailgun.org", Port: 465, SSL: true},
}

// Options configures an SMTPSender
type Options struct {
	Service  string
	User     string
	Password string
	// Host and Port override the settings resolved from Service
	Host string
	Port int
	// RatePerSecond caps outgoing messages; zero disables the limit
	RatePerSecond float64
}

// ResolveServer returns the SMTP server for the options. An explicit host wins over the service
// name; an explicit port wins over the service default.
func ResolveServer(opts Options) (Server, error) {
	var server Server
	if opts.Host != "" {
		server = Server{Host: opts.Host, Port: 587}
	} else {
		known, ok := wellKnownServices[strings.ToLower(strings.TrimSpace(opts.Service))]
		if !ok {
			return Server{}, fmt.Errorf("%w: %q", ErrUnknownService, opts.Service)
		}
		server = known
	}
	if opts.Port != 0 {
		server.Port = opts.Port
		server.SSL = opts.Port == 465
	}
	return server, nil
}

// SMTPSender sends messages through an authenticated SMTP account
type SMTPSender struct {
	dialer  Dialer
	limiter *rate.Limiter
}

// NewSMTPSender creates a sender for the configured account
func NewSMTPSender(opts Options) (*SMTPSender, error) {
	server, err := ResolveServer(opts)
	if err != nil {
		return nil, err
	}
	d := gomail.NewDialer(server.Host, server.Port, opts.User, opts.Password)
	d.SSL = server.SSL
	return NewSender(d, opts.RatePerSecond), nil
}

// NewSender wraps an existing dialer
func NewSender(d Dialer, ratePerSecond float64) *SMTPSender {
	s := &SMTPSender{dialer: d}
	if ratePerSecond > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(ratePerSecond), 1)
	}
	return s
}

// Send delivers msg, waiting for the rate limiter first
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return errors.New("mail: recipient is required")
	}
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("failed to send mail to %s: %w", msg.To, err)
		}
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", msg.To, err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", msg.To, err)
	}
	return nil
}
