package email

import (
	"context"
	"fmt"
	"sync"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTP sends mail through an authenticated relay. The underlying client is
// constructed once and shared across requests; go-mail does not document
// concurrent use of one client, so probes and sends are serialized.
type SMTP struct {
	mu     sync.Mutex
	client *gomail.Client
}

// NewSMTP connects the relay configuration to a reusable client.
// Port 465 means implicit TLS; any other port upgrades via STARTTLS when
// the relay offers it.
func NewSMTP(host string, port int, username, password string, timeout time.Duration) (*SMTP, error) {
	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(username),
		gomail.WithPassword(password),
		gomail.WithTimeout(timeout),
	}
	if port == 465 {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client for %s:%d: %w", host, port, err)
	}
	return &SMTP{client: client}, nil
}

func (s *SMTP) Probe(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("relay dial: %w", err)
	}
	if err := s.client.Close(); err != nil {
		return fmt.Errorf("relay close: %w", err)
	}
	return nil
}

func (s *SMTP) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return fmt.Errorf("from address %q: %w", msg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("to address %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextHTML, msg.HTMLBody)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send to %s: %w", msg.To, err)
	}
	return nil
}
