// Package email sends the two contact-pipeline emails through a configured
// relay. Implementations share one relay handle for the process lifetime.
package email

import "context"

// Message contains the fields needed to send one email.
type Message struct {
	From     string
	To       string
	Subject  string
	HTMLBody string
}

// Mailer is used to have different implementations for sending email.
type Mailer interface {
	// Probe checks that the relay is reachable and the credentials are
	// currently usable, without sending anything.
	Probe(ctx context.Context) error
	// Send delivers one message through the relay.
	Send(ctx context.Context, msg Message) error
}
