package email

import (
	"context"
	"fmt"
)

// Dev prints messages to stdout instead of talking to a relay.
// Probe always passes so the pipeline can be exercised locally.
type Dev struct{}

func (Dev) Probe(ctx context.Context) error { return nil }

func (Dev) Send(ctx context.Context, msg Message) error {
	fmt.Println("==========")
	fmt.Printf("From: %s\n", msg.From)
	fmt.Printf("To: %s\n", msg.To)
	fmt.Printf("Subject: %s\n\n", msg.Subject)
	fmt.Println(msg.HTMLBody)
	fmt.Println("==========")
	return nil
}
