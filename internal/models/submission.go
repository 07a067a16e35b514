package models

import "strings"

// ContactSubmission is one inquiry in flight. It is built from the request
// body, lives for a single request/response cycle, and is never stored.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Message string `json:"message"`
}

// SplitEmail splits the email on '@' into local part and domain.
// ok is false unless there is exactly one '@' with non-empty halves.
func (s ContactSubmission) SplitEmail() (local, domain string, ok bool) {
	parts := strings.Split(s.Email, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// OutcomeKind tags the result of processing one submission.
type OutcomeKind int

const (
	// RequestInvalid: the body could not be parsed. No side effects.
	RequestInvalid OutcomeKind = iota
	// NotVerified: email shape, relay probe, or MX lookup failed. No mail sent.
	NotVerified
	// DeliveryFailed: verification passed but a send failed. The admin
	// notification may already be out; there is no rollback.
	DeliveryFailed
	// Delivered: both emails were sent.
	Delivered
)

func (k OutcomeKind) String() string {
	switch k {
	case RequestInvalid:
		return "request_invalid"
	case NotVerified:
		return "not_verified"
	case DeliveryFailed:
		return "delivery_failed"
	case Delivered:
		return "delivered"
	default:
		return "unknown"
	}
}

// Outcome is the tagged result of one submission. Err carries the underlying
// cause for operator logs; it never reaches the wire.
type Outcome struct {
	Kind OutcomeKind
	Err  error
}
