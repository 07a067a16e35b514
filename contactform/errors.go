package contactform

import (
	"errors"
	"fmt"
)

// ErrPhoneFormat is returned by Form.Submit when a non-empty phone value is
// not exactly 10 digits. No request is issued in that case.
var ErrPhoneFormat = errors.New("contactform: phone must be exactly 10 digits")

// SubmitError is returned when the server rejects a submission.
// Kind is one of the server's closed error set: "invalid_request",
// "invalid_email", "email_send_failed".
type SubmitError struct {
	Status  int
	Kind    string
	Message string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("contactform: server returned %d (%s): %s", e.Status, e.Kind, e.Message)
}
