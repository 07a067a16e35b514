package contactform

import (
	"context"
	"regexp"
	"sync"
	"time"
)

// Status is the submit lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// This is the literal rule: exactly 10 digits, no spaces, dashes, or
// country code.
var phonePattern = regexp.MustCompile(`^\d{10}$`)

// Form drives one contact form: field state, submit lifecycle, and error
// display. Thread-safe via mutex — the success auto-reset timer fires on
// another goroutine.
//
// Required-field enforcement (name, email, message non-empty) belongs to
// the rendering layer; Submit assumes it already happened.
type Form struct {
	mu     sync.Mutex
	client *Client

	fields       Submission
	status       Status
	errorMessage string
	phoneError   string

	resetDelay time.Duration
	resetTimer *time.Timer

	onSuccess func(label, section string)
}

// NewForm creates an idle form bound to the given client. A successful
// submission shows the success state for 5 seconds before returning to idle.
func NewForm(client *Client) *Form {
	return &Form{client: client, resetDelay: 5 * time.Second}
}

// SetAnalytics registers a fire-and-forget callback invoked after a
// successful submission. It runs on its own goroutine and is never on the
// critical path.
func (f *Form) SetAnalytics(fn func(label, section string)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onSuccess = fn
}

// SetResetDelay overrides the success auto-reset delay.
func (f *Form) SetResetDelay(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetDelay = d
}

// SetField replaces one field value. Editing while in the error state
// returns the form to idle; editing the phone field clears any shown
// phone-format error immediately (optimistic clearing, no re-validation).
func (f *Form) SetField(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case "name":
		f.fields.Name = value
	case "email":
		f.fields.Email = value
	case "phone":
		f.fields.Phone = value
		f.phoneError = ""
	case "company":
		f.fields.Company = value
	case "message":
		f.fields.Message = value
	}

	if f.status == StatusError {
		f.status = StatusIdle
		f.errorMessage = ""
	}
}

// Submit runs the guarded submit: a non-empty phone failing the 10-digit
// rule aborts with ErrPhoneFormat before any network call. Otherwise the
// form transitions to submitting and issues the request; on success the
// fields are cleared and the form auto-resets to idle after the reset
// delay, on failure the entered data is kept and one generic localized
// error is shown regardless of the server's error kind.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.fields.Phone != "" && !phonePattern.MatchString(f.fields.Phone) {
		f.phoneError = t(msgPhoneError)
		f.mu.Unlock()
		return ErrPhoneFormat
	}

	f.status = StatusSubmitting
	f.errorMessage = ""
	f.phoneError = ""
	sub := f.fields
	f.mu.Unlock()

	err := f.client.Submit(ctx, sub)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.status = StatusError
		f.errorMessage = t(msgError)
		return err
	}

	f.status = StatusSuccess
	f.fields = Submission{}
	if f.onSuccess != nil {
		go f.onSuccess("Contact Form Submit", "contact")
	}

	if f.resetTimer != nil {
		f.resetTimer.Stop()
	}
	f.resetTimer = time.AfterFunc(f.resetDelay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.status == StatusSuccess {
			f.status = StatusIdle
		}
	})
	return nil
}

// Status returns the current lifecycle state.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Fields returns a copy of the current field values.
func (f *Form) Fields() Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// ErrorMessage returns the localized generic error shown in the error state.
func (f *Form) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errorMessage
}

// PhoneError returns the localized phone-format error, if shown.
func (f *Form) PhoneError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phoneError
}

// SuccessMessage returns the localized success text while the form is in
// the success state, with its confirmation caption.
func (f *Form) SuccessMessage() (heading, caption string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status != StatusSuccess {
		return "", ""
	}
	return t(msgSuccess), t(msgConfirmation)
}

// SubmitLabel returns the localized submit button label for the current
// state.
func (f *Form) SubmitLabel() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == StatusSubmitting {
		return t(msgSending)
	}
	return t(msgSendMessage)
}
