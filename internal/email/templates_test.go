package email

import (
	"strings"
	"testing"

	"github.com/mihnevagency/contact-api/internal/models"
)

func TestAdminNotificationWithAllFields(t *testing.T) {
	sub := models.ContactSubmission{
		Name:    "Ivan",
		Email:   "ivan@example.com",
		Phone:   "0888123456",
		Company: "Acme",
		Message: "Hi",
	}
	msg, err := AdminNotification(sub, "relay@agency.test", "admin@agency.test")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if msg.To != "admin@agency.test" || msg.From != "relay@agency.test" {
		t.Fatalf("unexpected addressing: from %s to %s", msg.From, msg.To)
	}
	if msg.Subject != "Ново съобщение от Ivan" {
		t.Fatalf("unexpected subject: %q", msg.Subject)
	}
	for _, want := range []string{"ivan@example.com", "0888123456", "Acme", "Hi"} {
		if !strings.Contains(msg.HTMLBody, want) {
			t.Fatalf("body missing %q:\n%s", want, msg.HTMLBody)
		}
	}
	if strings.Contains(msg.HTMLBody, notProvided) {
		t.Fatal("placeholder should not appear when optionals are present")
	}
}

func TestAdminNotificationPlaceholders(t *testing.T) {
	sub := models.ContactSubmission{Name: "Ivan", Email: "ivan@example.com", Message: "Hi"}
	msg, err := AdminNotification(sub, "relay@agency.test", "admin@agency.test")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Count(msg.HTMLBody, notProvided) != 2 {
		t.Fatalf("wanted placeholder for phone and company, body:\n%s", msg.HTMLBody)
	}
}

func TestConfirmationQuotesMessage(t *testing.T) {
	sub := models.ContactSubmission{Name: "Ivan", Email: "ivan@example.com", Message: "Надявам се да се чуем скоро"}
	msg, err := Confirmation(sub, "relay@agency.test")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if msg.To != "ivan@example.com" {
		t.Fatalf("confirmation must go to the submitter, got %s", msg.To)
	}
	if !strings.Contains(msg.HTMLBody, "<blockquote>Надявам се да се чуем скоро</blockquote>") {
		t.Fatalf("message not quoted back:\n%s", msg.HTMLBody)
	}
}

func TestTemplatesEscapeHTML(t *testing.T) {
	sub := models.ContactSubmission{Name: "Ivan", Email: "ivan@example.com", Message: `<script>alert(1)</script>`}
	msg, err := Confirmation(sub, "relay@agency.test")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(msg.HTMLBody, "<script>") {
		t.Fatal("user input must be escaped in mail bodies")
	}
}
