package models

import "testing"

func TestSplitEmail(t *testing.T) {
	cases := []struct {
		email  string
		local  string
		domain string
		ok     bool
	}{
		{"ivan@example.com", "ivan", "example.com", true},
		{"a@b", "a", "b", true},
		{"not-an-email", "", "", false},
		{"", "", "", false},
		{"@example.com", "", "", false},
		{"ivan@", "", "", false},
		{"ivan@@example.com", "", "", false},
		{"a@b@c", "", "", false},
	}
	for _, c := range cases {
		t.Run(c.email, func(t *testing.T) {
			local, domain, ok := ContactSubmission{Email: c.email}.SplitEmail()
			if ok != c.ok || local != c.local || domain != c.domain {
				t.Fatalf("\nwanted:\n(%q, %q, %v)\ngot:\n(%q, %q, %v)", c.local, c.domain, c.ok, local, domain, ok)
			}
		})
	}
}

func TestOutcomeKindString(t *testing.T) {
	for kind, want := range map[OutcomeKind]string{
		RequestInvalid: "request_invalid",
		NotVerified:    "not_verified",
		DeliveryFailed: "delivery_failed",
		Delivered:      "delivered",
	} {
		if got := kind.String(); got != want {
			t.Fatalf("\nwanted:\n%s\ngot:\n%s", want, got)
		}
	}
}
