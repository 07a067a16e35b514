package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/mihnevagency/contact-api/internal/email"
	"github.com/mihnevagency/contact-api/internal/models"
)

// MXResolver resolves mail-exchange records for a domain.
// *net.Resolver satisfies it.
type MXResolver interface {
	LookupMX(ctx context.Context, domain string) ([]*net.MX, error)
}

// ContactService runs one submission end to end: advisory email
// verification, then the two-send dispatch. It holds no per-request state
// and is safe for concurrent use.
type ContactService struct {
	mailer     email.Mailer
	resolver   MXResolver
	fromAddr   string
	adminEmail string

	mxTimeout    time.Duration
	probeTimeout time.Duration
}

func NewContactService(mailer email.Mailer, resolver MXResolver, fromAddr, adminEmail string, mxTimeout, probeTimeout time.Duration) *ContactService {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	return &ContactService{
		mailer:       mailer,
		resolver:     resolver,
		fromAddr:     fromAddr,
		adminEmail:   adminEmail,
		mxTimeout:    mxTimeout,
		probeTimeout: probeTimeout,
	}
}

// Process verifies the submitter's address and, if it passes, sends the
// admin notification followed by the confirmation. Each request is one
// attempt end to end: no retries, no dedup, no rollback on partial send.
func (s *ContactService) Process(ctx context.Context, sub models.ContactSubmission) models.Outcome {
	_, domain, ok := sub.SplitEmail()
	if !ok {
		// Fast local rejection, no network.
		return models.Outcome{Kind: models.NotVerified, Err: fmt.Errorf("malformed email address %q", sub.Email)}
	}

	if err := s.verify(ctx, domain); err != nil {
		log.Printf("contact: verification failed for domain %s: %v", domain, err)
		return models.Outcome{Kind: models.NotVerified, Err: err}
	}

	if err := s.dispatch(ctx, sub); err != nil {
		return models.Outcome{Kind: models.DeliveryFailed, Err: err}
	}
	return models.Outcome{Kind: models.Delivered}
}

// verify is the advisory existence check: the relay must accept our
// credentials and the domain must advertise at least one mail exchanger.
// Every failure mode folds into a non-nil error; none escalate further.
func (s *ContactService) verify(ctx context.Context, domain string) error {
	probeCtx, cancel := context.WithTimeout(ctx, s.probeTimeout)
	defer cancel()
	if err := s.mailer.Probe(probeCtx); err != nil {
		return fmt.Errorf("relay probe: %w", err)
	}

	mxCtx, cancel := context.WithTimeout(ctx, s.mxTimeout)
	defer cancel()
	records, err := s.resolver.LookupMX(mxCtx, domain)
	if err != nil {
		return fmt.Errorf("mx lookup for %s: %w", domain, err)
	}
	if len(records) == 0 {
		return errors.New("no MX records for " + domain)
	}
	return nil
}

// dispatch sends the two emails in order. A failure on the second send
// leaves the first one delivered; the log line records which send failed.
func (s *ContactService) dispatch(ctx context.Context, sub models.ContactSubmission) error {
	adminMsg, err := email.AdminNotification(sub, s.fromAddr, s.adminEmail)
	if err != nil {
		return err
	}
	if err := s.mailer.Send(ctx, adminMsg); err != nil {
		log.Printf("contact: admin notification send failed: %v", err)
		return fmt.Errorf("admin notification: %w", err)
	}

	confMsg, err := email.Confirmation(sub, s.fromAddr)
	if err != nil {
		return err
	}
	if err := s.mailer.Send(ctx, confMsg); err != nil {
		log.Printf("contact: confirmation send failed (admin notification already sent): %v", err)
		return fmt.Errorf("confirmation: %w", err)
	}
	return nil
}
