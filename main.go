package main

import (
	"io"
	"log"
	"net/http"
	"os"

	"github.com/mihnevagency/contact-api/internal/config"
	"github.com/mihnevagency/contact-api/internal/email"
	"github.com/mihnevagency/contact-api/internal/gelf"
	"github.com/mihnevagency/contact-api/internal/handler"
	"github.com/mihnevagency/contact-api/internal/router"
	"github.com/mihnevagency/contact-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// GELF UDP logging
	if cfg.GelfAddr != "" {
		gelfWriter, err := gelf.New(cfg.GelfAddr)
		if err != nil {
			log.Printf("Warning: GELF init failed: %v", err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, gelfWriter))
			log.Printf("GELF logging: enabled (%s)", cfg.GelfAddr)
		}
	}

	// Relay handle, constructed once and shared for the process lifetime
	var mailer email.Mailer
	switch cfg.MailProvider {
	case "dev":
		mailer = email.Dev{}
		log.Printf("Mail provider: dev (messages printed to stdout)")
	default:
		mailer, err = email.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPTimeout)
		if err != nil {
			log.Fatalf("Failed to set up SMTP relay: %v", err)
		}
		log.Printf("Mail provider: smtp relay %s:%d", cfg.SMTPHost, cfg.SMTPPort)
	}

	// Service and handler
	contactSvc := service.NewContactService(mailer, nil, cfg.SMTPUser, cfg.AdminEmail, cfg.MXTimeout, cfg.SMTPTimeout)
	contactH := handler.NewContactHandler(contactSvc)

	// Router
	r := router.New(contactH)

	log.Printf("contact-api server starting on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
