package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/mihnevagency/contact-api/internal/handler"
	mw "github.com/mihnevagency/contact-api/internal/middleware"
)

func New(contactH *handler.ContactHandler) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.RequestID)
	r.Use(mw.Logger)
	r.Use(mw.CORS)

	r.Get("/healthz", handler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/contact", contactH.Submit)
	})

	return r
}
