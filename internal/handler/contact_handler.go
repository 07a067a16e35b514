package handler

import (
	"log"
	"net/http"

	"github.com/mihnevagency/contact-api/internal/models"
	"github.com/mihnevagency/contact-api/internal/service"
)

// errorResponse is the wire shape of every failure. The message stays
// generic and localized; stage detail goes to the server log only.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type ContactHandler struct {
	svc *service.ContactService
}

func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var sub models.ContactSubmission
	if err := readJSON(r, &sub); err != nil {
		log.Printf("contact: invalid request body: %v", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_request", Message: "Невалидна заявка"})
		return
	}

	outcome := h.svc.Process(r.Context(), sub)
	switch outcome.Kind {
	case models.Delivered:
		writeJSON(w, http.StatusOK, map[string]string{"message": "Emails sent successfully"})
	case models.NotVerified:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_email", Message: "Невалиден имейл адрес"})
	case models.DeliveryFailed:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "email_send_failed", Message: "Грешка при изпращане на съобщението"})
	default:
		log.Printf("contact: unexpected outcome %s: %v", outcome.Kind, outcome.Err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_request", Message: "Невалидна заявка"})
	}
}

// Health handles GET /healthz.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
