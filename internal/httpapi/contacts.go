package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"portfolio-site/backend/internal/model"
	"portfolio-site/backend/internal/store"
)

func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// The limit is checked before the body is even parsed so abusive
	// clients cannot probe validation for free.
	if !s.limiter.Allow(clientIP(r), contactRateMax, contactRateWindow) {
		writeError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
		return
	}

	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	name := sanitizeInput(req.Name)
	email := sanitizeInput(req.Email)
	message := sanitizeInput(req.Message)

	if errs := validateContact(name, email, message); errs != nil {
		writeFieldErrors(w, errs)
		return
	}

	contact, err := s.store.CreateContact(r.Context(), model.Contact{
		Name:    name,
		Email:   email,
		Message: message,
	})
	if err != nil {
		log.Printf("[contact] create: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	emailSent := true
	if err := s.mailer.SendContactNotification(name, email, message); err != nil {
		log.Printf("[contact] notification mail: %v", err)
		emailSent = false
	}
	if err := s.mailer.SendConfirmation(email, name); err != nil {
		log.Printf("[contact] confirmation mail: %v", err)
		emailSent = false
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":    "Contact form submitted successfully",
		"id":         contact.ID,
		"email_sent": emailSent,
	})
}

func (s *Server) handleContactsList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	contacts, err := s.store.ListContacts(r.Context())
	if err != nil {
		log.Printf("[contact] list: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if contacts == nil {
		contacts = []model.Contact{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"contacts": contacts})
}

func (s *Server) handleContactRead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := r.PathValue("id")
	if err := s.store.MarkContactRead(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Contact not found")
			return
		}
		log.Printf("[contact] mark read %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Contact marked as read"})
}
