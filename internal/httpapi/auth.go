package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"portfolio-site/backend/internal/model"
	"portfolio-site/backend/internal/store"
	"portfolio-site/backend/internal/token"

	"golang.org/x/crypto/bcrypt"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	admin, err := s.store.GetAdminByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("[auth] lookup %q: %v", req.Username, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	// Deactivated accounts fail the same way as bad passwords so the
	// response leaks nothing about account state.
	if !admin.IsActive {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	signed, err := s.tokens.Issue(admin.Username, token.DefaultTTL)
	if err != nil {
		log.Printf("[auth] issue token for %q: %v", admin.Username, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Login successful",
		"token":    signed,
		"username": admin.Username,
	})
}

// handleSetup bootstraps the single admin account. The shared setup key
// is the only credential guarding it, so deployments must rotate or
// unset SETUP_KEY once the account exists.
func (s *Server) handleSetup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		SetupKey string `json:"setup_key"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if s.cfg.SetupKey == "" || req.SetupKey != s.cfg.SetupKey {
		writeError(w, http.StatusForbidden, "Invalid setup key")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}
	if len(req.Password) < 8 {
		writeError(w, http.StatusBadRequest, "Password must be at least 8 characters long")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[auth] hash password: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	admin, err := s.store.CreateAdmin(r.Context(), model.Admin{
		Username:     req.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusBadRequest, "Admin user already exists")
			return
		}
		log.Printf("[auth] create admin %q: %v", req.Username, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Admin user created successfully",
		"username": admin.Username,
	})
}

func (s *Server) handleAuthVerify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"valid":    true,
		"username": usernameFromContext(r.Context()),
	})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	admin, err := s.store.GetAdminByUsername(r.Context(), usernameFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// The account behind a still-valid token was removed.
			writeError(w, http.StatusNotFound, "Admin user not found")
			return
		}
		log.Printf("[auth] profile lookup: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"username":   admin.Username,
		"created_at": admin.CreatedAt.UTC().Format(time.RFC3339),
		"is_active":  admin.IsActive,
	})
}
