package httpapi

import (
	"net/http"
	"time"

	"portfolio-site/backend/internal/cache"
	"portfolio-site/backend/internal/config"
	"portfolio-site/backend/internal/mail"
	"portfolio-site/backend/internal/ratelimit"
	"portfolio-site/backend/internal/store"
	"portfolio-site/backend/internal/token"

	"github.com/rs/cors"
)

// Contact form abuse limit, applied per client IP.
const (
	contactRateMax    = 5
	contactRateWindow = time.Hour
)

type Server struct {
	cfg      config.Config
	store    store.Store
	tokens   *token.Service
	cache    *cache.Cache
	limiter  *ratelimit.Limiter
	mailer   mail.Sender
	mux      *http.ServeMux
	cacheTTL time.Duration
}

func NewServer(cfg config.Config, st store.Store, tokens *token.Service, c *cache.Cache, limiter *ratelimit.Limiter, mailer mail.Sender) *Server {
	s := &Server{
		cfg:      cfg,
		store:    st,
		tokens:   tokens,
		cache:    c,
		limiter:  limiter,
		mailer:   mailer,
		mux:      http.NewServeMux(),
		cacheTTL: time.Duration(cfg.CacheTTLSeconds) * time.Second,
	}
	if s.cacheTTL <= 0 {
		s.cacheTTL = 5 * time.Minute
	}
	s.registerRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	var h http.Handler = s.mux
	h = corsHandler(s.cfg.AllowedOrigin).Handler(h)
	h = recoverMiddleware(h)
	h = requestIDMiddleware(h)
	h = loggingMiddleware(h)
	return h
}

func corsHandler(origin string) *cors.Cors {
	allowed := []string{"*"}
	if origin != "" {
		allowed = []string{origin}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   allowed,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: origin != "",
		MaxAge:           3600,
	})
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/", s.handleRoot)
	s.mux.HandleFunc("/health", s.handleHealth)

	s.mux.HandleFunc("/api/auth/login", s.handleLogin)
	s.mux.HandleFunc("/api/auth/setup", s.handleSetup)
	s.mux.HandleFunc("/api/auth/verify", s.requireAdmin(s.handleAuthVerify))
	s.mux.HandleFunc("/api/auth/profile", s.requireAdmin(s.handleProfile))

	s.mux.HandleFunc("/api/contact", s.handleContactSubmit)
	s.mux.HandleFunc("/api/contacts", s.requireAdmin(s.handleContactsList))
	s.mux.HandleFunc("/api/contacts/{id}/read", s.requireAdmin(s.handleContactRead))

	// Project/skill writes are unauthenticated by default; flip
	// ADMIN_PROTECT_WRITES to route mutations through the auth gate.
	s.mux.HandleFunc("/api/projects", s.guardWrites(s.handleProjects))
	s.mux.HandleFunc("/api/projects/{id}", s.guardWrites(s.handleProject))
	s.mux.HandleFunc("/api/skills", s.guardWrites(s.handleSkills))
	s.mux.HandleFunc("/api/skills/batch", s.guardWrites(s.handleSkillsBatch))
	s.mux.HandleFunc("/api/skills/{id}", s.guardWrites(s.handleSkill))

	s.mux.HandleFunc("/api/analytics/track", s.handleAnalyticsTrack)
	s.mux.HandleFunc("/api/analytics/dashboard", s.handleAnalyticsDashboard)
	s.mux.HandleFunc("/api/analytics/events", s.handleAnalyticsEvents)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "Endpoint not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Portfolio API",
		"version": "1.0.0",
		"health":  "/health",
		"endpoints": map[string]string{
			"auth":      "/api/auth",
			"contact":   "/api/contact",
			"projects":  "/api/projects",
			"skills":    "/api/skills",
			"analytics": "/api/analytics",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if err := s.store.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status":   "unhealthy",
			"database": "unreachable",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "healthy",
		"database": "healthy",
		"message":  "Portfolio API is running",
		"time":     time.Now().UTC().Format(time.RFC3339Nano),
	})
}
