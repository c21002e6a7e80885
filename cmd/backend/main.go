package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-site/backend/internal/cache"
	"portfolio-site/backend/internal/config"
	"portfolio-site/backend/internal/httpapi"
	"portfolio-site/backend/internal/mail"
	"portfolio-site/backend/internal/ratelimit"
	"portfolio-site/backend/internal/store"
	"portfolio-site/backend/internal/store/memory"
	"portfolio-site/backend/internal/store/postgres"
	"portfolio-site/backend/internal/token"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	var (
		st      store.Store
		cleanup func()
	)
	if cfg.DatabaseURL != "" {
		pg, err := postgres.NewStore(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("connect database: %v", err)
		}
		st = pg
		cleanup = pg.Close
		log.Printf("using postgres store")
	} else {
		st = memory.NewStore()
		cleanup = func() {}
		log.Printf("DATABASE_URL not set, using in-memory store")
	}
	defer cleanup()

	if cfg.JWTSecret == "" {
		log.Printf("JWT_SECRET not set, sessions will not survive restarts")
	}

	var mailer mail.Sender = mail.Disabled{}
	if cfg.SMTPHost != "" && cfg.SMTPUsername != "" {
		mailer = mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.AdminEmail)
	} else {
		log.Printf("SMTP not configured, contact emails disabled")
	}

	limiter := ratelimit.New()
	srv := httpapi.NewServer(cfg, st, token.NewService(cfg.JWTSecret), cache.New(), limiter, mailer)

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Periodically drop idle rate-limit windows so long-gone clients do
	// not accumulate in memory.
	go func() {
		interval := time.Duration(cfg.RateLimitSweepMinutes) * time.Minute
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := limiter.Sweep(time.Hour); removed > 0 {
					log.Printf("rate limiter sweep removed %d idle clients", removed)
				}
			}
		}
	}()

	go func() {
		log.Printf("listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
		os.Exit(1)
	}
}
