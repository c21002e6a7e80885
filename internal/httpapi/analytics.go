package httpapi

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"portfolio-site/backend/internal/model"
)

const (
	defaultDashboardDays = 30
	dailySeriesDays      = 7
	defaultEventsLimit   = 50
	maxEventsLimit       = 500
	topProjectsLimit     = 10
)

func (s *Server) handleAnalyticsTrack(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Type         string `json:"type"`
		Page         string `json:"page"`
		ProjectID    string `json:"project_id"`
		ProjectTitle string `json:"project_title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	event := model.AnalyticsEvent{Type: model.EventType(req.Type)}
	switch event.Type {
	case model.EventPageView:
		if req.Page == "" {
			writeError(w, http.StatusBadRequest, "Page is required for page_view events")
			return
		}
		event.Page = req.Page
		// Referrer and user agent come from the request itself, not the
		// body, so clients cannot spoof them through the JSON payload.
		event.Referrer = r.Referer()
		event.UserAgent = r.UserAgent()
	case model.EventProjectClick:
		if req.ProjectID == "" {
			writeError(w, http.StatusBadRequest, "Project ID is required for project_click events")
			return
		}
		event.ProjectID = req.ProjectID
		event.ProjectTitle = req.ProjectTitle
	default:
		writeError(w, http.StatusBadRequest, "Invalid event type")
		return
	}

	if _, err := s.store.CreateEvent(r.Context(), event); err != nil {
		log.Printf("[analytics] track: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Event tracked successfully"})
}

func (s *Server) handleAnalyticsDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	days := defaultDashboardDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = n
	}

	now := time.Now().UTC()
	since := now.AddDate(0, 0, -days)
	// The daily series always covers the last week regardless of the
	// requested period, matching what the dashboard chart renders.
	dailySince := now.AddDate(0, 0, -dailySeriesDays)
	ctx := r.Context()

	pageViews, err := s.store.CountEvents(ctx, model.EventPageView, since)
	if err != nil {
		log.Printf("[analytics] count page views: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	projectClicks, err := s.store.CountEvents(ctx, model.EventProjectClick, since)
	if err != nil {
		log.Printf("[analytics] count project clicks: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	uniqueVisitors, err := s.store.UniqueVisitors(ctx, since)
	if err != nil {
		log.Printf("[analytics] unique visitors: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	byPage, err := s.store.PageViewsByPage(ctx, since)
	if err != nil {
		log.Printf("[analytics] views by page: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	popular, err := s.store.TopClickedProjects(ctx, since, topProjectsLimit)
	if err != nil {
		log.Printf("[analytics] top projects: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	daily, err := s.store.DailyPageViews(ctx, dailySince)
	if err != nil {
		log.Printf("[analytics] daily views: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if byPage == nil {
		byPage = []model.PageViews{}
	}
	if popular == nil {
		popular = []model.ProjectClicks{}
	}
	if daily == nil {
		daily = []model.DailyViews{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"period":               fmt.Sprintf("Last %d days", days),
		"total_page_views":     pageViews,
		"total_project_clicks": projectClicks,
		"unique_visitors":      uniqueVisitors,
		"page_views_by_page":   byPage,
		"popular_projects":     popular,
		"daily_views":          daily,
	})
}

func (s *Server) handleAnalyticsEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit := defaultEventsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		if n > maxEventsLimit {
			n = maxEventsLimit
		}
		limit = n
	}

	events, err := s.store.ListEvents(r.Context(), limit)
	if err != nil {
		log.Printf("[analytics] list events: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if events == nil {
		events = []model.AnalyticsEvent{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": events})
}
