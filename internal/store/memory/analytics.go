package memory

import (
	"context"
	"sort"
	"time"

	"portfolio-site/backend/internal/model"
)

func (s *Store) CreateEvent(_ context.Context, e model.AnalyticsEvent) (model.AnalyticsEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = newID()
	e.CreatedAt = s.now().UTC()
	s.events[e.ID] = e
	return e, nil
}

func (s *Store) ListEvents(_ context.Context, limit int) ([]model.AnalyticsEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.AnalyticsEvent, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) CountEvents(_ context.Context, typ model.EventType, since time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, e := range s.events {
		if e.Type == typ && !e.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (s *Store) PageViewsByPage(_ context.Context, since time.Time) ([]model.PageViews, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int)
	for _, e := range s.events {
		if e.Type == model.EventPageView && !e.CreatedAt.Before(since) {
			counts[e.Page]++
		}
	}

	out := make([]model.PageViews, 0, len(counts))
	for page, views := range counts {
		out = append(out, model.PageViews{Page: page, Views: views})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Views != out[j].Views {
			return out[i].Views > out[j].Views
		}
		return out[i].Page < out[j].Page
	})
	return out, nil
}

func (s *Store) TopClickedProjects(_ context.Context, since time.Time, limit int) ([]model.ProjectClicks, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	type agg struct {
		title    string
		clicks   int
		earliest time.Time
	}
	byProject := make(map[string]*agg)
	for _, e := range s.events {
		if e.Type != model.EventProjectClick || e.CreatedAt.Before(since) {
			continue
		}
		a, ok := byProject[e.ProjectID]
		if !ok {
			a = &agg{title: e.ProjectTitle, earliest: e.CreatedAt}
			byProject[e.ProjectID] = a
		}
		// Keep the title of the earliest event, matching $first semantics.
		if e.CreatedAt.Before(a.earliest) {
			a.title = e.ProjectTitle
			a.earliest = e.CreatedAt
		}
		a.clicks++
	}

	out := make([]model.ProjectClicks, 0, len(byProject))
	for id, a := range byProject {
		out = append(out, model.ProjectClicks{ProjectID: id, Title: a.title, Clicks: a.clicks})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Clicks != out[j].Clicks {
			return out[i].Clicks > out[j].Clicks
		}
		return out[i].ProjectID < out[j].ProjectID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) DailyPageViews(_ context.Context, since time.Time) ([]model.DailyViews, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int)
	for _, e := range s.events {
		if e.Type == model.EventPageView && !e.CreatedAt.Before(since) {
			counts[e.CreatedAt.UTC().Format("2006-01-02")]++
		}
	}

	out := make([]model.DailyViews, 0, len(counts))
	for date, views := range counts {
		out = append(out, model.DailyViews{Date: date, Views: views})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out, nil
}

func (s *Store) UniqueVisitors(_ context.Context, since time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	agents := make(map[string]bool)
	for _, e := range s.events {
		if e.Type == model.EventPageView && !e.CreatedAt.Before(since) {
			agents[e.UserAgent] = true
		}
	}
	return len(agents), nil
}
