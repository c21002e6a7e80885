package postgres

import (
	"context"
	"time"

	"portfolio-site/backend/internal/model"
)

const eventColumns = `id::text, type, page, referrer, user_agent, project_id, project_title, created_at`

func (s *Store) CreateEvent(ctx context.Context, e model.AnalyticsEvent) (model.AnalyticsEvent, error) {
	var out model.AnalyticsEvent
	err := s.pool.QueryRow(ctx, `
		insert into public.analytics_events (type, page, referrer, user_agent, project_id, project_title)
		values ($1, $2, $3, $4, $5, $6)
		returning `+eventColumns+`
	`, string(e.Type), e.Page, e.Referrer, e.UserAgent, e.ProjectID, e.ProjectTitle).Scan(
		&out.ID, &out.Type, &out.Page, &out.Referrer, &out.UserAgent,
		&out.ProjectID, &out.ProjectTitle, &out.CreatedAt,
	)
	if err != nil {
		return model.AnalyticsEvent{}, mapPgErr(err)
	}
	return out, nil
}

func (s *Store) ListEvents(ctx context.Context, limit int) ([]model.AnalyticsEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx, `
		select `+eventColumns+`
		from public.analytics_events
		order by created_at desc
		limit $1
	`, limit)
	if err != nil {
		return nil, mapPgErr(err)
	}
	defer rows.Close()

	out := []model.AnalyticsEvent{}
	for rows.Next() {
		var e model.AnalyticsEvent
		if err := rows.Scan(&e.ID, &e.Type, &e.Page, &e.Referrer, &e.UserAgent,
			&e.ProjectID, &e.ProjectTitle, &e.CreatedAt); err != nil {
			return nil, mapPgErr(err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) CountEvents(ctx context.Context, typ model.EventType, since time.Time) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `
		select count(*)::int
		from public.analytics_events
		where type = $1 and created_at >= $2
	`, string(typ), since).Scan(&n)
	if err != nil {
		return 0, mapPgErr(err)
	}
	return n, nil
}

func (s *Store) PageViewsByPage(ctx context.Context, since time.Time) ([]model.PageViews, error) {
	rows, err := s.pool.Query(ctx, `
		select page, count(*)::int as views
		from public.analytics_events
		where type = 'page_view' and created_at >= $1
		group by page
		order by views desc, page asc
	`, since)
	if err != nil {
		return nil, mapPgErr(err)
	}
	defer rows.Close()

	out := []model.PageViews{}
	for rows.Next() {
		var pv model.PageViews
		if err := rows.Scan(&pv.Page, &pv.Views); err != nil {
			return nil, mapPgErr(err)
		}
		out = append(out, pv)
	}
	return out, rows.Err()
}

func (s *Store) TopClickedProjects(ctx context.Context, since time.Time, limit int) ([]model.ProjectClicks, error) {
	rows, err := s.pool.Query(ctx, `
		select project_id,
		       (array_agg(project_title order by created_at asc))[1] as title,
		       count(*)::int as clicks
		from public.analytics_events
		where type = 'project_click' and created_at >= $1
		group by project_id
		order by clicks desc, project_id asc
		limit $2
	`, since, limit)
	if err != nil {
		return nil, mapPgErr(err)
	}
	defer rows.Close()

	out := []model.ProjectClicks{}
	for rows.Next() {
		var pc model.ProjectClicks
		if err := rows.Scan(&pc.ProjectID, &pc.Title, &pc.Clicks); err != nil {
			return nil, mapPgErr(err)
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}

func (s *Store) DailyPageViews(ctx context.Context, since time.Time) ([]model.DailyViews, error) {
	rows, err := s.pool.Query(ctx, `
		select to_char(created_at at time zone 'utc', 'YYYY-MM-DD') as day,
		       count(*)::int as views
		from public.analytics_events
		where type = 'page_view' and created_at >= $1
		group by day
		order by day asc
	`, since)
	if err != nil {
		return nil, mapPgErr(err)
	}
	defer rows.Close()

	out := []model.DailyViews{}
	for rows.Next() {
		var dv model.DailyViews
		if err := rows.Scan(&dv.Date, &dv.Views); err != nil {
			return nil, mapPgErr(err)
		}
		out = append(out, dv)
	}
	return out, rows.Err()
}

func (s *Store) UniqueVisitors(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `
		select count(distinct user_agent)::int
		from public.analytics_events
		where type = 'page_view' and created_at >= $1
	`, since).Scan(&n)
	if err != nil {
		return 0, mapPgErr(err)
	}
	return n, nil
}
