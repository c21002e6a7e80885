package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"portfolio-site/backend/internal/model"
	"portfolio-site/backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to the database named by DATABASE_URL and wipes the
// portfolio tables. Tests are skipped when no database is configured.
func setupTestDB(t *testing.T) *Store {
	t.Helper()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URL not set, skipping PostgreSQL tests")
	}

	s, err := NewStore(databaseURL)
	require.NoError(t, err)
	t.Cleanup(s.Close)

	_, err = s.pool.Exec(context.Background(), `
		truncate public.contacts, public.projects, public.skills,
		         public.analytics_events, public.admins
	`)
	require.NoError(t, err)

	return s
}

func TestProjectCRUD(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	p, err := s.CreateProject(ctx, model.Project{
		Title:       "Weather Dashboard",
		Description: "Real-time weather application",
		TechStack:   []string{"Go", "Postgres"},
		Order:       2,
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	assert.Equal(t, 2, p.Order)

	// No order supplied: stored with the default sentinel.
	unordered, err := s.CreateProject(ctx, model.Project{Title: "Later", Description: "d"})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultProjectOrder, unordered.Order)

	title := "Renamed"
	require.NoError(t, s.UpdateProject(ctx, p.ID, store.ProjectUpdate{Title: &title}))

	got, err := s.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, "Real-time weather application", got.Description)
	assert.Equal(t, []string{"Go", "Postgres"}, got.TechStack)

	projects, err := s.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, p.ID, projects[0].ID)

	require.NoError(t, s.DeleteProject(ctx, p.ID))
	_, err = s.GetProject(ctx, p.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.DeleteProject(ctx, "not-a-uuid"), store.ErrNotFound)
}

func TestSkillUniqueIndex(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	_, err := s.CreateSkill(ctx, model.Skill{Name: "React", Category: "Frontend", Proficiency: model.ProficiencyAdvanced})
	require.NoError(t, err)

	_, err = s.CreateSkill(ctx, model.Skill{Name: "react", Category: "Frontend", Proficiency: model.ProficiencyExpert})
	assert.ErrorIs(t, err, store.ErrConflict)

	// Conflicting batch rolls back entirely.
	_, err = s.CreateSkills(ctx, []model.Skill{
		{Name: "Vue", Category: "Frontend", Proficiency: model.ProficiencyBeginner},
		{Name: "React", Category: "Frontend", Proficiency: model.ProficiencyExpert},
	})
	assert.ErrorIs(t, err, store.ErrConflict)

	skills, err := s.ListSkills(ctx)
	require.NoError(t, err)
	assert.Len(t, skills, 1)
}

func TestAnalyticsAggregationSQL(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	for _, e := range []model.AnalyticsEvent{
		{Type: model.EventPageView, Page: "/", UserAgent: "ua-1"},
		{Type: model.EventPageView, Page: "/", UserAgent: "ua-2"},
		{Type: model.EventPageView, Page: "/about", UserAgent: "ua-1"},
		{Type: model.EventProjectClick, ProjectID: "p1", ProjectTitle: "First"},
		{Type: model.EventProjectClick, ProjectID: "p1", ProjectTitle: "Renamed"},
		{Type: model.EventProjectClick, ProjectID: "p2", ProjectTitle: "Second"},
	} {
		_, err := s.CreateEvent(ctx, e)
		require.NoError(t, err)
	}

	since := time.Now().UTC().Add(-24 * time.Hour)

	views, err := s.CountEvents(ctx, model.EventPageView, since)
	require.NoError(t, err)
	assert.Equal(t, 3, views)

	byPage, err := s.PageViewsByPage(ctx, since)
	require.NoError(t, err)
	require.Len(t, byPage, 2)
	assert.Equal(t, model.PageViews{Page: "/", Views: 2}, byPage[0])

	top, err := s.TopClickedProjects(ctx, since, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "p1", top[0].ProjectID)
	assert.Equal(t, 2, top[0].Clicks)
	assert.Equal(t, "First", top[0].Title)

	visitors, err := s.UniqueVisitors(ctx, since)
	require.NoError(t, err)
	assert.Equal(t, 2, visitors)

	daily, err := s.DailyPageViews(ctx, since)
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, 3, daily[0].Views)
}

func TestAdminConflict(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	a, err := s.CreateAdmin(ctx, model.Admin{Username: "admin", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.True(t, a.IsActive)

	_, err = s.CreateAdmin(ctx, model.Admin{Username: "ADMIN", PasswordHash: "hash"})
	assert.ErrorIs(t, err, store.ErrConflict)

	got, err := s.GetAdminByUsername(ctx, "Admin")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
}

func TestContactLifecycle(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	c, err := s.CreateContact(ctx, model.Contact{Name: "Ann", Email: "ann@example.com", Message: "hello there"})
	require.NoError(t, err)
	assert.False(t, c.Read)

	require.NoError(t, s.MarkContactRead(ctx, c.ID))

	contacts, err := s.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.True(t, contacts[0].Read)
}
