package memory

import (
	"context"
	"testing"
	"time"

	"portfolio-site/backend/internal/model"
	"portfolio-site/backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	now := time.Now()
	s.now = func() time.Time { return now }
	first, err := s.CreateContact(ctx, model.Contact{Name: "Ann", Email: "ann@example.com", Message: "hello there"})
	require.NoError(t, err)

	s.now = func() time.Time { return now.Add(time.Minute) }
	second, err := s.CreateContact(ctx, model.Contact{Name: "Bob", Email: "bob@example.com", Message: "hello again"})
	require.NoError(t, err)

	contacts, err := s.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, second.ID, contacts[0].ID)
	assert.Equal(t, first.ID, contacts[1].ID)
	assert.False(t, contacts[0].Read)
}

func TestMarkContactRead(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	c, err := s.CreateContact(ctx, model.Contact{Name: "Ann", Email: "ann@example.com", Message: "hello there"})
	require.NoError(t, err)

	require.NoError(t, s.MarkContactRead(ctx, c.ID))
	contacts, err := s.ListContacts(ctx)
	require.NoError(t, err)
	assert.True(t, contacts[0].Read)

	assert.ErrorIs(t, s.MarkContactRead(ctx, "missing"), store.ErrNotFound)
}

func TestProjectOrderingWithDefault(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, err := s.CreateProject(ctx, model.Project{Title: "second", Description: "d", Order: 2})
	require.NoError(t, err)
	_, err = s.CreateProject(ctx, model.Project{Title: "first", Description: "d", Order: 1})
	require.NoError(t, err)
	// No order supplied: stored with the high sentinel so it sorts last.
	unordered, err := s.CreateProject(ctx, model.Project{Title: "last", Description: "d"})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultProjectOrder, unordered.Order)

	projects, err := s.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, []string{"first", "second", "last"}, []string{projects[0].Title, projects[1].Title, projects[2].Title})
}

func TestProjectPartialUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	p, err := s.CreateProject(ctx, model.Project{
		Title:       "Original",
		Description: "keep me",
		TechStack:   []string{"Go", "Postgres"},
		GithubLink:  "https://github.com/x/y",
	})
	require.NoError(t, err)

	title := "Updated"
	require.NoError(t, s.UpdateProject(ctx, p.ID, store.ProjectUpdate{Title: &title}))

	got, err := s.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated", got.Title)
	assert.Equal(t, "keep me", got.Description)
	assert.Equal(t, []string{"Go", "Postgres"}, got.TechStack)
	assert.Equal(t, "https://github.com/x/y", got.GithubLink)

	assert.ErrorIs(t, s.UpdateProject(ctx, "missing", store.ProjectUpdate{Title: &title}), store.ErrNotFound)
}

func TestDeleteProject(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	p, err := s.CreateProject(ctx, model.Project{Title: "t", Description: "d"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteProject(ctx, p.ID))
	_, err = s.GetProject(ctx, p.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.DeleteProject(ctx, p.ID), store.ErrNotFound)
}

func TestSkillNameUnique(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, err := s.CreateSkill(ctx, model.Skill{Name: "React", Category: "Frontend", Proficiency: model.ProficiencyAdvanced})
	require.NoError(t, err)

	_, err = s.CreateSkill(ctx, model.Skill{Name: "react", Category: "Frontend", Proficiency: model.ProficiencyExpert})
	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestSkillBatchAtomicOnConflict(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	n, err := s.CreateSkills(ctx, []model.Skill{
		{Name: "Go", Category: "Backend", Proficiency: model.ProficiencyExpert},
		{Name: "Docker", Category: "DevOps", Proficiency: model.ProficiencyIntermediate},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Batch containing a duplicate inserts nothing.
	_, err = s.CreateSkills(ctx, []model.Skill{
		{Name: "Kubernetes", Category: "DevOps", Proficiency: model.ProficiencyBeginner},
		{Name: "Go", Category: "Backend", Proficiency: model.ProficiencyExpert},
	})
	assert.ErrorIs(t, err, store.ErrConflict)

	skills, err := s.ListSkills(ctx)
	require.NoError(t, err)
	assert.Len(t, skills, 2)
}

func TestSkillUpdateRenameConflict(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, err := s.CreateSkill(ctx, model.Skill{Name: "Go", Category: "Backend", Proficiency: model.ProficiencyExpert})
	require.NoError(t, err)
	sk, err := s.CreateSkill(ctx, model.Skill{Name: "Rust", Category: "Backend", Proficiency: model.ProficiencyBeginner})
	require.NoError(t, err)

	name := "Go"
	assert.ErrorIs(t, s.UpdateSkill(ctx, sk.ID, store.SkillUpdate{Name: &name}), store.ErrConflict)

	prof := model.ProficiencyIntermediate
	require.NoError(t, s.UpdateSkill(ctx, sk.ID, store.SkillUpdate{Proficiency: &prof}))
	got, err := s.GetSkill(ctx, sk.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ProficiencyIntermediate, got.Proficiency)
	assert.Equal(t, "Rust", got.Name)
}

func seedEvents(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()
	base := time.Now().UTC()

	add := func(at time.Time, e model.AnalyticsEvent) {
		s.now = func() time.Time { return at }
		_, err := s.CreateEvent(ctx, e)
		require.NoError(t, err)
	}

	add(base, model.AnalyticsEvent{Type: model.EventPageView, Page: "/", UserAgent: "ua-1"})
	add(base.Add(-time.Hour), model.AnalyticsEvent{Type: model.EventPageView, Page: "/", UserAgent: "ua-2"})
	add(base.Add(-2*time.Hour), model.AnalyticsEvent{Type: model.EventPageView, Page: "/about", UserAgent: "ua-1"})
	add(base.Add(-30*24*time.Hour), model.AnalyticsEvent{Type: model.EventPageView, Page: "/old", UserAgent: "ua-3"})
	add(base.Add(-time.Hour), model.AnalyticsEvent{Type: model.EventProjectClick, ProjectID: "p1", ProjectTitle: "First"})
	add(base, model.AnalyticsEvent{Type: model.EventProjectClick, ProjectID: "p1", ProjectTitle: "Renamed"})
	add(base, model.AnalyticsEvent{Type: model.EventProjectClick, ProjectID: "p2", ProjectTitle: "Second"})

	s.now = time.Now
}

func TestAnalyticsAggregation(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seedEvents(t, s)

	since := time.Now().UTC().Add(-7 * 24 * time.Hour)

	views, err := s.CountEvents(ctx, model.EventPageView, since)
	require.NoError(t, err)
	assert.Equal(t, 3, views)

	clicks, err := s.CountEvents(ctx, model.EventProjectClick, since)
	require.NoError(t, err)
	assert.Equal(t, 3, clicks)

	byPage, err := s.PageViewsByPage(ctx, since)
	require.NoError(t, err)
	require.Len(t, byPage, 2)
	assert.Equal(t, model.PageViews{Page: "/", Views: 2}, byPage[0])
	assert.Equal(t, model.PageViews{Page: "/about", Views: 1}, byPage[1])

	top, err := s.TopClickedProjects(ctx, since, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "p1", top[0].ProjectID)
	assert.Equal(t, 2, top[0].Clicks)
	// Title comes from the earliest click, like the source's $first.
	assert.Equal(t, "First", top[0].Title)

	visitors, err := s.UniqueVisitors(ctx, since)
	require.NoError(t, err)
	assert.Equal(t, 2, visitors)

	daily, err := s.DailyPageViews(ctx, since)
	require.NoError(t, err)
	total := 0
	for _, d := range daily {
		total += d.Views
	}
	assert.Equal(t, 3, total)
}

func TestListEventsLimit(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seedEvents(t, s)

	events, err := s.ListEvents(ctx, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.False(t, events[0].CreatedAt.Before(events[1].CreatedAt))
}

func TestAdminUniqueUsername(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	a, err := s.CreateAdmin(ctx, model.Admin{Username: "admin", PasswordHash: "x"})
	require.NoError(t, err)
	assert.True(t, a.IsActive)

	_, err = s.CreateAdmin(ctx, model.Admin{Username: "ADMIN", PasswordHash: "y"})
	assert.ErrorIs(t, err, store.ErrConflict)

	got, err := s.GetAdminByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = s.GetAdminByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
