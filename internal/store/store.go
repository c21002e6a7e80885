package store

import (
	"context"
	"errors"
	"time"

	"portfolio-site/backend/internal/model"
)

var (
	ErrNotFound = errors.New("not_found")
	ErrConflict = errors.New("conflict")
)

// ProjectUpdate carries a partial merge: nil fields are left untouched.
type ProjectUpdate struct {
	Title       *string
	Description *string
	TechStack   *[]string
	GithubLink  *string
	LiveLink    *string
	ImageURL    *string
	Order       *int
}

func (u ProjectUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.TechStack == nil &&
		u.GithubLink == nil && u.LiveLink == nil && u.ImageURL == nil && u.Order == nil
}

// SkillUpdate carries a partial merge: nil fields are left untouched.
type SkillUpdate struct {
	Name        *string
	Category    *string
	Proficiency *model.Proficiency
}

func (u SkillUpdate) Empty() bool {
	return u.Name == nil && u.Category == nil && u.Proficiency == nil
}

type Store interface {
	// Ping confirms the backing store is reachable.
	Ping(ctx context.Context) error

	CreateContact(ctx context.Context, c model.Contact) (model.Contact, error)
	ListContacts(ctx context.Context) ([]model.Contact, error)
	MarkContactRead(ctx context.Context, id string) error

	CreateProject(ctx context.Context, p model.Project) (model.Project, error)
	ListProjects(ctx context.Context) ([]model.Project, error)
	GetProject(ctx context.Context, id string) (*model.Project, error)
	UpdateProject(ctx context.Context, id string, u ProjectUpdate) error
	DeleteProject(ctx context.Context, id string) error

	CreateSkill(ctx context.Context, s model.Skill) (model.Skill, error)
	CreateSkills(ctx context.Context, ss []model.Skill) (int, error)
	ListSkills(ctx context.Context) ([]model.Skill, error)
	GetSkill(ctx context.Context, id string) (*model.Skill, error)
	UpdateSkill(ctx context.Context, id string, u SkillUpdate) error
	DeleteSkill(ctx context.Context, id string) error

	CreateEvent(ctx context.Context, e model.AnalyticsEvent) (model.AnalyticsEvent, error)
	ListEvents(ctx context.Context, limit int) ([]model.AnalyticsEvent, error)
	CountEvents(ctx context.Context, typ model.EventType, since time.Time) (int, error)
	PageViewsByPage(ctx context.Context, since time.Time) ([]model.PageViews, error)
	TopClickedProjects(ctx context.Context, since time.Time, limit int) ([]model.ProjectClicks, error)
	DailyPageViews(ctx context.Context, since time.Time) ([]model.DailyViews, error)
	UniqueVisitors(ctx context.Context, since time.Time) (int, error)

	CreateAdmin(ctx context.Context, a model.Admin) (model.Admin, error)
	GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error)
}
