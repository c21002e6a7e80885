// Package memory is an in-memory Store used for tests and for running the
// API without a database. All maps are guarded by a single mutex.
package memory

import (
	"context"
	"sync"
	"time"

	"portfolio-site/backend/internal/model"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.Mutex

	contacts map[string]model.Contact
	projects map[string]model.Project
	skills   map[string]model.Skill
	events   map[string]model.AnalyticsEvent
	admins   map[string]model.Admin

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		contacts: make(map[string]model.Contact),
		projects: make(map[string]model.Project),
		skills:   make(map[string]model.Skill),
		events:   make(map[string]model.AnalyticsEvent),
		admins:   make(map[string]model.Admin),
		now:      time.Now,
	}
}

func (s *Store) Ping(_ context.Context) error {
	return nil
}

func newID() string {
	return uuid.NewString()
}
