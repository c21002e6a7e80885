package memory

import (
	"context"
	"strings"

	"portfolio-site/backend/internal/model"
	"portfolio-site/backend/internal/store"
)

func (s *Store) CreateAdmin(_ context.Context, a model.Admin) (model.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.admins {
		if strings.EqualFold(existing.Username, a.Username) {
			return model.Admin{}, store.ErrConflict
		}
	}

	a.ID = newID()
	a.IsActive = true
	a.CreatedAt = s.now().UTC()
	s.admins[a.ID] = a
	return a, nil
}

func (s *Store) GetAdminByUsername(_ context.Context, username string) (*model.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.admins {
		if strings.EqualFold(a.Username, username) {
			return &a, nil
		}
	}
	return nil, store.ErrNotFound
}
