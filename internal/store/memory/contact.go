package memory

import (
	"context"
	"sort"

	"portfolio-site/backend/internal/model"
	"portfolio-site/backend/internal/store"
)

func (s *Store) CreateContact(_ context.Context, c model.Contact) (model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = newID()
	c.Read = false
	c.CreatedAt = s.now().UTC()
	s.contacts[c.ID] = c
	return c, nil
}

func (s *Store) ListContacts(_ context.Context) ([]model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) MarkContactRead(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contacts[id]
	if !ok {
		return store.ErrNotFound
	}
	c.Read = true
	s.contacts[id] = c
	return nil
}
