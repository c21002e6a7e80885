package memory

import (
	"context"
	"sort"

	"portfolio-site/backend/internal/model"
	"portfolio-site/backend/internal/store"
)

func (s *Store) CreateProject(_ context.Context, p model.Project) (model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = newID()
	if p.Order == 0 {
		p.Order = model.DefaultProjectOrder
	}
	p.CreatedAt = s.now().UTC()
	s.projects[p.ID] = p
	return p, nil
}

func (s *Store) ListProjects(_ context.Context) ([]model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) GetProject(_ context.Context, id string) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (s *Store) UpdateProject(_ context.Context, id string, u store.ProjectUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return store.ErrNotFound
	}

	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.TechStack != nil {
		p.TechStack = *u.TechStack
	}
	if u.GithubLink != nil {
		p.GithubLink = *u.GithubLink
	}
	if u.LiveLink != nil {
		p.LiveLink = *u.LiveLink
	}
	if u.ImageURL != nil {
		p.ImageURL = *u.ImageURL
	}
	if u.Order != nil {
		p.Order = *u.Order
	}

	s.projects[id] = p
	return nil
}

func (s *Store) DeleteProject(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.projects, id)
	return nil
}
