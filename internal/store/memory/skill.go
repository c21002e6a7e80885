package memory

import (
	"context"
	"sort"
	"strings"

	"portfolio-site/backend/internal/model"
	"portfolio-site/backend/internal/store"
)

func (s *Store) CreateSkill(_ context.Context, sk model.Skill) (model.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createSkillLocked(sk)
}

// CreateSkills inserts the batch atomically: a duplicate name anywhere in
// the batch (or against existing skills) rejects the whole request.
func (s *Store) CreateSkills(_ context.Context, sks []model.Skill) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool, len(sks))
	for _, sk := range sks {
		name := strings.ToLower(strings.TrimSpace(sk.Name))
		if seen[name] || s.skillNameExistsLocked(sk.Name) {
			return 0, store.ErrConflict
		}
		seen[name] = true
	}

	for _, sk := range sks {
		if _, err := s.createSkillLocked(sk); err != nil {
			return 0, err
		}
	}
	return len(sks), nil
}

func (s *Store) createSkillLocked(sk model.Skill) (model.Skill, error) {
	if s.skillNameExistsLocked(sk.Name) {
		return model.Skill{}, store.ErrConflict
	}
	sk.ID = newID()
	sk.CreatedAt = s.now().UTC()
	s.skills[sk.ID] = sk
	return sk, nil
}

func (s *Store) skillNameExistsLocked(name string) bool {
	for _, existing := range s.skills {
		if strings.EqualFold(existing.Name, name) {
			return true
		}
	}
	return false
}

func (s *Store) ListSkills(_ context.Context) ([]model.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Skill, 0, len(s.skills))
	for _, sk := range s.skills {
		out = append(out, sk)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *Store) GetSkill(_ context.Context, id string) (*model.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sk, ok := s.skills[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &sk, nil
}

func (s *Store) UpdateSkill(_ context.Context, id string, u store.SkillUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sk, ok := s.skills[id]
	if !ok {
		return store.ErrNotFound
	}

	if u.Name != nil && !strings.EqualFold(*u.Name, sk.Name) {
		if s.skillNameExistsLocked(*u.Name) {
			return store.ErrConflict
		}
		sk.Name = *u.Name
	}
	if u.Category != nil {
		sk.Category = *u.Category
	}
	if u.Proficiency != nil {
		sk.Proficiency = *u.Proficiency
	}

	s.skills[id] = sk
	return nil
}

func (s *Store) DeleteSkill(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.skills[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.skills, id)
	return nil
}
