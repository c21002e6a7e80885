package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"portfolio-site/backend/internal/cache"
	"portfolio-site/backend/internal/model"
	"portfolio-site/backend/internal/store"
)

func (s *Server) handleSkills(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listSkills(w, r)
	case http.MethodPost:
		s.createSkill(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) listSkills(w http.ResponseWriter, r *http.Request) {
	grouped := r.URL.Query().Get("grouped") == "true"

	skills, err := cache.Memoize(s.cache, "skills:list", s.cacheTTL, func() ([]model.Skill, error) {
		return s.store.ListSkills(r.Context())
	})
	if err != nil {
		log.Printf("[skills] list: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if skills == nil {
		skills = []model.Skill{}
	}

	if !grouped {
		writeJSON(w, http.StatusOK, map[string]any{"skills": skills})
		return
	}

	byCategory := make(map[string][]model.Skill)
	for _, sk := range skills {
		byCategory[sk.Category] = append(byCategory[sk.Category], sk)
	}
	writeJSON(w, http.StatusOK, map[string]any{"skills": byCategory})
}

func (s *Server) createSkill(w http.ResponseWriter, r *http.Request) {
	var req model.Skill
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if errMsg := checkSkill(&req); errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	created, err := s.store.CreateSkill(r.Context(), req)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusBadRequest, "Skill already exists")
			return
		}
		log.Printf("[skills] create: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.cache.Clear()
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Skill created successfully",
		"id":      created.ID,
	})
}

func (s *Server) handleSkillsBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Skills []model.Skill `json:"skills"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if len(req.Skills) == 0 {
		writeError(w, http.StatusBadRequest, "Skills list is required")
		return
	}
	for i := range req.Skills {
		if errMsg := checkSkill(&req.Skills[i]); errMsg != "" {
			writeError(w, http.StatusBadRequest, errMsg)
			return
		}
	}

	n, err := s.store.CreateSkills(r.Context(), req.Skills)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusBadRequest, "One or more skills already exist")
			return
		}
		log.Printf("[skills] batch create: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.cache.Clear()
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": fmt.Sprintf("%d skills created successfully", n),
	})
}

func (s *Server) handleSkill(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	switch r.Method {
	case http.MethodGet:
		skill, err := s.store.GetSkill(r.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Skill not found")
				return
			}
			log.Printf("[skills] get %s: %v", id, err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, skill)

	case http.MethodPut:
		body := struct {
			Name        *string            `json:"name"`
			Category    *string            `json:"category"`
			Proficiency *model.Proficiency `json:"proficiency"`
		}{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		upd := store.SkillUpdate{
			Name:        body.Name,
			Category:    body.Category,
			Proficiency: body.Proficiency,
		}
		if upd.Empty() {
			writeError(w, http.StatusBadRequest, "No fields to update")
			return
		}
		if upd.Proficiency != nil && !upd.Proficiency.Valid() {
			writeError(w, http.StatusBadRequest, "Proficiency must be one of: Beginner, Intermediate, Advanced, Expert")
			return
		}

		if err := s.store.UpdateSkill(r.Context(), id, upd); err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				writeError(w, http.StatusNotFound, "Skill not found")
			case errors.Is(err, store.ErrConflict):
				writeError(w, http.StatusBadRequest, "Skill already exists")
			default:
				log.Printf("[skills] update %s: %v", id, err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		s.cache.Clear()
		writeJSON(w, http.StatusOK, map[string]any{"message": "Skill updated successfully"})

	case http.MethodDelete:
		if err := s.store.DeleteSkill(r.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Skill not found")
				return
			}
			log.Printf("[skills] delete %s: %v", id, err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		s.cache.Clear()
		writeJSON(w, http.StatusOK, map[string]any{"message": "Skill deleted successfully"})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// checkSkill normalizes and validates a skill payload, returning an error
// message or "" when valid.
func checkSkill(sk *model.Skill) string {
	sk.Name = strings.TrimSpace(sk.Name)
	sk.Category = strings.TrimSpace(sk.Category)
	if sk.Name == "" || sk.Category == "" {
		return "Name and category are required"
	}
	if !sk.Proficiency.Valid() {
		return "Proficiency must be one of: Beginner, Intermediate, Advanced, Expert"
	}
	return ""
}
