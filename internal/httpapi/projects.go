package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"portfolio-site/backend/internal/cache"
	"portfolio-site/backend/internal/model"
	"portfolio-site/backend/internal/store"
)

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listProjects(w, r)
	case http.MethodPost:
		s.createProject(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := cache.Memoize(s.cache, "projects:list", s.cacheTTL, func() ([]model.Project, error) {
		return s.store.ListProjects(r.Context())
	})
	if err != nil {
		log.Printf("[projects] list: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if projects == nil {
		projects = []model.Project{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": projects})
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var req model.Project
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if req.Title == "" || req.Description == "" {
		writeError(w, http.StatusBadRequest, "Title and description are required")
		return
	}

	created, err := s.store.CreateProject(r.Context(), req)
	if err != nil {
		log.Printf("[projects] create: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.cache.Clear()
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Project created successfully",
		"id":      created.ID,
	})
}

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	switch r.Method {
	case http.MethodGet:
		project, err := s.store.GetProject(r.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Project not found")
				return
			}
			log.Printf("[projects] get %s: %v", id, err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, project)

	case http.MethodPut:
		var upd store.ProjectUpdate
		body := struct {
			Title       *string   `json:"title"`
			Description *string   `json:"description"`
			TechStack   *[]string `json:"tech_stack"`
			GithubLink  *string   `json:"github_link"`
			LiveLink    *string   `json:"live_link"`
			ImageURL    *string   `json:"image_url"`
			Order       *int      `json:"order"`
		}{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		upd = store.ProjectUpdate{
			Title:       body.Title,
			Description: body.Description,
			TechStack:   body.TechStack,
			GithubLink:  body.GithubLink,
			LiveLink:    body.LiveLink,
			ImageURL:    body.ImageURL,
			Order:       body.Order,
		}
		if upd.Empty() {
			writeError(w, http.StatusBadRequest, "No fields to update")
			return
		}

		if err := s.store.UpdateProject(r.Context(), id, upd); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Project not found")
				return
			}
			log.Printf("[projects] update %s: %v", id, err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		s.cache.Clear()
		writeJSON(w, http.StatusOK, map[string]any{"message": "Project updated successfully"})

	case http.MethodDelete:
		if err := s.store.DeleteProject(r.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Project not found")
				return
			}
			log.Printf("[projects] delete %s: %v", id, err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		s.cache.Clear()
		writeJSON(w, http.StatusOK, map[string]any{"message": "Project deleted successfully"})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
