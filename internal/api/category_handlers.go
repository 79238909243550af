package api

import (
	"net/http"

	"notes-api/internal/http/response"
)

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categories.List(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, categories, s.logger)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	category, err := s.categories.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, category, s.logger)
}

func (s *Server) handleListCategoryNotes(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	page, err := parsePage(r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	notes, err := s.categories.ListNotes(r.Context(), id, page)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, notes, s.logger)
}
