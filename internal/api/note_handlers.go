package api

import (
	"net/http"

	"notes-api/internal/http/response"
	"notes-api/internal/service"
)

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var input service.NoteCreate
	if err := decodeJSON(w, r, &input); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	note, err := s.notes.Create(r.Context(), input)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, note, s.logger)
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	notes, err := s.notes.List(r.Context(), page)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, notes, s.logger)
}

func (s *Server) handleGetNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	note, err := s.notes.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, note, s.logger)
}

// handleUpdateNote applies a partial update. Members missing from the body
// are left as they are; an explicit null clears the description.
func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	var input service.NoteUpdate
	if err := decodeJSON(w, r, &input); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	note, err := s.notes.Update(r.Context(), id, input)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, note, s.logger)
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	result, err := s.notes.Delete(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, result, s.logger)
}
