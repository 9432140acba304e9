package api

import (
	"net/http"

	"github.com/medialogapp/medialog-server/internal/http/response"
)

// CreateTagRequest represents the request body for creating a tag.
type CreateTagRequest struct {
	Name string `json:"name"`
}

// handleCreateTag adds a tag to the global vocabulary.
func (s *Server) handleCreateTag(w http.ResponseWriter, r *http.Request) {
	var req CreateTagRequest
	if err := s.decodeJSON(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	tag, err := s.tagService.CreateTag(r.Context(), req.Name)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Created(w, tag, s.logger)
}

// handleListTags returns all tags.
func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.tagService.ListTags(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, tags, s.logger)
}
