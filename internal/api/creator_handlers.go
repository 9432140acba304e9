package api

import (
	"net/http"

	"github.com/medialogapp/medialog-server/internal/http/response"
)

// CreateCreatorRequest represents the request body for creating a creator.
type CreateCreatorRequest struct {
	Name string `json:"name"`
}

// handleCreateCreator adds a creator to the global registry.
func (s *Server) handleCreateCreator(w http.ResponseWriter, r *http.Request) {
	var req CreateCreatorRequest
	if err := s.decodeJSON(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	creator, err := s.creatorService.CreateCreator(r.Context(), req.Name)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Created(w, creator, s.logger)
}

// handleListCreators returns all creators.
func (s *Server) handleListCreators(w http.ResponseWriter, r *http.Request) {
	creators, err := s.creatorService.ListCreators(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, creators, s.logger)
}
