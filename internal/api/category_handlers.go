package api

import (
	"net/http"

	"github.com/medialogapp/medialog-server/internal/http/response"
	"github.com/medialogapp/medialog-server/internal/store"
)

// ResolveCategoryRequest represents the request body for resolving a
// category by name.
type ResolveCategoryRequest struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

// handleResolveCategory finds or creates the owner's category with the
// given name: 200 when it already existed, 201 when a row was inserted.
func (s *Server) handleResolveCategory(w http.ResponseWriter, r *http.Request) {
	var req ResolveCategoryRequest
	if err := s.decodeJSON(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	category, created, err := s.categoryService.Resolve(r.Context(), req.UserID, req.Name)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	if created {
		response.Created(w, category, s.logger)
		return
	}
	response.Success(w, category, s.logger)
}

// handleListCategories returns a user's categories.
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	userID, err := queryInt64(r, "user_id")
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if userID == 0 {
		response.HandleError(w, store.ErrInvalidInput.WithMessage("user_id query parameter is required"), s.logger)
		return
	}

	categories, err := s.categoryService.ListCategories(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, categories, s.logger)
}
