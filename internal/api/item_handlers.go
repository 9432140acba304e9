package api

import (
	"fmt"
	"net/http"

	"github.com/medialogapp/medialog-server/internal/http/response"
	"github.com/medialogapp/medialog-server/internal/service"
)

// CreateItemRequest represents the request body for cataloging an item.
type CreateItemRequest struct {
	Title      string `json:"title" validate:"required"`
	UserID     int64  `json:"user_id" validate:"required"`
	CategoryID int64  `json:"category_id" validate:"required"`
	ImageURL   string `json:"image_url"`
}

// UpdateItemRequest represents a partial item update. Absent fields are
// left untouched.
type UpdateItemRequest struct {
	Title      *string `json:"title"`
	CategoryID *int64  `json:"category_id"`
	ImageURL   *string `json:"image_url"`
}

// SyncTagsRequest represents the request body for replacing an item's
// tag set.
type SyncTagsRequest struct {
	TagIDs []int64 `json:"tag_ids"`
}

// SyncCreatorsRequest represents the request body for replacing an
// item's creator set.
type SyncCreatorsRequest struct {
	CreatorIDs []int64 `json:"creator_ids"`
}

// handleCreateItem catalogs a new item.
func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := s.decodeJSON(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	detail, err := s.catalogService.CreateItem(r.Context(), req.Title, req.UserID, req.CategoryID, req.ImageURL)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Created(w, detail, s.logger)
}

// handleListItems returns every item with its tag and creator names.
func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	details, err := s.catalogService.ListItems(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, details, s.logger)
}

// handleGetItem returns one item with its tag and creator names.
func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	detail, err := s.catalogService.GetItem(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, detail, s.logger)
}

// handleUpdateItem applies a partial update to an item.
func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	var req UpdateItemRequest
	if err := s.decodeJSON(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	detail, err := s.catalogService.UpdateItem(r.Context(), id, service.ItemUpdate{
		Title:      req.Title,
		CategoryID: req.CategoryID,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, detail, s.logger)
}

// handleDeleteItem removes an item along with its reviews and
// association rows.
func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	if err := s.catalogService.DeleteItem(r.Context(), id); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, map[string]string{
		"message": fmt.Sprintf("Item %d deleted successfully", id),
	}, s.logger)
}

// handleSyncItemTags replaces an item's entire tag set.
func (s *Server) handleSyncItemTags(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	var req SyncTagsRequest
	if err := s.decodeJSON(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	detail, err := s.catalogService.SyncItemTags(r.Context(), id, req.TagIDs)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, detail, s.logger)
}

// handleSyncItemCreators replaces an item's entire creator set.
func (s *Server) handleSyncItemCreators(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	var req SyncCreatorsRequest
	if err := s.decodeJSON(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	detail, err := s.catalogService.SyncItemCreators(r.Context(), id, req.CreatorIDs)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, detail, s.logger)
}
