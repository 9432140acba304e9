package api

import (
	"net/http"

	"github.com/medialogapp/medialog-server/internal/http/response"
)

// CreateReviewRequest represents the request body for recording a review.
type CreateReviewRequest struct {
	Rating *int   `json:"rating" validate:"required"`
	Text   string `json:"text"`
	UserID int64  `json:"user_id" validate:"required"`
	ItemID int64  `json:"item_id" validate:"required"`
}

// handleCreateReview records a review for an item.
func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	var req CreateReviewRequest
	if err := s.decodeJSON(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	review, err := s.reviewService.CreateReview(r.Context(), *req.Rating, req.Text, req.UserID, req.ItemID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Created(w, review, s.logger)
}

// handleListReviews returns every review.
func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := s.reviewService.ListReviews(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, reviews, s.logger)
}

// handleListItemReviews returns an item's reviews.
func (s *Server) handleListItemReviews(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	reviews, err := s.reviewService.ListItemReviews(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, reviews, s.logger)
}
