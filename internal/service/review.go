package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/store"
)

// ReviewService manages item reviews.
type ReviewService struct {
	store  store.Catalog
	logger *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(store store.Catalog, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		store:  store,
		logger: logger,
	}
}

// CreateReview records a review. Rating is required and must fall in
// the 1-5 range; the referenced user and item must exist.
func (s *ReviewService) CreateReview(ctx context.Context, rating int, text string, userID, itemID int64) (*domain.Review, error) {
	if !domain.ValidRating(rating) {
		return nil, store.ErrInvalidInput.WithMessage("Rating must be between 1 and 5")
	}

	if _, err := s.store.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrInvalidInput.WithMessage("User does not exist")
		}
		return nil, err
	}
	if _, err := s.store.GetItemByID(ctx, itemID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrInvalidInput.WithMessage("Item does not exist")
		}
		return nil, err
	}

	review := &domain.Review{
		Rating: &rating,
		Text:   text,
		UserID: userID,
		ItemID: itemID,
	}

	if err := s.store.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	s.logger.Info("review created",
		"review_id", review.ID,
		"item_id", itemID,
		"user_id", userID,
		"rating", rating,
	)

	return review, nil
}

// ListReviews returns every review ordered by id.
func (s *ReviewService) ListReviews(ctx context.Context) ([]*domain.Review, error) {
	return s.store.ListReviews(ctx)
}

// ListItemReviews returns an item's reviews. The item must exist.
func (s *ReviewService) ListItemReviews(ctx context.Context, itemID int64) ([]*domain.Review, error) {
	if _, err := s.store.GetItemByID(ctx, itemID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, itemNotFound(itemID)
		}
		return nil, err
	}
	return s.store.ListReviewsByItem(ctx, itemID)
}
