package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/store"
)

// CategoryService resolves per-user categories by name.
type CategoryService struct {
	store  store.Catalog
	logger *slog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(store store.Catalog, logger *slog.Logger) *CategoryService {
	return &CategoryService{
		store:  store,
		logger: logger,
	}
}

// Resolve finds or creates the owner's category with the given name and
// reports whether a new row was inserted. Lookup is a case-sensitive
// exact match after trimming surrounding whitespace; repeated calls with
// the same inputs converge on one row per owner.
func (s *CategoryService) Resolve(ctx context.Context, ownerID int64, name string) (*domain.Category, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, store.ErrInvalidInput.WithMessage("Category name is required")
	}
	if ownerID == 0 {
		return nil, false, store.ErrInvalidInput.WithMessage("user_id is required")
	}

	if _, err := s.store.GetUserByID(ctx, ownerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, false, store.ErrInvalidInput.WithMessage("User does not exist")
		}
		return nil, false, err
	}

	category, created, err := s.store.FindOrCreateCategory(ctx, ownerID, name)
	if err != nil {
		return nil, false, err
	}

	if created {
		s.logger.Info("category created",
			"category_id", category.ID,
			"user_id", ownerID,
			"name", category.Name,
		)
	}

	return category, created, nil
}

// ListCategories returns the owner's categories ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context, ownerID int64) ([]*domain.Category, error) {
	return s.store.ListCategoriesByUser(ctx, ownerID)
}
