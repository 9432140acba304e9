package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/store"
)

// TagService manages the global tag vocabulary. Tags carry no
// ownership; any user may attach any tag to their items.
type TagService struct {
	store  store.Catalog
	logger *slog.Logger
}

// NewTagService creates a new tag service.
func NewTagService(store store.Catalog, logger *slog.Logger) *TagService {
	return &TagService{
		store:  store,
		logger: logger,
	}
}

// CreateTag adds a tag with a globally unique name.
func (s *TagService) CreateTag(ctx context.Context, name string) (*domain.Tag, error) {
	if name == "" {
		return nil, store.ErrInvalidInput.WithMessage("Tag name is required")
	}

	tag := &domain.Tag{Name: name}
	if err := s.store.CreateTag(ctx, tag); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, store.ErrInvalidInput.WithMessage("Tag with this name already exists")
		}
		return nil, err
	}

	s.logger.Info("tag created", "tag_id", tag.ID, "name", tag.Name)
	return tag, nil
}

// ListTags returns all tags ordered by id.
func (s *TagService) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	return s.store.ListTags(ctx)
}
