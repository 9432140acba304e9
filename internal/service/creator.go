package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/store"
)

// CreatorService manages the global creator registry.
type CreatorService struct {
	store  store.Catalog
	logger *slog.Logger
}

// NewCreatorService creates a new creator service.
func NewCreatorService(store store.Catalog, logger *slog.Logger) *CreatorService {
	return &CreatorService{
		store:  store,
		logger: logger,
	}
}

// CreateCreator adds a creator with a globally unique name.
func (s *CreatorService) CreateCreator(ctx context.Context, name string) (*domain.Creator, error) {
	if name == "" {
		return nil, store.ErrInvalidInput.WithMessage("Creator name is required")
	}

	creator := &domain.Creator{Name: name}
	if err := s.store.CreateCreator(ctx, creator); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, store.ErrInvalidInput.WithMessage("Creator with this name already exists")
		}
		return nil, err
	}

	s.logger.Info("creator created", "creator_id", creator.ID, "name", creator.Name)
	return creator, nil
}

// ListCreators returns all creators ordered by id.
func (s *CreatorService) ListCreators(ctx context.Context) ([]*domain.Creator, error) {
	return s.store.ListCreators(ctx)
}
