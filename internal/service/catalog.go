package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/store"
)

// CatalogService orchestrates items and their tag and creator sets.
type CatalogService struct {
	store  store.Catalog
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store store.Catalog, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: logger,
	}
}

// ItemUpdate carries a partial item update. Nil fields are left as-is.
type ItemUpdate struct {
	Title      *string
	CategoryID *int64
	ImageURL   *string
}

// CreateItem catalogs a new item. The referenced user and category must
// exist, and the category must belong to the same user.
func (s *CatalogService) CreateItem(ctx context.Context, title string, userID, categoryID int64, imageURL string) (*domain.ItemDetail, error) {
	if _, err := s.store.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrInvalidInput.WithMessage("User does not exist")
		}
		return nil, err
	}
	if err := s.checkCategoryOwner(ctx, categoryID, userID); err != nil {
		return nil, err
	}

	item := &domain.Item{
		Title:      title,
		UserID:     userID,
		CategoryID: categoryID,
		ImageURL:   imageURL,
	}

	if err := s.store.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("item created",
		"item_id", item.ID,
		"user_id", userID,
		"category_id", categoryID,
		"title", title,
	)

	return s.detail(ctx, item)
}

// GetItem returns an item with its tag and creator name lists.
func (s *CatalogService) GetItem(ctx context.Context, id int64) (*domain.ItemDetail, error) {
	item, err := s.store.GetItemByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, itemNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, item)
}

// ListItems returns every cataloged item with its name lists.
func (s *CatalogService) ListItems(ctx context.Context) ([]*domain.ItemDetail, error) {
	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]*domain.ItemDetail, 0, len(items))
	for _, item := range items {
		d, err := s.detail(ctx, item)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

// UpdateItem applies a partial update. An empty title is rejected; a
// changed category must exist and belong to the item's owner.
func (s *CatalogService) UpdateItem(ctx context.Context, id int64, update ItemUpdate) (*domain.ItemDetail, error) {
	item, err := s.store.GetItemByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, itemNotFound(id)
	}
	if err != nil {
		return nil, err
	}

	if update.Title == nil && update.CategoryID == nil && update.ImageURL == nil {
		return nil, store.ErrInvalidInput.WithMessage("No data provided to update")
	}

	if update.Title != nil {
		if *update.Title == "" {
			return nil, store.ErrInvalidInput.WithMessage("Title cannot be empty")
		}
		item.Title = *update.Title
	}
	if update.CategoryID != nil {
		if err := s.checkCategoryOwner(ctx, *update.CategoryID, item.UserID); err != nil {
			return nil, err
		}
		item.CategoryID = *update.CategoryID
	}
	if update.ImageURL != nil {
		item.ImageURL = *update.ImageURL
	}

	if err := s.store.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("item updated", "item_id", item.ID)

	return s.detail(ctx, item)
}

// DeleteItem removes an item. Reviews and association rows go with it.
func (s *CatalogService) DeleteItem(ctx context.Context, id int64) error {
	err := s.store.DeleteItem(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return itemNotFound(id)
	}
	if err != nil {
		return err
	}

	s.logger.Info("item deleted", "item_id", id)
	return nil
}

// SyncItemTags replaces the item's entire tag set with the given ids.
// Duplicates collapse to a set; every id must resolve or nothing
// changes. Returns the item projection with the new name lists.
func (s *CatalogService) SyncItemTags(ctx context.Context, itemID int64, tagIDs []int64) (*domain.ItemDetail, error) {
	if len(tagIDs) == 0 {
		return nil, store.ErrInvalidInput.WithMessage("tag_ids must be a non-empty list")
	}

	ids := dedupe(tagIDs)
	err := s.store.ReplaceItemTags(ctx, itemID, ids)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil, itemNotFound(itemID)
	case errors.Is(err, store.ErrUnknownReference):
		return nil, store.ErrUnknownReference.WithMessage("One or more tag_ids do not exist")
	case err != nil:
		return nil, err
	}

	s.logger.Info("item tags replaced",
		"item_id", itemID,
		"tag_count", len(ids),
	)

	return s.GetItem(ctx, itemID)
}

// SyncItemCreators replaces the item's entire creator set. Same
// contract as SyncItemTags.
func (s *CatalogService) SyncItemCreators(ctx context.Context, itemID int64, creatorIDs []int64) (*domain.ItemDetail, error) {
	if len(creatorIDs) == 0 {
		return nil, store.ErrInvalidInput.WithMessage("creator_ids must be a non-empty list")
	}

	ids := dedupe(creatorIDs)
	err := s.store.ReplaceItemCreators(ctx, itemID, ids)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil, itemNotFound(itemID)
	case errors.Is(err, store.ErrUnknownReference):
		return nil, store.ErrUnknownReference.WithMessage("One or more creator_ids do not exist")
	case err != nil:
		return nil, err
	}

	s.logger.Info("item creators replaced",
		"item_id", itemID,
		"creator_count", len(ids),
	)

	return s.GetItem(ctx, itemID)
}

// detail attaches the tag and creator name lists to an item.
func (s *CatalogService) detail(ctx context.Context, item *domain.Item) (*domain.ItemDetail, error) {
	tags, err := s.store.GetItemTagNames(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	creators, err := s.store.GetItemCreatorNames(ctx, item.ID)
	if err != nil {
		return nil, err
	}

	return &domain.ItemDetail{
		Item:     *item,
		Tags:     tags,
		Creators: creators,
	}, nil
}

// checkCategoryOwner verifies the category exists and belongs to userID.
func (s *CatalogService) checkCategoryOwner(ctx context.Context, categoryID, userID int64) error {
	category, err := s.store.GetCategoryByID(ctx, categoryID)
	if errors.Is(err, store.ErrNotFound) {
		return store.ErrInvalidInput.WithMessage("Category does not exist")
	}
	if err != nil {
		return err
	}
	if category.UserID != userID {
		return store.ErrInvalidInput.WithMessage("Category belongs to a different user")
	}
	return nil
}

func itemNotFound(id int64) *store.Error {
	return store.ErrNotFound.WithMessagef("Item with id %d not found", id)
}

// dedupe collapses an id list to a set, preserving first-seen order.
func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
