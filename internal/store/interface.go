package store

import (
	"context"

	"github.com/medialogapp/medialog-server/internal/domain"
)

// Catalog is the persistence boundary for the media catalog. It is
// implemented by the SQLite store; services depend on this interface
// so tests can swap implementations.
type Catalog interface {
	// Users.
	CreateUser(ctx context.Context, u *domain.User) error
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// Categories. FindOrCreateCategory returns (category, created, error)
	// where created reports whether a new row was inserted. Name lookup is
	// a case-sensitive exact match scoped to the owning user.
	FindOrCreateCategory(ctx context.Context, userID int64, name string) (*domain.Category, bool, error)
	GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error)
	ListCategoriesByUser(ctx context.Context, userID int64) ([]*domain.Category, error)

	// Items.
	CreateItem(ctx context.Context, it *domain.Item) error
	GetItemByID(ctx context.Context, id int64) (*domain.Item, error)
	UpdateItem(ctx context.Context, it *domain.Item) error
	DeleteItem(ctx context.Context, id int64) error
	ListItems(ctx context.Context) ([]*domain.Item, error)
	ListItemsByUser(ctx context.Context, userID int64) ([]*domain.Item, error)

	// Tags and creators.
	CreateTag(ctx context.Context, t *domain.Tag) error
	ListTags(ctx context.Context) ([]*domain.Tag, error)
	CreateCreator(ctx context.Context, c *domain.Creator) error
	ListCreators(ctx context.Context) ([]*domain.Creator, error)

	// Association sets. Replace operations swap an item's entire tag or
	// creator set in one transaction: every id must resolve or the call
	// fails with ErrUnknownReference and no rows change.
	ReplaceItemTags(ctx context.Context, itemID int64, tagIDs []int64) error
	ReplaceItemCreators(ctx context.Context, itemID int64, creatorIDs []int64) error
	GetItemTagNames(ctx context.Context, itemID int64) ([]string, error)
	GetItemCreatorNames(ctx context.Context, itemID int64) ([]string, error)

	// Reviews.
	CreateReview(ctx context.Context, r *domain.Review) error
	ListReviews(ctx context.Context) ([]*domain.Review, error)
	ListReviewsByItem(ctx context.Context, itemID int64) ([]*domain.Review, error)
}
