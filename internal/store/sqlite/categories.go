package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/store"
)

// categoryColumns is the ordered list of columns selected in category
// queries. Must match the scan order in scanCategory.
const categoryColumns = `id, user_id, name, created_at, updated_at`

// scanCategory scans a sql.Row (or sql.Rows) into a domain.Category.
func scanCategory(scanner interface{ Scan(dest ...any) error }) (*domain.Category, error) {
	var c domain.Category

	var (
		createdAt string
		updatedAt string
	)

	err := scanner.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	c.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// createCategory inserts a new category row for a user.
// Returns store.ErrAlreadyExists when the owner already has a category
// with the same name.
func (s *Store) createCategory(ctx context.Context, c *domain.Category) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (user_id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		c.UserID,
		c.Name,
		formatTime(c.CreatedAt),
		formatTime(c.UpdatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		return err
	}

	c.ID, err = res.LastInsertId()
	return err
}

// getCategoryByName retrieves a category by exact name, scoped to its
// owner. Comparison is case-sensitive.
func (s *Store) getCategoryByName(ctx context.Context, userID int64, name string) (*domain.Category, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE user_id = ? AND name = ?`,
		userID, name)

	c, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// FindOrCreateCategory finds an existing category by (owner, name) or
// creates a new one. Returns (category, created, error) where created
// is true if a new row was inserted.
func (s *Store) FindOrCreateCategory(ctx context.Context, userID int64, name string) (*domain.Category, bool, error) {
	// Try to find the existing category first.
	existing, err := s.getCategoryByName(ctx, userID, name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, err
	}

	c := &domain.Category{UserID: userID, Name: name}
	if err := s.createCategory(ctx, c); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Race: a concurrent request created it between the read
			// and the insert. Re-read and return the winner's row.
			existing, err := s.getCategoryByName(ctx, userID, name)
			if err != nil {
				return nil, false, err
			}
			return existing, false, nil
		}
		return nil, false, err
	}

	return c, true, nil
}

// GetCategoryByID retrieves a category by id.
// Returns store.ErrNotFound if the category does not exist.
func (s *Store) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = ?`, id)

	c, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListCategoriesByUser returns a user's categories ordered by name.
func (s *Store) ListCategoriesByUser(ctx context.Context, userID int64) ([]*domain.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE user_id = ? ORDER BY name ASC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
