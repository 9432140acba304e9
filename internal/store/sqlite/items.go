package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/store"
)

// itemColumns is the ordered list of columns selected in item queries.
// Must match the scan order in scanItem.
const itemColumns = `id, title, user_id, category_id, image_url, created_at, updated_at`

// scanItem scans a sql.Row (or sql.Rows) into a domain.Item.
func scanItem(scanner interface{ Scan(dest ...any) error }) (*domain.Item, error) {
	var it domain.Item

	var (
		imageURL  sql.NullString
		createdAt string
		updatedAt string
	)

	err := scanner.Scan(
		&it.ID,
		&it.Title,
		&it.UserID,
		&it.CategoryID,
		&imageURL,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if imageURL.Valid {
		it.ImageURL = imageURL.String
	}

	it.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	it.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return &it, nil
}

// CreateItem inserts a new item and assigns its generated id.
func (s *Store) CreateItem(ctx context.Context, it *domain.Item) error {
	now := time.Now().UTC()
	it.CreatedAt = now
	it.UpdatedAt = now

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO items (title, user_id, category_id, image_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		it.Title,
		it.UserID,
		it.CategoryID,
		nullString(it.ImageURL),
		formatTime(it.CreatedAt),
		formatTime(it.UpdatedAt),
	)
	if err != nil {
		return err
	}

	it.ID, err = res.LastInsertId()
	return err
}

// GetItemByID retrieves an item by id.
// Returns store.ErrNotFound if the item does not exist.
func (s *Store) GetItemByID(ctx context.Context, id int64) (*domain.Item, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id)

	it, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

// UpdateItem persists an item's mutable fields (title, category,
// image URL) and bumps updated_at.
// Returns store.ErrNotFound if the item does not exist.
func (s *Store) UpdateItem(ctx context.Context, it *domain.Item) error {
	it.UpdatedAt = time.Now().UTC()

	res, err := s.db.ExecContext(ctx, `
		UPDATE items SET title = ?, category_id = ?, image_url = ?, updated_at = ?
		WHERE id = ?`,
		it.Title,
		it.CategoryID,
		nullString(it.ImageURL),
		formatTime(it.UpdatedAt),
		it.ID,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteItem removes an item. Association rows and reviews cascade
// through the schema's foreign key rules.
// Returns store.ErrNotFound if the item does not exist.
func (s *Store) DeleteItem(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ListItems returns all items ordered by id.
func (s *Store) ListItems(ctx context.Context) ([]*domain.Item, error) {
	return s.queryItems(ctx,
		`SELECT `+itemColumns+` FROM items ORDER BY id ASC`)
}

// ListItemsByUser returns one user's items ordered by id. The ordering
// is what makes CSV exports deterministic for a fixed database state.
func (s *Store) ListItemsByUser(ctx context.Context, userID int64) ([]*domain.Item, error) {
	return s.queryItems(ctx,
		`SELECT `+itemColumns+` FROM items WHERE user_id = ? ORDER BY id ASC`, userID)
}

func (s *Store) queryItems(ctx context.Context, query string, args ...any) ([]*domain.Item, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*domain.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
