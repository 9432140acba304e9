package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/store"
)

// creatorColumns is the ordered list of columns selected in creator
// queries. Must match the scan order in scanCreator.
const creatorColumns = `id, name, created_at, updated_at`

// scanCreator scans a sql.Row (or sql.Rows) into a domain.Creator.
func scanCreator(scanner interface{ Scan(dest ...any) error }) (*domain.Creator, error) {
	var c domain.Creator

	var (
		createdAt string
		updatedAt string
	)

	err := scanner.Scan(
		&c.ID,
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

// CreateCreator inserts a new creator and assigns its generated id.
// Returns store.ErrAlreadyExists on duplicate name.
func (s *Store) CreateCreator(ctx context.Context, c *domain.Creator) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO creators (name, created_at, updated_at)
		VALUES (?, ?, ?)`,
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

// ListCreators returns all creators ordered by id.
func (s *Store) ListCreators(ctx context.Context) ([]*domain.Creator, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+creatorColumns+` FROM creators ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	creators := []*domain.Creator{}
	for rows.Next() {
		c, err := scanCreator(rows)
		if err != nil {
			return nil, err
		}
		creators = append(creators, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return creators, nil
}
