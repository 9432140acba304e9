package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/medialogapp/medialog-server/internal/domain"
)

// reviewColumns is the ordered list of columns selected in review
// queries. Must match the scan order in scanReview.
const reviewColumns = `id, rating, text, user_id, item_id, created_at, updated_at`

// scanReview scans a sql.Row (or sql.Rows) into a domain.Review.
func scanReview(scanner interface{ Scan(dest ...any) error }) (*domain.Review, error) {
	var r domain.Review

	var (
		rating    sql.NullInt64
		text      sql.NullString
		createdAt string
		updatedAt string
	)

	err := scanner.Scan(
		&r.ID,
		&rating,
		&text,
		&r.UserID,
		&r.ItemID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if rating.Valid {
		v := int(rating.Int64)
		r.Rating = &v
	}
	if text.Valid {
		r.Text = text.String
	}

	r.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	r.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

// CreateReview inserts a new review and assigns its generated id.
// Referential checks against users and items belong to the service
// layer; the schema's foreign keys are the last line of defense.
func (s *Store) CreateReview(ctx context.Context, r *domain.Review) error {
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO reviews (rating, text, user_id, item_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		nullInt(r.Rating),
		nullString(r.Text),
		r.UserID,
		r.ItemID,
		formatTime(r.CreatedAt),
		formatTime(r.UpdatedAt),
	)
	if err != nil {
		return err
	}

	r.ID, err = res.LastInsertId()
	return err
}

// ListReviews returns all reviews ordered by id.
func (s *Store) ListReviews(ctx context.Context) ([]*domain.Review, error) {
	return s.queryReviews(ctx,
		`SELECT `+reviewColumns+` FROM reviews ORDER BY id ASC`)
}

// ListReviewsByItem returns one item's reviews ordered by id.
func (s *Store) ListReviewsByItem(ctx context.Context, itemID int64) ([]*domain.Review, error) {
	return s.queryReviews(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE item_id = ? ORDER BY id ASC`, itemID)
}

func (s *Store) queryReviews(ctx context.Context, query string, args ...any) ([]*domain.Review, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []*domain.Review{}
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
