package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/medialogapp/medialog-server/internal/store"
)

// assocKind describes one of the two item association tables. The
// replace logic is identical for tags and creators; only the table and
// column names differ.
type assocKind struct {
	refTable  string // tags / creators
	joinTable string // item_tags / item_creators
	fkColumn  string // tag_id / creator_id
}

var (
	tagAssoc     = assocKind{refTable: "tags", joinTable: "item_tags", fkColumn: "tag_id"}
	creatorAssoc = assocKind{refTable: "creators", joinTable: "item_creators", fkColumn: "creator_id"}
)

// ReplaceItemTags replaces an item's entire tag set in one transaction.
// Every id must resolve to an existing tag or the call fails with
// store.ErrUnknownReference and no rows change.
func (s *Store) ReplaceItemTags(ctx context.Context, itemID int64, tagIDs []int64) error {
	return s.replaceAssociations(ctx, itemID, tagIDs, tagAssoc)
}

// ReplaceItemCreators replaces an item's entire creator set in one
// transaction, with the same all-or-nothing contract as ReplaceItemTags.
func (s *Store) ReplaceItemCreators(ctx context.Context, itemID int64, creatorIDs []int64) error {
	return s.replaceAssociations(ctx, itemID, creatorIDs, creatorAssoc)
}

// replaceAssociations runs the read-validate-write sequence as a single
// write transaction. Concurrent replace calls against the same item
// serialize on the SQLite write lock (busy_timeout pragma set at open),
// so two callers can never interleave into a mixed set.
func (s *Store) replaceAssociations(ctx context.Context, itemID int64, ids []int64, kind assocKind) error {
	if len(ids) == 0 {
		return store.ErrInvalidInput.WithMessage("association id list must not be empty")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// The item itself must exist.
	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM items WHERE id = ?`, itemID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("check item: %w", err)
	}

	// All-or-nothing referential check: every requested id must resolve.
	// A count mismatch means at least one unknown id; nothing is written.
	placeholders, args := inArgs(ids)
	var matched int
	err = tx.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE id IN (%s)`, kind.refTable, placeholders),
		args...,
	).Scan(&matched)
	if err != nil {
		return fmt.Errorf("count %s: %w", kind.refTable, err)
	}
	if matched != len(ids) {
		return store.ErrUnknownReference
	}

	// Wholesale replacement: clear the item's set, insert the new one.
	if _, err := tx.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE item_id = ?`, kind.joinTable), itemID); err != nil {
		return fmt.Errorf("delete %s: %w", kind.joinTable, err)
	}

	now := formatTime(time.Now().UTC())
	for _, id := range ids {
		_, err := tx.ExecContext(ctx,
			fmt.Sprintf(`INSERT INTO %s (item_id, %s, created_at) VALUES (?, ?, ?)`,
				kind.joinTable, kind.fkColumn),
			itemID, id, now,
		)
		if err != nil {
			return fmt.Errorf("insert %s: %w", kind.joinTable, err)
		}
	}

	return tx.Commit()
}

// GetItemTagNames returns the names of an item's tags ordered by
// association row id, so repeated reads produce the same sequence.
func (s *Store) GetItemTagNames(ctx context.Context, itemID int64) ([]string, error) {
	return s.queryAssocNames(ctx, itemID, tagAssoc)
}

// GetItemCreatorNames returns the names of an item's creators ordered
// by association row id.
func (s *Store) GetItemCreatorNames(ctx context.Context, itemID int64) ([]string, error) {
	return s.queryAssocNames(ctx, itemID, creatorAssoc)
}

func (s *Store) queryAssocNames(ctx context.Context, itemID int64, kind assocKind) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT r.name FROM %s j JOIN %s r ON r.id = j.%s
			WHERE j.item_id = ? ORDER BY j.id ASC`,
			kind.joinTable, kind.refTable, kind.fkColumn),
		itemID)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", kind.joinTable, err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan %s: %w", kind.joinTable, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}

// inArgs builds a "?, ?, ?" placeholder list and the matching args
// slice for an IN clause.
func inArgs(ids []int64) (string, []any) {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", "), args
}
