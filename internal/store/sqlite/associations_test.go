package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/store"
)

func TestReplaceItemTags_ReplacesWholeSet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "jack")
	item := seedItem(t, s, owner, "The Witcher 3")
	rpg := seedTag(t, s, "RPG")
	fantasy := seedTag(t, s, "Fantasy")
	classic := seedTag(t, s, "Classic")

	if err := s.ReplaceItemTags(ctx, item.ID, []int64{rpg.ID, fantasy.ID}); err != nil {
		t.Fatalf("ReplaceItemTags: %v", err)
	}

	names, err := s.GetItemTagNames(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetItemTagNames: %v", err)
	}
	if len(names) != 2 || names[0] != "RPG" || names[1] != "Fantasy" {
		t.Errorf("unexpected tag names: %v", names)
	}

	// A second replace is wholesale: omitting RPG detaches it.
	if err := s.ReplaceItemTags(ctx, item.ID, []int64{classic.ID}); err != nil {
		t.Fatalf("ReplaceItemTags second call: %v", err)
	}

	names, err = s.GetItemTagNames(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetItemTagNames after replace: %v", err)
	}
	if len(names) != 1 || names[0] != "Classic" {
		t.Errorf("expected [Classic], got %v", names)
	}
}

func TestReplaceItemTags_UnknownIDRollsBack(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "jack")
	item := seedItem(t, s, owner, "The Witcher 3")
	rpg := seedTag(t, s, "RPG")
	fantasy := seedTag(t, s, "Fantasy")

	if err := s.ReplaceItemTags(ctx, item.ID, []int64{rpg.ID, fantasy.ID}); err != nil {
		t.Fatalf("seed tag set: %v", err)
	}

	// One unknown id fails the whole request.
	err := s.ReplaceItemTags(ctx, item.ID, []int64{rpg.ID, 9999})
	if err == nil {
		t.Fatal("expected error for unknown tag id")
	}
	var storeErr *store.Error
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected *store.Error, got %T: %v", err, err)
	}
	if storeErr.Code != store.ErrUnknownReference.Code {
		t.Errorf("expected status %d, got %d", store.ErrUnknownReference.Code, storeErr.Code)
	}

	// The existing set is completely unchanged.
	names, err := s.GetItemTagNames(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetItemTagNames: %v", err)
	}
	if len(names) != 2 || names[0] != "RPG" || names[1] != "Fantasy" {
		t.Errorf("tag set changed after failed replace: %v", names)
	}
}

func TestReplaceItemTags_ItemNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	tag := seedTag(t, s, "RPG")

	err := s.ReplaceItemTags(ctx, 42, []int64{tag.ID})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReplaceItemTags_EmptyList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "jack")
	item := seedItem(t, s, owner, "The Witcher 3")

	err := s.ReplaceItemTags(ctx, item.ID, nil)
	if err == nil {
		t.Fatal("expected error for empty id list")
	}
	var storeErr *store.Error
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected *store.Error, got %T: %v", err, err)
	}
	if storeErr.Code != store.ErrInvalidInput.Code {
		t.Errorf("expected status %d, got %d", store.ErrInvalidInput.Code, storeErr.Code)
	}
}

func TestReplaceItemTags_DoesNotTouchOtherItems(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "jack")
	witcher := seedItem(t, s, owner, "The Witcher 3")
	wheel := seedItem(t, s, owner, "The Wheel of Time")
	rpg := seedTag(t, s, "RPG")
	fantasy := seedTag(t, s, "Fantasy")

	if err := s.ReplaceItemTags(ctx, witcher.ID, []int64{rpg.ID}); err != nil {
		t.Fatalf("tag witcher: %v", err)
	}
	if err := s.ReplaceItemTags(ctx, wheel.ID, []int64{fantasy.ID}); err != nil {
		t.Fatalf("tag wheel: %v", err)
	}

	names, err := s.GetItemTagNames(ctx, witcher.ID)
	if err != nil {
		t.Fatalf("GetItemTagNames: %v", err)
	}
	if len(names) != 1 || names[0] != "RPG" {
		t.Errorf("witcher tags affected by wheel replace: %v", names)
	}
}

func TestReplaceItemCreators(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "jack")
	item := seedItem(t, s, owner, "The Witcher 3")

	cdpr := &domain.Creator{Name: "CD Projekt Red"}
	if err := s.CreateCreator(ctx, cdpr); err != nil {
		t.Fatalf("CreateCreator: %v", err)
	}

	if err := s.ReplaceItemCreators(ctx, item.ID, []int64{cdpr.ID}); err != nil {
		t.Fatalf("ReplaceItemCreators: %v", err)
	}

	names, err := s.GetItemCreatorNames(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetItemCreatorNames: %v", err)
	}
	if len(names) != 1 || names[0] != "CD Projekt Red" {
		t.Errorf("unexpected creator names: %v", names)
	}

	// Unknown creator id leaves the set intact.
	err = s.ReplaceItemCreators(ctx, item.ID, []int64{9999})
	if !errors.Is(err, store.ErrUnknownReference) {
		t.Errorf("expected ErrUnknownReference, got %v", err)
	}
	names, _ = s.GetItemCreatorNames(ctx, item.ID)
	if len(names) != 1 {
		t.Errorf("creator set changed after failed replace: %v", names)
	}
}

func TestDeleteItem_CascadesAssociations(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "jack")
	item := seedItem(t, s, owner, "The Witcher 3")
	rpg := seedTag(t, s, "RPG")

	if err := s.ReplaceItemTags(ctx, item.ID, []int64{rpg.ID}); err != nil {
		t.Fatalf("ReplaceItemTags: %v", err)
	}

	rating := 5
	review := &domain.Review{Rating: &rating, Text: "Amazing story and visuals.", UserID: owner.ID, ItemID: item.ID}
	if err := s.CreateReview(ctx, review); err != nil {
		t.Fatalf("CreateReview: %v", err)
	}

	if err := s.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM item_tags WHERE item_id = ?`, item.ID).Scan(&count); err != nil {
		t.Fatalf("count item_tags: %v", err)
	}
	if count != 0 {
		t.Errorf("expected item_tags cascade, got %d rows", count)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM reviews WHERE item_id = ?`, item.ID).Scan(&count); err != nil {
		t.Fatalf("count reviews: %v", err)
	}
	if count != 0 {
		t.Errorf("expected reviews cascade, got %d rows", count)
	}
}

func TestDeleteItem_CascadesOnEveryPooledConn(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Foreign key enforcement is per-connection in SQLite, so every
	// connection the pool can open must report it enabled, not just
	// the one that ran the schema.
	conns := make([]*sql.Conn, 0, 4)
	defer func() {
		for _, c := range conns {
			c.Close()
		}
	}()
	for i := 0; i < 4; i++ {
		conn, err := s.db.Conn(ctx)
		if err != nil {
			t.Fatalf("open pooled conn %d: %v", i, err)
		}
		conns = append(conns, conn)

		var fk int
		if err := conn.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&fk); err != nil {
			t.Fatalf("read foreign_keys on conn %d: %v", i, err)
		}
		if fk != 1 {
			t.Errorf("conn %d: foreign_keys = %d, want 1", i, fk)
		}
	}
	for _, c := range conns {
		c.Close()
	}
	conns = nil

	owner := seedUser(t, s, "jack")
	item := seedItem(t, s, owner, "The Witcher 3")
	rpg := seedTag(t, s, "RPG")
	if err := s.ReplaceItemTags(ctx, item.ID, []int64{rpg.ID}); err != nil {
		t.Fatalf("ReplaceItemTags: %v", err)
	}

	// Pin one connection so the delete lands on a different one.
	held, err := s.db.Conn(ctx)
	if err != nil {
		t.Fatalf("pin conn: %v", err)
	}
	defer held.Close()

	if err := s.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM item_tags WHERE item_id = ?`, item.ID).Scan(&count); err != nil {
		t.Fatalf("count item_tags: %v", err)
	}
	if count != 0 {
		t.Errorf("expected item_tags cascade, got %d rows", count)
	}

	names, err := s.GetItemTagNames(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetItemTagNames: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("deleted item still has tags: %v", names)
	}
}
