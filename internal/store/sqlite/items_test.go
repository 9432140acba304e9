package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/medialogapp/medialog-server/internal/store"
)

func TestCreateAndGetItem(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "jack")
	item := seedItem(t, s, owner, "The Witcher 3")

	got, err := s.GetItemByID(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetItemByID: %v", err)
	}
	if got.Title != "The Witcher 3" {
		t.Errorf("Title: got %q, want %q", got.Title, "The Witcher 3")
	}
	if got.UserID != owner.ID {
		t.Errorf("UserID: got %d, want %d", got.UserID, owner.ID)
	}
}

func TestUpdateItem(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "jack")
	item := seedItem(t, s, owner, "The Witcher 3")

	item.Title = "The Witcher 3: Wild Hunt"
	item.ImageURL = "https://example.com/witcher3.jpg"
	if err := s.UpdateItem(ctx, item); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	got, err := s.GetItemByID(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetItemByID: %v", err)
	}
	if got.Title != "The Witcher 3: Wild Hunt" {
		t.Errorf("Title not updated: %q", got.Title)
	}
	if got.ImageURL != "https://example.com/witcher3.jpg" {
		t.Errorf("ImageURL not updated: %q", got.ImageURL)
	}
}

func TestUpdateItem_NotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "jack")
	item := seedItem(t, s, owner, "The Witcher 3")

	missing := *item
	missing.ID = 9999
	err := s.UpdateItem(ctx, &missing)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteItem_NotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.DeleteItem(context.Background(), 9999)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListItemsByUser_OrderedByID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	jack := seedUser(t, s, "jack")
	guest := seedUser(t, s, "guest")

	first := seedItem(t, s, jack, "The Witcher 3")
	second := seedItem(t, s, jack, "The Wheel of Time")
	seedItem(t, s, guest, "Dune")

	items, err := s.ListItemsByUser(ctx, jack.ID)
	if err != nil {
		t.Fatalf("ListItemsByUser: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != first.ID || items[1].ID != second.ID {
		t.Errorf("unexpected order: %d, %d", items[0].ID, items[1].ID)
	}

	// A user with no items gets an empty slice, not nil.
	empty, err := s.ListItemsByUser(ctx, 9999)
	if err != nil {
		t.Fatalf("ListItemsByUser empty: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty slice, got %v", empty)
	}
}
