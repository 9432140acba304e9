// Package main provides a tool to seed a fresh database with demo
// catalog data.
//
// Usage:
//
//	DATABASE_PATH=medialog.db go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/store/sqlite"
)

func main() {
	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "medialog.db"
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := sqlite.Open(dbPath, logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	// Seeding only targets a fresh database.
	users, err := s.ListUsers(ctx)
	if err != nil {
		log.Fatalf("Failed to list users: %v", err)
	}
	if len(users) > 0 {
		log.Fatal("Database already contains data; seed requires a fresh database.")
	}

	fmt.Println("Creating seed data...")

	jack := createUser(ctx, s, "jack")
	createUser(ctx, s, "guest")

	gameCat := createCategory(ctx, s, jack.ID, "Game")
	bookCat := createCategory(ctx, s, jack.ID, "Book")

	witcher := createItem(ctx, s, "The Witcher 3", jack.ID, gameCat.ID, "https://example.com/witcher3.jpg")
	wheel := createItem(ctx, s, "The Wheel of Time", jack.ID, bookCat.ID, "https://example.com/wheel-of-time.jpg")

	rpg := createTag(ctx, s, "RPG")
	fantasy := createTag(ctx, s, "Fantasy")
	classic := createTag(ctx, s, "Classic")
	adventure := createTag(ctx, s, "Adventure")

	cdpr := createCreator(ctx, s, "CD Projekt Red")
	jordan := createCreator(ctx, s, "Robert Jordan")

	mustReplace(s.ReplaceItemTags(ctx, witcher.ID, []int64{rpg.ID, fantasy.ID}))
	mustReplace(s.ReplaceItemTags(ctx, wheel.ID, []int64{fantasy.ID, classic.ID, adventure.ID}))
	mustReplace(s.ReplaceItemCreators(ctx, witcher.ID, []int64{cdpr.ID}))
	mustReplace(s.ReplaceItemCreators(ctx, wheel.ID, []int64{jordan.ID}))

	createReview(ctx, s, 5, "Amazing story and visuals.", jack.ID, witcher.ID)
	createReview(ctx, s, 5, "Epic world-building and unforgettable characters.", jack.ID, wheel.ID)

	fmt.Println("Seed complete.")
}

func createUser(ctx context.Context, s *sqlite.Store, username string) *domain.User {
	u := &domain.User{Username: username, Email: username + "@example.com", Password: "secret"}
	if err := s.CreateUser(ctx, u); err != nil {
		log.Fatalf("Failed to create user %s: %v", username, err)
	}
	return u
}

func createCategory(ctx context.Context, s *sqlite.Store, userID int64, name string) *domain.Category {
	cat, _, err := s.FindOrCreateCategory(ctx, userID, name)
	if err != nil {
		log.Fatalf("Failed to create category %s: %v", name, err)
	}
	return cat
}

func createItem(ctx context.Context, s *sqlite.Store, title string, userID, categoryID int64, imageURL string) *domain.Item {
	it := &domain.Item{Title: title, UserID: userID, CategoryID: categoryID, ImageURL: imageURL}
	if err := s.CreateItem(ctx, it); err != nil {
		log.Fatalf("Failed to create item %s: %v", title, err)
	}
	return it
}

func createTag(ctx context.Context, s *sqlite.Store, name string) *domain.Tag {
	t := &domain.Tag{Name: name}
	if err := s.CreateTag(ctx, t); err != nil {
		log.Fatalf("Failed to create tag %s: %v", name, err)
	}
	return t
}

func createCreator(ctx context.Context, s *sqlite.Store, name string) *domain.Creator {
	c := &domain.Creator{Name: name}
	if err := s.CreateCreator(ctx, c); err != nil {
		log.Fatalf("Failed to create creator %s: %v", name, err)
	}
	return c
}

func createReview(ctx context.Context, s *sqlite.Store, rating int, text string, userID, itemID int64) {
	r := &domain.Review{Rating: &rating, Text: text, UserID: userID, ItemID: itemID}
	if err := s.CreateReview(ctx, r); err != nil {
		log.Fatalf("Failed to create review: %v", err)
	}
}

func mustReplace(err error) {
	if err != nil {
		log.Fatalf("Failed to replace association set: %v", err)
	}
}
