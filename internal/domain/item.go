package domain

import "time"

// Item is a cataloged media entry owned by one user, under one category.
type Item struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	UserID     int64     `json:"user_id"`
	CategoryID int64     `json:"category_id"`
	ImageURL   string    `json:"image_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ItemDetail is an item together with its tag and creator name lists.
// The lists are ordered by association row order so responses are
// reproducible for a fixed database state.
type ItemDetail struct {
	Item
	Tags     []string `json:"tags"`
	Creators []string `json:"creators"`
}
