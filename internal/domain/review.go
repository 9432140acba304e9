package domain

import "time"

// Review is a user's opinion of an item. Rating is 1-5 when present.
type Review struct {
	ID        int64     `json:"id"`
	Rating    *int      `json:"rating"`
	Text      string    `json:"text,omitempty"`
	UserID    int64     `json:"user_id"`
	ItemID    int64     `json:"item_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidRating reports whether a rating value is inside the accepted
// 1-5 range.
func ValidRating(r int) bool {
	return r >= 1 && r <= 5
}
