package domain

import "time"

// Category groups a user's items. Names are unique per owner, not
// globally: two users may each own a category named "Game".
type Category struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
