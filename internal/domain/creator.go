package domain

import "time"

// Creator is a globally unique author, studio, or other maker that
// items can be attributed to.
type Creator struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
