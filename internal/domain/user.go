package domain

import "time"

// User is an account that owns items and categories.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	FirstName string    `json:"first_name,omitempty"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName returns the name used when addressing the user, falling
// back to the username when no first name is set.
func (u *User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}

// HasEmail reports whether the user can receive email notifications.
func (u *User) HasEmail() bool {
	return u.Email != ""
}
