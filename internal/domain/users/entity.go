package users

import "time"

// UserID identifier type
type UserID string

// User aggregate. PasswordHash is never serialised to JSON.
type User struct {
	ID           UserID    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
