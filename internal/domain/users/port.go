package users

import "context"

// Repository port (interface for persistence)
type Repository interface {
	Create(ctx context.Context, u *User) error
	// ByEmail returns (nil, nil) when no user has the given email.
	ByEmail(ctx context.Context, email string) (*User, error)
	// ByID returns (nil, nil) when the id is unknown.
	ByID(ctx context.Context, id UserID) (*User, error)
}
