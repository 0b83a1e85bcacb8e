package users

import "errors"

// ErrEmailTaken indicates a registration attempt with an email that
// already belongs to another user.
var ErrEmailTaken = errors.New("user already exists")

// ErrInvalidCredentials is returned for both unknown email and wrong
// password so callers cannot enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotFound indicates a lookup for a user that does not exist.
var ErrNotFound = errors.New("user not found")
