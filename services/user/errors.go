package user

import "errors"

// Errors surfaced by the user service.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidRole        = errors.New("role must be realtor or contractor")
)
