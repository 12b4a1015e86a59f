package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrPasswordMismatch is returned when password and confirmPassword differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrInvalidCredentials is returned for both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidRefreshToken is returned when a refresh token is invalid, malformed or expired.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)
