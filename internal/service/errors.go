package service

import "errors"

var (
	// ErrValidation marks a request rejected for a missing or malformed
	// field. Wrapped errors carry the field detail.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password is wrong. The two cases are deliberately
	// indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
