package repository

import "errors"

var (
	// ErrDuplicateEmail is returned when creating a user whose email is
	// already taken. Raised by the storage-level uniqueness constraint, so
	// two concurrent signups with the same email produce exactly one success.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrNotFound is returned when a requested row does not exist for the
	// requesting user. A task owned by someone else is indistinguishable
	// from a task that does not exist.
	ErrNotFound = errors.New("not found")
)
