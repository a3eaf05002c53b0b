package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a lookup expected to match exactly one
	// active user produces an empty result set. Deactivated accounts resolve
	// to this error on purpose.
	ErrUserNotFound = errors.New("no user was found")

	// ErrRankingNotFound is returned when a ranking record referenced by id
	// does not exist. The edit flow surfaces it as a dedicated page state.
	ErrRankingNotFound = errors.New("ranking was not found")
)
