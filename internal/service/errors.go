package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers every authentication failure: unknown
	// email, deactivated account, and wrong password all look the same to
	// the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrSessionCreationFailed     = errors.New("session creation failed")
	ErrSessionIsExpiredOrInvalid = errors.New("session is expired or invalid")
)
