package models

import "time"

// User represents an admin account consulted during authentication and on
// every protected-route access. Accounts are provisioned out of band.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized and never compared outside the auth service.
	PasswordHash string `json:"-"`

	// Name is the display name of the user. Non-sensitive, shown in the
	// admin header.
	Name string `json:"name"`

	// Role is the authorization role ("admin" by default).
	Role string `json:"role"`

	// IsActive gates the account. Deactivated users fail authentication
	// and fail session re-validation on their next request.
	IsActive bool `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
