// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// session token generation and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/ranking-mk2/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key used to store the authenticated admin session in
// the request context. The guard middleware writes the fresh, store-resolved
// projection here; handlers read it via GetSessionFromContext.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SessionCtxKey, session)
var SessionCtxKey = contextKey("adminSession")

// GetSessionFromContext retrieves the authenticated admin session from the
// context.
//
// Returns the session and an ok flag:
//   - ok == true  — value is found and has the correct models.Session type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	session, ok := utils.GetSessionFromContext(ctx)
//	if !ok {
//	    // handle unauthenticated request
//	}
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	return session, ok
}
