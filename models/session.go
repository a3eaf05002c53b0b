package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the payload carried inside the admin session cookie: the
// identity snapshot taken at login time. Possession of a valid Session is
// necessary but not sufficient for access: the guard re-resolves the
// referenced user against the store on every check, so the fields here are
// never trusted for display or authorization after parsing.
type Session struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// SessionClaims is the JWT claim set serialized into the session cookie.
// The standard claims carry issuer, issue time, and the 24-hour expiry;
// the subject holds the user id and the custom claims mirror [Session].
type SessionClaims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Session converts the claim set into a [Session] value.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (c *SessionClaims) Session() (Session, error) {
	subject, err := c.GetSubject()
	if err != nil {
		return Session{}, fmt.Errorf("error extracting UserID from session claims: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return Session{}, fmt.Errorf("error converting UserID from session claims to int64: %w", err)
	}

	return Session{
		UserID: userID,
		Email:  c.Email,
		Name:   c.Name,
		Role:   c.Role,
	}, nil
}

// SessionToken couples a parsed session payload with its compact JWS
// serialization, ready to be set as the cookie value.
type SessionToken struct {
	// Session is the decoded payload.
	Session Session `json:"-"`

	// SignedString is the compact JWS representation of the claims
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t SessionToken) String() string {
	return t.SignedString
}
