package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/ranking-mk2/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken creates a signed HMAC-SHA256 session token carrying
// the given session payload.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the session
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus sessionDuration
//   - email, name, role: the identity snapshot shown by [models.Session]
//
// All parameters are required. Returns an error if any of them are empty or zero.
func GenerateSessionToken(issuer string, session models.Session, sessionDuration time.Duration, signKey string) (models.SessionToken, error) {
	if issuer == "" || sessionDuration == 0 || signKey == "" {
		return models.SessionToken{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(session.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: session.Email,
		Name:  session.Name,
		Role:  session.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.SessionToken{Session: session, SignedString: tokenString}, nil
}

// ValidateAndParseSessionToken validates the given session token string and
// extracts its payload.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided issuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to int64 UserID
//
// Returns the decoded [models.Session] or an error if validation fails,
// claims are missing, or the subject cannot be parsed. Callers treat any
// error as "no session" (the guard fails closed).
func ValidateAndParseSessionToken(tokenString, signKey, issuer string) (models.Session, error) {
	var claims models.SessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	session, err := claims.Session()
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred extracting session from claims: %w", err)
	}

	return session, nil
}
