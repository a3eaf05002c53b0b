// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/ranking-mk2/internal/config"
	"github.com/MKhiriev/ranking-mk2/internal/logger"
	"github.com/MKhiriev/ranking-mk2/internal/store"
	"github.com/MKhiriev/ranking-mk2/internal/utils"
	"github.com/MKhiriev/ranking-mk2/models"
	"golang.org/x/crypto/bcrypt"
)

// defaultUserRole is assigned to accounts created without an explicit role.
const defaultUserRole = "admin"

// authService is the concrete implementation of AuthService.
// It verifies credentials with bcrypt and manages the signed session
// payload carried by the admin cookie, using a UserRepository for
// persistence.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionSignKey is the HMAC secret used to sign and verify session payloads.
	sessionSignKey string

	// sessionIssuer is the "iss" claim embedded in every issued session.
	// Sessions whose issuer does not match this value are rejected during parsing.
	sessionIssuer string

	// sessionDuration controls how long a newly issued session remains valid.
	sessionDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		sessionSignKey:  cfg.SessionSignKey,
		sessionIssuer:   cfg.SessionIssuer,
		sessionDuration: cfg.SessionDuration,
		logger:          logger,
	}
}

// Authenticate verifies an email/password pair against the credential store.
//
// Unknown email, deactivated account, and password mismatch are deliberately
// indistinguishable: each returns ErrInvalidCredentials without detail, and
// the specific cause is only visible in the server log.
//
// Returns the matched user record on success or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials on any verification failure.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("func", "*authService.Authenticate").Msg("empty email or password")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindActiveUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Err(err).
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// IssueSession creates a signed session payload for the given user, ready to
// be set as the admin cookie value.
//
// The payload is signed with the configured sessionSignKey, carries the
// configured sessionIssuer as the "iss" claim, and expires after
// sessionDuration.
//
// Returns the session token on success or a wrapped error if signing fails.
func (a *authService) IssueSession(ctx context.Context, user models.User) (models.SessionToken, error) {
	session := models.Session{
		UserID: user.UserID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}

	token, err := utils.GenerateSessionToken(a.sessionIssuer, session, a.sessionDuration, a.sessionSignKey)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return token, nil
}

// ResolveSession validates a raw cookie value and re-checks the referenced
// account against the store.
//
// Signature and issuer verification alone are not enough: the account may
// have been deactivated after the cookie was issued, so every resolution
// loads the user by id and requires it to still be active. The returned
// session carries the store's current field values, not the ones baked into
// the cookie at login time.
//
// Returns ErrSessionIsExpiredOrInvalid on any failure; callers treat it as
// "not logged in" and redirect to the login page.
func (a *authService) ResolveSession(ctx context.Context, tokenString string) (models.Session, error) {
	log := logger.FromContext(ctx)

	session, err := utils.ValidateAndParseSessionToken(tokenString, a.sessionSignKey, a.sessionIssuer)
	if err != nil {
		return models.Session{}, ErrSessionIsExpiredOrInvalid
	}

	currentUser, err := a.userRepository.FindActiveUserByID(ctx, session.UserID)
	if err != nil {
		log.Err(err).Int64("id", session.UserID).Msg("session user is missing or deactivated")
		return models.Session{}, ErrSessionIsExpiredOrInvalid
	}

	return models.Session{
		UserID: currentUser.UserID,
		Email:  currentUser.Email,
		Name:   currentUser.Name,
		Role:   currentUser.Role,
	}, nil
}

// CreateUser provisions a new admin account.
//
// The plain-text password is hashed with bcrypt before it reaches the store;
// an empty Role defaults to "admin" and the account starts active.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken, see store.ErrEmailAlreadyExists).
func (a *authService) CreateUser(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || password == "" {
		log.Error().Str("func", "*authService.CreateUser").Msg("empty email or password")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing ended with error: %w", err)
	}

	user.PasswordHash = string(passwordHash)
	user.IsActive = true
	if user.Role == "" {
		user.Role = defaultUserRole
	}

	createdUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// ChangePassword replaces the stored password hash for the active account
// with the given id, after verifying the current password.
//
// Returns ErrInvalidDataProvided on empty arguments,
// ErrInvalidCredentials when the current password does not match, or a
// wrapped storage error if the account cannot be found or updated.
func (a *authService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if userID == 0 || currentPassword == "" || newPassword == "" {
		log.Error().Str("func", "*authService.ChangePassword").Msg("empty user id or password")
		return ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindActiveUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(currentPassword)); err != nil {
		log.Error().Int64("id", userID).Msg("current password mismatch")
		return ErrInvalidCredentials
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("password hashing ended with error: %w", err)
	}

	if err := a.userRepository.UpdatePasswordHash(ctx, foundUser.UserID, string(passwordHash)); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("password update ended with error")
		return fmt.Errorf("password update ended with error: %w", err)
	}

	return nil
}
