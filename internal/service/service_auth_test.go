package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/ranking-mk2/internal/config"
	"github.com/MKhiriev/ranking-mk2/internal/logger"
	"github.com/MKhiriev/ranking-mk2/internal/mock"
	"github.com/MKhiriev/ranking-mk2/internal/store"
	"github.com/MKhiriev/ranking-mk2/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()

	mockUsers := mock.NewMockUserRepository(ctrl)
	cfg := config.App{
		SessionSignKey:  "test-sign-key",
		SessionIssuer:   "ranking-mk2",
		SessionDuration: time.Hour,
	}

	return NewAuthService(mockUsers, cfg, logger.NewLogger("test")), mockUsers
}

func mustHash(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthService_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	storedUser := models.User{
		UserID:       1,
		Email:        "admin@example.com",
		PasswordHash: mustHash(t, "correct horse"),
		Name:         "管理者",
		Role:         "admin",
		IsActive:     true,
	}
	mockUsers.EXPECT().FindActiveUserByEmail(ctx, "admin@example.com").Return(storedUser, nil)

	got, err := svc.Authenticate(ctx, "admin@example.com", "correct horse")

	require.NoError(t, err)
	assert.Equal(t, storedUser, got)
}

func TestAuthService_Authenticate_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindActiveUserByEmail(ctx, "nobody@example.com").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Authenticate(ctx, "nobody@example.com", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	storedUser := models.User{
		UserID:       1,
		Email:        "admin@example.com",
		PasswordHash: mustHash(t, "correct horse"),
	}
	mockUsers.EXPECT().FindActiveUserByEmail(ctx, "admin@example.com").Return(storedUser, nil)

	_, err := svc.Authenticate(ctx, "admin@example.com", "wrong horse")

	// wrong password must be indistinguishable from unknown email
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Authenticate_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no repository expectations: empty input must fail before any lookup
	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, "", "password")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Authenticate(ctx, "admin@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── IssueSession / ResolveSession ────────────────────────────────────────────

func TestAuthService_SessionRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: 7, Email: "admin@example.com", Name: "管理者", Role: "admin", IsActive: true}

	token, err := svc.IssueSession(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, user.UserID, token.Session.UserID)

	mockUsers.EXPECT().FindActiveUserByID(ctx, user.UserID).Return(user, nil)

	session, err := svc.ResolveSession(ctx, token.SignedString)

	require.NoError(t, err)
	assert.Equal(t, models.Session{UserID: 7, Email: "admin@example.com", Name: "管理者", Role: "admin"}, session)
}

func TestAuthService_ResolveSession_ReflectsCurrentStoreState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.IssueSession(ctx, models.User{UserID: 7, Email: "admin@example.com", Name: "Old Name"})
	require.NoError(t, err)

	// the account was renamed after the cookie was issued
	mockUsers.EXPECT().FindActiveUserByID(ctx, int64(7)).
		Return(models.User{UserID: 7, Email: "admin@example.com", Name: "New Name", Role: "admin", IsActive: true}, nil)

	session, err := svc.ResolveSession(ctx, token.SignedString)

	require.NoError(t, err)
	assert.Equal(t, "New Name", session.Name)
}

func TestAuthService_ResolveSession_DeactivatedUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.IssueSession(ctx, models.User{UserID: 7, Email: "admin@example.com"})
	require.NoError(t, err)

	mockUsers.EXPECT().FindActiveUserByID(ctx, int64(7)).Return(models.User{}, store.ErrUserNotFound)

	_, err = svc.ResolveSession(ctx, token.SignedString)

	assert.ErrorIs(t, err, ErrSessionIsExpiredOrInvalid)
}

func TestAuthService_ResolveSession_MalformedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no repository expectations: a bad signature never reaches the store
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ResolveSession(context.Background(), "not-a-signed-payload")

	assert.ErrorIs(t, err, ErrSessionIsExpiredOrInvalid)
}

// ── CreateUser / ChangePassword ──────────────────────────────────────────────

func TestAuthService_CreateUser_HashesPasswordAndDefaultsRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")))
			assert.Equal(t, "admin", u.Role)
			assert.True(t, u.IsActive)
			u.UserID = 42
			return u, nil
		},
	)

	created, err := svc.CreateUser(ctx, models.User{Email: "new@example.com", Name: "New Admin"}, "s3cret")

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.UserID)
}

func TestAuthService_CreateUser_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.CreateUser(ctx, models.User{Email: "taken@example.com"}, "s3cret")

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockUsers.EXPECT().FindActiveUserByID(ctx, int64(7)).
			Return(models.User{UserID: 7, Email: "admin@example.com", PasswordHash: mustHash(t, "old-password")}, nil),
		mockUsers.EXPECT().UpdatePasswordHash(ctx, int64(7), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, passwordHash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("new-password")))
				return nil
			},
		),
	)

	err := svc.ChangePassword(ctx, 7, "old-password", "new-password")

	require.NoError(t, err)
}

func TestAuthService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// the hash never reaches the store when the current password is wrong
	mockUsers.EXPECT().FindActiveUserByID(ctx, int64(7)).
		Return(models.User{UserID: 7, PasswordHash: mustHash(t, "old-password")}, nil)

	err := svc.ChangePassword(ctx, 7, "not-the-old-password", "new-password")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ChangePassword_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindActiveUserByID(ctx, int64(99)).Return(models.User{}, store.ErrUserNotFound)

	err := svc.ChangePassword(ctx, 99, "old-password", "new-password")

	assert.True(t, errors.Is(err, store.ErrUserNotFound))
}
