package service

import (
	"context"

	"github.com/MKhiriev/ranking-mk2/models"
)

// AuthService owns the admin credential check and the session cookie
// lifecycle. All failure modes of Authenticate collapse into
// ErrInvalidCredentials so that responses never reveal whether an email
// is registered.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (models.User, error)
	IssueSession(ctx context.Context, user models.User) (models.SessionToken, error)
	ResolveSession(ctx context.Context, tokenString string) (models.Session, error)

	CreateUser(ctx context.Context, user models.User, password string) (models.User, error)
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
}

// RankingService is the admin-facing CRUD surface over ranking records.
// Drafts are validated before they reach the store; validation failures
// come back as validators.FieldErrors.
type RankingService interface {
	CreateRanking(ctx context.Context, draft models.RankingDraft) (models.Ranking, error)
	GetAllRankings(ctx context.Context) ([]models.Ranking, error)
	GetRankingByID(ctx context.Context, id int64) (models.Ranking, error)
	UpdateRanking(ctx context.Context, id int64, draft models.RankingDraft) (models.Ranking, error)
	DeleteRanking(ctx context.Context, id int64) error
}
