package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/ranking-mk2/models"
)

// UserRepository is the credential store consulted by the auth service.
// Active-only lookups enforce the account gate at the persistence layer:
// a deactivated user is indistinguishable from a missing one.
type UserRepository interface {
	FindActiveUserByEmail(ctx context.Context, email string) (models.User, error)
	FindActiveUserByID(ctx context.Context, userID int64) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
}

// RankingRepository is the ranking store behind admin CRUD and the public
// list view. GetAllRankings returns records ordered by followers descending
// with id ascending as the stable tiebreak; callers rely on that order for
// rank assignment and must not reorder.
type RankingRepository interface {
	CreateRanking(ctx context.Context, ranking models.Ranking) (models.Ranking, error)
	GetAllRankings(ctx context.Context) ([]models.Ranking, error)
	GetRankingByID(ctx context.Context, id int64) (models.Ranking, error)
	UpdateRanking(ctx context.Context, ranking models.Ranking) (models.Ranking, error)
	DeleteRanking(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations are driver-specific.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
