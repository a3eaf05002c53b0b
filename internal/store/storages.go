package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ranking-mk2/internal/config"
	"github.com/MKhiriev/ranking-mk2/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository    UserRepository
	RankingRepository RankingRepository
}

// NewStorages opens the database connection selected by cfg (PostgreSQL by
// default, SQLite for single-binary deployments), runs pending migrations,
// and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting storage: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating storage: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		RankingRepository: NewRankingRepository(db, log),
	}, nil
}
