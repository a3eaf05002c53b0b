package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/ranking-mk2/internal/logger"
	"github.com/MKhiriev/ranking-mk2/models"
)

// rankingRepository is the SQL-backed implementation of [RankingRepository].
// Queries are built with squirrel (see sql_queries.go) so that both the
// PostgreSQL and SQLite drivers receive identical statements.
type rankingRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRankingRepository constructs a [RankingRepository] backed by the
// provided database connection and logger.
func NewRankingRepository(db *DB, logger *logger.Logger) RankingRepository {
	logger.Debug().Msg("creating ranking repository")
	return &rankingRepository{
		db:     db,
		logger: logger,
	}
}

// CreateRanking persists a new ranking record and returns the fully populated
// [models.Ranking] with server-assigned fields (ID, CreatedAt, UpdatedAt).
func (r *rankingRepository) CreateRanking(ctx context.Context, ranking models.Ranking) (models.Ranking, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRankingQuery(ranking)
	if err != nil {
		log.Err(err).Str("func", "*rankingRepository.CreateRanking").Msg("error: building insert query")
		return models.Ranking{}, fmt.Errorf("error building insert query: %w", err)
	}

	row := r.db.queryRow(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*rankingRepository.CreateRanking").Msg("error: row is nil")
		return models.Ranking{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanRanking(row)
	if err != nil {
		log.Err(err).Str("func", "*rankingRepository.CreateRanking").Msg("error: scanning error")
		return models.Ranking{}, err
	}

	return saved, nil
}

// GetAllRankings returns every ranking record ordered by followers descending,
// id ascending. The order is part of the repository contract: rank numbers on
// the presentation side are positions in this sequence.
func (r *rankingRepository) GetAllRankings(ctx context.Context) ([]models.Ranking, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllRankingsQuery()
	if err != nil {
		log.Err(err).Str("func", "*rankingRepository.GetAllRankings").Msg("error: building select query")
		return nil, fmt.Errorf("error building select query: %w", err)
	}

	rows, err := r.db.query(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*rankingRepository.GetAllRankings").Msg("error: query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	rankings := make([]models.Ranking, 0)
	for rows.Next() {
		ranking, err := scanRanking(rows)
		if err != nil {
			log.Err(err).Str("func", "*rankingRepository.GetAllRankings").Msg("error: scanning error")
			return nil, err
		}
		rankings = append(rankings, ranking)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*rankingRepository.GetAllRankings").Msg("error: rows iteration error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return rankings, nil
}

// GetRankingByID retrieves a single ranking record.
//
// Returns [ErrRankingNotFound] when no record with the given id exists.
func (r *rankingRepository) GetRankingByID(ctx context.Context, id int64) (models.Ranking, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRankingByIDQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*rankingRepository.GetRankingByID").Msg("error: building select query")
		return models.Ranking{}, fmt.Errorf("error building select query: %w", err)
	}

	row := r.db.queryRow(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*rankingRepository.GetRankingByID").Msg("error: row is nil")
		return models.Ranking{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanRanking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Ranking{}, ErrRankingNotFound
		}
		log.Err(err).Str("func", "*rankingRepository.GetRankingByID").Msg("error: scanning error")
		return models.Ranking{}, err
	}

	return found, nil
}

// UpdateRanking replaces every mutable field of the record identified by
// ranking.ID and returns the stored state after the update.
//
// Returns [ErrRankingNotFound] when the id does not exist.
func (r *rankingRepository) UpdateRanking(ctx context.Context, ranking models.Ranking) (models.Ranking, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateRankingQuery(ranking)
	if err != nil {
		log.Err(err).Str("func", "*rankingRepository.UpdateRanking").Msg("error: building update query")
		return models.Ranking{}, fmt.Errorf("error building update query: %w", err)
	}

	row := r.db.queryRow(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*rankingRepository.UpdateRanking").Msg("error: row is nil")
		return models.Ranking{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	updated, err := scanRanking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Ranking{}, ErrRankingNotFound
		}
		log.Err(err).Str("func", "*rankingRepository.UpdateRanking").Msg("error: scanning error")
		return models.Ranking{}, err
	}

	return updated, nil
}

// DeleteRanking removes the record with the given id.
//
// Returns [ErrRankingNotFound] when no row was affected.
func (r *rankingRepository) DeleteRanking(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRankingQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*rankingRepository.DeleteRanking").Msg("error: building delete query")
		return fmt.Errorf("error building delete query: %w", err)
	}

	result, err := r.db.exec(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*rankingRepository.DeleteRanking").Msg("error: exec failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrRankingNotFound
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRanking(row rowScanner) (models.Ranking, error) {
	var ranking models.Ranking
	err := row.Scan(
		&ranking.ID,
		&ranking.AccountName,
		&ranking.ProfileURL,
		&ranking.Followers,
		&ranking.ImageURL,
		&ranking.Area,
		&ranking.StoreName,
		&ranking.CreatedAt,
		&ranking.UpdatedAt,
	)
	if err != nil {
		return models.Ranking{}, err
	}

	return ranking, nil
}
