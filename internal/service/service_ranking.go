package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ranking-mk2/internal/logger"
	"github.com/MKhiriev/ranking-mk2/internal/store"
	"github.com/MKhiriev/ranking-mk2/internal/validators"
	"github.com/MKhiriev/ranking-mk2/models"
)

// rankingService is the concrete implementation of RankingService.
// Drafts pass through the ranking validator before any write reaches the
// repository, so the store only ever sees well-formed records.
type rankingService struct {
	rankingRepository store.RankingRepository
	validator         validators.Validator
	logger            *logger.Logger
}

// NewRankingService constructs a RankingService over the given repository.
func NewRankingService(rankingRepository store.RankingRepository, logger *logger.Logger) RankingService {
	return &rankingService{
		rankingRepository: rankingRepository,
		validator:         validators.NewRankingValidator(),
		logger:            logger,
	}
}

// CreateRanking validates the draft and persists it as a new record.
//
// Returns the persisted record (with a server-assigned ID) or:
//   - validators.FieldErrors if the draft fails validation.
//   - A wrapped storage error if the repository call fails.
func (s *rankingService) CreateRanking(ctx context.Context, draft models.RankingDraft) (models.Ranking, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, draft); err != nil {
		log.Err(err).Str("accountName", draft.AccountName).Msg("ranking draft failed validation")
		return models.Ranking{}, err
	}

	createdRanking, err := s.rankingRepository.CreateRanking(ctx, draft.Ranking(0))
	if err != nil {
		log.Err(err).Str("accountName", draft.AccountName).Msg("ranking creation ended with error")
		return models.Ranking{}, fmt.Errorf("ranking creation ended with error: %w", err)
	}

	return createdRanking, nil
}

// GetAllRankings returns every record ordered by followers descending.
func (s *rankingService) GetAllRankings(ctx context.Context) ([]models.Ranking, error) {
	rankings, err := s.rankingRepository.GetAllRankings(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*rankingService.GetAllRankings").Msg("ranking list load ended with error")
		return nil, fmt.Errorf("ranking list load ended with error: %w", err)
	}

	return rankings, nil
}

// GetRankingByID loads a single record.
//
// Returns store.ErrRankingNotFound (wrapped) when no record has the id.
func (s *rankingService) GetRankingByID(ctx context.Context, id int64) (models.Ranking, error) {
	ranking, err := s.rankingRepository.GetRankingByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("ranking load ended with error")
		return models.Ranking{}, fmt.Errorf("ranking load ended with error: %w", err)
	}

	return ranking, nil
}

// UpdateRanking validates the draft and overwrites the record with the
// given id.
//
// Returns the updated record or:
//   - validators.FieldErrors if the draft fails validation.
//   - store.ErrRankingNotFound (wrapped) when no record has the id.
//   - A wrapped storage error on any other repository failure.
func (s *rankingService) UpdateRanking(ctx context.Context, id int64, draft models.RankingDraft) (models.Ranking, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, draft); err != nil {
		log.Err(err).Int64("id", id).Msg("ranking draft failed validation")
		return models.Ranking{}, err
	}

	updatedRanking, err := s.rankingRepository.UpdateRanking(ctx, draft.Ranking(id))
	if err != nil {
		log.Err(err).Int64("id", id).Msg("ranking update ended with error")
		return models.Ranking{}, fmt.Errorf("ranking update ended with error: %w", err)
	}

	return updatedRanking, nil
}

// DeleteRanking removes the record with the given id.
//
// Returns store.ErrRankingNotFound (wrapped) when no record has the id.
func (s *rankingService) DeleteRanking(ctx context.Context, id int64) error {
	if err := s.rankingRepository.DeleteRanking(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("ranking deletion ended with error")
		return fmt.Errorf("ranking deletion ended with error: %w", err)
	}

	return nil
}
