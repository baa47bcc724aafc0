package services

import (
	"context"
	"database/sql"
	goerrors "errors"

	"github.com/linguaflow/scorereport/internal/auth"
	"github.com/linguaflow/scorereport/internal/errors"
	"github.com/linguaflow/scorereport/internal/logger"
	"github.com/linguaflow/scorereport/internal/models"
	"github.com/linguaflow/scorereport/internal/repository"
)

// AttemptService exposes raw attempt lookups under the same access rules the
// reports follow.
type AttemptService interface {
	ListAttempts(ctx context.Context, caller auth.Identity, filter models.AttemptFilter) ([]models.ScoringAttempt, int, error)
	GetAttempt(ctx context.Context, caller auth.Identity, id string) (*models.ScoringAttempt, error)
}

type attemptService struct {
	attemptRepo repository.AttemptRepository
	policy      *auth.Policy
}

// NewAttemptService creates a new AttemptService
func NewAttemptService(attemptRepo repository.AttemptRepository, policy *auth.Policy) AttemptService {
	return &attemptService{attemptRepo: attemptRepo, policy: policy}
}

func (s *attemptService) ListAttempts(ctx context.Context, caller auth.Identity, filter models.AttemptFilter) ([]models.ScoringAttempt, int, error) {
	log := logger.FromContext(ctx)

	userID, err := s.policy.EffectiveUserFilter(caller, filter.UserID)
	if err != nil {
		return nil, 0, err
	}
	filter.UserID = userID

	attempts, err := s.attemptRepo.List(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list attempts")
		return nil, 0, errors.NewStoreError(err)
	}

	totalCount, err := s.attemptRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count attempts")
		return nil, 0, errors.NewStoreError(err)
	}

	return attempts, totalCount, nil
}

func (s *attemptService) GetAttempt(ctx context.Context, caller auth.Identity, id string) (*models.ScoringAttempt, error) {
	log := logger.FromContext(ctx)

	attempt, err := s.attemptRepo.Get(ctx, id)
	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFoundError("attempt", id)
		}
		log.Error().Err(err).Str("attempt_id", id).Msg("failed to get attempt")
		return nil, errors.NewStoreError(err)
	}

	if !s.policy.CanAccessUser(caller, attempt.UserID) {
		return nil, errors.NewForbiddenError("cannot access another user's attempts")
	}

	return attempt, nil
}
