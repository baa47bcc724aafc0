package repository

import (
	"context"

	"github.com/linguaflow/scorereport/internal/models"
)

// AttemptRepository is the read-only view of the platform's scoring-attempt
// store. The aggregator never mutates attempts.
type AttemptRepository interface {
	// Get returns the attempt with the given id, or sql.ErrNoRows.
	Get(ctx context.Context, id string) (*models.ScoringAttempt, error)
	// List returns attempts matching the filter, ordered by created_at
	// descending.
	List(ctx context.Context, filter models.AttemptFilter) ([]models.ScoringAttempt, error)
	// Count returns the number of attempts matching the filter, ignoring
	// Limit and Offset.
	Count(ctx context.Context, filter models.AttemptFilter) (int, error)
}
