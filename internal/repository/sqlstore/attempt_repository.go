package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/linguaflow/scorereport/internal/logger"
	"github.com/linguaflow/scorereport/internal/models"
	"github.com/linguaflow/scorereport/internal/repository"
)

// Dollar placeholders work on Postgres and on go-sqlite3, so one builder
// serves both drivers.
var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var attemptColumns = []string{
	"id", "user_id", "exam_session_id", "provider", "level", "task_type", "status",
	"total_score", "max_score", "percentage", "pass", "detailed_scores", "feedback",
	"error_details", "processing_time_ms", "confidence", "model_agreement",
	"quality_flags", "created_at", "updated_at",
}

type attemptRepository struct {
	db *sql.DB
}

// NewAttemptRepository creates an AttemptRepository backed by scoring_attempts.
func NewAttemptRepository(db *sql.DB) repository.AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Get(ctx context.Context, id string) (*models.ScoringAttempt, error) {
	log := logger.FromContext(ctx)
	log.Debug().Str("attempt_id", id).Msg("getting attempt")

	query, args, err := sqlBuilder.Select(attemptColumns...).
		From("scoring_attempts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	attempt, err := scanAttempt(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().Str("attempt_id", id).Msg("attempt not found")
		} else {
			log.Error().Err(err).Msg("failed to get attempt")
		}
		return nil, err
	}
	return attempt, nil
}

func (r *attemptRepository) List(ctx context.Context, filter models.AttemptFilter) ([]models.ScoringAttempt, error) {
	log := logger.FromContext(ctx)

	query := sqlBuilder.Select(attemptColumns...).From("scoring_attempts")
	query = applyFilter(query, filter)
	query = query.OrderBy("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error().Err(err).Msg("failed to build attempt query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error().Err(err).Msg("failed to list attempts")
		return nil, err
	}
	defer rows.Close()

	var attempts []models.ScoringAttempt
	for rows.Next() {
		attempt, err := scanAttempt(rows)
		if err != nil {
			log.Error().Err(err).Msg("failed to scan attempt row")
			return nil, err
		}
		attempts = append(attempts, *attempt)
	}
	log.Debug().Int("count", len(attempts)).Msg("attempts fetched")
	return attempts, rows.Err()
}

func (r *attemptRepository) Count(ctx context.Context, filter models.AttemptFilter) (int, error) {
	log := logger.FromContext(ctx)

	query := sqlBuilder.Select("COUNT(*)").From("scoring_attempts")
	query = applyFilter(query, filter)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		log.Error().Err(err).Msg("failed to count attempts")
		return 0, err
	}
	return count, nil
}

func applyFilter(query squirrel.SelectBuilder, filter models.AttemptFilter) squirrel.SelectBuilder {
	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"user_id": filter.UserID})
	}
	if filter.SessionID != "" {
		query = query.Where(squirrel.Eq{"exam_session_id": filter.SessionID})
	}
	if filter.Provider != "" {
		query = query.Where(squirrel.Eq{"provider": filter.Provider})
	}
	if filter.Level != "" {
		query = query.Where(squirrel.Eq{"level": filter.Level})
	}
	if filter.TaskType != "" {
		query = query.Where(squirrel.Eq{"task_type": filter.TaskType})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	if !filter.DateFrom.IsZero() {
		query = query.Where(squirrel.GtOrEq{"created_at": filter.DateFrom})
	}
	if !filter.DateTo.IsZero() {
		query = query.Where(squirrel.LtOrEq{"created_at": filter.DateTo})
	}
	if !filter.IncludeFailed {
		query = query.Where(squirrel.NotEq{"status": models.StatusFailed})
	}
	return query
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttempt(row rowScanner) (*models.ScoringAttempt, error) {
	var (
		a              models.ScoringAttempt
		sessionID      sql.NullString
		totalScore     sql.NullFloat64
		maxScore       sql.NullFloat64
		percentage     sql.NullFloat64
		pass           sql.NullBool
		detailedScores sql.NullString
		feedback       sql.NullString
		errorDetails   sql.NullString
		processingTime sql.NullInt64
		confidence     sql.NullFloat64
		agreement      sql.NullFloat64
		qualityFlags   sql.NullString
	)

	err := row.Scan(
		&a.ID, &a.UserID, &sessionID, &a.Provider, &a.Level, &a.TaskType, &a.Status,
		&totalScore, &maxScore, &percentage, &pass, &detailedScores, &feedback,
		&errorDetails, &processingTime, &confidence, &agreement, &qualityFlags,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if sessionID.Valid {
		a.SessionID = &sessionID.String
	}
	if errorDetails.Valid {
		a.ErrorDetails = &errorDetails.String
	}
	if processingTime.Valid {
		a.ProcessingTimeMS = &processingTime.Int64
	}

	if totalScore.Valid || percentage.Valid {
		score := &models.Score{
			TotalScore: totalScore.Float64,
			MaxScore:   maxScore.Float64,
			Percentage: percentage.Float64,
			Pass:       pass.Bool,
		}
		if feedback.Valid {
			score.Feedback = feedback.String
		}
		if detailedScores.Valid && detailedScores.String != "" {
			if err := json.Unmarshal([]byte(detailedScores.String), &score.DetailedScores); err != nil {
				return nil, err
			}
		}
		a.Score = score
	}

	if confidence.Valid || agreement.Valid || qualityFlags.Valid {
		quality := &models.QualityMetrics{
			Confidence:     confidence.Float64,
			ModelAgreement: agreement.Float64,
		}
		if qualityFlags.Valid && qualityFlags.String != "" {
			if err := json.Unmarshal([]byte(qualityFlags.String), &quality.Flags); err != nil {
				return nil, err
			}
		}
		a.Quality = quality
	}

	return &a, nil
}
