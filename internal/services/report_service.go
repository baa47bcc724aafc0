package services

import (
	"context"
	"time"

	"github.com/linguaflow/scorereport/internal/auth"
	"github.com/linguaflow/scorereport/internal/errors"
	"github.com/linguaflow/scorereport/internal/logger"
	"github.com/linguaflow/scorereport/internal/models"
	"github.com/linguaflow/scorereport/internal/report"
	"github.com/linguaflow/scorereport/internal/repository"
)

// ReportService orchestrates one report request: access control, attempt
// fetch, reduction, serialization.
type ReportService interface {
	GenerateReport(ctx context.Context, caller auth.Identity, query models.ReportQuery) (*models.RenderedReport, error)
}

type reportService struct {
	attemptRepo repository.AttemptRepository
	policy      *auth.Policy
	maxRows     int
}

// NewReportService creates a new ReportService. maxRows caps how many attempts
// a single report may pull from the store.
func NewReportService(attemptRepo repository.AttemptRepository, policy *auth.Policy, maxRows int) ReportService {
	return &reportService{
		attemptRepo: attemptRepo,
		policy:      policy,
		maxRows:     maxRows,
	}
}

func (s *reportService) GenerateReport(ctx context.Context, caller auth.Identity, query models.ReportQuery) (*models.RenderedReport, error) {
	log := logger.FromContext(ctx)

	userID, err := s.policy.EffectiveUserFilter(caller, query.UserID)
	if err != nil {
		return nil, err
	}

	filter := models.AttemptFilter{
		UserID:        userID,
		SessionID:     query.SessionID,
		Provider:      query.Provider,
		Level:         query.Level,
		TaskType:      query.TaskType,
		DateFrom:      query.DateFrom,
		DateTo:        query.DateTo,
		IncludeFailed: query.IncludeFailed,
		Limit:         s.maxRows,
	}

	attempts, err := s.attemptRepo.List(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("report_type", string(query.Type)).Msg("failed to fetch attempts for report")
		return nil, errors.NewStoreError(err)
	}

	log.Debug().
		Str("report_type", string(query.Type)).
		Str("format", string(query.Format)).
		Int("attempts", len(attempts)).
		Msg("building report")

	var built any
	switch query.Type {
	case models.ReportSummary:
		built = report.BuildSummary(attempts)
	case models.ReportDetailed:
		built = report.BuildDetailed(attempts, query.IncludeMetadata)
	case models.ReportPerformance:
		built = report.BuildPerformance(attempts)
	case models.ReportQuality:
		built = report.BuildQuality(attempts)
	case models.ReportUserProgress:
		built = report.BuildUserProgress(attempts, s.policy.IsPrivileged(caller), userID)
	default:
		return nil, errors.NewInvalidParameterError("type", "unknown report type "+string(query.Type))
	}

	meta := models.ReportMeta{
		GeneratedAt: time.Now().UTC(),
		ReportType:  query.Type,
		DateFrom:    query.DateFrom,
		DateTo:      query.DateTo,
		Filters: models.ReportFilters{
			Provider:      query.Provider,
			Level:         query.Level,
			TaskType:      query.TaskType,
			UserID:        userID,
			SessionID:     query.SessionID,
			IncludeFailed: query.IncludeFailed,
		},
	}

	return report.Render(query.Format, built, meta)
}
