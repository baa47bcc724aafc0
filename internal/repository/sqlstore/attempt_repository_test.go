package sqlstore_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/linguaflow/scorereport/internal/models"
	"github.com/linguaflow/scorereport/internal/repository"
	"github.com/linguaflow/scorereport/internal/repository/sqlstore"
	"github.com/linguaflow/scorereport/internal/testutil"
)

type AttemptRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.AttemptRepository
}

func (s *AttemptRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlstore.NewAttemptRepository(s.db)
}

func (s *AttemptRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

type attemptRow struct {
	id         string
	userID     string
	sessionID  *string
	provider   string
	level      string
	taskType   string
	status     string
	percentage *float64
	pass       *bool
	processing *int64
	confidence *float64
	createdAt  time.Time
}

func (s *AttemptRepositorySuite) insert(row attemptRow) {
	ctx := context.Background()
	var totalScore, maxScore *float64
	if row.percentage != nil {
		totalScore = row.percentage
		hundred := 100.0
		maxScore = &hundred
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scoring_attempts (
			id, user_id, exam_session_id, provider, level, task_type, status,
			total_score, max_score, percentage, pass, detailed_scores, feedback,
			error_details, processing_time_ms, confidence, model_agreement,
			quality_flags, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, row.id, row.userID, row.sessionID, row.provider, row.level, row.taskType, row.status,
		totalScore, maxScore, row.percentage, row.pass, `{"grammar":80}`, nil,
		nil, row.processing, row.confidence, row.confidence,
		`["short_answer"]`, row.createdAt, row.createdAt)
	s.Require().NoError(err)
}

func (s *AttemptRepositorySuite) seedScenario() time.Time {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	pct := 85.0
	pass := true
	ms := int64(1500)
	conf := 0.9
	session := "session-1"

	s.insert(attemptRow{id: "att-1", userID: "alice", sessionID: &session, provider: "openai", level: "B2", taskType: "writing", status: "scored", percentage: &pct, pass: &pass, processing: &ms, confidence: &conf, createdAt: base})
	s.insert(attemptRow{id: "att-2", userID: "alice", provider: "openai", level: "B1", taskType: "speaking", status: "failed", createdAt: base.Add(-time.Hour)})
	s.insert(attemptRow{id: "att-3", userID: "bob", provider: "anthropic", level: "B2", taskType: "writing", status: "scored", percentage: &pct, pass: &pass, createdAt: base.Add(-2 * time.Hour)})
	s.insert(attemptRow{id: "att-4", userID: "alice", provider: "openai", level: "B2", taskType: "writing", status: "queued", createdAt: base.Add(-3 * time.Hour)})
	return base
}

func (s *AttemptRepositorySuite) TestGet() {
	s.seedScenario()
	ctx := context.Background()

	attempt, err := s.repo.Get(ctx, "att-1")
	s.Require().NoError(err)
	s.Assert().Equal("alice", attempt.UserID)
	s.Require().NotNil(attempt.SessionID)
	s.Assert().Equal("session-1", *attempt.SessionID)
	s.Require().NotNil(attempt.Score)
	s.Assert().Equal(85.0, attempt.Score.Percentage)
	s.Assert().True(attempt.Score.Pass)
	s.Assert().Equal(map[string]float64{"grammar": 80}, attempt.Score.DetailedScores)
	s.Require().NotNil(attempt.Quality)
	s.Assert().Equal(0.9, attempt.Quality.Confidence)
	s.Assert().Equal([]string{"short_answer"}, attempt.Quality.Flags)
	s.Require().NotNil(attempt.ProcessingTimeMS)
	s.Assert().Equal(int64(1500), *attempt.ProcessingTimeMS)
}

func (s *AttemptRepositorySuite) TestGetNotFound() {
	_, err := s.repo.Get(context.Background(), "missing")
	s.Assert().ErrorIs(err, sql.ErrNoRows)
}

func (s *AttemptRepositorySuite) TestGetFailedAttemptHasNoScore() {
	s.seedScenario()

	attempt, err := s.repo.Get(context.Background(), "att-2")
	s.Require().NoError(err)
	s.Assert().Nil(attempt.Score)
	s.Assert().Nil(attempt.Quality)
	s.Assert().Nil(attempt.ProcessingTimeMS)
}

func (s *AttemptRepositorySuite) TestListOrdersMostRecentFirst() {
	s.seedScenario()

	attempts, err := s.repo.List(context.Background(), models.AttemptFilter{IncludeFailed: true})
	s.Require().NoError(err)
	s.Require().Len(attempts, 4)
	s.Assert().Equal("att-1", attempts[0].ID)
	s.Assert().Equal("att-4", attempts[3].ID)
}

func (s *AttemptRepositorySuite) TestListExcludesFailedByDefault() {
	s.seedScenario()

	attempts, err := s.repo.List(context.Background(), models.AttemptFilter{})
	s.Require().NoError(err)
	s.Require().Len(attempts, 3)
	for _, a := range attempts {
		s.Assert().NotEqual(models.StatusFailed, a.Status)
	}
}

func (s *AttemptRepositorySuite) TestListFilters() {
	s.seedScenario()
	ctx := context.Background()

	byUser, err := s.repo.List(ctx, models.AttemptFilter{UserID: "bob", IncludeFailed: true})
	s.Require().NoError(err)
	s.Require().Len(byUser, 1)
	s.Assert().Equal("att-3", byUser[0].ID)

	byProvider, err := s.repo.List(ctx, models.AttemptFilter{Provider: "openai", IncludeFailed: true})
	s.Require().NoError(err)
	s.Assert().Len(byProvider, 3)

	bySession, err := s.repo.List(ctx, models.AttemptFilter{SessionID: "session-1", IncludeFailed: true})
	s.Require().NoError(err)
	s.Require().Len(bySession, 1)
	s.Assert().Equal("att-1", bySession[0].ID)

	byStatus, err := s.repo.List(ctx, models.AttemptFilter{Status: "queued", IncludeFailed: true})
	s.Require().NoError(err)
	s.Require().Len(byStatus, 1)
	s.Assert().Equal("att-4", byStatus[0].ID)
}

func (s *AttemptRepositorySuite) TestListDateBoundsAreInclusive() {
	base := s.seedScenario()
	ctx := context.Background()

	attempts, err := s.repo.List(ctx, models.AttemptFilter{
		DateFrom:      base.Add(-2 * time.Hour),
		DateTo:        base,
		IncludeFailed: true,
	})
	s.Require().NoError(err)
	s.Require().Len(attempts, 3)
	s.Assert().Equal("att-1", attempts[0].ID)
	s.Assert().Equal("att-3", attempts[2].ID)
}

func (s *AttemptRepositorySuite) TestListLimitOffset() {
	s.seedScenario()
	ctx := context.Background()

	page, err := s.repo.List(ctx, models.AttemptFilter{IncludeFailed: true, Limit: 2, Offset: 1})
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Assert().Equal("att-2", page[0].ID)
	s.Assert().Equal("att-3", page[1].ID)
}

func (s *AttemptRepositorySuite) TestCountIgnoresPagination() {
	s.seedScenario()

	count, err := s.repo.Count(context.Background(), models.AttemptFilter{IncludeFailed: true, Limit: 1, Offset: 3})
	s.Require().NoError(err)
	s.Assert().Equal(4, count)
}

func TestAttemptRepositorySuite(t *testing.T) {
	suite.Run(t, new(AttemptRepositorySuite))
}
