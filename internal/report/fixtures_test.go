package report_test

import (
	"time"

	"github.com/linguaflow/scorereport/internal/models"
)

var baseTime = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

// scenarioAttempts builds the canonical fixture: 7 scored attempts with the
// given percentages plus 3 failed ones, most recent first.
func scenarioAttempts() []models.ScoringAttempt {
	percentages := []float64{90, 85, 40, 72, 65, 55, 95}
	passes := []bool{true, true, false, true, false, false, true}

	var attempts []models.ScoringAttempt
	for i, p := range percentages {
		attempts = append(attempts, scoredAttempt(i, p, passes[i]))
	}
	for i := 0; i < 3; i++ {
		attempts = append(attempts, failedAttempt(len(percentages)+i))
	}
	return attempts
}

func scoredAttempt(n int, percentage float64, pass bool) models.ScoringAttempt {
	created := baseTime.Add(-time.Duration(n) * time.Hour)
	processing := int64(1200 + 100*n)
	return models.ScoringAttempt{
		ID:       attemptID(n),
		UserID:   "user-1",
		Provider: "openai",
		Level:    models.LevelB2,
		TaskType: models.TaskWriting,
		Status:   models.StatusScored,
		Score: &models.Score{
			TotalScore: percentage,
			MaxScore:   100,
			Percentage: percentage,
			Pass:       pass,
		},
		ProcessingTimeMS: &processing,
		CreatedAt:        created,
		UpdatedAt:        created,
	}
}

func failedAttempt(n int) models.ScoringAttempt {
	created := baseTime.Add(-time.Duration(n) * time.Hour)
	details := "provider timeout"
	return models.ScoringAttempt{
		ID:           attemptID(n),
		UserID:       "user-1",
		Provider:     "anthropic",
		Level:        models.LevelB1,
		TaskType:     models.TaskSpeaking,
		Status:       models.StatusFailed,
		ErrorDetails: &details,
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}

func attemptID(n int) string {
	return string(rune('a'+n)) + "-attempt"
}
