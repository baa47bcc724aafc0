package report

import (
	"github.com/linguaflow/scorereport/internal/models"
)

// BuildDetailed flattens every attempt into one row. Session id, quality
// metrics, per-criterion scores, feedback and error details only appear when
// the caller asked for metadata.
func BuildDetailed(attempts []models.ScoringAttempt, includeMetadata bool) models.DetailedReport {
	rows := make([]models.AttemptDetail, 0, len(attempts))
	for _, a := range attempts {
		row := models.AttemptDetail{
			ID:               a.ID,
			CreatedAt:        a.CreatedAt,
			UpdatedAt:        a.UpdatedAt,
			UserID:           a.UserID,
			Provider:         a.Provider,
			Level:            a.Level,
			TaskType:         a.TaskType,
			Status:           a.Status,
			ProcessingTimeMS: a.ProcessingTimeMS,
		}
		if a.Score != nil {
			totalScore := a.Score.TotalScore
			maxScore := a.Score.MaxScore
			percentage := a.Score.Percentage
			pass := a.Score.Pass
			row.TotalScore = &totalScore
			row.MaxScore = &maxScore
			row.Percentage = &percentage
			row.Pass = &pass
		}
		if includeMetadata {
			row.SessionID = a.SessionID
			row.Quality = a.Quality
			row.ErrorDetails = a.ErrorDetails
			if a.Score != nil {
				row.DetailedScores = a.Score.DetailedScores
				row.Feedback = a.Score.Feedback
			}
		}
		rows = append(rows, row)
	}

	return models.DetailedReport{
		TotalCount: len(attempts),
		Attempts:   rows,
	}
}
