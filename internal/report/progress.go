package report

import (
	"github.com/linguaflow/scorereport/internal/models"
)

// BuildUserProgress has two modes. Grouped (privileged callers): one summary
// per user plus the user count. Ungrouped: a single summary for userID, which
// is the caller's own id after access control has pinned the filter.
func BuildUserProgress(attempts []models.ScoringAttempt, grouped bool, userID string) models.UserProgressReport {
	if !grouped {
		summary := summarizeUser(userID, attempts)
		return models.UserProgressReport{Summary: &summary}
	}

	order := []string{}
	byUser := map[string][]models.ScoringAttempt{}
	for _, a := range attempts {
		if _, ok := byUser[a.UserID]; !ok {
			order = append(order, a.UserID)
		}
		byUser[a.UserID] = append(byUser[a.UserID], a)
	}

	users := make([]models.UserProgress, 0, len(order))
	for _, id := range order {
		users = append(users, summarizeUser(id, byUser[id]))
	}
	return models.UserProgressReport{
		TotalUsers: len(users),
		Users:      users,
	}
}

// summarizeUser reduces one user's attempts, which arrive most-recent-first.
func summarizeUser(userID string, attempts []models.ScoringAttempt) models.UserProgress {
	out := models.UserProgress{
		UserID:    userID,
		Providers: []string{},
		Levels:    []string{},
		Tasks:     []string{},
	}

	var (
		scoreSum  float64
		scores    []float64 // most recent first
		seenProv  = map[string]struct{}{}
		seenLevel = map[string]struct{}{}
		seenTask  = map[string]struct{}{}
	)
	for _, a := range attempts {
		out.TotalAttempts++
		if _, ok := seenProv[a.Provider]; !ok {
			seenProv[a.Provider] = struct{}{}
			out.Providers = append(out.Providers, a.Provider)
		}
		if _, ok := seenLevel[a.Level]; !ok {
			seenLevel[a.Level] = struct{}{}
			out.Levels = append(out.Levels, a.Level)
		}
		if _, ok := seenTask[a.TaskType]; !ok {
			seenTask[a.TaskType] = struct{}{}
			out.Tasks = append(out.Tasks, a.TaskType)
		}

		if a.Status != models.StatusScored || a.Score == nil {
			continue
		}
		out.ScoredAttempts++
		p := a.Score.Percentage
		scoreSum += p
		scores = append(scores, p)
		if p > out.BestScore {
			out.BestScore = p
		}
	}

	if out.ScoredAttempts > 0 {
		out.AverageScore = round2(scoreSum / float64(out.ScoredAttempts))
		out.LatestScore = scores[0]
	}
	if out.ScoredAttempts >= 2 {
		trend := round2(scores[0] - scores[len(scores)-1])
		out.ImprovementTrend = &trend
	}
	return out
}
