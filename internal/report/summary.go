package report

import (
	"github.com/linguaflow/scorereport/internal/models"
)

// BuildSummary reduces the attempt list to overall counts, score averages and
// per-provider/per-level breakdowns.
func BuildSummary(attempts []models.ScoringAttempt) models.SummaryReport {
	out := models.SummaryReport{
		TotalAttempts: len(attempts),
		ByProvider:    []models.GroupBreakdown{},
		ByLevel:       []models.GroupBreakdown{},
	}
	if len(attempts) == 0 {
		return out
	}

	// Input is ordered created_at descending: the first element is the most
	// recent attempt, the last is the oldest.
	last := attempts[0].CreatedAt
	first := attempts[len(attempts)-1].CreatedAt
	out.LastAttemptAt = &last
	out.FirstAttemptAt = &first

	var (
		scoreSum       float64
		passCount      int
		processingSum  int64
		processingSeen int
	)
	for _, a := range attempts {
		switch a.Status {
		case models.StatusScored:
			out.ScoredAttempts++
			if a.Score != nil {
				scoreSum += a.Score.Percentage
				if a.Score.Pass {
					passCount++
				}
			}
		case models.StatusFailed:
			out.FailedAttempts++
		}
		if a.ProcessingTimeMS != nil {
			processingSum += *a.ProcessingTimeMS
			processingSeen++
		}
	}

	out.SuccessRate = percent(out.ScoredAttempts, out.TotalAttempts)
	if out.ScoredAttempts > 0 {
		out.AverageScore = round2(scoreSum / float64(out.ScoredAttempts))
		out.PassRate = percent(passCount, out.ScoredAttempts)
	}
	if processingSeen > 0 {
		out.AverageProcessingMS = round2(float64(processingSum) / float64(processingSeen))
	}

	out.ByProvider = breakdown(attempts, func(a models.ScoringAttempt) string { return a.Provider })
	out.ByLevel = breakdown(attempts, func(a models.ScoringAttempt) string { return a.Level })
	return out
}

// breakdown groups attempts by key in first-seen order and computes each
// group's size and scored fraction.
func breakdown(attempts []models.ScoringAttempt, key func(models.ScoringAttempt) string) []models.GroupBreakdown {
	type bucket struct {
		count  int
		scored int
	}
	order := []string{}
	buckets := map[string]*bucket{}
	for _, a := range attempts {
		k := key(a)
		b, ok := buckets[k]
		if !ok {
			b = &bucket{}
			buckets[k] = b
			order = append(order, k)
		}
		b.count++
		if a.Status == models.StatusScored {
			b.scored++
		}
	}

	out := make([]models.GroupBreakdown, 0, len(order))
	for _, k := range order {
		b := buckets[k]
		out = append(out, models.GroupBreakdown{
			Key:         k,
			Count:       b.count,
			SuccessRate: percent(b.scored, b.count),
		})
	}
	return out
}
