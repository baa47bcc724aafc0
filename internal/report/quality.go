package report

import (
	"github.com/linguaflow/scorereport/internal/models"
)

// BuildQuality aggregates provider self-assessment over scored attempts.
// Averages run over every attempt carrying a quality_metrics object, zeros
// included; a genuine 0.0 confidence reading lowers the average instead of
// vanishing from it.
func BuildQuality(attempts []models.ScoringAttempt) models.QualityReport {
	out := models.QualityReport{
		FlagFrequency: map[string]int{},
	}

	var confidenceSum, agreementSum float64
	for _, a := range attempts {
		if a.Status != models.StatusScored {
			continue
		}
		out.ScoredAttempts++

		if a.Score != nil {
			p := a.Score.Percentage
			switch {
			case p >= 80:
				out.ScoreDistribution.High++
			case p >= 60:
				out.ScoreDistribution.Medium++
			default:
				out.ScoreDistribution.Low++
			}
			if a.Score.Pass {
				out.ScoreDistribution.Passed++
			} else {
				out.ScoreDistribution.Failed++
			}
		}

		if a.Quality == nil {
			continue
		}
		out.WithQualityMetrics++
		confidenceSum += a.Quality.Confidence
		agreementSum += a.Quality.ModelAgreement
		for _, flag := range a.Quality.Flags {
			out.FlagFrequency[flag]++
		}
	}

	// Confidence and agreement live on a 0-1 scale; two-decimal rounding
	// would be too coarse here, so the raw means are reported.
	if out.WithQualityMetrics > 0 {
		out.AvgConfidence = confidenceSum / float64(out.WithQualityMetrics)
		out.AvgModelAgreement = agreementSum / float64(out.WithQualityMetrics)
	}
	return out
}
