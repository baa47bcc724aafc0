package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/scorereport/internal/models"
	"github.com/linguaflow/scorereport/internal/report"
)

func timedAttempt(id string, created time.Time, ms int64, status models.AttemptStatus) models.ScoringAttempt {
	a := models.ScoringAttempt{ID: id, Status: status, CreatedAt: created, UpdatedAt: created}
	if ms >= 0 {
		a.ProcessingTimeMS = &ms
	}
	return a
}

func TestBuildPerformance_Empty(t *testing.T) {
	got := report.BuildPerformance(nil)

	assert.Zero(t, got.ProcessingTime.Count)
	assert.Zero(t, got.ProcessingTime.MeanMS)
	assert.Zero(t, got.ProcessingTime.P95MS)
	assert.Zero(t, got.ProcessingTime.P99MS)
	assert.Empty(t, got.HourlyDistribution)
	assert.Equal(t, 0, got.StatusDistribution[models.StatusScored])
}

func TestBuildPerformance_Percentiles(t *testing.T) {
	var attempts []models.ScoringAttempt
	// 100 samples: 10, 20, ..., 1000ms, spread across two hours.
	for i := 1; i <= 100; i++ {
		hour := 9
		if i > 50 {
			hour = 10
		}
		created := time.Date(2026, 3, 10, hour, i%60, 0, 0, time.UTC)
		attempts = append(attempts, timedAttempt("a", created, int64(i*10), models.StatusScored))
	}

	got := report.BuildPerformance(attempts)

	assert.Equal(t, 100, got.ProcessingTime.Count)
	assert.InDelta(t, 505.0, got.ProcessingTime.MeanMS, 0.001)
	assert.Equal(t, int64(510), got.ProcessingTime.MedianMS, "sorted[n/2]")
	assert.Equal(t, int64(960), got.ProcessingTime.P95MS, "sorted[floor(n*0.95)]")
	assert.Equal(t, int64(1000), got.ProcessingTime.P99MS, "sorted[floor(n*0.99)]")
	assert.Equal(t, int64(10), got.ProcessingTime.MinMS)
	assert.Equal(t, int64(1000), got.ProcessingTime.MaxMS)
	assert.LessOrEqual(t, got.ProcessingTime.P95MS, got.ProcessingTime.P99MS)
}

func TestBuildPerformance_SkipsNonPositiveSamples(t *testing.T) {
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	attempts := []models.ScoringAttempt{
		timedAttempt("a", created, 100, models.StatusScored),
		timedAttempt("b", created, 0, models.StatusScored),
		timedAttempt("c", created, -1, models.StatusQueued), // nil processing time
	}

	got := report.BuildPerformance(attempts)

	assert.Equal(t, 1, got.ProcessingTime.Count)
	assert.Equal(t, int64(100), got.ProcessingTime.MinMS)
}

func TestBuildPerformance_HourlyBuckets(t *testing.T) {
	attempts := []models.ScoringAttempt{
		timedAttempt("a", time.Date(2026, 3, 10, 23, 5, 0, 0, time.UTC), 100, models.StatusScored),
		timedAttempt("b", time.Date(2026, 3, 10, 23, 50, 0, 0, time.UTC), 300, models.StatusScored),
		timedAttempt("c", time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC), -1, models.StatusQueued),
	}

	got := report.BuildPerformance(attempts)

	require.Len(t, got.HourlyDistribution, 2)
	// Buckets sorted ascending by hour; hours without attempts omitted.
	assert.Equal(t, models.HourlyBucket{Hour: 4, Count: 1, AvgProcessingMS: 0}, got.HourlyDistribution[0])
	assert.Equal(t, models.HourlyBucket{Hour: 23, Count: 2, AvgProcessingMS: 200}, got.HourlyDistribution[1])
}

func TestBuildPerformance_BucketsUseUTCHour(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	attempts := []models.ScoringAttempt{
		timedAttempt("a", time.Date(2026, 3, 10, 22, 0, 0, 0, est), 100, models.StatusScored),
	}

	got := report.BuildPerformance(attempts)

	require.Len(t, got.HourlyDistribution, 1)
	assert.Equal(t, 3, got.HourlyDistribution[0].Hour, "22:00 EST is 03:00 UTC")
}

func TestBuildPerformance_StatusDistribution(t *testing.T) {
	got := report.BuildPerformance(scenarioAttempts())

	assert.Equal(t, 7, got.StatusDistribution[models.StatusScored])
	assert.Equal(t, 3, got.StatusDistribution[models.StatusFailed])
	assert.Equal(t, 0, got.StatusDistribution[models.StatusQueued])
	assert.Equal(t, 0, got.StatusDistribution[models.StatusProcessing])
}
