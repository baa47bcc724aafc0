package report

import (
	"sort"

	"github.com/linguaflow/scorereport/internal/models"
)

// BuildPerformance computes processing-time statistics, an hourly histogram
// and the status distribution of the attempt list.
func BuildPerformance(attempts []models.ScoringAttempt) models.PerformanceReport {
	out := models.PerformanceReport{
		HourlyDistribution: []models.HourlyBucket{},
		StatusDistribution: map[models.AttemptStatus]int{},
	}
	for _, status := range models.Statuses {
		out.StatusDistribution[status] = 0
	}

	var samples []int64
	for _, a := range attempts {
		out.StatusDistribution[a.Status]++
		if a.ProcessingTimeMS != nil && *a.ProcessingTimeMS > 0 {
			samples = append(samples, *a.ProcessingTimeMS)
		}
	}

	out.ProcessingTime = processingStats(samples)
	out.HourlyDistribution = hourlyHistogram(attempts)
	return out
}

// processingStats sorts the samples ascending and picks the spec'd order
// statistics. All fields stay zero on an empty sample set.
func processingStats(samples []int64) models.ProcessingTimeStats {
	n := len(samples)
	if n == 0 {
		return models.ProcessingTimeStats{}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })

	var sum int64
	for _, s := range samples {
		sum += s
	}

	return models.ProcessingTimeStats{
		Count:    n,
		MeanMS:   round2(float64(sum) / float64(n)),
		MedianMS: samples[n/2],
		P95MS:    samples[int(float64(n)*0.95)],
		P99MS:    samples[int(float64(n)*0.99)],
		MinMS:    samples[0],
		MaxMS:    samples[n-1],
	}
}

// hourlyHistogram buckets attempts by the UTC hour of created_at. A bucket's
// average covers only its attempts that carry a processing time; hours with
// no attempts are omitted.
func hourlyHistogram(attempts []models.ScoringAttempt) []models.HourlyBucket {
	type bucket struct {
		count    int
		timeSum  int64
		timeSeen int
	}
	buckets := map[int]*bucket{}
	for _, a := range attempts {
		hour := a.CreatedAt.UTC().Hour()
		b, ok := buckets[hour]
		if !ok {
			b = &bucket{}
			buckets[hour] = b
		}
		b.count++
		if a.ProcessingTimeMS != nil {
			b.timeSum += *a.ProcessingTimeMS
			b.timeSeen++
		}
	}

	hours := make([]int, 0, len(buckets))
	for h := range buckets {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	out := make([]models.HourlyBucket, 0, len(hours))
	for _, h := range hours {
		b := buckets[h]
		hb := models.HourlyBucket{Hour: h, Count: b.count}
		if b.timeSeen > 0 {
			hb.AvgProcessingMS = round2(float64(b.timeSum) / float64(b.timeSeen))
		}
		out = append(out, hb)
	}
	return out
}
