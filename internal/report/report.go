// Package report contains the pure reducers that turn a filtered attempt
// sequence into the aggregate report shapes, plus their serializers. Builders
// never touch I/O; every function takes the attempt list most-recent-first,
// as the store returns it.
package report

import "math"

// round2 keeps rates and averages at two decimal places, matching what the
// dashboard renders.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// percent returns part/total as a percentage, 0 when total is 0.
func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(part) / float64(total) * 100)
}
