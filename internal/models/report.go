package models

import "time"

// ReportFormat is the requested output encoding.
type ReportFormat string

const (
	FormatJSON ReportFormat = "json"
	FormatCSV  ReportFormat = "csv"
	FormatPDF  ReportFormat = "pdf"
)

// ReportType selects which builder reduces the attempt set.
type ReportType string

const (
	ReportSummary      ReportType = "summary"
	ReportDetailed     ReportType = "detailed"
	ReportPerformance  ReportType = "performance"
	ReportQuality      ReportType = "quality"
	ReportUserProgress ReportType = "user_progress"
)

// ValidFormat reports whether f is a supported output format.
func ValidFormat(f ReportFormat) bool {
	switch f {
	case FormatJSON, FormatCSV, FormatPDF:
		return true
	}
	return false
}

// ValidReportType reports whether t names a report builder.
func ValidReportType(t ReportType) bool {
	switch t {
	case ReportSummary, ReportDetailed, ReportPerformance, ReportQuality, ReportUserProgress:
		return true
	}
	return false
}

// ReportQuery is the caller-supplied filter/shape descriptor for one report
// request. DateFrom <= DateTo must hold; the orchestrator rejects the query
// otherwise.
type ReportQuery struct {
	Format          ReportFormat
	Type            ReportType
	DateFrom        time.Time
	DateTo          time.Time
	Provider        string
	Level           string
	TaskType        string
	UserID          string
	SessionID       string
	IncludeFailed   bool
	IncludeMetadata bool
}

// GroupBreakdown is a per-key slice of the summary report. SuccessRate is the
// percentage of attempts in the group that reached scored status.
type GroupBreakdown struct {
	Key         string  `json:"key"`
	Count       int     `json:"count"`
	SuccessRate float64 `json:"success_rate"`
}

type SummaryReport struct {
	TotalAttempts       int              `json:"total_attempts"`
	ScoredAttempts      int              `json:"scored_attempts"`
	FailedAttempts      int              `json:"failed_attempts"`
	SuccessRate         float64          `json:"success_rate"`
	FirstAttemptAt      *time.Time       `json:"first_attempt_at,omitempty"`
	LastAttemptAt       *time.Time       `json:"last_attempt_at,omitempty"`
	AverageScore        float64          `json:"average_score"`
	PassRate            float64          `json:"pass_rate"`
	AverageProcessingMS float64          `json:"average_processing_ms"`
	ByProvider          []GroupBreakdown `json:"by_provider"`
	ByLevel             []GroupBreakdown `json:"by_level"`
}

// AttemptDetail is the flattened per-attempt row of the detailed report.
// Fields after ProcessingTimeMS are only populated when the caller asked for
// metadata; they must be absent from the serialized output otherwise.
type AttemptDetail struct {
	ID               string        `json:"id"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
	UserID           string        `json:"user_id"`
	Provider         string        `json:"provider"`
	Level            string        `json:"level"`
	TaskType         string        `json:"task_type"`
	Status           AttemptStatus `json:"status"`
	ProcessingTimeMS *int64        `json:"processing_time_ms"`

	TotalScore *float64 `json:"total_score,omitempty"`
	MaxScore   *float64 `json:"max_score,omitempty"`
	Percentage *float64 `json:"percentage,omitempty"`
	Pass       *bool    `json:"pass,omitempty"`

	SessionID      *string            `json:"exam_session_id,omitempty"`
	Quality        *QualityMetrics    `json:"quality_metrics,omitempty"`
	DetailedScores map[string]float64 `json:"detailed_scores,omitempty"`
	Feedback       string             `json:"feedback,omitempty"`
	ErrorDetails   *string            `json:"error_details,omitempty"`
}

type DetailedReport struct {
	TotalCount int             `json:"total_count"`
	Attempts   []AttemptDetail `json:"attempts"`
}

// ProcessingTimeStats summarizes processing times over attempts with a
// positive sample; every field is zero when no attempt qualifies.
type ProcessingTimeStats struct {
	Count    int     `json:"count"`
	MeanMS   float64 `json:"mean_ms"`
	MedianMS int64   `json:"median_ms"`
	P95MS    int64   `json:"p95_ms"`
	P99MS    int64   `json:"p99_ms"`
	MinMS    int64   `json:"min_ms"`
	MaxMS    int64   `json:"max_ms"`
}

// HourlyBucket is one UTC hour-of-day bucket of the performance report.
type HourlyBucket struct {
	Hour            int     `json:"hour"`
	Count           int     `json:"count"`
	AvgProcessingMS float64 `json:"avg_processing_ms"`
}

type PerformanceReport struct {
	ProcessingTime     ProcessingTimeStats   `json:"processing_time"`
	HourlyDistribution []HourlyBucket        `json:"hourly_distribution"`
	StatusDistribution map[AttemptStatus]int `json:"status_distribution"`
}

type ScoreDistribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

type QualityReport struct {
	ScoredAttempts     int               `json:"scored_attempts"`
	WithQualityMetrics int               `json:"with_quality_metrics"`
	AvgConfidence      float64           `json:"avg_confidence"`
	AvgModelAgreement  float64           `json:"avg_model_agreement"`
	FlagFrequency      map[string]int    `json:"flag_frequency"`
	ScoreDistribution  ScoreDistribution `json:"score_distribution"`
}

// UserProgress summarizes one user's scoring history. ImprovementTrend is the
// most-recent scored percentage minus the oldest one, absent with fewer than
// two scored attempts.
type UserProgress struct {
	UserID           string   `json:"user_id"`
	TotalAttempts    int      `json:"total_attempts"`
	ScoredAttempts   int      `json:"scored_attempts"`
	AverageScore     float64  `json:"average_score"`
	BestScore        float64  `json:"best_score"`
	LatestScore      float64  `json:"latest_score"`
	ImprovementTrend *float64 `json:"improvement_trend,omitempty"`
	Providers        []string `json:"providers"`
	Levels           []string `json:"levels"`
	Tasks            []string `json:"tasks"`
}

// UserProgressReport has two shapes: privileged callers get the grouped form
// (TotalUsers + Users), everyone else gets Summary for their own attempts.
type UserProgressReport struct {
	TotalUsers int            `json:"total_users,omitempty"`
	Users      []UserProgress `json:"users,omitempty"`
	Summary    *UserProgress  `json:"summary,omitempty"`
}

// ReportFilters echoes back the filters that shaped a report.
type ReportFilters struct {
	Provider      string `json:"provider,omitempty"`
	Level         string `json:"level,omitempty"`
	TaskType      string `json:"task_type,omitempty"`
	UserID        string `json:"user_id,omitempty"`
	SessionID     string `json:"exam_session_id,omitempty"`
	IncludeFailed bool   `json:"include_failed"`
}

// ReportMeta accompanies every JSON report.
type ReportMeta struct {
	GeneratedAt time.Time     `json:"generated_at"`
	ReportType  ReportType    `json:"report_type"`
	DateFrom    time.Time     `json:"date_from"`
	DateTo      time.Time     `json:"date_to"`
	Filters     ReportFilters `json:"filters"`
}

// ReportEnvelope is the JSON response body for format=json.
type ReportEnvelope struct {
	Success bool       `json:"success"`
	Report  any        `json:"report"`
	Meta    ReportMeta `json:"meta"`
}

// RenderedReport is a serialized report ready to be written to the response.
// Filename is empty for inline JSON and set for attachment formats.
type RenderedReport struct {
	ContentType string
	Filename    string
	Body        []byte
}
