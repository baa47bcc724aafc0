package models

import "time"

// AttemptStatus is the lifecycle state of a scoring attempt. Transitions are
// monotonic: queued -> processing -> scored | failed.
type AttemptStatus string

const (
	StatusQueued     AttemptStatus = "queued"
	StatusProcessing AttemptStatus = "processing"
	StatusScored     AttemptStatus = "scored"
	StatusFailed     AttemptStatus = "failed"
)

// Statuses lists every attempt status in lifecycle order.
var Statuses = []AttemptStatus{StatusQueued, StatusProcessing, StatusScored, StatusFailed}

// CEFR levels attempts are classified under.
const (
	LevelA1 = "A1"
	LevelA2 = "A2"
	LevelB1 = "B1"
	LevelB2 = "B2"
	LevelC1 = "C1"
	LevelC2 = "C2"
)

// Task types produced by the exam pipeline.
const (
	TaskWriting   = "writing"
	TaskSpeaking  = "speaking"
	TaskReading   = "reading"
	TaskListening = "listening"
	TaskGrammar   = "grammar"
)

// Score is the payload attached to an attempt once a provider has scored it.
type Score struct {
	TotalScore     float64            `json:"total_score"`
	MaxScore       float64            `json:"max_score"`
	Percentage     float64            `json:"percentage"`
	Pass           bool               `json:"pass"`
	DetailedScores map[string]float64 `json:"detailed_scores,omitempty"`
	Feedback       string             `json:"feedback,omitempty"`
}

// QualityMetrics carries the provider's self-assessment of a scoring run.
// Confidence and ModelAgreement are in [0, 1].
type QualityMetrics struct {
	Confidence     float64  `json:"confidence"`
	ModelAgreement float64  `json:"model_agreement"`
	Flags          []string `json:"flags,omitempty"`
}

// ScoringAttempt is one scoring request/result pair. Score is present iff the
// attempt is scored; failed attempts carry ErrorDetails instead.
type ScoringAttempt struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	SessionID        *string         `json:"exam_session_id,omitempty"`
	Provider         string          `json:"provider"`
	Level            string          `json:"level"`
	TaskType         string          `json:"task_type"`
	Status           AttemptStatus   `json:"status"`
	Score            *Score          `json:"score,omitempty"`
	ErrorDetails     *string         `json:"error_details,omitempty"`
	ProcessingTimeMS *int64          `json:"processing_time_ms,omitempty"`
	Quality          *QualityMetrics `json:"quality_metrics,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// AttemptFilter describes which attempts to fetch from the store. Zero values
// mean "no constraint". DateFrom/DateTo bound created_at inclusively.
// IncludeFailed=false excludes failed attempts only; queued and processing
// attempts always match.
type AttemptFilter struct {
	UserID        string
	SessionID     string
	Provider      string
	Level         string
	TaskType      string
	Status        string
	DateFrom      time.Time
	DateTo        time.Time
	IncludeFailed bool
	Limit         int
	Offset        int
}
