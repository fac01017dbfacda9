package store

import (
	"context"
	"time"
)

// LLMEventData captures a single content-generation call.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM event with its identity fields.
type LLMEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMEventData
}

// EventRepo records and queries content-generation events.
type EventRepo interface {
	// AppendLLMEvent records a generation call. Best-effort at call sites:
	// a failed insert is logged, never propagated.
	AppendLLMEvent(ctx context.Context, data LLMEventData) error

	// RecentLLMEvents returns the most recent events, newest first.
	RecentLLMEvents(ctx context.Context, limit int) ([]LLMEventRecord, error)

	// GetLLMEvent returns a single event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)
}

// ActivityRecord is one entry in the activity log.
type ActivityRecord struct {
	ID        int
	UserID    string
	Kind      string // "assessment", "quiz", "video-search", ...
	Detail    string
	Timestamp time.Time
}

// ActivityRepo is the fire-and-forget activity/progress store.
type ActivityRepo interface {
	// LogActivity appends an activity record for the user.
	LogActivity(ctx context.Context, userID, kind, detail string) error

	// UpdateProgress upserts the completion percentage for a subject.
	UpdateProgress(ctx context.Context, subject string, percentage float64) error

	// Progress returns the stored percentage per subject.
	Progress(ctx context.Context) (map[string]float64, error)
}

// AssessmentRecord is a completed assessment with its serialized report.
type AssessmentRecord struct {
	ID        string // UUID
	Subject   string
	Score     int
	Total     int
	Level     string // overall recommended level
	Report    string // JSON-encoded assessment.Report
	Timestamp time.Time
}

// AssessmentRepo stores finished assessments.
type AssessmentRepo interface {
	// SaveAssessment persists a completed assessment.
	SaveAssessment(ctx context.Context, rec AssessmentRecord) error

	// RecentAssessments returns the most recent assessments, newest first.
	RecentAssessments(ctx context.Context, limit int) ([]AssessmentRecord, error)
}
