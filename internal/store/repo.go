package store

import (
	"context"
	"time"
)

// AnswerEventData captures one graded answer for persistence.
type AnswerEventData struct {
	SessionID     string
	ScenarioKey   string
	ScenarioType  string
	Hand          string
	UserAction    string
	CorrectAction string
	Level         string
	Acceptable    bool
	Earned        float64
	MaxPossible   float64
	TimeMs        int
}

// SessionEventData captures a session lifecycle event. The totals are only
// meaningful on the "end" action.
type SessionEventData struct {
	SessionID     string
	Action        string
	Questions     int
	Correct       int
	WeightedScore float64
	MaxScore      float64
	DurationSecs  int
	LevelCounts   map[string]int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
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

// AnswerRow is a persisted answer as read back from the event log.
type AnswerRow struct {
	AnswerEventData
	Timestamp time.Time
}

// OverallStats aggregates the full answer history.
type OverallStats struct {
	Total         int
	Correct       int
	WeightedScore float64
	MaxScore      float64
	LevelCounts   map[string]int
}

// Accuracy returns the acceptable-answer percentage, 0 when empty.
func (s OverallStats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total) * 100
}

// ScenarioStats aggregates answers for one scenario key.
type ScenarioStats struct {
	ScenarioKey string
	Total       int
	Correct     int
}

// Accuracy returns the acceptable-answer percentage for the scenario.
func (s ScenarioStats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total) * 100
}

// SessionSummary is a completed session as read back from the event log.
type SessionSummary struct {
	SessionID     string
	EndedAt       time.Time
	Questions     int
	Correct       int
	WeightedScore float64
	MaxScore      float64
	DurationSecs  int
}

// LLMUsage aggregates LLM requests per model.
type LLMUsage struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// LLMPurposeUsage aggregates LLM requests per purpose.
type LLMPurposeUsage struct {
	Purpose      string
	Requests     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMEventRow is one persisted LLM request with its identity, for the
// inspection commands.
type LLMEventRow struct {
	LLMRequestEventData
	ID        int
	Timestamp time.Time
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendAnswer records a graded answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendSession records a session start or end.
	AppendSession(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// OverallStats aggregates all persisted answers.
	OverallStats(ctx context.Context) (OverallStats, error)

	// ScenarioStats aggregates answers per scenario key, worst accuracy first.
	ScenarioStats(ctx context.Context) ([]ScenarioStats, error)

	// RecentAnswers returns the newest answers, most recent first.
	RecentAnswers(ctx context.Context, limit int) ([]AnswerRow, error)

	// RecentSessions returns the newest completed sessions, most recent first.
	RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error)

	// LLMUsage aggregates LLM requests per model.
	LLMUsage(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByPurpose aggregates LLM requests per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// RecentLLMEvents returns the newest LLM requests, most recent first.
	RecentLLMEvents(ctx context.Context, limit int) ([]LLMEventRow, error)

	// LLMEventByID fetches one LLM request, nil when absent.
	LLMEventByID(ctx context.Context, id int) (*LLMEventRow, error)
}
