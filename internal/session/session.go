// Package session tracks one practice run: the graded answers and the
// running totals derived from them. Totals update incrementally on add and
// delete so the UI never rescans the full history.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/sotaro-w/pfdojo/internal/dealer"
	"github.com/sotaro-w/pfdojo/internal/grading"
	"github.com/sotaro-w/pfdojo/internal/hand"
	"github.com/sotaro-w/pfdojo/internal/ranges"
)

// Record is one graded answer, flattened for persistence.
type Record struct {
	Summary       string
	ScenarioKey   string
	ScenarioType  ranges.ScenarioType
	Hand          hand.Notation
	UserAction    ranges.Action
	CorrectAction ranges.Action
	Level         grading.AnswerLevel
	Acceptable    bool
	Earned        float64
	MaxPossible   float64
	AnsweredAt    time.Time
}

// Grade judges a user's action on a situation and packages the verdict as a
// Record ready for tracking and persistence.
func Grade(sit dealer.Situation, userAction ranges.Action) Record {
	correct := grading.CorrectAction(sit)
	level := grading.Level(sit, userAction, correct)
	earned, maxPossible := grading.Score(level)
	return Record{
		Summary:       sit.Summary(),
		ScenarioKey:   sit.Scenario.Key(),
		ScenarioType:  sit.Scenario.Type,
		Hand:          sit.Notation(),
		UserAction:    userAction,
		CorrectAction: correct,
		Level:         level,
		Acceptable:    grading.IsAcceptable(level, userAction, correct),
		Earned:        earned,
		MaxPossible:   maxPossible,
		AnsweredAt:    time.Now(),
	}
}

// Stats are the running totals for a session.
type Stats struct {
	Total            int
	Correct          int
	WeightedScore    float64
	MaxPossibleScore float64
}

// Accuracy returns the acceptable-answer percentage, 0 for an empty session.
func (s Stats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total) * 100
}

// WeightedPercent returns the weighted score as a percentage of the maximum
// possible, 0 when nothing scoreable has been answered.
func (s Stats) WeightedPercent() float64 {
	if s.MaxPossibleScore == 0 {
		return 0
	}
	return s.WeightedScore / s.MaxPossibleScore * 100
}

// Tracker accumulates records for one session.
type Tracker struct {
	id        uuid.UUID
	startedAt time.Time
	records   []Record
	totals    Stats
}

// NewTracker starts an empty session.
func NewTracker() *Tracker {
	return &Tracker{
		id:        uuid.New(),
		startedAt: time.Now(),
	}
}

// ID returns the session identifier.
func (t *Tracker) ID() uuid.UUID { return t.id }

// StartedAt returns when the session began.
func (t *Tracker) StartedAt() time.Time { return t.startedAt }

// Add appends a graded answer and folds it into the totals.
func (t *Tracker) Add(r Record) {
	t.records = append(t.records, r)
	t.totals.Total++
	if r.Acceptable {
		t.totals.Correct++
	}
	t.totals.WeightedScore += r.Earned
	t.totals.MaxPossibleScore += r.MaxPossible
}

// DeleteAt removes the record at index i and rolls its contribution out of
// the totals, leaving them identical to a recount of the remaining records.
// Returns the removed record, or false when i is out of range.
func (t *Tracker) DeleteAt(i int) (Record, bool) {
	if i < 0 || i >= len(t.records) {
		return Record{}, false
	}
	r := t.records[i]
	t.records = append(t.records[:i], t.records[i+1:]...)
	t.totals.Total--
	if r.Acceptable {
		t.totals.Correct--
	}
	t.totals.WeightedScore -= r.Earned
	t.totals.MaxPossibleScore -= r.MaxPossible
	return r, true
}

// Reset discards all records and totals but keeps the session identity.
func (t *Tracker) Reset() {
	t.records = nil
	t.totals = Stats{}
}

// Records returns a copy of the answer history, oldest first.
func (t *Tracker) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Stats returns the current running totals.
func (t *Tracker) Stats() Stats { return t.totals }

// Duration returns the elapsed session time.
func (t *Tracker) Duration() time.Duration {
	return time.Since(t.startedAt)
}
