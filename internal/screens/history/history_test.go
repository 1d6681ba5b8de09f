package history

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sotaro-w/pfdojo/internal/dealer"
	"github.com/sotaro-w/pfdojo/internal/i18n"
	sess "github.com/sotaro-w/pfdojo/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// filledTracker answers three generated spots with their first option.
func filledTracker(t *testing.T) *sess.Tracker {
	t.Helper()
	rng := rand.New(rand.NewPCG(3, 3))
	gen := dealer.New(rng, i18n.En)
	tracker := sess.NewTracker()
	for i := 0; i < 3; i++ {
		sit, err := gen.Generate(tracker.Stats().Accuracy())
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		tracker.Add(sess.Grade(sit, sit.Options[0]))
	}
	return tracker
}

func TestHistoryEmptyView(t *testing.T) {
	h := New(sess.NewTracker(), i18n.En)
	if !strings.Contains(h.View(80, 24), "No answers yet") {
		t.Error("expected empty-log message")
	}
}

func TestHistoryShowsNewestFirst(t *testing.T) {
	tracker := filledTracker(t)
	records := tracker.Records()
	h := New(tracker, i18n.En)

	view := h.View(100, 24)
	newest := records[len(records)-1]
	if !strings.Contains(view, string(newest.Hand)) {
		t.Errorf("view missing newest hand %s:\n%s", newest.Hand, view)
	}
}

func TestHistoryDeleteRollsBackTotals(t *testing.T) {
	tracker := filledTracker(t)
	records := tracker.Records()
	newest := records[len(records)-1]

	h := New(tracker, i18n.En)

	// Selection starts on the newest row; deleting it must remove the last
	// tracker record and shrink the totals.
	scr, _ := h.Update(keyPress('d'))
	h = scr.(*HistoryScreen)

	left := tracker.Records()
	if len(left) != 2 {
		t.Fatalf("records after delete = %d, want 2", len(left))
	}
	for _, r := range left {
		if r.AnsweredAt.Equal(newest.AnsweredAt) && r.Hand == newest.Hand && r.Summary == newest.Summary {
			t.Error("newest record still present after delete")
		}
	}
	if got := tracker.Stats().Total; got != 2 {
		t.Errorf("total after delete = %d, want 2", got)
	}
}

func TestHistoryDeleteSelectedRow(t *testing.T) {
	tracker := filledTracker(t)
	records := tracker.Records()
	oldest := records[0]

	h := New(tracker, i18n.En)

	// Move to the bottom row (the oldest answer) and delete it.
	for i := 0; i < 2; i++ {
		scr, _ := h.Update(keyPress('j'))
		h = scr.(*HistoryScreen)
	}
	scr, _ := h.Update(keyPress('d'))
	h = scr.(*HistoryScreen)

	left := tracker.Records()
	if len(left) != 2 {
		t.Fatalf("records after delete = %d, want 2", len(left))
	}
	if left[0].Hand == oldest.Hand && left[0].AnsweredAt.Equal(oldest.AnsweredAt) {
		t.Error("oldest record still first after deleting it")
	}
	if h.selected != 1 {
		t.Errorf("selection = %d, want clamped to last row", h.selected)
	}
}

func TestHistoryDeleteOnEmptyIsNoop(t *testing.T) {
	h := New(sess.NewTracker(), i18n.En)
	if _, cmd := h.Update(keyPress('d')); cmd != nil {
		t.Error("expected no command")
	}
}
