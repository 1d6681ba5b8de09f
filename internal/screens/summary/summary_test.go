package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/sotaro-w/pfdojo/internal/coach"
	"github.com/sotaro-w/pfdojo/internal/grading"
	"github.com/sotaro-w/pfdojo/internal/i18n"
	"github.com/sotaro-w/pfdojo/internal/llm"
	"github.com/sotaro-w/pfdojo/internal/ranges"
	"github.com/sotaro-w/pfdojo/internal/router"
	sess "github.com/sotaro-w/pfdojo/internal/session"
)

func testSummary() *SummaryScreen {
	records := []sess.Record{
		{
			Summary: "UTG open", ScenarioKey: "UTG", Hand: "AA",
			UserAction: ranges.Raise, CorrectAction: ranges.Raise,
			Level: grading.Obvious, Acceptable: true, Earned: 0.5, MaxPossible: 0.5,
		},
		{
			Summary: "BB vs BTN", ScenarioKey: "BB_vs_BTN", Hand: "72o",
			UserAction: ranges.Call, CorrectAction: ranges.Fold,
			Level: grading.CriticalMistake, Acceptable: false, Earned: -0.5, MaxPossible: 1,
		},
		{
			Summary: "CO open", ScenarioKey: "CO", Hand: "A8s",
			UserAction: ranges.Fold, CorrectAction: ranges.Raise,
			Level: grading.Borderline, Acceptable: true, Earned: 1, MaxPossible: 1,
		},
	}
	stats := sess.Stats{Total: 3, Correct: 2, WeightedScore: 1.0, MaxPossibleScore: 2.5}
	return New(stats, records, 95*time.Second, i18n.En, nil)
}

func TestSummaryViewTotals(t *testing.T) {
	view := testSummary().View(100, 30)

	for _, want := range []string{
		"Session complete!",
		"Duration: 1:35",
		"Hands: 3",
		"1.0/2.5",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestSummaryVerdictBreakdown(t *testing.T) {
	view := testSummary().View(100, 30)

	for _, level := range []grading.AnswerLevel{
		grading.Obvious, grading.Borderline, grading.CriticalMistake,
	} {
		label := i18n.T(i18n.En, "verdict."+string(level), nil)
		if !strings.Contains(view, label) {
			t.Errorf("view missing verdict %q", label)
		}
	}
}

func TestSummaryListsLeakScenarios(t *testing.T) {
	view := testSummary().View(100, 30)

	// Only the unacceptable answer shows up under "Work on".
	if !strings.Contains(view, "Work on") || !strings.Contains(view, "BB_vs_BTN") {
		t.Errorf("view missing leak section:\n%s", view)
	}
	if strings.Contains(view, "CO           ") && strings.Contains(view, "pts lost, CO") {
		t.Error("acceptable answers must not appear as leaks")
	}
}

func TestSummaryEnterPops(t *testing.T) {
	s := testSummary()
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestSummaryLeakReport(t *testing.T) {
	records := make([]sess.Record, 6)
	for i := range records {
		records[i] = sess.Record{
			Summary: "UTG open", ScenarioKey: "UTG", Hand: "A9o",
			UserAction: ranges.Raise, CorrectAction: ranges.Fold,
			Level: grading.Wrong, MaxPossible: 1,
		}
	}
	stats := sess.Stats{Total: 6}
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: []byte(`{"leaks":[{"pattern":"overplays offsuit aces","severity":"high","advice":"Fold A9o from UTG"}],"summary":"Too loose from early position."}`),
	})
	s := New(stats, records, time.Minute, i18n.En, coach.New(mock, i18n.En))

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if cmd == nil {
		t.Fatal("expected analyze command")
	}
	s.Update(cmd())

	view := s.View(100, 40)
	if !strings.Contains(view, "Too loose from early position.") {
		t.Errorf("view missing report summary:\n%s", view)
	}
	if !strings.Contains(view, "Fold A9o from UTG") {
		t.Errorf("view missing leak advice:\n%s", view)
	}
}
