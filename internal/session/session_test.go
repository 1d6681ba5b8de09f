package session

import (
	"math"
	"testing"

	"github.com/sotaro-w/pfdojo/internal/dealer"
	"github.com/sotaro-w/pfdojo/internal/grading"
	"github.com/sotaro-w/pfdojo/internal/hand"
	"github.com/sotaro-w/pfdojo/internal/ranges"
)

func sit(n hand.Notation) dealer.Situation {
	return dealer.Situation{
		Scenario: ranges.Scenario{Type: ranges.Open, Hero: ranges.UTG},
		Hand:     hand.Hand{Notation: n, Type: n.Type()},
	}
}

func TestGradeProducesConsistentRecord(t *testing.T) {
	r := Grade(sit("AA"), ranges.Raise)
	if r.CorrectAction != ranges.Raise || r.Level != grading.Obvious || !r.Acceptable {
		t.Errorf("AA raise record = %+v", r)
	}
	if r.Earned != 0.5 || r.MaxPossible != 0.5 {
		t.Errorf("AA raise score = %v/%v", r.Earned, r.MaxPossible)
	}
	if r.ScenarioKey != "UTG" || r.Hand != "AA" {
		t.Errorf("record identity = %+v", r)
	}

	r = Grade(sit("AA"), ranges.Fold)
	if r.Level != grading.CriticalMistake || r.Acceptable || r.Earned != -0.5 {
		t.Errorf("AA fold record = %+v", r)
	}
}

func TestTrackerAccumulates(t *testing.T) {
	tr := NewTracker()
	if tr.ID().String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("session needs an identifier")
	}
	if got := tr.Stats().Accuracy(); got != 0 {
		t.Errorf("empty accuracy = %v", got)
	}

	tr.Add(Grade(sit("AA"), ranges.Raise))  // obvious: +0.5/0.5
	tr.Add(Grade(sit("K9s"), ranges.Raise)) // wrong: +0/1.0
	tr.Add(Grade(sit("77"), ranges.Raise))  // borderline: +1.0/1.0

	s := tr.Stats()
	if s.Total != 3 || s.Correct != 2 {
		t.Errorf("totals = %+v", s)
	}
	if math.Abs(s.WeightedScore-1.5) > 1e-9 || math.Abs(s.MaxPossibleScore-2.5) > 1e-9 {
		t.Errorf("weighted totals = %+v", s)
	}
	if got := s.Accuracy(); math.Abs(got-200.0/3) > 1e-9 {
		t.Errorf("accuracy = %v", got)
	}
	if got := s.WeightedPercent(); math.Abs(got-60) > 1e-9 {
		t.Errorf("weighted percent = %v", got)
	}
}

// Deleting a record must leave the totals exactly as if the remaining
// records had been recounted from scratch.
func TestDeleteAtRollsBackTotals(t *testing.T) {
	tr := NewTracker()
	answers := []struct {
		n hand.Notation
		a ranges.Action
	}{
		{"AA", ranges.Raise},
		{"AA", ranges.Fold},
		{"77", ranges.Fold},
		{"K9s", ranges.Fold},
		{"72o", ranges.Raise},
	}
	for _, ans := range answers {
		tr.Add(Grade(sit(ans.n), ans.a))
	}

	for _, i := range []int{4, 0, 1} {
		removed, ok := tr.DeleteAt(i)
		if !ok {
			t.Fatalf("DeleteAt(%d) failed", i)
		}
		if removed.Hand == "" {
			t.Fatalf("DeleteAt(%d) returned empty record", i)
		}

		var want Stats
		for _, r := range tr.Records() {
			want.Total++
			if r.Acceptable {
				want.Correct++
			}
			want.WeightedScore += r.Earned
			want.MaxPossibleScore += r.MaxPossible
		}
		got := tr.Stats()
		if got.Total != want.Total || got.Correct != want.Correct ||
			math.Abs(got.WeightedScore-want.WeightedScore) > 1e-9 ||
			math.Abs(got.MaxPossibleScore-want.MaxPossibleScore) > 1e-9 {
			t.Fatalf("after DeleteAt(%d): totals %+v, recount %+v", i, got, want)
		}
	}
}

func TestDeleteAtOutOfRange(t *testing.T) {
	tr := NewTracker()
	tr.Add(Grade(sit("AA"), ranges.Raise))
	if _, ok := tr.DeleteAt(-1); ok {
		t.Error("DeleteAt(-1) must fail")
	}
	if _, ok := tr.DeleteAt(1); ok {
		t.Error("DeleteAt(1) on single record must fail")
	}
}

func TestResetKeepsIdentity(t *testing.T) {
	tr := NewTracker()
	id := tr.ID()
	tr.Add(Grade(sit("AA"), ranges.Raise))
	tr.Reset()
	if tr.ID() != id {
		t.Error("Reset must keep the session id")
	}
	if s := tr.Stats(); s.Total != 0 || s.WeightedScore != 0 {
		t.Errorf("totals after reset = %+v", s)
	}
	if len(tr.Records()) != 0 {
		t.Error("records after reset must be empty")
	}
}

func TestRecordsReturnsCopy(t *testing.T) {
	tr := NewTracker()
	tr.Add(Grade(sit("AA"), ranges.Raise))
	got := tr.Records()
	got[0].Hand = "22"
	if tr.Records()[0].Hand != "AA" {
		t.Error("Records must return a copy")
	}
}
