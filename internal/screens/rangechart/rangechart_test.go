package rangechart

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sotaro-w/pfdojo/internal/hand"
	"github.com/sotaro-w/pfdojo/internal/ranges"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestChartsCoverAllScenarios(t *testing.T) {
	want := len(ranges.OpenPositions) + len(ranges.VsOpenScenarios)
	if len(charts) != want {
		t.Fatalf("charts = %d, want %d", len(charts), want)
	}
	if charts[0].scenario.Hero != ranges.UTG {
		t.Errorf("first chart = %+v, want UTG open", charts[0])
	}
}

func TestCellActionOpen(t *testing.T) {
	utg := ranges.Scenario{Type: ranges.Open, Hero: ranges.UTG}
	if got := cellAction(utg, "AA"); got != ranges.Raise {
		t.Errorf("AA UTG = %s, want Raise", got)
	}
	if got := cellAction(utg, "72o"); got != ranges.Fold {
		t.Errorf("72o UTG = %s, want Fold", got)
	}
}

func TestCellActionVsOpen(t *testing.T) {
	sc := ranges.Scenario{Type: ranges.VsOpen, Hero: ranges.BB, Villain: ranges.BTN}
	tests := []struct {
		notation hand.Notation
		want     ranges.Action
	}{
		{"AA", ranges.ThreeBet},
		{"99", ranges.Call},
		{"72o", ranges.Fold},
	}
	for _, tt := range tests {
		if got := cellAction(sc, tt.notation); got != tt.want {
			t.Errorf("%s BB vs BTN = %s, want %s", tt.notation, got, tt.want)
		}
	}
}

func TestArrowKeysCycleCharts(t *testing.T) {
	r := New()

	scr, _ := r.Update(keyPress('l'))
	r = scr.(*RangeChartScreen)
	if r.index != 1 {
		t.Errorf("index after right = %d, want 1", r.index)
	}

	scr, _ = r.Update(keyPress('h'))
	r = scr.(*RangeChartScreen)
	if r.index != 0 {
		t.Errorf("index after left = %d, want 0", r.index)
	}

	// Left from the first chart wraps to the last.
	scr, _ = r.Update(keyPress('h'))
	r = scr.(*RangeChartScreen)
	if r.index != len(charts)-1 {
		t.Errorf("index after wrap = %d, want %d", r.index, len(charts)-1)
	}
}

func TestViewRendersGrid(t *testing.T) {
	r := New()
	view := r.View(120, 40)

	for _, want := range []string{"UTG open", "AA", "AKs", "AKo", "Raise", "Fold"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
