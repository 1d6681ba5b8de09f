package grading

import (
	"math"
	"strings"
	"testing"

	"github.com/sotaro-w/pfdojo/internal/dealer"
	"github.com/sotaro-w/pfdojo/internal/hand"
	"github.com/sotaro-w/pfdojo/internal/i18n"
	"github.com/sotaro-w/pfdojo/internal/ranges"
)

func openSit(p ranges.Position, n hand.Notation) dealer.Situation {
	return dealer.Situation{
		Scenario: ranges.Scenario{Type: ranges.Open, Hero: p},
		Hand:     hand.Hand{Notation: n, Type: n.Type()},
	}
}

func vsOpenSit(hero, villain ranges.Position, n hand.Notation) dealer.Situation {
	return dealer.Situation{
		Scenario: ranges.Scenario{Type: ranges.VsOpen, Hero: hero, Villain: villain},
		Hand:     hand.Hand{Notation: n, Type: n.Type()},
	}
}

func TestCorrectActionOpenExhaustive(t *testing.T) {
	for _, p := range ranges.OpenPositions {
		inRange := ranges.OpenRanges[p].Raise
		for _, n := range hand.All() {
			got := CorrectAction(openSit(p, n))
			want := ranges.Fold
			if inRange.Contains(n) {
				want = ranges.Raise
			}
			if got != want {
				t.Errorf("%s open %s = %s, want %s", p, n, got, want)
			}
		}
	}
}

func TestCorrectActionVsOpenPriority(t *testing.T) {
	for key, r := range ranges.VsOpenRanges {
		sc := scenarioForKey(t, key)
		for _, n := range r.ThreeBet.Notations() {
			if got := CorrectAction(vsOpenSit(sc.Hero, sc.Villain, n)); got != ranges.ThreeBet {
				t.Errorf("%s %s = %s, want 3-Bet", key, n, got)
			}
		}
		for _, n := range r.Call.Notations() {
			if r.ThreeBet.Contains(n) {
				continue
			}
			if got := CorrectAction(vsOpenSit(sc.Hero, sc.Villain, n)); got != ranges.Call {
				t.Errorf("%s %s = %s, want Call", key, n, got)
			}
		}
	}

	if got := CorrectAction(vsOpenSit(ranges.BB, ranges.BTN, "72o")); got != ranges.Fold {
		t.Errorf("72o vs BTN = %s, want Fold", got)
	}
}

func scenarioForKey(t *testing.T, key string) ranges.Scenario {
	t.Helper()
	for _, sc := range ranges.VsOpenScenarios {
		if sc.Key() == key {
			return sc
		}
	}
	t.Fatalf("no scenario for key %s", key)
	return ranges.Scenario{}
}

// A scenario with no range data must degrade to Fold, never panic.
func TestCorrectActionUnknownScenarioFolds(t *testing.T) {
	sit := vsOpenSit(ranges.BB, ranges.SB, "AA")
	if got := CorrectAction(sit); got != ranges.Fold {
		t.Errorf("unknown scenario = %s, want Fold", got)
	}
}

func TestLevelObviousSymmetry(t *testing.T) {
	tests := []struct {
		name string
		sit  dealer.Situation
		user ranges.Action
		want AnswerLevel
	}{
		{"raise AA", openSit(ranges.UTG, "AA"), ranges.Raise, Obvious},
		{"fold AA", openSit(ranges.UTG, "AA"), ranges.Fold, CriticalMistake},
		{"fold 72o", openSit(ranges.UTG, "72o"), ranges.Fold, Obvious},
		{"raise 72o", openSit(ranges.UTG, "72o"), ranges.Raise, CriticalMistake},
		{"raise 72s", openSit(ranges.UTG, "72s"), ranges.Raise, CriticalMistake},
		{"3-bet KK", vsOpenSit(ranges.BB, ranges.BTN, "KK"), ranges.ThreeBet, Obvious},
		{"fold KK", vsOpenSit(ranges.BB, ranges.BTN, "KK"), ranges.Fold, CriticalMistake},
	}
	for _, tt := range tests {
		correct := CorrectAction(tt.sit)
		if got := Level(tt.sit, tt.user, correct); got != tt.want {
			t.Errorf("%s: Level = %s, want %s", tt.name, got, tt.want)
		}
	}
}

// Calling with a premium instead of 3-betting is wrong but not critical;
// only folding a premium (or raising trash) reaches critical_mistake.
func TestLevelStrongHandMisplayShortOfFold(t *testing.T) {
	sit := vsOpenSit(ranges.BB, ranges.BTN, "AA")
	if got := Level(sit, ranges.Call, CorrectAction(sit)); got != Wrong {
		t.Errorf("call AA vs BTN = %s, want wrong", got)
	}
}

func TestLevelBorderlineCorrectAnswer(t *testing.T) {
	sit := openSit(ranges.UTG, "77")
	correct := CorrectAction(sit)
	if correct != ranges.Raise {
		t.Fatalf("77 UTG correct = %s", correct)
	}
	if got := Level(sit, ranges.Raise, correct); got != Borderline {
		t.Errorf("Level = %s, want borderline", got)
	}
}

// KQs vs a BTN open mixes 3-bet 55% / call 40% / fold 5%. Calling lands in
// the top two frequencies and stays borderline; folding does not.
func TestLevelFrequencyTieBreak(t *testing.T) {
	sit := vsOpenSit(ranges.BB, ranges.BTN, "KQs")
	correct := CorrectAction(sit)
	if correct != ranges.ThreeBet {
		t.Fatalf("KQs vs BTN correct = %s", correct)
	}
	if got := Level(sit, ranges.Call, correct); got != Borderline {
		t.Errorf("call KQs = %s, want borderline", got)
	}
	if got := Level(sit, ranges.Fold, correct); got != Wrong {
		t.Errorf("fold KQs = %s, want wrong", got)
	}
}

// Borderline hands without a frequency row fall back to action adjacency.
func TestLevelAdjacencyFallback(t *testing.T) {
	tests := []struct {
		name string
		sit  dealer.Situation
		user ranges.Action
		want AnswerLevel
	}{
		// 76s vs BTN is a borderline 3-bet with no frequency row.
		{"call near 3-bet", vsOpenSit(ranges.BB, ranges.BTN, "76s"), ranges.Call, Borderline},
		{"fold far from 3-bet", vsOpenSit(ranges.BB, ranges.BTN, "76s"), ranges.Fold, Wrong},
		// Q5s vs BTN is a borderline call with no frequency row.
		{"fold near call", vsOpenSit(ranges.BB, ranges.BTN, "Q5s"), ranges.Fold, Borderline},
		{"3-bet near call", vsOpenSit(ranges.BB, ranges.BTN, "Q5s"), ranges.ThreeBet, Borderline},
		// QJs UTG is a borderline open with no frequency row.
		{"fold near raise", openSit(ranges.UTG, "QJs"), ranges.Fold, Borderline},
	}
	for _, tt := range tests {
		correct := CorrectAction(tt.sit)
		if got := Level(tt.sit, tt.user, correct); got != tt.want {
			t.Errorf("%s: Level = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestLevelPlainAnswers(t *testing.T) {
	// K9s UTG: outside the range, not borderline, not obvious.
	sit := openSit(ranges.UTG, "K9s")
	correct := CorrectAction(sit)
	if correct != ranges.Fold {
		t.Fatalf("K9s UTG correct = %s", correct)
	}
	if got := Level(sit, ranges.Fold, correct); got != Correct {
		t.Errorf("fold K9s = %s, want correct", got)
	}
	if got := Level(sit, ranges.Raise, correct); got != Wrong {
		t.Errorf("raise K9s = %s, want wrong", got)
	}
}

func TestIsAcceptable(t *testing.T) {
	if !IsAcceptable(Borderline, ranges.Call, ranges.ThreeBet) {
		t.Error("borderline miss must count as acceptable")
	}
	if IsAcceptable(Wrong, ranges.Fold, ranges.ThreeBet) {
		t.Error("wrong answer must not count as acceptable")
	}
	if !IsAcceptable(Obvious, ranges.Raise, ranges.Raise) {
		t.Error("correct answer must count as acceptable")
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		level       AnswerLevel
		earned, max float64
	}{
		{Obvious, 0.5, 0.5},
		{Correct, 1.0, 1.0},
		{Borderline, 1.0, 1.0},
		{Wrong, 0, 1.0},
		{CriticalMistake, -0.5, 1.0},
	}
	for _, tt := range tests {
		earned, max := Score(tt.level)
		if math.Abs(earned-tt.earned) > 1e-9 || math.Abs(max-tt.max) > 1e-9 {
			t.Errorf("Score(%s) = %v, %v, want %v, %v", tt.level, earned, max, tt.earned, tt.max)
		}
	}
}

// Folding aces costs points outright.
func TestScoreFoldingAcesGoesNegative(t *testing.T) {
	sit := openSit(ranges.UTG, "AA")
	level := Level(sit, ranges.Fold, CorrectAction(sit))
	earned, _ := Score(level)
	if earned >= 0 {
		t.Errorf("folding AA earned %v, want negative", earned)
	}
}

func TestExplanationShapeAddenda(t *testing.T) {
	// A5s UTG: suited-ace line appears, AKs does not trigger it.
	got := Explanation(openSit(ranges.UTG, "A5s"), ranges.Raise, i18n.En)
	if !strings.Contains(got, "A5s") || !strings.Contains(got, "Suited aces") {
		t.Errorf("A5s explanation missing suited-ace note: %q", got)
	}
	got = Explanation(openSit(ranges.UTG, "AKs"), ranges.Raise, i18n.En)
	if strings.Contains(got, "Suited aces") {
		t.Errorf("AKs explanation must not carry the suited-ace note: %q", got)
	}

	got = Explanation(openSit(ranges.UTG, "88"), ranges.Raise, i18n.En)
	if !strings.Contains(got, "Pocket pairs") {
		t.Errorf("88 explanation missing pair note: %q", got)
	}

	// Folds from early seats carry the tighter-range note; the BTN does not.
	got = Explanation(openSit(ranges.UTG, "Q8s"), ranges.Fold, i18n.En)
	if !strings.Contains(got, "Early position") {
		t.Errorf("UTG fold explanation missing early note: %q", got)
	}
	got = Explanation(openSit(ranges.BTN, "52o"), ranges.Fold, i18n.En)
	if strings.Contains(got, "Early position") {
		t.Errorf("BTN fold explanation must not carry the early note: %q", got)
	}

	got = Explanation(vsOpenSit(ranges.BB, ranges.BTN, "A4s"), ranges.ThreeBet, i18n.En)
	if !strings.Contains(got, "bluff") {
		t.Errorf("A4s explanation missing bluff note: %q", got)
	}
}

func TestExplanationLocalized(t *testing.T) {
	sit := vsOpenSit(ranges.BB, ranges.CO, "99")
	en := Explanation(sit, ranges.Call, i18n.En)
	ja := Explanation(sit, ranges.Call, i18n.Ja)
	if en == "" || ja == "" || en == ja {
		t.Errorf("locales must produce distinct text: en=%q ja=%q", en, ja)
	}
	if !strings.Contains(ja, "99") {
		t.Errorf("ja explanation missing hand: %q", ja)
	}
}
