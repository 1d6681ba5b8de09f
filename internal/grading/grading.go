// Package grading judges a user's preflop action against the reference
// strategy tables. It is pure: every function is a total function of its
// inputs and the static tables, with no state and no failure modes.
package grading

import (
	"github.com/sotaro-w/pfdojo/internal/dealer"
	"github.com/sotaro-w/pfdojo/internal/ranges"
)

// AnswerLevel is the qualitative verdict for one answer.
type AnswerLevel string

const (
	// CriticalMistake is a severe misplay of an unambiguous hand,
	// e.g. folding AA or raising 72o.
	CriticalMistake AnswerLevel = "critical_mistake"
	// Wrong is an ordinary incorrect answer.
	Wrong AnswerLevel = "wrong"
	// Borderline means the hand was close enough that the answer is
	// acceptable either way.
	Borderline AnswerLevel = "borderline"
	// Correct is an ordinary correct answer.
	Correct AnswerLevel = "correct"
	// Obvious is a correct answer on a trivial hand.
	Obvious AnswerLevel = "obvious"
)

// CorrectAction returns the single reference action for a situation.
// For Open: Raise if the hand is in the seat's raise set, else Fold.
// For VsOpen: 3-Bet before Call before Fold; the priority order is fixed
// even if a hand somehow appeared in both sets. Missing range data reads as
// an empty set, so the lookup degrades to Fold rather than failing.
func CorrectAction(sit dealer.Situation) ranges.Action {
	sc := sit.Scenario
	n := sit.Notation()

	if sc.Type == ranges.Open {
		if ranges.OpenRanges[sc.Hero].Raise.Contains(n) {
			return ranges.Raise
		}
		return ranges.Fold
	}

	r := ranges.VsOpenRanges[sc.Key()]
	if r.ThreeBet.Contains(n) {
		return ranges.ThreeBet
	}
	if r.Call.Contains(n) {
		return ranges.Call
	}
	return ranges.Fold
}

// Level classifies the user's answer into one of the five verdict tiers.
func Level(sit dealer.Situation, userAction, correctAction ranges.Action) AnswerLevel {
	n := sit.Notation()
	isCorrect := userAction == correctAction
	strong := ranges.IsObviouslyStrong(n)
	weak := ranges.IsObviouslyWeak(n)
	borderline := ranges.IsBorderline(sit.Scenario, n)

	if isCorrect {
		if strong && correctAction.Aggressive() {
			return Obvious
		}
		if weak && correctAction == ranges.Fold {
			return Obvious
		}
		if borderline {
			return Borderline
		}
		return Correct
	}

	if strong && userAction == ranges.Fold {
		return CriticalMistake
	}
	if weak && userAction.Aggressive() {
		return CriticalMistake
	}
	if borderline {
		return borderlineMissLevel(sit, userAction, correctAction)
	}
	return Wrong
}

// borderlineMissLevel grades an incorrect answer on a borderline hand. When
// a mixed-strategy row exists, any action ranked in its top two frequencies
// is an acceptable alternative line. Without a row, adjacency decides:
// 3-Bet↔Call and Call↔Fold are near misses, 3-Bet↔Fold never is.
func borderlineMissLevel(sit dealer.Situation, userAction, correctAction ranges.Action) AnswerLevel {
	if freq, ok := ranges.MixedFrequency(sit.Scenario, sit.Notation()); ok {
		for _, a := range topTwo(freq.Ranked()) {
			if a == userAction {
				return Borderline
			}
		}
		return Wrong
	}

	if adjacent(userAction, correctAction) {
		return Borderline
	}
	return Wrong
}

func topTwo(actions []ranges.Action) []ranges.Action {
	if len(actions) > 2 {
		return actions[:2]
	}
	return actions
}

// adjacent reports whether two distinct actions are one step apart.
// Open scenarios only have Raise and Fold, which are inherently adjacent.
func adjacent(a, b ranges.Action) bool {
	pair := func(x, y ranges.Action) bool {
		return (a == x && b == y) || (a == y && b == x)
	}
	switch {
	case pair(ranges.ThreeBet, ranges.Call),
		pair(ranges.Call, ranges.Fold),
		pair(ranges.Raise, ranges.Fold):
		return true
	}
	return false
}

// IsAcceptable reports whether the answer counts as correct for session
// accuracy. Borderline verdicts are never penalized.
func IsAcceptable(level AnswerLevel, userAction, correctAction ranges.Action) bool {
	return userAction == correctAction || level == Borderline
}
