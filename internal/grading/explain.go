package grading

import (
	"strings"

	"github.com/sotaro-w/pfdojo/internal/dealer"
	"github.com/sotaro-w/pfdojo/internal/hand"
	"github.com/sotaro-w/pfdojo/internal/i18n"
	"github.com/sotaro-w/pfdojo/internal/ranges"
)

// bluffAces are the small suited aces the vsOpen ranges use as 3-bet bluffs.
var bluffAces = map[hand.Notation]struct{}{
	"A5s": {}, "A4s": {}, "A3s": {},
}

// Explanation builds the localized feedback text for a graded situation.
// The base line depends on the correct action; hand-shape addenda follow.
func Explanation(sit dealer.Situation, correctAction ranges.Action, loc i18n.Locale) string {
	n := sit.Notation()
	vars := i18n.Vars{
		"hand":     string(n),
		"position": string(sit.Scenario.Hero),
		"villain":  string(sit.Scenario.Villain),
	}

	var b strings.Builder
	if sit.Scenario.Type == ranges.Open {
		switch correctAction {
		case ranges.Raise:
			b.WriteString(i18n.T(loc, "explain.open.raise", vars))
			if suitedAceWithLowKicker(n) {
				b.WriteString(i18n.T(loc, "explain.open.raise.suited_ace", nil))
			}
			if n.Type() == hand.Pair {
				b.WriteString(i18n.T(loc, "explain.open.raise.pair", nil))
			}
		default:
			b.WriteString(i18n.T(loc, "explain.open.fold", vars))
			if earlyPosition(sit.Scenario.Hero) {
				b.WriteString(i18n.T(loc, "explain.open.fold.early", nil))
			}
		}
		return b.String()
	}

	switch correctAction {
	case ranges.ThreeBet:
		b.WriteString(i18n.T(loc, "explain.vsopen.threebet", vars))
		if _, ok := bluffAces[n]; ok {
			b.WriteString(i18n.T(loc, "explain.vsopen.threebet.bluff", nil))
		}
	case ranges.Call:
		b.WriteString(i18n.T(loc, "explain.vsopen.call", vars))
	default:
		b.WriteString(i18n.T(loc, "explain.vsopen.fold", vars))
	}
	return b.String()
}

// suitedAceWithLowKicker matches suited aces below AQs. AKs and AQs are
// premium hands whose raise needs no shape-based justification.
func suitedAceWithLowKicker(n hand.Notation) bool {
	return n.Type() == hand.Suited && n.High() == "A" && n.Low() != "K" && n.Low() != "Q"
}

func earlyPosition(p ranges.Position) bool {
	return p == ranges.UTG || p == ranges.HJ
}
