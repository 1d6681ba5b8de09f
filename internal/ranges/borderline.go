package ranges

import (
	"sort"

	"github.com/sotaro-w/pfdojo/internal/hand"
)

// Borderline hands are the pedagogically close spots, hands whose correct
// action is a judgment call rather than a memorized rule. The sampler
// over-serves them and the grading engine never punishes either side of them.

// BorderlineOpen maps each openable seat to its close hands.
var BorderlineOpen = map[Position]HandSet{
	UTG: newSet("77", "66", "ATs", "A5s", "A4s", "KJs", "QJs", "JTs", "T9s", "AJo", "KQo"),
	HJ:  newSet("66", "55", "A9s", "A5s", "A4s", "A3s", "KTs", "QTs", "98s", "ATo", "KJo"),
	CO:  newSet("55", "44", "A8s", "A7s", "K9s", "Q9s", "J9s", "T8s", "87s", "76s", "A9o", "KTo", "QJo"),
	BTN: newSet("33", "22", "K6s", "K5s", "Q8s", "J8s", "T7s", "86s", "75s", "64s", "53s", "A7o", "A6o", "K8o", "Q9o", "J9o", "T9o"),
	SB:  newSet("K4s", "K3s", "K2s", "Q7s", "Q6s", "J7s", "T7s", "96s", "85s", "74s", "63s", "K7o", "K6o", "Q9o", "J9o", "T9o", "87o"),
}

// BorderlineVsOpen maps a VsOpen scenario key to its close hands, split by
// which non-fold action the reference range designates.
var BorderlineVsOpen = map[string]VsOpenRange{
	"BB_vs_BTN": {
		ThreeBet: newSet("TT", "AJs", "A5s", "A4s", "A3s", "KQs", "76s", "65s", "54s"),
		Call:     newSet("A2s", "K2s", "Q5s", "J7s", "T7s", "97s", "86s", "75s", "64s", "53s", "K7o", "Q9o", "J9o", "T9o", "98o"),
	},
	"BB_vs_CO": {
		ThreeBet: newSet("TT", "AJs", "A5s", "A4s", "KQs"),
		Call:     newSet("44", "33", "22", "A7s", "A6s", "K7s", "Q9s", "J9s", "T8s", "97s", "76s", "65s", "KTo", "QTo", "JTo"),
	},
	"BB_vs_HJ": {
		ThreeBet: newSet("JJ", "TT", "AQs", "A5s", "A4s"),
		Call:     newSet("55", "44", "A9s", "A8s", "KTs", "K9s", "QTs", "JTs", "T9s", "98s", "87s", "76s", "AJo", "KJo", "QJo"),
	},
}

// IsBorderline reports whether n is a close hand for the exact scenario key.
func IsBorderline(s Scenario, n hand.Notation) bool {
	if s.Type == Open {
		return BorderlineOpen[s.Hero].Contains(n)
	}
	bl, ok := BorderlineVsOpen[s.Key()]
	if !ok {
		return false
	}
	return bl.ThreeBet.Contains(n) || bl.Call.Contains(n)
}

// allBorderline is the pooled union across every scenario, built once.
var allBorderline = func() []hand.Notation {
	seen := make(map[hand.Notation]struct{})
	for _, set := range BorderlineOpen {
		for n := range set {
			seen[n] = struct{}{}
		}
	}
	for _, bl := range BorderlineVsOpen {
		for n := range bl.ThreeBet {
			seen[n] = struct{}{}
		}
		for n := range bl.Call {
			seen[n] = struct{}{}
		}
	}
	out := make([]hand.Notation, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	// Stable order so seeded samplers draw reproducibly.
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}()

// AllBorderline returns the union of borderline hands across all scenarios.
// The slice is a copy; callers may reorder it.
func AllBorderline() []hand.Notation {
	out := make([]hand.Notation, len(allBorderline))
	copy(out, allBorderline)
	return out
}
