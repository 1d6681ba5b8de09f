package ranges

// VsOpenRange holds the 3-bet and call sets for a facing-a-raise scenario.
// Everything outside both sets is a fold. When a hand somehow appears in
// both sets, 3-bet wins because the grading engine checks ThreeBet first.
type VsOpenRange struct {
	ThreeBet HandSet
	Call     HandSet
}

// VsOpenRanges maps a scenario key (see Scenario.Key) to its reference range.
var VsOpenRanges = map[string]VsOpenRange{
	"BB_vs_BTN": {
		ThreeBet: newSet(
			"AA", "KK", "QQ", "JJ", "TT",
			"AKs", "AQs", "AJs", "A5s", "A4s", "A3s", "KQs",
			"AKo", "AQo",
			"76s", "65s", "54s",
		),
		Call: newSet(
			"99", "88", "77", "66", "55", "44", "33", "22",
			"ATs", "A9s", "A8s", "A7s", "A6s", "A2s",
			"KJs", "KTs", "K9s", "K8s", "K7s", "K6s", "K5s", "K4s", "K3s", "K2s",
			"QJs", "QTs", "Q9s", "Q8s", "Q7s", "Q6s", "Q5s",
			"JTs", "J9s", "J8s", "J7s", "T9s", "T8s", "T7s",
			"98s", "97s", "87s", "86s", "75s", "64s", "53s", "43s",
			"AJo", "ATo", "A9o", "A8o", "A7o", "A6o", "A5o", "A4o", "A3o", "A2o",
			"KQo", "KJo", "KTo", "K9o", "K8o", "K7o",
			"QJo", "QTo", "Q9o", "JTo", "J9o", "T9o", "98o",
		),
	},
	"BB_vs_CO": {
		ThreeBet: newSet(
			"AA", "KK", "QQ", "JJ", "TT",
			"AKs", "AQs", "AJs", "A5s", "A4s", "KQs",
			"AKo", "AQo",
		),
		Call: newSet(
			"99", "88", "77", "66", "55", "44", "33", "22",
			"ATs", "A9s", "A8s", "A7s", "A6s", "A3s", "A2s",
			"KJs", "KTs", "K9s", "K8s", "K7s",
			"QJs", "QTs", "Q9s", "JTs", "J9s",
			"T9s", "T8s", "98s", "97s", "87s", "76s", "65s", "54s",
			"AJo", "ATo", "KQo", "KJo", "KTo", "QJo", "QTo", "JTo",
		),
	},
	"BB_vs_HJ": {
		ThreeBet: newSet(
			"AA", "KK", "QQ", "JJ", "TT",
			"AKs", "AQs", "A5s", "A4s",
			"AKo",
		),
		Call: newSet(
			"99", "88", "77", "66", "55",
			"AJs", "ATs", "A9s", "A8s",
			"KQs", "KJs", "KTs", "QJs", "QTs", "JTs",
			"T9s", "98s", "87s", "76s", "65s",
			"AQo", "AJo", "KQo", "KJo", "QJo",
		),
	},
}
