package ranges

// OpenRange holds the raise set for an open scenario. Everything outside the
// set is a fold.
type OpenRange struct {
	Raise HandSet
}

// OpenRanges maps each openable seat to its reference open-raise range.
// Simplified 6-max / 100bb ranges carried over from the reference tables.
var OpenRanges = map[Position]OpenRange{
	UTG: {Raise: newSet(
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66",
		"AKs", "AQs", "AJs", "ATs", "A5s", "A4s",
		"KQs", "KJs", "QJs", "JTs", "T9s",
		"AKo", "AQo", "AJo", "KQo",
	)},
	HJ: {Raise: newSet(
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A5s", "A4s", "A3s",
		"KQs", "KJs", "KTs", "QJs", "QTs", "JTs", "T9s", "98s",
		"AKo", "AQo", "AJo", "ATo", "KQo", "KJo",
	)},
	CO: {Raise: newSet(
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		"KQs", "KJs", "KTs", "K9s", "QJs", "QTs", "Q9s", "JTs", "J9s",
		"T9s", "T8s", "98s", "87s", "76s",
		"AKo", "AQo", "AJo", "ATo", "A9o", "KQo", "KJo", "KTo", "QJo", "QTo", "JTo",
	)},
	BTN: {Raise: newSet(
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		"KQs", "KJs", "KTs", "K9s", "K8s", "K7s", "K6s", "K5s",
		"QJs", "QTs", "Q9s", "Q8s", "JTs", "J9s", "J8s",
		"T9s", "T8s", "T7s", "98s", "97s", "87s", "86s", "76s", "75s",
		"65s", "64s", "54s", "53s", "43s",
		"AKo", "AQo", "AJo", "ATo", "A9o", "A8o", "A7o", "A6o", "A5o", "A4o", "A3o", "A2o",
		"KQo", "KJo", "KTo", "K9o", "K8o", "QJo", "QTo", "Q9o", "JTo", "J9o",
		"T9o", "98o", "87o",
	)},
	SB: {Raise: newSet(
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		"KQs", "KJs", "KTs", "K9s", "K8s", "K7s", "K6s", "K5s", "K4s", "K3s", "K2s",
		"QJs", "QTs", "Q9s", "Q8s", "Q7s", "Q6s", "JTs", "J9s", "J8s", "J7s",
		"T9s", "T8s", "T7s", "98s", "97s", "96s", "87s", "86s", "76s", "75s",
		"65s", "64s", "54s", "53s", "43s",
		"AKo", "AQo", "AJo", "ATo", "A9o", "A8o", "A7o", "A6o", "A5o", "A4o", "A3o", "A2o",
		"KQo", "KJo", "KTo", "K9o", "K8o", "K7o", "QJo", "QTo", "Q9o", "JTo", "J9o",
		"T9o", "98o", "87o", "76o",
	)},
}
