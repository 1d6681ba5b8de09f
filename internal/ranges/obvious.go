package ranges

import "github.com/sotaro-w/pfdojo/internal/hand"

// ObviousStrong are hands that are always played aggressively from any seat.
// Folding one of these is the canonical critical mistake.
var ObviousStrong = newSet("AA", "KK", "QQ", "JJ", "AKs", "AKo", "AQs")

// ObviousWeak are hands that are always folded. The set lists only offsuit
// forms; suited twins are normalized before lookup.
var ObviousWeak = newSet(
	"72o", "73o", "82o", "83o", "84o",
	"92o", "93o", "94o",
	"32o", "42o", "43o", "52o", "62o", "63o",
)

// IsObviouslyStrong reports whether n is an always-aggressive premium.
func IsObviouslyStrong(n hand.Notation) bool {
	return ObviousStrong.Contains(n)
}

// IsObviouslyWeak reports whether n (or its offsuit twin) is an always-fold.
func IsObviouslyWeak(n hand.Notation) bool {
	return ObviousWeak.Contains(n) || ObviousWeak.Contains(n.OffsuitEquivalent())
}

// IsObvious reports whether n belongs to either obvious set. Used by the
// sampler's rejection loop to under-represent trivial spots.
func IsObvious(n hand.Notation) bool {
	return IsObviouslyStrong(n) || IsObviouslyWeak(n)
}
