package ranges

import "github.com/sotaro-w/pfdojo/internal/hand"

// HandSet is an immutable membership set over hand notations.
type HandSet map[hand.Notation]struct{}

func newSet(notations ...hand.Notation) HandSet {
	s := make(HandSet, len(notations))
	for _, n := range notations {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether n is in the set. A nil set contains nothing, so
// missing range data degrades to Fold rather than failing.
func (s HandSet) Contains(n hand.Notation) bool {
	_, ok := s[n]
	return ok
}

// Notations returns the members in unspecified order.
func (s HandSet) Notations() []hand.Notation {
	out := make([]hand.Notation, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	return out
}
