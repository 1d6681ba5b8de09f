package hand

import (
	"fmt"
	"math/rand/v2"
)

// Deal assigns concrete display suits to a notation. Pairs get two distinct
// suits, suited hands share one suit, offsuit hands get two distinct suits.
// The rng is injected so deals are reproducible in tests.
func Deal(rng *rand.Rand, n Notation) (Hand, error) {
	if !n.Valid() {
		return Hand{}, fmt.Errorf("invalid hand notation %q", n)
	}

	switch n.Type() {
	case Pair:
		s1, s2 := twoDistinctSuits(rng)
		return Hand{
			Notation: n,
			First:    Card{Rank: n.High(), Suit: s1},
			Second:   Card{Rank: n.Low(), Suit: s2},
			Type:     Pair,
		}, nil

	case Suited:
		s := Suits[rng.IntN(len(Suits))]
		return Hand{
			Notation: n,
			First:    Card{Rank: n.High(), Suit: s},
			Second:   Card{Rank: n.Low(), Suit: s},
			Type:     Suited,
		}, nil

	default:
		s1, s2 := twoDistinctSuits(rng)
		return Hand{
			Notation: n,
			First:    Card{Rank: n.High(), Suit: s1},
			Second:   Card{Rank: n.Low(), Suit: s2},
			Type:     Offsuit,
		}, nil
	}
}

func twoDistinctSuits(rng *rand.Rand) (Suit, Suit) {
	s1 := Suits[rng.IntN(len(Suits))]
	s2 := Suits[rng.IntN(len(Suits))]
	for s2 == s1 {
		s2 = Suits[rng.IntN(len(Suits))]
	}
	return s1, s2
}
