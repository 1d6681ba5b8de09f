package hand

import "fmt"

// Rank is a single card rank character, "A" (high) through "2".
type Rank string

// Ranks lists all ranks from strongest to weakest. Index order matters:
// notation always writes the lower-index (higher) rank first.
var Ranks = [13]Rank{"A", "K", "Q", "J", "T", "9", "8", "7", "6", "5", "4", "3", "2"}

// Index returns the position of r in Ranks, or -1 for an unknown rank.
func (r Rank) Index() int {
	for i, rr := range Ranks {
		if rr == r {
			return i
		}
	}
	return -1
}

// Suit is a single-letter suit code.
type Suit string

const (
	Spades   Suit = "s"
	Hearts   Suit = "h"
	Diamonds Suit = "d"
	Clubs    Suit = "c"
)

// Suits lists the four suits in display order.
var Suits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

// Symbol returns the unicode glyph for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	}
	return "?"
}

// Type classifies a starting-hand notation.
type Type string

const (
	Pair    Type = "pair"
	Suited  Type = "suited"
	Offsuit Type = "offsuit"
)

// Notation is a canonical starting-hand class: two ranks, higher first,
// with no suffix for pairs, "s" for suited and "o" for offsuit.
// Examples: "AA", "AKs", "72o".
type Notation string

// Valid reports whether n is a well-formed canonical notation.
func (n Notation) Valid() bool {
	switch len(n) {
	case 2:
		return Rank(n[0:1]).Index() >= 0 && n[0:1] == n[1:2]
	case 3:
		hi := Rank(n[0:1]).Index()
		lo := Rank(n[1:2]).Index()
		if hi < 0 || lo < 0 || hi >= lo {
			return false
		}
		return n[2] == 's' || n[2] == 'o'
	}
	return false
}

// Type returns the hand class of the notation.
func (n Notation) Type() Type {
	if len(n) == 2 {
		return Pair
	}
	if n[len(n)-1] == 's' {
		return Suited
	}
	return Offsuit
}

// High returns the first (higher) rank of the notation.
func (n Notation) High() Rank { return Rank(n[0:1]) }

// Low returns the second (lower) rank of the notation.
func (n Notation) Low() Rank { return Rank(n[1:2]) }

// OffsuitEquivalent maps a suited notation to its offsuit twin and returns
// everything else unchanged. Used to normalize lookups in sets that list
// only the offsuit form of trash hands.
func (n Notation) OffsuitEquivalent() Notation {
	if n.Type() == Suited {
		return n[:2] + "o"
	}
	return n
}

// Make builds the canonical notation for the ranks at grid positions i and j
// (indexes into Ranks). Equal indexes produce a pair and suited is ignored;
// otherwise the higher rank is written first and the suffix is "s" or "o".
func Make(i, j int, suited bool) Notation {
	if i == j {
		return Notation(string(Ranks[i]) + string(Ranks[j]))
	}
	if i > j {
		i, j = j, i
	}
	suffix := "o"
	if suited {
		suffix = "s"
	}
	return Notation(string(Ranks[i]) + string(Ranks[j]) + suffix)
}

// All enumerates the 169 canonical hand classes: 13 pairs, 78 suited and
// 78 offsuit combinations.
func All() []Notation {
	out := make([]Notation, 0, 169)
	for i := range Ranks {
		out = append(out, Make(i, i, false))
		for j := i + 1; j < len(Ranks); j++ {
			out = append(out, Make(i, j, true))
			out = append(out, Make(i, j, false))
		}
	}
	return out
}

// Card is a concrete playing card used for display.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return string(c.Rank) + c.Suit.Symbol()
}

// Hand is a dealt two-card hand: the notation class plus concrete display
// cards. The suits are cosmetic and never affect grading.
type Hand struct {
	Notation Notation
	First    Card
	Second   Card
	Type     Type
}

func (h Hand) String() string {
	return fmt.Sprintf("%s %s", h.First, h.Second)
}
