package hand

import (
	"math/rand/v2"
	"testing"
)

func TestAllEnumerates169Classes(t *testing.T) {
	all := All()
	if len(all) != 169 {
		t.Fatalf("All() returned %d notations, want 169", len(all))
	}

	seen := make(map[Notation]bool)
	var pairs, suited, offsuit int
	for _, n := range all {
		if !n.Valid() {
			t.Errorf("All() produced invalid notation %q", n)
		}
		if seen[n] {
			t.Errorf("duplicate notation %q", n)
		}
		seen[n] = true

		switch n.Type() {
		case Pair:
			pairs++
		case Suited:
			suited++
		case Offsuit:
			offsuit++
		}
	}

	if pairs != 13 || suited != 78 || offsuit != 78 {
		t.Errorf("got %d pairs, %d suited, %d offsuit; want 13/78/78", pairs, suited, offsuit)
	}
}

func TestNotationValid(t *testing.T) {
	tests := []struct {
		n    Notation
		want bool
	}{
		{"AA", true},
		{"AKs", true},
		{"72o", true},
		{"T9s", true},
		{"KAs", false}, // lower rank written first
		{"AAs", false}, // pairs carry no suffix
		{"AK", false},  // non-pair needs a suffix
		{"AKx", false},
		{"A", false},
		{"", false},
		{"1Ko", false},
	}
	for _, tt := range tests {
		if got := tt.n.Valid(); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestOffsuitEquivalent(t *testing.T) {
	if got := Notation("72s").OffsuitEquivalent(); got != "72o" {
		t.Errorf("72s → %q, want 72o", got)
	}
	if got := Notation("72o").OffsuitEquivalent(); got != "72o" {
		t.Errorf("72o → %q, want 72o", got)
	}
	if got := Notation("AA").OffsuitEquivalent(); got != "AA" {
		t.Errorf("AA → %q, want AA", got)
	}
}

// Dealing any notation and stripping suits must reconstruct the notation
// exactly: identical ranks and distinct suits for pairs, identical suits for
// suited hands, distinct suits with the higher rank first for offsuit hands.
func TestDealRoundTripsAllNotations(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for _, n := range All() {
		for trial := 0; trial < 20; trial++ {
			h, err := Deal(rng, n)
			if err != nil {
				t.Fatalf("Deal(%q): %v", n, err)
			}
			if h.Notation != n {
				t.Fatalf("Deal(%q) kept notation %q", n, h.Notation)
			}
			if h.First.Rank != n.High() || h.Second.Rank != n.Low() {
				t.Fatalf("Deal(%q) ranks %s/%s", n, h.First.Rank, h.Second.Rank)
			}

			switch n.Type() {
			case Pair:
				if h.First.Suit == h.Second.Suit {
					t.Fatalf("Deal(%q) pair with identical suits", n)
				}
			case Suited:
				if h.First.Suit != h.Second.Suit {
					t.Fatalf("Deal(%q) suited with mixed suits", n)
				}
			case Offsuit:
				if h.First.Suit == h.Second.Suit {
					t.Fatalf("Deal(%q) offsuit with identical suits", n)
				}
			}
		}
	}
}

func TestDealRejectsInvalidNotation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	if _, err := Deal(rng, "KAs"); err == nil {
		t.Fatal("expected error for non-canonical notation")
	}
}
