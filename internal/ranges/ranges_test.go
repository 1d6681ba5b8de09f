package ranges

import (
	"testing"

	"github.com/sotaro-w/pfdojo/internal/hand"
)

func TestOpenRangesDefinedForAllOpenSeats(t *testing.T) {
	for _, pos := range OpenPositions {
		r, ok := OpenRanges[pos]
		if !ok {
			t.Fatalf("no open range for %s", pos)
		}
		if len(r.Raise) == 0 {
			t.Fatalf("empty raise set for %s", pos)
		}
	}
	if _, ok := OpenRanges[BB]; ok {
		t.Fatal("BB must not have an open range")
	}
}

func TestVsOpenRangesDefinedForAllScenarios(t *testing.T) {
	for _, sc := range VsOpenScenarios {
		r, ok := VsOpenRanges[sc.Key()]
		if !ok {
			t.Fatalf("no vs-open range for %s", sc.Key())
		}
		if len(r.ThreeBet) == 0 || len(r.Call) == 0 {
			t.Fatalf("incomplete range for %s", sc.Key())
		}
		if !sc.Villain.ActsBefore(sc.Hero) {
			t.Fatalf("%s: villain %s must act before hero %s", sc.Key(), sc.Villain, sc.Hero)
		}
	}
}

func TestRangeEntriesAreCanonicalNotations(t *testing.T) {
	check := func(name string, set HandSet) {
		for n := range set {
			if !n.Valid() {
				t.Errorf("%s contains invalid notation %q", name, n)
			}
		}
	}
	for pos, r := range OpenRanges {
		check("OpenRanges/"+string(pos), r.Raise)
	}
	for key, r := range VsOpenRanges {
		check("VsOpenRanges/"+key+"/threebet", r.ThreeBet)
		check("VsOpenRanges/"+key+"/call", r.Call)
	}
	check("ObviousStrong", ObviousStrong)
	check("ObviousWeak", ObviousWeak)
}

func TestThreeBetAndCallSetsAreDisjoint(t *testing.T) {
	for key, r := range VsOpenRanges {
		for n := range r.ThreeBet {
			if r.Call.Contains(n) {
				t.Errorf("%s: %s appears in both threebet and call sets", key, n)
			}
		}
	}
}

// Every mixed-strategy row must describe a hand the scenario already marks
// as borderline: the frequency table is a refinement, not an extension.
func TestMixedRowsRefineBorderlineTables(t *testing.T) {
	for pos, rows := range MixedOpen {
		sc := Scenario{Type: Open, Hero: pos}
		for n := range rows {
			if !IsBorderline(sc, n) {
				t.Errorf("MixedOpen[%s] lists non-borderline hand %s", pos, n)
			}
		}
	}
	for key, rows := range MixedVsOpen {
		bl := BorderlineVsOpen[key]
		for n := range rows {
			if !bl.ThreeBet.Contains(n) && !bl.Call.Contains(n) {
				t.Errorf("MixedVsOpen[%s] lists non-borderline hand %s", key, n)
			}
		}
	}
}

func TestFrequenciesRanked(t *testing.T) {
	f := Frequencies{ThreeBet: 55, Call: 40, Fold: 5}
	got := f.Ranked()
	want := []Action{ThreeBet, Call, Fold}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Ranked() = %v, want %v", got, want)
		}
	}

	// Ties resolve by action precedence, aggressive first.
	tied := Frequencies{Call: 50, Raise: 50}
	if r := tied.Ranked(); r[0] != Raise {
		t.Fatalf("tied Ranked() = %v, want Raise first", r)
	}
}

func TestMixedFrequencyLookup(t *testing.T) {
	sc := Scenario{Type: VsOpen, Hero: BB, Villain: BTN}
	f, ok := MixedFrequency(sc, "KQs")
	if !ok {
		t.Fatal("expected frequency row for KQs in BB_vs_BTN")
	}
	if f[ThreeBet] != 55 || f[Call] != 40 || f[Fold] != 5 {
		t.Fatalf("unexpected row %v", f)
	}

	if _, ok := MixedFrequency(sc, "AA"); ok {
		t.Fatal("AA must not have a mixed row")
	}

	// Unknown scenario key degrades to "no row", never an error.
	odd := Scenario{Type: VsOpen, Hero: SB, Villain: UTG}
	if _, ok := MixedFrequency(odd, "KQs"); ok {
		t.Fatal("unknown scenario must report no row")
	}
}

func TestIsObviouslyWeakNormalizesSuited(t *testing.T) {
	if !IsObviouslyWeak(hand.Notation("72o")) {
		t.Fatal("72o should be obviously weak")
	}
	if !IsObviouslyWeak(hand.Notation("72s")) {
		t.Fatal("72s should normalize to 72o and be obviously weak")
	}
	if IsObviouslyWeak(hand.Notation("AA")) {
		t.Fatal("AA is not weak")
	}
}

func TestAllBorderlineIsPooledUnion(t *testing.T) {
	pool := AllBorderline()
	if len(pool) == 0 {
		t.Fatal("empty borderline pool")
	}
	seen := make(map[hand.Notation]bool, len(pool))
	for _, n := range pool {
		if seen[n] {
			t.Fatalf("duplicate %s in pooled union", n)
		}
		seen[n] = true
	}
	// Spot members from each table family.
	for _, want := range []hand.Notation{"77", "K4s", "Q5s", "JJ"} {
		if !seen[want] {
			t.Errorf("pool missing %s", want)
		}
	}
}
