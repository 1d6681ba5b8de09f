package dealer

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/sotaro-w/pfdojo/internal/i18n"
	"github.com/sotaro-w/pfdojo/internal/ranges"
)

func TestGenerateScenarioMix(t *testing.T) {
	g := New(rand.New(rand.NewPCG(1, 1)), i18n.En)

	var open, vsOpen int
	const draws = 5000
	for i := 0; i < draws; i++ {
		sit, err := g.Generate(50)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		switch sit.Scenario.Type {
		case ranges.Open:
			open++
			if sit.Scenario.Hero == ranges.BB {
				t.Fatal("BB cannot open")
			}
			if len(sit.Options) != 2 {
				t.Fatalf("open options = %v", sit.Options)
			}
		case ranges.VsOpen:
			vsOpen++
			if !sit.Scenario.Villain.ActsBefore(sit.Scenario.Hero) {
				t.Fatalf("villain %s does not act before hero %s", sit.Scenario.Villain, sit.Scenario.Hero)
			}
			if len(sit.Options) != 3 {
				t.Fatalf("vsOpen options = %v", sit.Options)
			}
		}
		if sit.Description == "" {
			t.Fatal("empty description")
		}
		if !sit.Notation().Valid() {
			t.Fatalf("invalid notation %q", sit.Notation())
		}
	}

	openRate := float64(open) / draws
	if openRate < 0.55 || openRate > 0.65 {
		t.Errorf("open rate %.3f, want ≈0.60", openRate)
	}
}

func TestGenerateLocalizedDescriptions(t *testing.T) {
	// A VsOpen description must name both seats in either locale.
	for _, loc := range []i18n.Locale{i18n.En, i18n.Ja} {
		g := New(rand.New(rand.NewPCG(9, 9)), loc)
		for {
			sit, err := g.Generate(50)
			if err != nil {
				t.Fatal(err)
			}
			if sit.Scenario.Type != ranges.VsOpen {
				continue
			}
			if !strings.Contains(sit.Description, string(sit.Scenario.Villain)) {
				t.Fatalf("%s description %q missing villain", loc, sit.Description)
			}
			break
		}
	}
}

func TestGenerateDoesNotMutatePriorSituations(t *testing.T) {
	g := New(rand.New(rand.NewPCG(2, 2)), i18n.En)

	first, err := g.Generate(50)
	if err != nil {
		t.Fatal(err)
	}
	savedHand := first.Hand
	savedOpts := append([]ranges.Action(nil), first.Options...)

	for i := 0; i < 50; i++ {
		if _, err := g.Generate(float64(i)); err != nil {
			t.Fatal(err)
		}
	}

	if first.Hand != savedHand {
		t.Fatal("prior situation hand mutated")
	}
	for i, a := range savedOpts {
		if first.Options[i] != a {
			t.Fatal("prior situation options mutated")
		}
	}
}

func TestSummary(t *testing.T) {
	open := Situation{Scenario: ranges.Scenario{Type: ranges.Open, Hero: ranges.UTG}}
	if got := open.Summary(); got != "UTG open" {
		t.Errorf("Summary() = %q", got)
	}
	vs := Situation{Scenario: ranges.Scenario{Type: ranges.VsOpen, Hero: ranges.BB, Villain: ranges.BTN}}
	if got := vs.Summary(); got != "BB vs BTN" {
		t.Errorf("Summary() = %q", got)
	}
}
