// Package dealer generates quiz situations: it samples a hand with
// difficulty-aware weighting, picks a scenario and deals display cards.
// Everything is a pure function of the injected random source, so a seeded
// generator replays identically.
package dealer

import (
	"fmt"
	"math/rand/v2"

	"github.com/sotaro-w/pfdojo/internal/hand"
	"github.com/sotaro-w/pfdojo/internal/i18n"
	"github.com/sotaro-w/pfdojo/internal/ranges"
)

// Situation is one quiz question. Immutable once generated: Options is a
// fresh slice per situation and the dealt hand is by value.
type Situation struct {
	Scenario    ranges.Scenario
	Hand        hand.Hand
	Description string
	Options     []ranges.Action
}

// Notation returns the hand class being quizzed.
func (s Situation) Notation() hand.Notation {
	return s.Hand.Notation
}

// Summary returns a short locale-free label for records and coach prompts,
// e.g. "UTG open" or "BB vs BTN".
func (s Situation) Summary() string {
	if s.Scenario.Type == ranges.Open {
		return fmt.Sprintf("%s open", s.Scenario.Hero)
	}
	return fmt.Sprintf("%s vs %s", s.Scenario.Hero, s.Scenario.Villain)
}

// openWeight is the share of generated situations that are open spots; the
// remainder are facing-a-raise spots.
const openWeight = 0.6

// Generator composes a Sampler draw with a random scenario into a Situation.
type Generator struct {
	rng     *rand.Rand
	sampler *Sampler
	locale  i18n.Locale
}

// New creates a Generator. The same rng feeds scenario choice, hand sampling
// and display-suit assignment.
func New(rng *rand.Rand, locale i18n.Locale) *Generator {
	return &Generator{
		rng:     rng,
		sampler: NewSampler(rng),
		locale:  locale,
	}
}

// Generate produces the next quiz situation for the given running accuracy
// percentage. Callers recompute accuracy from their session totals before
// each call; the generator holds no session state.
func (g *Generator) Generate(accuracy float64) (Situation, error) {
	sc, desc := g.pickScenario()

	n := g.sampler.Sample(accuracy)
	h, err := hand.Deal(g.rng, n)
	if err != nil {
		return Situation{}, fmt.Errorf("deal %s: %w", n, err)
	}

	return Situation{
		Scenario:    sc,
		Hand:        h,
		Description: desc,
		Options:     sc.Options(),
	}, nil
}

func (g *Generator) pickScenario() (ranges.Scenario, string) {
	if g.rng.Float64() < openWeight {
		hero := ranges.OpenPositions[g.rng.IntN(len(ranges.OpenPositions))]
		sc := ranges.Scenario{Type: ranges.Open, Hero: hero}
		return sc, i18n.T(g.locale, "open.desc."+string(hero), nil)
	}

	sc := ranges.VsOpenScenarios[g.rng.IntN(len(ranges.VsOpenScenarios))]
	desc := i18n.T(g.locale, "vsopen.desc", i18n.Vars{
		"hero":    string(sc.Hero),
		"villain": string(sc.Villain),
	})
	return sc, desc
}
