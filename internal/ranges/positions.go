package ranges

import "fmt"

// Position is a seat at a 6-max table, named by its role.
type Position string

const (
	UTG Position = "UTG"
	HJ  Position = "HJ"
	CO  Position = "CO"
	BTN Position = "BTN"
	SB  Position = "SB"
	BB  Position = "BB"
)

// Positions lists all six seats in acting order (earliest first, blinds last).
var Positions = []Position{UTG, HJ, CO, BTN, SB, BB}

// OpenPositions lists the seats a player can open-raise from. The BB never
// faces an unopened pot preflop.
var OpenPositions = []Position{UTG, HJ, CO, BTN, SB}

// seatOrder maps each position to its acting order for ordering checks.
var seatOrder = map[Position]int{UTG: 0, HJ: 1, CO: 2, BTN: 3, SB: 4, BB: 5}

// ActsBefore reports whether p acts before other preflop.
func (p Position) ActsBefore(other Position) bool {
	return seatOrder[p] < seatOrder[other]
}

// Action is a preflop decision.
type Action string

const (
	Raise    Action = "Raise"
	Fold     Action = "Fold"
	ThreeBet Action = "3-Bet"
	Call     Action = "Call"
)

// Aggressive reports whether the action puts in a raise.
func (a Action) Aggressive() bool {
	return a == Raise || a == ThreeBet
}

// ScenarioType distinguishes the two trained spots.
type ScenarioType string

const (
	// Open: no prior raiser, hero decides to raise or fold.
	Open ScenarioType = "open"
	// VsOpen: hero faces a single open-raise and decides to 3-bet, call or fold.
	VsOpen ScenarioType = "vsOpen"
)

// Scenario identifies a trained spot: hero's seat, and for VsOpen the seat of
// the opener. Villain is empty for Open scenarios.
type Scenario struct {
	Type    ScenarioType
	Hero    Position
	Villain Position
}

// Key returns the lookup key for VsOpen range tables, e.g. "BB_vs_BTN".
func (s Scenario) Key() string {
	if s.Type == Open {
		return string(s.Hero)
	}
	return fmt.Sprintf("%s_vs_%s", s.Hero, s.Villain)
}

// Options returns the actions available to hero in this scenario.
func (s Scenario) Options() []Action {
	if s.Type == Open {
		return []Action{Raise, Fold}
	}
	return []Action{ThreeBet, Call, Fold}
}

// VsOpenScenarios enumerates the VsOpen spots the reference tables cover.
// The villain always acts before the hero.
var VsOpenScenarios = []Scenario{
	{Type: VsOpen, Hero: BB, Villain: BTN},
	{Type: VsOpen, Hero: BB, Villain: CO},
	{Type: VsOpen, Hero: BB, Villain: HJ},
}
