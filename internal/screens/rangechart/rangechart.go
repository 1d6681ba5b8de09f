// Package rangechart renders the reference ranges as the usual 13x13
// starting-hand matrix: pairs on the diagonal, suited hands above it,
// offsuit hands below.
package rangechart

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sotaro-w/pfdojo/internal/hand"
	"github.com/sotaro-w/pfdojo/internal/ranges"
	"github.com/sotaro-w/pfdojo/internal/router"
	"github.com/sotaro-w/pfdojo/internal/screen"
	"github.com/sotaro-w/pfdojo/internal/ui/layout"
	"github.com/sotaro-w/pfdojo/internal/ui/theme"
)

// chart is one viewable matrix: a scenario plus a title.
type chart struct {
	title    string
	scenario ranges.Scenario
}

// charts lists every reference table, open seats first.
var charts = func() []chart {
	out := make([]chart, 0, len(ranges.OpenPositions)+len(ranges.VsOpenScenarios))
	for _, p := range ranges.OpenPositions {
		out = append(out, chart{
			title:    fmt.Sprintf("%s open", p),
			scenario: ranges.Scenario{Type: ranges.Open, Hero: p},
		})
	}
	for _, sc := range ranges.VsOpenScenarios {
		out = append(out, chart{
			title:    fmt.Sprintf("%s vs %s open", sc.Hero, sc.Villain),
			scenario: sc,
		})
	}
	return out
}()

// RangeChartScreen pages through the reference range charts.
type RangeChartScreen struct {
	index int
}

var _ screen.Screen = (*RangeChartScreen)(nil)
var _ screen.KeyHintProvider = (*RangeChartScreen)(nil)

// New creates a RangeChartScreen starting at the first chart.
func New() *RangeChartScreen {
	return &RangeChartScreen{}
}

func (r *RangeChartScreen) Init() tea.Cmd {
	return nil
}

func (r *RangeChartScreen) Title() string {
	return "Range Charts"
}

func (r *RangeChartScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←/→", Description: "Switch spot"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *RangeChartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "esc", "q":
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	case "left", "h":
		r.index = (r.index + len(charts) - 1) % len(charts)
	case "right", "l", "tab":
		r.index = (r.index + 1) % len(charts)
	}

	return r, nil
}

// cellAction returns the reference action coloring a grid cell.
func cellAction(sc ranges.Scenario, n hand.Notation) ranges.Action {
	if sc.Type == ranges.Open {
		if or, ok := ranges.OpenRanges[sc.Hero]; ok && or.Raise.Contains(n) {
			return ranges.Raise
		}
		return ranges.Fold
	}
	vs, ok := ranges.VsOpenRanges[sc.Key()]
	if !ok {
		return ranges.Fold
	}
	switch {
	case vs.ThreeBet.Contains(n):
		return ranges.ThreeBet
	case vs.Call.Contains(n):
		return ranges.Call
	default:
		return ranges.Fold
	}
}

var (
	cellRaise = lipgloss.NewStyle().Background(theme.Primary).Foreground(theme.BgDark)
	cell3Bet  = lipgloss.NewStyle().Background(theme.Error).Foreground(theme.Text)
	cellCall  = lipgloss.NewStyle().Background(theme.Secondary).Foreground(theme.BgDark)
	cellFold  = lipgloss.NewStyle().Background(theme.BgCard).Foreground(theme.TextDim)
)

func cellStyle(a ranges.Action) lipgloss.Style {
	switch a {
	case ranges.Raise:
		return cellRaise
	case ranges.ThreeBet:
		return cell3Bet
	case ranges.Call:
		return cellCall
	default:
		return cellFold
	}
}

func (r *RangeChartScreen) View(width, height int) string {
	c := charts[r.index]

	var b strings.Builder
	b.WriteString("\n")

	title := fmt.Sprintf("%s  (%d/%d)", c.title, r.index+1, len(charts))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	var grid strings.Builder
	for i := range hand.Ranks {
		for j := range hand.Ranks {
			var n hand.Notation
			switch {
			case i == j:
				n = hand.Make(i, j, false)
			case j > i: // upper right: suited
				n = hand.Make(i, j, true)
			default: // lower left: offsuit
				n = hand.Make(j, i, false)
			}

			label := fmt.Sprintf("%-4s", n)
			style := cellStyle(cellAction(c.scenario, n))
			if ranges.IsBorderline(c.scenario, n) {
				style = style.Underline(true)
			}
			grid.WriteString(style.Render(label))
		}
		grid.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, grid.String()))
	b.WriteString("\n")

	legend := r.legend(c.scenario)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, legend))

	return b.String()
}

func (r *RangeChartScreen) legend(sc ranges.Scenario) string {
	parts := []string{}
	if sc.Type == ranges.Open {
		parts = append(parts, cellRaise.Render(" Raise "))
	} else {
		parts = append(parts,
			cell3Bet.Render(" 3-Bet "),
			cellCall.Render(" Call "))
	}
	parts = append(parts,
		cellFold.Render(" Fold "),
		lipgloss.NewStyle().Foreground(theme.TextDim).Underline(true).Render("borderline"))
	return strings.Join(parts, "  ")
}
