package cmd

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/sotaro-w/pfdojo/internal/hand"
	"github.com/sotaro-w/pfdojo/internal/ranges"
)

var rangesCmd = &cobra.Command{
	Use:   "ranges [scenario]",
	Short: "Print reference range charts",
	Long:  "Print a 13x13 reference range chart for a scenario (e.g. UTG, BTN, BB_vs_CO). Without arguments, lists the available scenarios.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println("Open scenarios:")
			for _, p := range ranges.OpenPositions {
				fmt.Printf("  %s\n", p)
			}
			fmt.Println("Facing an open:")
			for _, sc := range ranges.VsOpenScenarios {
				fmt.Printf("  %s\n", sc.Key())
			}
			fmt.Println("\nRun `pfdojo ranges <scenario>` to print a chart.")
			return nil
		}

		sc, err := scenarioByKey(args[0])
		if err != nil {
			return err
		}

		printRangeGrid(sc)
		return nil
	},
}

// scenarioByKey resolves a user-supplied key like "UTG" or "BB_vs_CO",
// case-insensitively.
func scenarioByKey(key string) (ranges.Scenario, error) {
	upper := strings.ToUpper(key)
	for _, p := range ranges.OpenPositions {
		if upper == string(p) {
			return ranges.Scenario{Type: ranges.Open, Hero: p}, nil
		}
	}
	for _, sc := range ranges.VsOpenScenarios {
		if strings.EqualFold(key, sc.Key()) {
			return sc, nil
		}
	}
	return ranges.Scenario{}, fmt.Errorf("unknown scenario %q, run `pfdojo ranges` for the list", key)
}

// printRangeGrid renders the 13x13 hand matrix. Row index is the first card
// rank, column index the second; the upper-right triangle is suited, the
// lower-left offsuit, the diagonal pairs.
func printRangeGrid(sc ranges.Scenario) {
	if sc.Type == ranges.Open {
		pterm.DefaultSection.Printf("%s open-raise range", sc.Hero)
	} else {
		pterm.DefaultSection.Printf("%s vs %s open", sc.Hero, sc.Villain)
	}

	// Column header.
	var header strings.Builder
	header.WriteString("    ")
	for _, r := range hand.Ranks {
		header.WriteString(fmt.Sprintf(" %-3s", r))
	}
	fmt.Println(header.String())

	for i := range hand.Ranks {
		var row strings.Builder
		row.WriteString(fmt.Sprintf(" %-3s", hand.Ranks[i]))
		for j := range hand.Ranks {
			n := hand.Make(i, j, j > i)
			row.WriteString(gridCell(sc, n))
		}
		fmt.Println(row.String())
	}

	fmt.Println()
	if sc.Type == ranges.Open {
		fmt.Println("Legend: " + pterm.LightGreen("R raise") + "  " + pterm.Gray(". fold") + "  * borderline")
	} else {
		fmt.Println("Legend: " + pterm.LightRed("3 three-bet") + "  " + pterm.LightCyan("C call") + "  " + pterm.Gray(". fold") + "  * borderline")
	}
}

func gridCell(sc ranges.Scenario, n hand.Notation) string {
	mark := " "
	if ranges.IsBorderline(sc, n) {
		mark = "*"
	}

	switch gridAction(sc, n) {
	case ranges.Raise:
		return pterm.LightGreen(fmt.Sprintf(" R%s ", mark))
	case ranges.ThreeBet:
		return pterm.LightRed(fmt.Sprintf(" 3%s ", mark))
	case ranges.Call:
		return pterm.LightCyan(fmt.Sprintf(" C%s ", mark))
	default:
		return pterm.Gray(fmt.Sprintf(" .%s ", mark))
	}
}

func gridAction(sc ranges.Scenario, n hand.Notation) ranges.Action {
	if sc.Type == ranges.Open {
		if ranges.OpenRanges[sc.Hero].Raise.Contains(n) {
			return ranges.Raise
		}
		return ranges.Fold
	}
	vr := ranges.VsOpenRanges[sc.Key()]
	switch {
	case vr.ThreeBet.Contains(n):
		return ranges.ThreeBet
	case vr.Call.Contains(n):
		return ranges.Call
	default:
		return ranges.Fold
	}
}
