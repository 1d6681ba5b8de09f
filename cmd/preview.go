package cmd

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sotaro-w/pfdojo/internal/dealer"
	"github.com/sotaro-w/pfdojo/internal/grading"
	"github.com/sotaro-w/pfdojo/internal/session"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated situations (no database)",
	Long: `Generate and interactively answer preflop situations.

This is a stateless developer tool. Nothing is persisted, the difficulty
ramp is fixed by --accuracy, and a --seed makes the deal reproducible.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().IntP("count", "n", 10, "Number of situations to deal")
	previewCmd.Flags().Uint64("seed", 0, "RNG seed (0 = random)")
	previewCmd.Flags().Float64("accuracy", 50, "Simulated running accuracy, 0-100, steers borderline frequency")
}

func runPreview(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetUint64("seed")
	accuracy, _ := cmd.Flags().GetFloat64("accuracy")

	if accuracy < 0 || accuracy > 100 {
		return fmt.Errorf("invalid accuracy %v: must be between 0 and 100", accuracy)
	}

	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	locale := resolveLocale(cmd)
	gen := dealer.New(rng, locale)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("Dealing %d situations (seed %d, accuracy %.0f%%)...\n\n", count, seed, accuracy)

	var correct int
	answered := 0

	for i := 1; i <= count; i++ {
		sit, err := gen.Generate(accuracy)
		if err != nil {
			fmt.Printf("Situation %d: generation failed: %v\n\n", i, err)
			continue
		}

		fmt.Printf("── Situation %d/%d ──\n", i, count)
		fmt.Println(sit.Description)
		fmt.Printf("Hand: %s (%s)\n", sit.Hand, sit.Notation())
		for j, opt := range sit.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}

		fmt.Print("\nYour action: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			fmt.Printf("(skipped, reference: %s)\n\n", grading.CorrectAction(sit))
			continue
		}

		idx, err := strconv.Atoi(input)
		if err != nil || idx < 1 || idx > len(sit.Options) {
			fmt.Printf("(invalid choice, reference: %s)\n\n", grading.CorrectAction(sit))
			continue
		}

		rec := session.Grade(sit, sit.Options[idx-1])
		answered++
		if rec.Acceptable {
			correct++
			fmt.Printf("\033[32m✓ %s\033[0m (%.1f/%.1f pts)\n", rec.Level, rec.Earned, rec.MaxPossible)
		} else {
			fmt.Printf("\033[31m✗ %s\033[0m Reference: %s\n", rec.Level, rec.CorrectAction)
		}
		if note := grading.Explanation(sit, rec.CorrectAction, locale); note != "" {
			fmt.Printf("Note: %s\n", note)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d acceptable ──\n", correct, answered)
	return nil
}
