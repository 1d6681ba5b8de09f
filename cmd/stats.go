package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/sotaro-w/pfdojo/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime training statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		overall, err := repo.OverallStats(ctx)
		if err != nil {
			return fmt.Errorf("query overall stats: %w", err)
		}
		if overall.Total == 0 {
			fmt.Println("No answers recorded yet. Run `pfdojo play` first.")
			return nil
		}

		pterm.DefaultSection.Println("Overall")
		overallData := pterm.TableData{
			{"Hands", "Accuracy", "Score", "Max"},
			{
				fmt.Sprintf("%d", overall.Total),
				fmt.Sprintf("%.1f%%", overall.Accuracy()),
				fmt.Sprintf("%.1f", overall.WeightedScore),
				fmt.Sprintf("%.1f", overall.MaxScore),
			},
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(overallData).Render(); err != nil {
			return err
		}

		if len(overall.LevelCounts) > 0 {
			pterm.DefaultSection.Println("Verdicts")
			verdictData := pterm.TableData{{"Verdict", "Count"}}
			for _, level := range []string{"obvious", "correct", "borderline", "wrong", "critical_mistake"} {
				if n, ok := overall.LevelCounts[level]; ok {
					verdictData = append(verdictData, []string{level, fmt.Sprintf("%d", n)})
				}
			}
			if err := pterm.DefaultTable.WithHasHeader().WithData(verdictData).Render(); err != nil {
				return err
			}
		}

		scenarios, err := repo.ScenarioStats(ctx)
		if err != nil {
			return fmt.Errorf("query scenario stats: %w", err)
		}
		if len(scenarios) > 0 {
			pterm.DefaultSection.Println("By Scenario (weakest first)")
			scenarioData := pterm.TableData{{"Scenario", "Hands", "Accuracy"}}
			for _, sc := range scenarios {
				acc := fmt.Sprintf("%.1f%%", sc.Accuracy())
				if sc.Accuracy() < 60 {
					acc = pterm.LightRed(acc)
				} else if sc.Accuracy() >= 85 {
					acc = pterm.LightGreen(acc)
				}
				scenarioData = append(scenarioData, []string{
					sc.ScenarioKey,
					fmt.Sprintf("%d", sc.Total),
					acc,
				})
			}
			if err := pterm.DefaultTable.WithHasHeader().WithData(scenarioData).Render(); err != nil {
				return err
			}
		}

		sessions, err := repo.RecentSessions(ctx, 10)
		if err != nil {
			return fmt.Errorf("query recent sessions: %w", err)
		}
		if len(sessions) > 0 {
			pterm.DefaultSection.Println("Recent Sessions")
			sessionData := pterm.TableData{{"Ended", "Hands", "Correct", "Score", "Duration"}}
			for _, ss := range sessions {
				d := time.Duration(ss.DurationSecs) * time.Second
				sessionData = append(sessionData, []string{
					ss.EndedAt.Local().Format("2006-01-02 15:04"),
					fmt.Sprintf("%d", ss.Questions),
					fmt.Sprintf("%d", ss.Correct),
					fmt.Sprintf("%.1f/%.1f", ss.WeightedScore, ss.MaxScore),
					fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60),
				})
			}
			if err := pterm.DefaultTable.WithHasHeader().WithData(sessionData).Render(); err != nil {
				return err
			}
		}

		return nil
	},
}
