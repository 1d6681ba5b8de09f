package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sotaro-w/pfdojo/internal/i18n"
	"github.com/sotaro-w/pfdojo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pfdojo",
	Short: "6-max preflop decision trainer",
	Long:  "Preflop Dojo: terminal trainer for 6-max no-limit hold'em preflop decisions, with GTO reference ranges and an optional AI coach.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A .env next to the binary is the easiest place for API keys.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PFDOJO_DB env var)")
	rootCmd.PersistentFlags().String("lang", "", "Message language: en or ja (default: detect from locale)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(rangesCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PFDOJO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveLocale returns the message language from --lang, falling back to
// the process locale.
func resolveLocale(cmd *cobra.Command) i18n.Locale {
	if v, _ := cmd.Flags().GetString("lang"); v != "" {
		if loc, ok := i18n.Parse(v); ok {
			return loc
		}
	}
	return i18n.Detect()
}
