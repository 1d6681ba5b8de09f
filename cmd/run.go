package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/sotaro-w/pfdojo/internal/app"
	"github.com/sotaro-w/pfdojo/internal/coach"
	"github.com/sotaro-w/pfdojo/internal/dealer"
	"github.com/sotaro-w/pfdojo/internal/llm"
	"github.com/sotaro-w/pfdojo/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	locale := resolveLocale(cmd)
	eventRepo := st.EventRepo()

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	opts := app.Options{
		Generator: dealer.New(rng, locale),
		Repo:      eventRepo,
		Locale:    locale,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The AI coach will be unavailable.")
	} else {
		opts.Coach = coach.New(provider, locale)
	}

	return app.Run(opts)
}
