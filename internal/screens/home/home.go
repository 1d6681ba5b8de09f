package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sotaro-w/pfdojo/internal/coach"
	"github.com/sotaro-w/pfdojo/internal/dealer"
	"github.com/sotaro-w/pfdojo/internal/i18n"
	"github.com/sotaro-w/pfdojo/internal/router"
	"github.com/sotaro-w/pfdojo/internal/screen"
	"github.com/sotaro-w/pfdojo/internal/screens/rangechart"
	"github.com/sotaro-w/pfdojo/internal/screens/trainer"
	"github.com/sotaro-w/pfdojo/internal/store"
	"github.com/sotaro-w/pfdojo/internal/ui/components"
	"github.com/sotaro-w/pfdojo/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu  components.Menu
	stats store.OverallStats
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. Lifetime stats come from the event log; a fresh
// database just shows zeros.
func New(gen *dealer.Generator, repo store.EventRepo, ai *coach.Coach, locale i18n.Locale) *HomeScreen {
	var stats store.OverallStats
	if repo != nil {
		if s, err := repo.OverallStats(context.Background()); err == nil {
			stats = s
		}
	}

	items := []components.MenuItem{
		{Label: "TRAIN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: trainer.New(gen, repo, ai, locale)}
			}
		}},
		{Label: "RANGE CHARTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: rangechart.New()}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:  components.NewMenu(items),
		stats: stats,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// Status shows the lifetime accuracy in the header.
func (h *HomeScreen) Status() string {
	if h.stats.Total == 0 {
		return ""
	}
	return fmt.Sprintf("Lifetime %.0f%% (%d hands)", h.stats.Accuracy(), h.stats.Total)
}

var titleArt = strings.Join([]string{
	"  ♠ ♥  P R E F L O P   D O J O  ♦ ♣  ",
	"     6-max preflop decision trainer  ",
}, "\n")

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(titleArt))
	b.WriteString("\n\n")

	if h.stats.Total > 0 {
		statsLine := fmt.Sprintf("Hands: %d    Accuracy: %.0f%%    Score: %.1f/%.1f",
			h.stats.Total, h.stats.Accuracy(), h.stats.WeightedScore, h.stats.MaxScore)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(statsLine))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}
