// Package history shows the answer log of the running session. Rows can be
// deleted, which rolls their contribution back out of the session totals
// and therefore out of the difficulty ramp.
package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sotaro-w/pfdojo/internal/i18n"
	"github.com/sotaro-w/pfdojo/internal/router"
	"github.com/sotaro-w/pfdojo/internal/screen"
	sess "github.com/sotaro-w/pfdojo/internal/session"
	"github.com/sotaro-w/pfdojo/internal/ui/layout"
	"github.com/sotaro-w/pfdojo/internal/ui/theme"
)

// HistoryScreen lists the session's graded answers, newest first.
type HistoryScreen struct {
	tracker  *sess.Tracker
	locale   i18n.Locale
	selected int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)
var _ screen.StatusProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen over the live tracker.
func New(tracker *sess.Tracker, locale i18n.Locale) *HistoryScreen {
	return &HistoryScreen{tracker: tracker, locale: locale}
}

func (h *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (h *HistoryScreen) Title() string {
	return "Answer Log"
}

func (h *HistoryScreen) Status() string {
	st := h.tracker.Stats()
	return fmt.Sprintf("%.0f%%  %.1f/%.1f pts", st.Accuracy(), st.WeightedScore, st.MaxPossibleScore)
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Select"},
		{Key: "D", Description: "Delete answer"},
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	n := h.tracker.Stats().Total
	switch kmsg.String() {
	case "esc", "q":
		return h, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if h.selected > 0 {
			h.selected--
		}
	case "down", "j":
		if h.selected < n-1 {
			h.selected++
		}
	case "d", "D":
		if n == 0 {
			return h, nil
		}
		// Rows display newest first; map back to tracker order.
		h.tracker.DeleteAt(n - 1 - h.selected)
		if h.selected >= n-1 && h.selected > 0 {
			h.selected--
		}
	}

	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	records := h.tracker.Records()
	if len(records) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  No answers yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if h.selected >= visible {
		start = h.selected - visible + 1
	}

	for row := start; row < len(records) && row < start+visible; row++ {
		// records is oldest first; display newest first.
		r := records[len(records)-1-row]

		verdict := i18n.T(h.locale, "verdict."+string(r.Level), nil)
		line := fmt.Sprintf("%-14s %-5s %-6s → %-6s %s",
			r.Summary, r.Hand, r.UserAction, r.CorrectAction, verdict)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if !r.Acceptable {
			style = style.Foreground(theme.Error)
		} else if r.UserAction != r.CorrectAction {
			style = style.Foreground(theme.Warning)
		}

		prefix := "    "
		if row == h.selected {
			prefix = "  ▸ "
			style = style.Bold(true)
		}

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prefix+style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
