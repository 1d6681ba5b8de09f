package trainer

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sotaro-w/pfdojo/internal/grading"
	"github.com/sotaro-w/pfdojo/internal/i18n"
	"github.com/sotaro-w/pfdojo/internal/ranges"
	sess "github.com/sotaro-w/pfdojo/internal/session"
	"github.com/sotaro-w/pfdojo/internal/ui/components"
	"github.com/sotaro-w/pfdojo/internal/ui/theme"
)

func statusLine(st sess.Stats) string {
	return fmt.Sprintf("Q %d  %.0f%%  %.1f/%.1f pts",
		st.Total+1, st.Accuracy(), st.WeightedScore, st.MaxPossibleScore)
}

// renderQuestion renders the active spot: description, hole cards, actions.
func (t *TrainerScreen) renderQuestion(width int) string {
	sit := t.current

	var b strings.Builder
	b.WriteString("\n")

	desc := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render(sit.Description)
	b.WriteString(desc)
	b.WriteString("\n\n")

	cards := components.RenderHand(sit.Hand)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, cards))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, t.selector.View()))

	hint := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\nSelect (1-%d) or use arrows + Enter", len(sit.Options)))
	b.WriteString(hint)

	return b.String()
}

// renderFeedback renders the verdict overlay after an answer.
func (t *TrainerScreen) renderFeedback(width int) string {
	rec := t.lastRecord
	sit := t.current

	var b strings.Builder
	b.WriteString("\n")

	verdict := i18n.T(t.locale, "verdict."+string(rec.Level), nil)
	verdictStyle := theme.Incorrect
	switch rec.Level {
	case grading.Obvious, grading.Correct:
		verdictStyle = theme.Correct
	case grading.Borderline:
		verdictStyle = theme.Borderline
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(verdictStyle.Render(verdict)))
	b.WriteString("\n")

	if rec.UserAction != rec.CorrectAction {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Reference action: %s", rec.CorrectAction)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, t.selector.View()))
	b.WriteString("\n")

	// Mixed-strategy row, when the tables carry one for this hand.
	if freq, ok := ranges.MixedFrequency(sit.Scenario, sit.Notation()); ok {
		parts := make([]string, 0, len(freq))
		for _, a := range freq.Ranked() {
			parts = append(parts, fmt.Sprintf("%s %.0f%%", a, freq[a]))
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render(strings.Join(parts, "  /  ")))
		b.WriteString("\n")
	}
	if rec.Level == grading.Borderline {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(i18n.T(t.locale, "verdict.borderline.note", nil)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	explanation := grading.Explanation(*sit, rec.CorrectAction, t.locale)
	expStyle := lipgloss.NewStyle().
		Width(minInt(width-8, 70)).
		Foreground(theme.Text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expStyle.Render(explanation)))
	b.WriteString("\n\n")

	if t.coachBusy {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Coach is thinking..."))
		b.WriteString("\n")
	} else if t.coachText != "" {
		coachStyle := lipgloss.NewStyle().
			Width(minInt(width-8, 70)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, coachStyle.Render(t.coachText)))
		b.WriteString("\n")
	}

	if t.chatActive {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "Coach: "+t.chatInput.View()))
		b.WriteString("\n")
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\nPress any key for the next hand..."))
	}

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your answers are saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, show my summary"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Shuffling...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
