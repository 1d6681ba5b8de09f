package summary

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sotaro-w/pfdojo/internal/coach"
	"github.com/sotaro-w/pfdojo/internal/grading"
	"github.com/sotaro-w/pfdojo/internal/i18n"
	"github.com/sotaro-w/pfdojo/internal/router"
	"github.com/sotaro-w/pfdojo/internal/screen"
	sess "github.com/sotaro-w/pfdojo/internal/session"
	"github.com/sotaro-w/pfdojo/internal/store"
	"github.com/sotaro-w/pfdojo/internal/ui/layout"
	"github.com/sotaro-w/pfdojo/internal/ui/theme"
)

// SummaryScreen displays the end-of-session totals: accuracy, weighted
// score, a verdict breakdown and the scenarios that cost the most points.
// With a coach attached it can also produce an AI leak report.
type SummaryScreen struct {
	stats    sess.Stats
	records  []sess.Record
	duration time.Duration
	locale   i18n.Locale

	ai *coach.Coach

	report       *coach.LeakReport
	analysisBusy bool
	analysisErr  string
}

// reportReadyMsg delivers the coach's leak report.
type reportReadyMsg struct {
	Report *coach.LeakReport
	Err    error
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen over a finished session. The coach is optional.
func New(stats sess.Stats, records []sess.Record, duration time.Duration, locale i18n.Locale, ai *coach.Coach) *SummaryScreen {
	return &SummaryScreen{stats: stats, records: records, duration: duration, locale: locale, ai: ai}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
	if s.ai != nil && len(s.records) >= coach.MinAnswersForAnalysis {
		hints = append(hints, layout.KeyHint{Key: "A", Description: "AI leak report"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportReadyMsg:
		s.analysisBusy = false
		if msg.Err != nil {
			s.analysisErr = msg.Err.Error()
			return s, nil
		}
		s.report = msg.Report
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "a", "A":
			if s.ai != nil && !s.analysisBusy && s.report == nil {
				s.analysisBusy = true
				s.analysisErr = ""
				return s, s.analyze()
			}
			return s, nil
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// analyze feeds the session's answers to the coach, newest first.
func (s *SummaryScreen) analyze() tea.Cmd {
	rows := make([]store.AnswerRow, 0, len(s.records))
	for i := len(s.records) - 1; i >= 0; i-- {
		r := s.records[i]
		rows = append(rows, store.AnswerRow{
			AnswerEventData: store.AnswerEventData{
				ScenarioKey:   r.ScenarioKey,
				ScenarioType:  string(r.ScenarioType),
				Hand:          string(r.Hand),
				UserAction:    string(r.UserAction),
				CorrectAction: string(r.CorrectAction),
				Level:         string(r.Level),
				Acceptable:    r.Acceptable,
				Earned:        r.Earned,
				MaxPossible:   r.MaxPossible,
			},
			Timestamp: r.AnsweredAt,
		})
	}
	ai := s.ai
	return func() tea.Msg {
		report, err := ai.Analyze(context.Background(), rows)
		return reportReadyMsg{Report: report, Err: err}
	}
}

// levelOrder fixes the verdict breakdown display order, best first.
var levelOrder = []grading.AnswerLevel{
	grading.Obvious, grading.Correct, grading.Borderline,
	grading.Wrong, grading.CriticalMistake,
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	mins := int(s.duration.Minutes())
	secs := int(s.duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Hands: %d        Accuracy: %.0f%%        Score: %.1f/%.1f (%.0f%%)",
		s.stats.Total, s.stats.Accuracy(),
		s.stats.WeightedScore, s.stats.MaxPossibleScore, s.stats.WeightedPercent())
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", minInt(width-8, 60)))

	// Verdict breakdown.
	counts := make(map[grading.AnswerLevel]int)
	for _, r := range s.records {
		counts[r.Level]++
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Verdicts")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, lvl := range levelOrder {
		n := counts[lvl]
		if n == 0 {
			continue
		}
		label := i18n.T(s.locale, "verdict."+string(lvl), nil)
		line := fmt.Sprintf("  %-20s %d", label, n)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch lvl {
		case grading.Obvious, grading.Correct:
			style = style.Foreground(theme.Success)
		case grading.Borderline:
			style = style.Foreground(theme.Warning)
		case grading.CriticalMistake:
			style = style.Foreground(theme.Error)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	// Scenarios that lost points, biggest leak first.
	type leak struct {
		key    string
		lost   float64
		misses int
	}
	byKey := make(map[string]*leak)
	var order []string
	for _, r := range s.records {
		if r.Acceptable {
			continue
		}
		l, ok := byKey[r.ScenarioKey]
		if !ok {
			l = &leak{key: r.ScenarioKey}
			byKey[r.ScenarioKey] = l
			order = append(order, r.ScenarioKey)
		}
		l.lost += r.MaxPossible - r.Earned
		l.misses++
	}
	if len(order) > 0 {
		sort.Slice(order, func(i, j int) bool {
			return byKey[order[i]].lost > byKey[order[j]].lost
		})

		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Work on")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, key := range order {
			l := byKey[key]
			line := fmt.Sprintf("  %-12s %d missed, %.1f pts lost", l.key, l.misses, l.lost)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
		}
	}

	// Coach leak report.
	switch {
	case s.analysisBusy:
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Coach is analyzing...")))
		b.WriteString("\n")
	case s.analysisErr != "":
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Analysis failed: "+s.analysisErr)))
		b.WriteString("\n")
	case s.report != nil:
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Coach report")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Width(minInt(width-8, 70)).Render(s.report.Summary)))
		b.WriteString("\n")
		for _, l := range s.report.Leaks {
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if l.Severity == "high" {
				style = style.Foreground(theme.Error)
			}
			line := fmt.Sprintf("  • %s: %s", l.Pattern, l.Advice)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				style.Width(minInt(width-8, 70)).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
