package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sotaro-w/pfdojo/internal/ui/theme"
)

// ActionSelect is a number-keyed selector for the actions available in a
// spot. Options are picked with the 1..n keys or arrows + enter. After
// Submit, the reference action is highlighted and the chosen wrong line is
// colored by whether it was still an acceptable play.
type ActionSelect struct {
	Prompt       string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
	chosenOK     bool
}

// NewActionSelect creates a selector over the given action labels.
func NewActionSelect(prompt string, options []string, correctIndex int) ActionSelect {
	return ActionSelect{
		Prompt:       prompt,
		Options:      options,
		CorrectIndex: correctIndex,
		Selected:     0,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (a ActionSelect) Init() tea.Cmd {
	return nil
}

// Update handles arrow navigation. Number keys and submission are owned by
// the screen, which grades the answer before calling Submit.
func (a ActionSelect) Update(msg tea.Msg) (ActionSelect, tea.Cmd) {
	if a.Submitted {
		return a, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if a.Selected > 0 {
			a.Selected--
		}
	case "down", "j":
		if a.Selected < len(a.Options)-1 {
			a.Selected++
		}
	}

	return a, nil
}

// IndexForKey maps a number key ("1".."9") to an option index, or -1.
func (a ActionSelect) IndexForKey(key string) int {
	if len(key) != 1 || key[0] < '1' {
		return -1
	}
	idx := int(key[0] - '1')
	if idx >= len(a.Options) {
		return -1
	}
	return idx
}

// Submit locks in the choice. acceptable reports whether the chosen action
// still earns credit even when it differs from the reference action.
func (a *ActionSelect) Submit(idx int, acceptable bool) {
	a.Submitted = true
	a.ChosenIndex = idx
	a.chosenOK = acceptable
}

// View renders the selector.
func (a ActionSelect) View() string {
	s := ""
	if a.Prompt != "" {
		s = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(a.Prompt) + "\n\n"
	}

	for i, opt := range a.Options {
		prefix := "  "
		if i == a.Selected && !a.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		if a.Submitted {
			switch {
			case i == a.CorrectIndex:
				s += theme.Correct.Render(line) + "\n"
			case i == a.ChosenIndex && a.chosenOK:
				s += theme.Borderline.Render(line) + "\n"
			case i == a.ChosenIndex:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == a.Selected {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}
