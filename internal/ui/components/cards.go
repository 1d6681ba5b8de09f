package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/sotaro-w/pfdojo/internal/hand"
	"github.com/sotaro-w/pfdojo/internal/ui/theme"
)

var (
	cardBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Background(lipgloss.Color("#F8FAFC")).
		Padding(0, 1).
		Bold(true)

	redSuit   = lipgloss.Color("#DC2626")
	blackSuit = lipgloss.Color("#0F172A")
)

func suitColor(s hand.Suit) color.Color {
	if s == hand.Hearts || s == hand.Diamonds {
		return redSuit
	}
	return blackSuit
}

// RenderCard draws one playing card as a small bordered box.
func RenderCard(c hand.Card) string {
	face := lipgloss.NewStyle().
		Foreground(suitColor(c.Suit)).
		Render(string(c.Rank) + c.Suit.Symbol())
	return cardBox.Render(face)
}

// RenderHand draws the two hole cards side by side with the notation label
// underneath.
func RenderHand(h hand.Hand) string {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderCard(h.First), " ", RenderCard(h.Second))

	label := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Align(lipgloss.Center).
		Width(lipgloss.Width(cards)).
		Render(string(h.Notation))

	return lipgloss.JoinVertical(lipgloss.Left, cards, label)
}
