package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// MinCardWidth is the minimum character width for a record card.
const MinCardWidth = 40

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})

	dimStyle = lipgloss.NewStyle().
			Faint(true)

	soonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "208", Dark: "208"})
)

// CardBorder returns the rounded border style used for one record.
func CardBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"}).
		Padding(0, 1)
}

// soonDays is the distance at or below which a birthday is highlighted.
const soonDays = 7

// BirthdayBadge styles a days-to-birthday value, highlighting upcoming ones.
func BirthdayBadge(days int) string {
	label := "in " + pluralDays(days)
	switch {
	case days == 0:
		return soonStyle.Render("today")
	case days <= soonDays:
		return soonStyle.Render(label)
	default:
		return label
	}
}

// CardWidth calculates the card width for a terminal width.
// Cards take the full width minus a margin, but never less than MinCardWidth.
func CardWidth(totalWidth int) int {
	if totalWidth <= 0 {
		return MinCardWidth
	}
	w := totalWidth - 4
	if w < MinCardWidth {
		w = MinCardWidth
	}
	return w
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
