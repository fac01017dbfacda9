package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/arjunvk/levelcheck/internal/ui/theme"
)

// Countdown renders the per-question timer as a shrinking bar with the
// seconds remaining, shifting color as the budget runs out.
type Countdown struct {
	Remaining int
	Total     int
	Width     int
}

// View renders the countdown.
func (c Countdown) View() string {
	total := c.Total
	if total <= 0 {
		total = 1
	}

	color := theme.CountdownColor(c.Remaining, total)
	secs := lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render(fmt.Sprintf("%2ds", c.Remaining))

	barWidth := c.Width - lipgloss.Width(secs) - 2
	if barWidth < 4 {
		return secs
	}

	filled := barWidth * c.Remaining / total
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := lipgloss.NewStyle().Background(color).Render(spaces(filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(spaces(barWidth-filled))

	return secs + "  " + bar
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
