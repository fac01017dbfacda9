package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/arjunvk/levelcheck/internal/ui/theme"
)

// MultiChoice renders a four-option question. Selection state lives in
// the owning screen's session; this component is display-only so the
// collector's records stay the single source of truth.
type MultiChoice struct {
	Question string
	Options  []string

	// Selected is the highlighted option, or -1 for none.
	Selected int

	// Checked switches the view from picking to feedback: the correct
	// option is marked, a wrong pick is crossed.
	Checked      bool
	CorrectIndex int
	ChosenIndex  int // -1 when the question timed out unanswered
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D"}

	for i, opt := range m.Options {
		label := fmt.Sprintf("%s)", labels[i%len(labels)])
		prefix := "  "
		if i == m.Selected && !m.Checked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s  %s", prefix, label, opt)

		switch {
		case m.Checked && i == m.CorrectIndex:
			s += theme.Correct.Render(line+"  ✓") + "\n"
		case m.Checked && i == m.ChosenIndex:
			s += theme.Incorrect.Render(line+"  ✗") + "\n"
		case m.Checked:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
