package assess

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/arjunvk/levelcheck/internal/assessment"
	"github.com/arjunvk/levelcheck/internal/ui/components"
	"github.com/arjunvk/levelcheck/internal/ui/theme"
)

func (s *AssessScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\nSomething went wrong:\n" + s.errMsg + "\n\nPress any key to go back")
	}

	if s.session == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n" + s.loading.View() + " Preparing your questions...")
	}

	if s.showingQuitConfirm {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render("\n\nAbandon this level check?\n\nProgress so far will not be saved.")
	}

	return s.renderQuestion(width)
}

func (s *AssessScreen) renderQuestion(width int) string {
	sess := s.session
	q := sess.Current()
	checked := sess.State() == assessment.StateAnswerChecked

	var b strings.Builder

	// Topic and difficulty line.
	info := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", q.Topic)) +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  ·  %s", q.Difficulty))
	b.WriteString(info)
	b.WriteString("\n")

	// Countdown, frozen once checked.
	if !checked {
		cd := components.Countdown{
			Remaining: sess.Remaining(),
			Total:     q.ExpectedSeconds,
			Width:     width - 8,
		}
		b.WriteString("  " + cd.View())
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	selected := -1
	if sel := sess.Selected(); sel != nil {
		selected = *sel
	}
	chosen := -1
	if checked {
		if answers := sess.Answers(); len(answers) > 0 {
			if last := answers[len(answers)-1]; last.ChosenIndex != nil {
				chosen = *last.ChosenIndex
			}
		}
	}

	mc := components.MultiChoice{
		Question:     q.Text,
		Options:      q.Options,
		Selected:     selected,
		Checked:      checked,
		CorrectIndex: q.CorrectIndex,
		ChosenIndex:  chosen,
	}
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(mc.View()))

	if checked {
		b.WriteString("\n")
		if sess.TimedOut() && chosen == -1 {
			b.WriteString(theme.Incorrect.Render("  Time's up! No answer recorded"))
			b.WriteString("\n")
		} else if chosen == q.CorrectIndex {
			b.WriteString(theme.Correct.Render("  Correct!"))
			b.WriteString("\n")
		} else {
			b.WriteString(theme.Incorrect.Render("  Not quite"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(theme.Hint.PaddingLeft(2).Width(max(width-6, 10)).Render(q.Explanation))
		b.WriteString("\n")
	}

	return b.String()
}
