package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: calm study colors, readable on dark terminals
var (
	Primary   = lipgloss.Color("#3B82F6") // Blue
	Secondary = lipgloss.Color("#10B981") // Emerald
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F1F5F9") // Near white
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Countdown color shifts as the remaining budget shrinks.
func CountdownColor(remaining, total int) color.Color {
	if total <= 0 {
		return TextDim
	}
	frac := float64(remaining) / float64(total)
	switch {
	case frac <= 0.2:
		return Error
	case frac <= 0.5:
		return Warning
	default:
		return Secondary
	}
}

// LevelColor maps a recommended level to a display color: harder
// recommendations read as achievements, easier ones as gentle flags.
func LevelColor(level string) color.Color {
	switch level {
	case "hard":
		return Success
	case "intermediate":
		return Secondary
	case "beginner":
		return Warning
	default:
		return Error
	}
}
