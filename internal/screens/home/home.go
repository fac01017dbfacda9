package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjunvk/levelcheck/internal/router"
	"github.com/arjunvk/levelcheck/internal/screen"
	"github.com/arjunvk/levelcheck/internal/screens/assess"
	"github.com/arjunvk/levelcheck/internal/store"
	"github.com/arjunvk/levelcheck/internal/subjects"
	"github.com/arjunvk/levelcheck/internal/ui/components"
	"github.com/arjunvk/levelcheck/internal/ui/theme"
)

// progressMsg carries saved per-subject progress for the menu.
type progressMsg struct {
	Progress map[string]float64
}

// HomeScreen is the subject picker.
type HomeScreen struct {
	deps     assess.Deps
	activity store.ActivityRepo
	menu     components.Menu
	progress map[string]float64
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. The subject list is read once; custom
// subjects registered from config are already in the catalog by now.
func New(deps assess.Deps) *HomeScreen {
	s := &HomeScreen{
		deps:     deps,
		activity: deps.Activity,
	}

	var items []components.MenuItem
	for _, subject := range subjects.All() {
		subject := subject
		items = append(items, components.MenuItem{
			Label: subject.Name,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: assess.New(subject, deps),
					}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "Quit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	s.menu = components.NewMenu(items)
	return s
}

func (s *HomeScreen) Init() tea.Cmd {
	return s.loadProgress()
}

func (s *HomeScreen) Title() string {
	return "Pick a subject"
}

func (s *HomeScreen) loadProgress() tea.Cmd {
	if s.activity == nil {
		return nil
	}
	repo := s.activity
	return func() tea.Msg {
		progress, err := repo.Progress(context.Background())
		if err != nil {
			return progressMsg{}
		}
		return progressMsg{Progress: progress}
	}
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		s.progress = msg.Progress
		s.decorateMenu()
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// decorateMenu annotates subject entries with their last saved score.
func (s *HomeScreen) decorateMenu() {
	all := subjects.All()
	for i := range s.menu.Items {
		if i >= len(all) {
			break
		}
		if pct, ok := s.progress[all[i].ID]; ok {
			s.menu.Items[i].Description = fmt.Sprintf("last score %.0f%%", pct)
		}
	}
}

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Test your level"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("A short timed check to find where to start"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	if len(s.progress) > 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Saved progress")))
		b.WriteString("\n")
		for _, subject := range subjects.All() {
			pct, ok := s.progress[subject.ID]
			if !ok {
				continue
			}
			bar := components.NewProgressBar(fmt.Sprintf("%-16s", subject.Name), pct/100, true, 44)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
			b.WriteString("\n")
		}
	}

	return b.String()
}
