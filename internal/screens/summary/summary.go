package summary

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjunvk/levelcheck/internal/assessment"
	"github.com/arjunvk/levelcheck/internal/router"
	"github.com/arjunvk/levelcheck/internal/screen"
	"github.com/arjunvk/levelcheck/internal/subjects"
	"github.com/arjunvk/levelcheck/internal/ui/layout"
	"github.com/arjunvk/levelcheck/internal/ui/theme"
	"github.com/arjunvk/levelcheck/internal/videosearch"
)

// Deps are the optional enrichment collaborators. Either may be nil.
type Deps struct {
	Narrator  *assessment.Narrator
	Searcher  videosearch.Searcher
	MaxVideos int
}

// narrativeMsg carries the annotated report, or the original when the
// narrative step failed.
type narrativeMsg struct {
	Report assessment.Report
}

// videosMsg carries study video suggestions for a weak topic.
type videosMsg struct {
	Topic  string
	Videos []videosearch.Video
}

// SummaryScreen shows the finished assessment: per-topic results, the
// recommended level, and best-effort extras as they arrive.
type SummaryScreen struct {
	subject subjects.Subject
	report  assessment.Report
	deps    Deps

	videoTopic string
	videos     []videosearch.Video
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates the summary screen for a finished report.
func New(subject subjects.Subject, report assessment.Report, deps Deps) *SummaryScreen {
	return &SummaryScreen{
		subject: subject,
		report:  report,
		deps:    deps,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return tea.Batch(s.fetchNarrative(), s.fetchVideos())
}

func (s *SummaryScreen) Title() string {
	return s.subject.Name + " Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter/Esc", Description: "Home"},
	}
}

// fetchNarrative runs the optional summary generation off the event loop.
// Failure just leaves the narrative section out.
func (s *SummaryScreen) fetchNarrative() tea.Cmd {
	if s.deps.Narrator == nil {
		return nil
	}
	report := s.report
	narrator := s.deps.Narrator
	return func() tea.Msg {
		annotated, err := narrator.Annotate(context.Background(), report)
		if err != nil {
			return narrativeMsg{Report: report}
		}
		return narrativeMsg{Report: annotated}
	}
}

// fetchVideos looks up study videos for the weakest topic, if any topic
// needs improvement and search is configured.
func (s *SummaryScreen) fetchVideos() tea.Cmd {
	if s.deps.Searcher == nil {
		return nil
	}

	var weakest *assessment.TopicPerformance
	for i := range s.report.Topics {
		tp := &s.report.Topics[i]
		if !tp.NeedsImprovement {
			continue
		}
		if weakest == nil || tp.CorrectCount*weakest.TotalCount < weakest.CorrectCount*tp.TotalCount {
			weakest = tp
		}
	}
	if weakest == nil {
		return nil
	}

	topic := weakest.Topic
	query := fmt.Sprintf("%s %s tutorial for students", s.subject.Name, topic)
	searcher := s.deps.Searcher
	maxResults := s.deps.MaxVideos
	return func() tea.Msg {
		videos, err := searcher.Search(context.Background(), query, maxResults)
		if err != nil {
			return videosMsg{Topic: topic}
		}
		return videosMsg{Topic: topic, Videos: videos}
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case narrativeMsg:
		s.report = msg.Report
		return s, nil

	case videosMsg:
		s.videoTopic = msg.Topic
		s.videos = msg.Videos
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.report

	var b strings.Builder

	center := func(line string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Level check complete!"))
	b.WriteString("\n\n")

	center(lipgloss.NewStyle().Foreground(theme.Text).Render(
		fmt.Sprintf("Score: %d/%d", r.FinalScore, r.QuestionCount)))
	center(lipgloss.NewStyle().Foreground(theme.LevelColor(string(r.OverallLevel))).Bold(true).Render(
		fmt.Sprintf("Recommended starting level: %s", r.OverallLevel)))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Topics"))
	center(divider)
	b.WriteString("\n")

	for _, tp := range r.Topics {
		line := fmt.Sprintf("  %-24s %d/%d   %-12s", tp.Topic, tp.CorrectCount, tp.TotalCount, tp.RecommendedLevel)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if tp.NeedsImprovement {
			line += "  needs work"
			style = style.Foreground(theme.Warning)
		}
		center(style.Render(line))

		for _, label := range tp.Strengths {
			center(lipgloss.NewStyle().Foreground(theme.Success).Render("    + " + label))
		}
		for _, label := range tp.Weaknesses {
			center(lipgloss.NewStyle().Foreground(theme.Error).Render("    - " + label))
		}
	}

	if r.Narrative != "" {
		b.WriteString("\n")
		center(divider)
		b.WriteString(theme.Hint.PaddingLeft(4).Width(max(width-8, 20)).Render(r.Narrative))
		b.WriteString("\n")
	}

	if len(s.videos) > 0 {
		b.WriteString("\n")
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Videos for " + s.videoTopic))
		center(divider)
		for _, v := range s.videos {
			center(lipgloss.NewStyle().Foreground(theme.Secondary).Render("  " + v.Title))
			center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + v.URL()))
		}
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
