package assess

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/arjunvk/levelcheck/internal/assessment"
	"github.com/arjunvk/levelcheck/internal/questiongen"
	"github.com/arjunvk/levelcheck/internal/router"
	"github.com/arjunvk/levelcheck/internal/screen"
	"github.com/arjunvk/levelcheck/internal/screens/summary"
	"github.com/arjunvk/levelcheck/internal/store"
	"github.com/arjunvk/levelcheck/internal/subjects"
	"github.com/arjunvk/levelcheck/internal/ui/layout"
	"github.com/arjunvk/levelcheck/internal/ui/theme"
	"github.com/arjunvk/levelcheck/internal/videosearch"
)

// Deps are the collaborators an assessment run needs. Store and search
// fields may be nil; everything they back degrades silently.
type Deps struct {
	Generator   questiongen.Generator
	Assessments store.AssessmentRepo
	Activity    store.ActivityRepo
	Narrator    *assessment.Narrator
	Searcher    videosearch.Searcher
	MaxVideos   int
}

// AssessScreen runs one timed assessment for a subject.
type AssessScreen struct {
	deps    Deps
	subject subjects.Subject

	session *assessment.Session
	loading spinner.Model

	showingQuitConfirm bool
	errMsg             string
}

var _ screen.Screen = (*AssessScreen)(nil)
var _ screen.KeyHintProvider = (*AssessScreen)(nil)
var _ screen.StatusProvider = (*AssessScreen)(nil)

// New creates the assessment screen for a subject.
func New(subject subjects.Subject, deps Deps) *AssessScreen {
	return &AssessScreen{
		deps:    deps,
		subject: subject,
		loading: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Secondary)),
		),
	}
}

func (s *AssessScreen) Init() tea.Cmd {
	return tea.Batch(s.loading.Tick, s.buildSet())
}

func (s *AssessScreen) Title() string {
	return s.subject.Name + " Level Check"
}

func (s *AssessScreen) HeaderStatus() string {
	if s.session == nil || s.session.State() == assessment.StateCompleted {
		return ""
	}
	return fmt.Sprintf("Q %d/%d", s.session.Index()+1, len(s.session.Questions()))
}

func (s *AssessScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.session == nil {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	switch s.session.State() {
	case assessment.StateAnswerChecked:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Abandon"},
		}
	default:
		return []layout.KeyHint{
			{Key: "1-4/↑↓", Description: "Pick"},
			{Key: "Enter", Description: "Check"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
}

func (s *AssessScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case setReadyMsg:
		return s.handleSetReady(msg)

	case timerTickMsg:
		return s.handleTick()

	case tea.KeyMsg:
		return s.handleKey(msg)

	case spinner.TickMsg:
		if s.session == nil && s.errMsg == "" {
			var cmd tea.Cmd
			s.loading, cmd = s.loading.Update(msg)
			return s, cmd
		}
	}
	return s, nil
}

// buildSet builds the question set off the event loop. The generator
// guarantees a usable set even when the external call fails, so the only
// error path here is a fatal one.
func (s *AssessScreen) buildSet() tea.Cmd {
	return func() tea.Msg {
		qs, err := s.deps.Generator.BuildSet(context.Background(), s.subject)
		return setReadyMsg{Questions: qs, Err: err}
	}
}

func (s *AssessScreen) handleSetReady(msg setReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	sess, err := assessment.NewSession(msg.Questions)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.session = sess
	return s, tickCmd()
}

func (s *AssessScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.session == nil || s.session.State() == assessment.StateCompleted {
		return s, nil
	}
	s.session.Tick()
	return s, tickCmd()
}

func (s *AssessScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.abandon()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
			if s.session != nil {
				s.session.Touch()
			}
		}
		return s, nil
	}

	if key == "esc" {
		if s.session == nil || s.session.State() == assessment.StateCompleted {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.showingQuitConfirm = true
		return s, nil
	}

	if s.session == nil {
		return s, nil
	}

	switch s.session.State() {
	case assessment.StateAwaitingAnswer:
		return s.handleQuestionKey(key)
	case assessment.StateAnswerChecked:
		if key == "enter" {
			return s.advance()
		}
		s.session.Touch()
	}
	return s, nil
}

func (s *AssessScreen) handleQuestionKey(key string) (screen.Screen, tea.Cmd) {
	sess := s.session
	options := len(sess.Current().Options)

	switch key {
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < options {
			_ = sess.Select(idx)
		}
	case "up", "k":
		if cur := sess.Selected(); cur == nil {
			_ = sess.Select(0)
		} else if *cur > 0 {
			_ = sess.Select(*cur - 1)
		}
	case "down", "j":
		if cur := sess.Selected(); cur == nil {
			_ = sess.Select(0)
		} else if *cur < options-1 {
			_ = sess.Select(*cur + 1)
		}
	case "enter":
		// Checking without a selection is refused, not an error worth
		// surfacing.
		_ = sess.Check()
	default:
		sess.Touch()
	}
	return s, nil
}

// advance moves past the checked question, finishing the run after the
// last one.
func (s *AssessScreen) advance() (screen.Screen, tea.Cmd) {
	if err := s.session.Next(); err != nil {
		return s, nil
	}
	if s.session.State() != assessment.StateCompleted {
		return s, nil
	}

	s.session.Dispose()
	report := assessment.Analyze(s.session.Questions(), s.session.Answers())
	s.persist(report)

	sum := summary.New(s.subject, report, summary.Deps{
		Narrator:  s.deps.Narrator,
		Searcher:  s.deps.Searcher,
		MaxVideos: s.deps.MaxVideos,
	})
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: sum}
	}
}

// persist saves the finished assessment. Best-effort: the summary screen
// is shown regardless.
func (s *AssessScreen) persist(report assessment.Report) {
	ctx := context.Background()

	if s.deps.Assessments != nil {
		body, err := json.Marshal(report)
		if err == nil {
			_ = s.deps.Assessments.SaveAssessment(ctx, store.AssessmentRecord{
				ID:        uuid.NewString(),
				Subject:   s.subject.ID,
				Score:     report.FinalScore,
				Total:     report.QuestionCount,
				Level:     string(report.OverallLevel),
				Report:    string(body),
				Timestamp: time.Now(),
			})
		}
	}

	if s.deps.Activity != nil {
		detail := fmt.Sprintf("%d/%d correct, level %s", report.FinalScore, report.QuestionCount, report.OverallLevel)
		_ = s.deps.Activity.LogActivity(ctx, "local", "assessment", detail)
		if report.QuestionCount > 0 {
			pct := float64(report.FinalScore) / float64(report.QuestionCount) * 100
			_ = s.deps.Activity.UpdateProgress(ctx, s.subject.ID, pct)
		}
	}
}

// abandon tears the session down without a summary.
func (s *AssessScreen) abandon() {
	if s.session != nil {
		s.session.Dispose()
	}
	if s.deps.Activity != nil {
		_ = s.deps.Activity.LogActivity(context.Background(), "local", "assessment", "abandoned "+s.subject.ID)
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
