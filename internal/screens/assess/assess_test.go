package assess

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/arjunvk/levelcheck/internal/assessment"
	"github.com/arjunvk/levelcheck/internal/questiongen"
	"github.com/arjunvk/levelcheck/internal/router"
	"github.com/arjunvk/levelcheck/internal/screen"
	"github.com/arjunvk/levelcheck/internal/store"
	"github.com/arjunvk/levelcheck/internal/subjects"
)

// mockGenerator implements questiongen.Generator for testing.
type mockGenerator struct {
	perBand int
}

func (m *mockGenerator) BuildSet(_ context.Context, subject subjects.Subject) ([]questiongen.Question, error) {
	slots := questiongen.BuildSlots(subject.Topics, m.perBand)
	return questiongen.FallbackSet(subject, slots), nil
}

// mockAssessmentRepo implements store.AssessmentRepo for testing.
type mockAssessmentRepo struct {
	saved []store.AssessmentRecord
}

func (m *mockAssessmentRepo) SaveAssessment(_ context.Context, rec store.AssessmentRecord) error {
	m.saved = append(m.saved, rec)
	return nil
}

func (m *mockAssessmentRepo) RecentAssessments(_ context.Context, _ int) ([]store.AssessmentRecord, error) {
	return nil, nil
}

// mockActivityRepo implements store.ActivityRepo for testing.
type mockActivityRepo struct {
	activities []string
	progress   map[string]float64
}

func (m *mockActivityRepo) LogActivity(_ context.Context, _, kind, detail string) error {
	m.activities = append(m.activities, kind+": "+detail)
	return nil
}

func (m *mockActivityRepo) UpdateProgress(_ context.Context, subject string, pct float64) error {
	if m.progress == nil {
		m.progress = make(map[string]float64)
	}
	m.progress[subject] = pct
	return nil
}

func (m *mockActivityRepo) Progress(_ context.Context) (map[string]float64, error) {
	return m.progress, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testAssessScreen(t *testing.T) (*AssessScreen, *mockAssessmentRepo, *mockActivityRepo) {
	t.Helper()
	subject, err := subjects.Get("math")
	if err != nil {
		t.Fatalf("Get(math): %v", err)
	}

	assessments := &mockAssessmentRepo{}
	activity := &mockActivityRepo{}
	s := New(subject, Deps{
		Generator:   &mockGenerator{perBand: 1},
		Assessments: assessments,
		Activity:    activity,
	})
	return s, assessments, activity
}

func startSession(t *testing.T, s *AssessScreen) {
	t.Helper()
	cmd := s.buildSet()
	msg := cmd()
	ready, ok := msg.(setReadyMsg)
	if !ok {
		t.Fatalf("buildSet returned %T, want setReadyMsg", msg)
	}
	if _, cmd := s.Update(ready); cmd == nil {
		t.Fatal("expected a tick command after the set is ready")
	}
}

func TestAssessScreen_Title(t *testing.T) {
	s, _, _ := testAssessScreen(t)
	if s.Title() != "Mathematics Level Check" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestAssessScreen_View_Loading(t *testing.T) {
	s, _, _ := testAssessScreen(t)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view for loading state")
	}
}

func TestAssessScreen_View_Question(t *testing.T) {
	s, _, _ := testAssessScreen(t)
	startSession(t, s)

	if s.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}
	if s.HeaderStatus() != "Q 1/5" {
		t.Errorf("HeaderStatus = %q, want %q", s.HeaderStatus(), "Q 1/5")
	}
}

func TestAssessScreen_QuitConfirm(t *testing.T) {
	s, _, _ := testAssessScreen(t)
	startSession(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*AssessScreen)
	if !ss.showingQuitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*AssessScreen)
	if ss.showingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestAssessScreen_QuitConfirm_Abandon(t *testing.T) {
	s, _, activity := testAssessScreen(t)
	startSession(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a pop command after abandoning")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after abandoning")
	}
	if len(activity.activities) != 1 {
		t.Errorf("activities = %d, want 1", len(activity.activities))
	}
}

func TestAssessScreen_CheckRequiresSelection(t *testing.T) {
	s, _, _ := testAssessScreen(t)
	startSession(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*AssessScreen)
	if ss.session.State() != assessment.StateAwaitingAnswer {
		t.Error("check with no selection should leave the question open")
	}
}

func TestAssessScreen_FullRun(t *testing.T) {
	s, assessments, activity := testAssessScreen(t)
	startSession(t, s)

	var scr screen.Screen = s
	var lastCmd tea.Cmd
	total := len(s.session.Questions())
	for i := 0; i < total; i++ {
		correct := s.session.Current().CorrectIndex
		scr, _ = scr.Update(keyPress(rune('1' + correct)))
		scr, _ = scr.Update(specialKey(tea.KeyEnter))
		scr, lastCmd = scr.Update(specialKey(tea.KeyEnter))
	}

	if s.session.State() != assessment.StateCompleted {
		t.Fatalf("state = %v, want completed", s.session.State())
	}
	if lastCmd == nil {
		t.Fatal("expected a replace command after the last question")
	}
	if _, ok := lastCmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the summary screen")
	}

	if len(assessments.saved) != 1 {
		t.Fatalf("saved assessments = %d, want 1", len(assessments.saved))
	}
	rec := assessments.saved[0]
	if rec.Subject != "math" || rec.Total != total || rec.Score != total {
		t.Errorf("record = %+v, want all %d correct for math", rec, total)
	}
	if activity.progress["math"] != 100 {
		t.Errorf("progress = %v, want 100", activity.progress["math"])
	}
}

func TestAssessScreen_KeyHints(t *testing.T) {
	s, _, _ := testAssessScreen(t)
	startSession(t, s)

	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}
