package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/arjunvk/levelcheck/internal/assessment"
	"github.com/arjunvk/levelcheck/internal/router"
	"github.com/arjunvk/levelcheck/internal/subjects"
	"github.com/arjunvk/levelcheck/internal/videosearch"
)

func testReport() assessment.Report {
	return assessment.Report{
		Topics: []assessment.TopicPerformance{
			{
				Topic:            "Algebra",
				CorrectCount:     2,
				TotalCount:       2,
				RecommendedLevel: assessment.LevelHard,
				Strengths:        []string{"good time management"},
			},
			{
				Topic:            "Fractions",
				CorrectCount:     0,
				TotalCount:       2,
				RecommendedLevel: assessment.LevelEasy,
				NeedsImprovement: true,
				Weaknesses:       []string{"slow pacing, well over the expected time"},
			},
		},
		OverallLevel:  assessment.LevelIntermediate,
		FinalScore:    2,
		QuestionCount: 4,
	}
}

func testSummaryScreen(t *testing.T, deps Deps) *SummaryScreen {
	t.Helper()
	subject, err := subjects.Get("math")
	if err != nil {
		t.Fatalf("Get(math): %v", err)
	}
	return New(subject, testReport(), deps)
}

func TestSummaryScreen_View(t *testing.T) {
	s := testSummaryScreen(t, Deps{})

	view := s.View(80, 24)
	for _, want := range []string{"Score: 2/4", "intermediate", "Algebra", "Fractions", "needs work"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_FetchVideosPicksWeakestTopic(t *testing.T) {
	searcher := &videosearch.MockSearcher{
		Videos: []videosearch.Video{{ID: "abc", Title: "Fractions explained"}},
	}
	s := testSummaryScreen(t, Deps{Searcher: searcher, MaxVideos: 3})

	cmd := s.fetchVideos()
	if cmd == nil {
		t.Fatal("expected a video fetch command")
	}
	msg, ok := cmd().(videosMsg)
	if !ok {
		t.Fatal("expected videosMsg")
	}
	if msg.Topic != "Fractions" {
		t.Errorf("topic = %q, want Fractions", msg.Topic)
	}
	if len(searcher.Queries) != 1 || !strings.Contains(searcher.Queries[0], "Fractions") {
		t.Errorf("queries = %v", searcher.Queries)
	}

	s.Update(msg)
	if !strings.Contains(s.View(80, 24), "Fractions explained") {
		t.Error("expected the video title in the view")
	}
}

func TestSummaryScreen_NoWeakTopicsSkipsSearch(t *testing.T) {
	searcher := &videosearch.MockSearcher{}
	subject, _ := subjects.Get("math")
	report := testReport()
	for i := range report.Topics {
		report.Topics[i].NeedsImprovement = false
	}
	s := New(subject, report, Deps{Searcher: searcher, MaxVideos: 3})

	if cmd := s.fetchVideos(); cmd != nil {
		t.Error("expected no search when nothing needs improvement")
	}
}

func TestSummaryScreen_NarrativeArrives(t *testing.T) {
	s := testSummaryScreen(t, Deps{})

	annotated := testReport()
	annotated.Narrative = "You have a solid base in Algebra."
	s.Update(narrativeMsg{Report: annotated})

	if !strings.Contains(s.View(80, 24), "solid base in Algebra") {
		t.Error("expected the narrative in the view")
	}
}

func TestSummaryScreen_DismissKeys(t *testing.T) {
	s := testSummaryScreen(t, Deps{})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a pop command on enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
