package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/arjunvk/levelcheck/internal/llm"
)

func sampleReport() Report {
	return Report{
		Topics: []TopicPerformance{
			{Topic: "Algebra", CorrectCount: 2, TotalCount: 2, RecommendedLevel: LevelHard, AverageTimeRatio: 0.5},
			{Topic: "Fractions", CorrectCount: 0, TotalCount: 2, RecommendedLevel: LevelEasy, AverageTimeRatio: 1.9, NeedsImprovement: true},
		},
		OverallLevel:  LevelIntermediate,
		FinalScore:    2,
		QuestionCount: 4,
	}
}

func TestNarratorAnnotate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("You did great on Algebra. Fractions needs work."),
	})
	n := NewNarrator(mock, time.Second)

	report, err := n.Annotate(context.Background(), sampleReport())
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if report.Narrative != "You did great on Algebra. Fractions needs work." {
		t.Errorf("narrative = %q", report.Narrative)
	}
	if len(report.Topics) != 2 {
		t.Errorf("structured results changed: %d topics", len(report.Topics))
	}
}

func TestNarratorFailureLeavesReportIntact(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	n := NewNarrator(mock, time.Second)

	before := sampleReport()
	report, err := n.Annotate(context.Background(), before)
	if err == nil {
		t.Fatal("expected error from failed narration")
	}
	if report.Narrative != "" {
		t.Errorf("narrative = %q, want empty", report.Narrative)
	}
	if report.FinalScore != before.FinalScore || len(report.Topics) != len(before.Topics) {
		t.Error("structured results changed on failure")
	}
}

func TestNarratorNilProvider(t *testing.T) {
	n := NewNarrator(nil, time.Second)
	report, err := n.Annotate(context.Background(), sampleReport())
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if report.Narrative != "" {
		t.Errorf("narrative = %q, want empty", report.Narrative)
	}
}
