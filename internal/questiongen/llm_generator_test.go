package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/arjunvk/levelcheck/internal/llm"
	"github.com/arjunvk/levelcheck/internal/subjects"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Timeout = time.Second
	return cfg
}

func seededRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// wireSet marshals a well-formed generation payload matching the slots the
// generator will request for the subject.
func wireSet(t *testing.T, subject subjects.Subject, perBand int) json.RawMessage {
	t.Helper()

	var out setOutput
	for i, slot := range BuildSlots(subject.Topics, perBand) {
		out.Questions = append(out.Questions, questionOutput{
			Text:         "Question about " + slot.Topic,
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: i % OptionCount,
			Explanation:  "Because of " + slot.Topic,
			Difficulty:   string(slot.Difficulty),
			Topic:        slot.Topic,
		})
	}

	raw, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return raw
}

func TestBuildSetFromProvider(t *testing.T) {
	subject, err := subjects.Get("math")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	mock := llm.NewMockProvider(llm.MockResponse{Content: wireSet(t, subject, 2)})
	gen := NewWithRand(mock, testConfig(), seededRand())

	qs, err := gen.BuildSet(context.Background(), subject)
	if err != nil {
		t.Fatalf("BuildSet: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}
	if err := ValidateSet(qs, subject, 2); err != nil {
		t.Errorf("set failed validation: %v", err)
	}

	// Generated, not fallback.
	found := false
	for _, q := range qs {
		if strings.HasPrefix(q.Text, "Question about ") {
			found = true
		}
		if q.ID == "" {
			t.Error("question missing ID")
		}
		if q.ExpectedSeconds != q.Difficulty.ExpectedSeconds() {
			t.Errorf("question expected seconds = %d, want %d", q.ExpectedSeconds, q.Difficulty.ExpectedSeconds())
		}
	}
	if !found {
		t.Error("expected provider questions, got fallback set")
	}

	if mock.Calls[0].Schema != SetSchema {
		t.Error("request missing question set schema")
	}
}

func TestBuildSetFallsBackOnProviderError(t *testing.T) {
	subject, err := subjects.Get("math")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	gen := NewWithRand(mock, testConfig(), seededRand())

	qs, err := gen.BuildSet(context.Background(), subject)
	if err != nil {
		t.Fatalf("BuildSet: %v", err)
	}
	if err := ValidateSet(qs, subject, 2); err != nil {
		t.Errorf("fallback set failed validation: %v", err)
	}
}

func TestBuildSetFallsBackOnGarbage(t *testing.T) {
	subject, err := subjects.Get("science")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json at all, no braces anywhere`),
	})
	gen := NewWithRand(mock, testConfig(), seededRand())

	qs, err := gen.BuildSet(context.Background(), subject)
	if err != nil {
		t.Fatalf("BuildSet: %v", err)
	}
	if err := ValidateSet(qs, subject, 2); err != nil {
		t.Errorf("fallback set failed validation: %v", err)
	}
}

func TestBuildSetFallsBackOnIncompleteSet(t *testing.T) {
	subject, err := subjects.Get("math")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	// Valid JSON, wrong shape: the structural check rejects it.
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions": []}`),
	})
	gen := NewWithRand(mock, testConfig(), seededRand())

	qs, err := gen.BuildSet(context.Background(), subject)
	if err != nil {
		t.Fatalf("BuildSet: %v", err)
	}
	if err := ValidateSet(qs, subject, 2); err != nil {
		t.Errorf("fallback set failed validation: %v", err)
	}
}

func TestBuildSetSalvagesInvalidResponse(t *testing.T) {
	subject, err := subjects.Get("math")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	// The schema check upstream rejected fenced output, but the raw text
	// is repairable.
	raw := wireSet(t, subject, 2)
	fenced := "```json\n" + string(raw) + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{
			Content: json.RawMessage(fenced),
			Err:     errors.New("schema validation failed"),
		},
	})
	gen := NewWithRand(mock, testConfig(), seededRand())

	qs, err := gen.BuildSet(context.Background(), subject)
	if err != nil {
		t.Fatalf("BuildSet: %v", err)
	}
	if err := ValidateSet(qs, subject, 2); err != nil {
		t.Fatalf("salvaged set failed validation: %v", err)
	}

	found := false
	for _, q := range qs {
		if strings.HasPrefix(q.Text, "Question about ") {
			found = true
		}
	}
	if !found {
		t.Error("expected salvaged provider questions, got fallback set")
	}
}

func TestBuildSetShufflesDeterministically(t *testing.T) {
	subject, err := subjects.Get("math")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	order := func() []string {
		mock := llm.NewMockProvider(llm.MockResponse{Content: wireSet(t, subject, 2)})
		gen := NewWithRand(mock, testConfig(), seededRand())
		qs, err := gen.BuildSet(context.Background(), subject)
		if err != nil {
			t.Fatalf("BuildSet: %v", err)
		}
		texts := make([]string, len(qs))
		for i, q := range qs {
			texts[i] = q.Text + "/" + string(q.Difficulty)
		}
		return texts
	}

	a := order()
	b := order()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different orders at %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestBuildSetWithoutProvider(t *testing.T) {
	subject, err := subjects.Get("computer")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	gen := NewWithRand(nil, testConfig(), seededRand())
	qs, err := gen.BuildSet(context.Background(), subject)
	if err != nil {
		t.Fatalf("BuildSet: %v", err)
	}
	if err := ValidateSet(qs, subject, 2); err != nil {
		t.Errorf("fallback set failed validation: %v", err)
	}
}
