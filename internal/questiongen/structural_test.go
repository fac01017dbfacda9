package questiongen

import (
	"errors"
	"testing"

	"github.com/arjunvk/levelcheck/internal/subjects"
)

func validSet(t *testing.T, subject subjects.Subject, perBand int) []Question {
	t.Helper()
	return FallbackSet(subject, BuildSlots(subject.Topics, perBand))
}

func TestValidateSetRejects(t *testing.T) {
	subject, err := subjects.Get("math")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(qs []Question) []Question
		check   string
	}{
		{
			name:   "short set",
			mutate: func(qs []Question) []Question { return qs[:len(qs)-1] },
			check:  "count",
		},
		{
			name: "band imbalance",
			mutate: func(qs []Question) []Question {
				// Same length, one band doubled at another's expense.
				for i := range qs {
					if qs[i].Difficulty == Expert {
						qs[i].Difficulty = VeryEasy
					}
				}
				return qs
			},
			check: "band_count",
		},
		{
			name: "unknown difficulty",
			mutate: func(qs []Question) []Question {
				qs[0].Difficulty = "medium"
				return qs
			},
			check: "difficulty",
		},
		{
			name: "empty text",
			mutate: func(qs []Question) []Question {
				qs[3].Text = ""
				return qs
			},
			check: "text",
		},
		{
			name: "wrong option count",
			mutate: func(qs []Question) []Question {
				qs[0].Options = qs[0].Options[:3]
				return qs
			},
			check: "options",
		},
		{
			name: "correct index out of range",
			mutate: func(qs []Question) []Question {
				qs[2].CorrectIndex = 4
				return qs
			},
			check: "correct_index",
		},
		{
			name: "empty explanation",
			mutate: func(qs []Question) []Question {
				qs[5].Explanation = ""
				return qs
			},
			check: "explanation",
		},
		{
			name: "foreign topic",
			mutate: func(qs []Question) []Question {
				qs[1].Topic = "Astrology"
				return qs
			},
			check: "topic",
		},
		{
			name: "missing expected time",
			mutate: func(qs []Question) []Question {
				qs[4].ExpectedSeconds = 0
				return qs
			},
			check: "expected_seconds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs := tt.mutate(validSet(t, subject, 2))
			err := ValidateSet(qs, subject, 2)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Check != tt.check {
				t.Errorf("check = %q, want %q", verr.Check, tt.check)
			}
		})
	}
}

func TestValidateSetAcceptsValid(t *testing.T) {
	for _, id := range []string{"math", "science", "english", "computer"} {
		subject, err := subjects.Get(id)
		if err != nil {
			t.Fatalf("Get(%q): %v", id, err)
		}
		if err := ValidateSet(validSet(t, subject, 2), subject, 2); err != nil {
			t.Errorf("%s: %v", id, err)
		}
	}
}
