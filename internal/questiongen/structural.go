package questiongen

import (
	"fmt"

	"github.com/arjunvk/levelcheck/internal/subjects"
)

// ValidationError reports a structural defect in a question set.
type ValidationError struct {
	Check   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question set invalid (%s): %s", e.Check, e.Message)
}

// ValidateSet checks that a question set covers the full difficulty
// matrix for the subject: perBand questions in every band, each question
// well formed and on one of the subject's topics. Both generated and
// fallback sets go through this before a session can start.
func ValidateSet(qs []Question, subject subjects.Subject, perBand int) error {
	bands := Bands()
	want := perBand * len(bands)
	if len(qs) != want {
		return &ValidationError{
			Check:   "count",
			Message: fmt.Sprintf("got %d questions, want %d", len(qs), want),
		}
	}

	topics := make(map[string]bool, len(subject.Topics))
	for _, t := range subject.Topics {
		topics[t] = true
	}

	perBandCount := make(map[Difficulty]int, len(bands))

	for i, q := range qs {
		if !q.Difficulty.Valid() {
			return &ValidationError{
				Check:   "difficulty",
				Message: fmt.Sprintf("question %d has unknown difficulty %q", i, q.Difficulty),
			}
		}
		perBandCount[q.Difficulty]++

		if q.Text == "" {
			return &ValidationError{
				Check:   "text",
				Message: fmt.Sprintf("question %d has empty text", i),
			}
		}
		if len(q.Options) != OptionCount {
			return &ValidationError{
				Check:   "options",
				Message: fmt.Sprintf("question %d has %d options, want %d", i, len(q.Options), OptionCount),
			}
		}
		for j, opt := range q.Options {
			if opt == "" {
				return &ValidationError{
					Check:   "options",
					Message: fmt.Sprintf("question %d option %d is empty", i, j),
				}
			}
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= OptionCount {
			return &ValidationError{
				Check:   "correct_index",
				Message: fmt.Sprintf("question %d correct index %d out of range", i, q.CorrectIndex),
			}
		}
		if q.Explanation == "" {
			return &ValidationError{
				Check:   "explanation",
				Message: fmt.Sprintf("question %d has empty explanation", i),
			}
		}
		if !topics[q.Topic] {
			return &ValidationError{
				Check:   "topic",
				Message: fmt.Sprintf("question %d topic %q is not part of subject %q", i, q.Topic, subject.ID),
			}
		}
		if q.ExpectedSeconds <= 0 {
			return &ValidationError{
				Check:   "expected_seconds",
				Message: fmt.Sprintf("question %d has no expected time", i),
			}
		}
	}

	for _, band := range bands {
		if perBandCount[band] != perBand {
			return &ValidationError{
				Check:   "band_count",
				Message: fmt.Sprintf("band %q has %d questions, want %d", band, perBandCount[band], perBand),
			}
		}
	}

	return nil
}
