package questiongen

import (
	"context"

	"github.com/arjunvk/levelcheck/internal/subjects"
)

// Generator produces a complete session question set for a subject.
//
// BuildSet never blocks the session on an unavailable external generator:
// implementations substitute the deterministic local fallback on any
// generation or parse failure. The only error BuildSet may return is a
// corrupt fallback, which indicates a bug and is treated as fatal by
// callers.
type Generator interface {
	BuildSet(ctx context.Context, subject subjects.Subject) ([]Question, error)
}
