// Package subjects holds the static subject catalog: the subjects a
// student can be assessed on and the topic list each one is divided into.
// Topics drive both question generation (round-robin assignment across
// difficulty bands) and the per-topic performance breakdown.
package subjects

import (
	"fmt"
	"sort"
	"strings"
)

// Subject is one assessable area with its fixed topic list.
type Subject struct {
	// ID is the stable lowercase identifier, e.g. "math".
	ID string

	// Name is the display name, e.g. "Mathematics".
	Name string

	// Topics are the sub-areas questions get tagged with.
	// At least two, so the analyzer always has something to compare.
	Topics []string
}

var catalog = map[string]Subject{
	"math": {
		ID:     "math",
		Name:   "Mathematics",
		Topics: []string{"Algebra", "Geometry", "Fractions", "Arithmetic"},
	},
	"science": {
		ID:     "science",
		Name:   "Science",
		Topics: []string{"Physics", "Chemistry", "Biology", "Earth Science"},
	},
	"english": {
		ID:     "english",
		Name:   "English",
		Topics: []string{"Grammar", "Vocabulary", "Reading Comprehension", "Writing"},
	},
	"computer": {
		ID:     "computer",
		Name:   "Computer Science",
		Topics: []string{"Programming Basics", "Logic", "Data & Algorithms", "How Computers Work"},
	},
}

// Get returns the subject for the given ID.
func Get(id string) (Subject, error) {
	s, ok := catalog[strings.ToLower(id)]
	if !ok {
		return Subject{}, fmt.Errorf("unknown subject: %q", id)
	}
	return s, nil
}

// All returns every subject, ordered by ID.
func All() []Subject {
	out := make([]Subject, 0, len(catalog))
	for _, s := range catalog {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Register adds or replaces a subject. Used by config loading to let a
// deployment override the built-in catalog.
func Register(s Subject) error {
	if err := validate(s); err != nil {
		return err
	}
	catalog[s.ID] = s
	return nil
}

func validate(s Subject) error {
	if s.ID == "" || s.ID != strings.ToLower(s.ID) {
		return fmt.Errorf("subject ID must be non-empty lowercase, got %q", s.ID)
	}
	if s.Name == "" {
		return fmt.Errorf("subject %q: name is required", s.ID)
	}
	if len(s.Topics) < 2 {
		return fmt.Errorf("subject %q: at least 2 topics required, got %d", s.ID, len(s.Topics))
	}
	seen := make(map[string]bool, len(s.Topics))
	for _, t := range s.Topics {
		if t == "" {
			return fmt.Errorf("subject %q: empty topic", s.ID)
		}
		if seen[t] {
			return fmt.Errorf("subject %q: duplicate topic %q", s.ID, t)
		}
		seen[t] = true
	}
	return nil
}
