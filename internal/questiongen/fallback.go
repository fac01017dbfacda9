package questiongen

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/arjunvk/levelcheck/internal/subjects"
)

// fallbackTemplate is one locally defined question shape per difficulty
// band, parameterized by topic and subject so the set stays readable
// without any external generator.
type fallbackTemplate struct {
	text        string // fmt verbs: topic
	correct     string // fmt verbs: topic, subject name
	distractors [3]string
	explanation string // fmt verbs: topic
}

var fallbackTemplates = map[Difficulty]fallbackTemplate{
	VeryEasy: {
		text:    "Which of these best describes what %s covers?",
		correct: "It is the area of %s studied within %s",
		distractors: [3]string{
			"It is a style of painting from the 1800s",
			"It is a brand of sports equipment",
			"It is a kind of weather measurement",
		},
		explanation: "%s is a named sub-area of this subject, so the matching description is correct.",
	},
	Easy: {
		text:    "A classmate wants to start learning %s. What should they do first?",
		correct: "Review the basic ideas of %s covered in %s",
		distractors: [3]string{
			"Memorize an unrelated chapter and hope it transfers",
			"Skip the fundamentals and attempt only exam questions",
			"Avoid practice problems entirely",
		},
		explanation: "Fundamentals first: %s builds on its basic terms and ideas.",
	},
	Intermediate: {
		text:    "Which approach shows a working understanding of %s?",
		correct: "Applying the rules of %s learned in %s to solve a new problem",
		distractors: [3]string{
			"Restating a definition word for word without using it",
			"Guessing among answers until one is accepted",
			"Copying a worked example without changing anything",
		},
		explanation: "Working understanding of %s means applying its rules to unfamiliar problems.",
	},
	Advanced: {
		text:    "When a standard method in %s fails on a problem, what is the strongest next step?",
		correct: "Analyze why the usual %s assumptions break down, using what %s teaches",
		distractors: [3]string{
			"Apply the same method again with more force",
			"Conclude the problem is unsolvable",
			"Switch to an unrelated topic",
		},
		explanation: "Advanced work in %s starts from diagnosing why an approach's assumptions fail.",
	},
	Expert: {
		text:    "Which statement reflects expert-level judgment in %s?",
		correct: "Knowing the limits of each %s technique taught in %s and choosing case by case",
		distractors: [3]string{
			"One technique is always best regardless of the problem",
			"Edge cases can be safely ignored at every level",
			"Intuition should always override checking the result",
		},
		explanation: "Expertise in %s is choosing among techniques by their limits, not by habit.",
	},
}

// FallbackSet synthesizes a deterministic question set covering the same
// topic × difficulty matrix the external generator was asked for. It is
// the hard guarantee behind every assessment: sessions never block on an
// unavailable generator.
func FallbackSet(subject subjects.Subject, slots []Slot) []Question {
	qs := make([]Question, 0, len(slots))

	for i, slot := range slots {
		tmpl := fallbackTemplates[slot.Difficulty]

		correct := fmt.Sprintf(tmpl.correct, slot.Topic, subject.Name)

		// Rotate the correct option through the positions so answer
		// placement carries no signal.
		correctIndex := i % OptionCount
		options := make([]string, OptionCount)
		options[correctIndex] = correct
		di := 0
		for j := 0; j < OptionCount; j++ {
			if j == correctIndex {
				continue
			}
			options[j] = tmpl.distractors[di]
			di++
		}

		qs = append(qs, Question{
			ID:              uuid.NewString(),
			Text:            fmt.Sprintf(tmpl.text, slot.Topic),
			Options:         options,
			CorrectIndex:    correctIndex,
			Explanation:     fmt.Sprintf(tmpl.explanation, slot.Topic),
			Difficulty:      slot.Difficulty,
			Topic:           slot.Topic,
			ExpectedSeconds: slot.Difficulty.ExpectedSeconds(),
		})
	}

	return qs
}
