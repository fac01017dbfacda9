// Package assessment runs the timed "test your level" flow: it collects
// answers question by question through a small state machine, then turns
// the finished session into per-topic performance statistics and a
// recommended starting level.
package assessment

import "github.com/arjunvk/levelcheck/internal/questiongen"

// Level is a recommended starting difficulty. It is a coarser scale than
// the five generation bands and the two are never mapped onto each other.
type Level string

const (
	LevelEasy         Level = "easy"
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelHard         Level = "hard"
)

// AnswerRecord is the finalized outcome of one question. Created when the
// question is checked or times out, never mutated afterwards.
type AnswerRecord struct {
	// QuestionIndex is the position in the session's question order.
	QuestionIndex int

	// ChosenIndex is the selected option, or nil if the question timed
	// out with nothing selected.
	ChosenIndex *int

	// TimeSpentSeconds is wall-clock time from question start to check.
	TimeSpentSeconds int
}

// QuestionResult is one row of a topic's per-question breakdown.
type QuestionResult struct {
	QuestionIndex    int
	Difficulty       questiongen.Difficulty
	Correct          bool
	Answered         bool
	TimeSpentSeconds int
	ExpectedSeconds  int
}

// TopicPerformance is the derived per-topic result. Computed once at
// session completion, read-only afterwards.
type TopicPerformance struct {
	Topic string

	CorrectCount int
	TotalCount   int

	// AverageTimeRatio is mean(timeSpent/expectedTime) over the topic's
	// questions. Unanswered questions count as ratio 1.0.
	AverageTimeRatio float64

	RecommendedLevel Level

	NeedsImprovement bool

	Strengths  []string
	Weaknesses []string

	PerQuestionBreakdown []QuestionResult
}

// Report is the full analyzer output for one finished session.
type Report struct {
	Topics []TopicPerformance

	// OverallLevel classifies the whole-session score with the same
	// buckets as the per-topic levels, over a different denominator.
	// The two can disagree; the per-topic levels are presented first.
	OverallLevel Level

	FinalScore    int
	QuestionCount int

	// Narrative is an optional generated summary. Empty when the
	// narrative step failed or was skipped; the structured results
	// above are always present regardless.
	Narrative string
}
