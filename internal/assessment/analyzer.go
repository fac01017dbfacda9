package assessment

import (
	"fmt"

	"github.com/arjunvk/levelcheck/internal/questiongen"
)

// Analyze turns a finished session into per-topic performance and an
// overall recommended level. It is a pure function: same questions and
// answers, same report. Topics appear in order of first appearance in the
// question sequence.
//
// Questions with no answer record are treated as unanswered, the same as
// a timeout with nothing selected.
func Analyze(questions []questiongen.Question, answers []AnswerRecord) Report {
	byIndex := make(map[int]AnswerRecord, len(answers))
	for _, a := range answers {
		byIndex[a.QuestionIndex] = a
	}

	var order []string
	grouped := make(map[string][]QuestionResult)

	finalScore := 0

	for i, q := range questions {
		r := QuestionResult{
			QuestionIndex:   i,
			Difficulty:      q.Difficulty,
			ExpectedSeconds: q.ExpectedSeconds,
		}
		if a, ok := byIndex[i]; ok {
			r.Answered = a.ChosenIndex != nil
			r.Correct = a.ChosenIndex != nil && *a.ChosenIndex == q.CorrectIndex
			r.TimeSpentSeconds = a.TimeSpentSeconds
		}
		if r.Correct {
			finalScore++
		}

		if _, seen := grouped[q.Topic]; !seen {
			order = append(order, q.Topic)
		}
		grouped[q.Topic] = append(grouped[q.Topic], r)
	}

	topics := make([]TopicPerformance, 0, len(order))
	for _, topic := range order {
		topics = append(topics, analyzeTopic(topic, grouped[topic]))
	}

	overall := LevelIntermediate
	if len(questions) > 0 {
		overall = levelFor(float64(finalScore) / float64(len(questions)))
	}

	return Report{
		Topics:        topics,
		OverallLevel:  overall,
		FinalScore:    finalScore,
		QuestionCount: len(questions),
	}
}

func analyzeTopic(topic string, results []QuestionResult) TopicPerformance {
	correct := 0
	timeRatioSum := 0.0

	for _, r := range results {
		if r.Correct {
			correct++
		}
		// An unanswered question contributes its expected time, a
		// neutral ratio of 1.0 rather than a maximal penalty.
		if r.Answered {
			timeRatioSum += float64(r.TimeSpentSeconds) / float64(r.ExpectedSeconds)
		} else {
			timeRatioSum += 1.0
		}
	}

	total := len(results)
	correctRatio := float64(correct) / float64(total)
	avgTimeRatio := timeRatioSum / float64(total)

	tp := TopicPerformance{
		Topic:                topic,
		CorrectCount:         correct,
		TotalCount:           total,
		AverageTimeRatio:     avgTimeRatio,
		RecommendedLevel:     levelFor(correctRatio),
		NeedsImprovement:     correctRatio < 0.6 || avgTimeRatio > 1.5,
		PerQuestionBreakdown: results,
	}

	tp.Strengths, tp.Weaknesses = bandLabels(results)

	switch {
	case avgTimeRatio < 0.8:
		tp.Strengths = append(tp.Strengths, "good time management")
	case avgTimeRatio > 1.5:
		tp.Weaknesses = append(tp.Weaknesses, "slow pacing, well over the expected time")
	}

	return tp
}

// levelFor buckets a correct ratio into a recommended level. Boundaries
// are strict: exactly 0.3 is beginner, exactly 0.8 is intermediate.
func levelFor(correctRatio float64) Level {
	switch {
	case correctRatio < 0.3:
		return LevelEasy
	case correctRatio < 0.5:
		return LevelBeginner
	case correctRatio > 0.8:
		return LevelHard
	default:
		return LevelIntermediate
	}
}

// bandLabels breaks a topic's questions down by difficulty band and
// flags bands with standout accuracy either way.
func bandLabels(results []QuestionResult) (strengths, weaknesses []string) {
	type bandStat struct {
		correct int
		total   int
	}
	stats := make(map[questiongen.Difficulty]*bandStat)
	for _, r := range results {
		st := stats[r.Difficulty]
		if st == nil {
			st = &bandStat{}
			stats[r.Difficulty] = st
		}
		st.total++
		if r.Correct {
			st.correct++
		}
	}

	for _, band := range questiongen.Bands() {
		st := stats[band]
		if st == nil {
			continue
		}
		ratio := float64(st.correct) / float64(st.total)
		switch {
		case ratio == 1.0:
			strengths = append(strengths, fmt.Sprintf("perfect on %s questions", band))
		case ratio >= 0.7:
			strengths = append(strengths, fmt.Sprintf("solid on %s questions", band))
		case ratio <= 0.3 && st.total >= 2:
			weaknesses = append(weaknesses, fmt.Sprintf("struggled with %s questions", band))
		}
	}
	return strengths, weaknesses
}
