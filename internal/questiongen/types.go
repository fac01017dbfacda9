package questiongen

// Difficulty is one of the five ordered bands a question is generated at.
// It is independent of the level the analyzer later recommends per topic.
type Difficulty string

const (
	VeryEasy     Difficulty = "very-easy"
	Easy         Difficulty = "easy"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
	Expert       Difficulty = "expert"
)

// Bands returns the difficulty bands in ascending order.
func Bands() []Difficulty {
	return []Difficulty{VeryEasy, Easy, Intermediate, Advanced, Expert}
}

// ExpectedSeconds is the time budget a question at this band is designed
// to take. Used as the countdown length and as the denominator for pacing
// ratios in the analyzer.
func (d Difficulty) ExpectedSeconds() int {
	switch d {
	case VeryEasy:
		return 15
	case Easy:
		return 25
	case Intermediate:
		return 35
	case Advanced:
		return 45
	case Expert:
		return 60
	default:
		return 30
	}
}

// Valid reports whether d is a known band.
func (d Difficulty) Valid() bool {
	switch d {
	case VeryEasy, Easy, Intermediate, Advanced, Expert:
		return true
	}
	return false
}

// OptionCount is the fixed number of choices per question.
const OptionCount = 4

// Question is a single generated multiple-choice question. Immutable once
// the set is built for a session.
type Question struct {
	// ID is a UUID assigned at build time.
	ID string

	// Text is the question prompt.
	Text string

	// Options holds exactly 4 choices.
	Options []string

	// CorrectIndex is the index into Options of the right answer.
	CorrectIndex int

	// Explanation is shown after the question is checked.
	Explanation string

	// Difficulty is the band this question was generated for.
	Difficulty Difficulty

	// Topic tags the question for per-topic performance tracking.
	Topic string

	// ExpectedSeconds is the countdown budget, derived from Difficulty.
	ExpectedSeconds int
}

// Slot is one cell of the generation matrix: a difficulty band paired with
// the topic assigned to it round-robin.
type Slot struct {
	Difficulty Difficulty
	Topic      string
}

// BuildSlots lays out the generation matrix: perBand questions for each of
// the five bands, topics assigned round-robin across the whole sequence so
// every topic appears at mixed difficulties.
func BuildSlots(topics []string, perBand int) []Slot {
	bands := Bands()
	slots := make([]Slot, 0, len(bands)*perBand)
	i := 0
	for _, band := range bands {
		for k := 0; k < perBand; k++ {
			slots = append(slots, Slot{
				Difficulty: band,
				Topic:      topics[i%len(topics)],
			})
			i++
		}
	}
	return slots
}
