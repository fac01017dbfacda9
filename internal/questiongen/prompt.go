package questiongen

import (
	"fmt"
	"strings"

	"github.com/arjunvk/levelcheck/internal/subjects"
)

const systemPrompt = `You are an assessment designer creating "test your level" questions for students.

Rules:
- Generate exactly the requested questions, one per slot, in the order the slots are listed.
- Each question is multiple choice with exactly 4 options and exactly one correct answer.
- Copy the slot's topic and difficulty into the question verbatim.
- A very-easy question should be answerable in about 15 seconds by anyone with minimal exposure to the topic; an expert question should challenge a strong student for a full minute.
- Distractors should reflect plausible mistakes, not random values.
- The explanation should teach: state why the correct answer is right in one or two sentences.
- Use plain text. No markdown, no LaTeX.
- Respond with JSON only.`

// buildUserMessage lists the generation matrix slot by slot.
func buildUserMessage(subject subjects.Subject, slots []Slot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", subject.Name)
	fmt.Fprintf(&b, "Topics: %s\n", strings.Join(subject.Topics, ", "))
	fmt.Fprintf(&b, "\nGenerate %d questions for these slots:\n", len(slots))

	for i, slot := range slots {
		fmt.Fprintf(&b, "%d. topic: %s, difficulty: %s\n", i+1, slot.Topic, slot.Difficulty)
	}

	return b.String()
}
