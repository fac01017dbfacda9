package assessment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arjunvk/levelcheck/internal/await"
	"github.com/arjunvk/levelcheck/internal/llm"
)

// Narrator produces a short human-readable summary of a finished report.
// It is strictly best-effort: any failure or timeout leaves the report's
// Narrative empty and the structured results untouched.
type Narrator struct {
	provider llm.Provider
	timeout  time.Duration
}

// NewNarrator creates a narrator. A nil provider disables narration.
func NewNarrator(provider llm.Provider, timeout time.Duration) *Narrator {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Narrator{provider: provider, timeout: timeout}
}

const narrativeSystemPrompt = `You are a supportive tutor summarizing a student's level-check results.

Rules:
- Write 3 to 5 sentences of plain text. No markdown, no lists.
- Mention the strongest topic and the topic most in need of work by name.
- Be encouraging but specific; never invent results that are not in the data.`

// Annotate fills in the report's Narrative. The context deadline and the
// narrator's own timeout both bound the call; on any failure the report is
// returned unchanged with the error for logging.
func (n *Narrator) Annotate(ctx context.Context, report Report) (Report, error) {
	if n == nil || n.provider == nil {
		return report, nil
	}

	ctx = llm.WithPurpose(ctx, "assessment-narrative")

	req := llm.Request{
		System: narrativeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildNarrativeMessage(report)},
		},
		MaxTokens:   1024,
		Temperature: 0.6,
	}

	res := await.WithTimeout(ctx, n.timeout, func(ctx context.Context) (*llm.Response, error) {
		return n.provider.Generate(ctx, req)
	})
	if !res.Ok() {
		return report, fmt.Errorf("narrative generation: %w", res.Err)
	}

	report.Narrative = strings.TrimSpace(string(res.Value.Content))
	return report, nil
}

// buildNarrativeMessage renders the structured report as plain lines the
// model can summarize without needing the raw answer records.
func buildNarrativeMessage(report Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Overall: %d/%d correct, recommended level %s\n",
		report.FinalScore, report.QuestionCount, report.OverallLevel)

	for _, tp := range report.Topics {
		fmt.Fprintf(&b, "\nTopic %s: %d/%d correct, level %s, avg time ratio %.2f",
			tp.Topic, tp.CorrectCount, tp.TotalCount, tp.RecommendedLevel, tp.AverageTimeRatio)
		if tp.NeedsImprovement {
			b.WriteString(", needs improvement")
		}
		if len(tp.Strengths) > 0 {
			fmt.Fprintf(&b, "\n  strengths: %s", strings.Join(tp.Strengths, "; "))
		}
		if len(tp.Weaknesses) > 0 {
			fmt.Fprintf(&b, "\n  weaknesses: %s", strings.Join(tp.Weaknesses, "; "))
		}
	}

	return b.String()
}
