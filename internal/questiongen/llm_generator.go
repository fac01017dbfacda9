package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/google/uuid"

	"github.com/arjunvk/levelcheck/internal/await"
	"github.com/arjunvk/levelcheck/internal/jsonrepair"
	"github.com/arjunvk/levelcheck/internal/llm"
	"github.com/arjunvk/levelcheck/internal/subjects"
)

// LLMGenerator implements Generator against an LLM provider, with the
// local fallback set as the unconditional safety net.
type LLMGenerator struct {
	provider llm.Provider
	cfg      Config
	rng      *rand.Rand
}

// New creates a generator with an unseeded RNG for question order.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return NewWithRand(provider, cfg, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewWithRand creates a generator with the given RNG so tests can inject
// a deterministic seed.
func NewWithRand(provider llm.Provider, cfg Config, rng *rand.Rand) *LLMGenerator {
	return &LLMGenerator{provider: provider, cfg: cfg, rng: rng}
}

// setOutput is the raw generation response before validation.
type setOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
	Difficulty   string   `json:"difficulty"`
	Topic        string   `json:"topic"`
}

// BuildSet builds the session question set: PerBand questions for each of
// the five difficulty bands, topics round-robin, order shuffled. A failed
// or unusable generation call degrades silently to the fallback set; only
// a corrupt fallback is reported as an error.
func (g *LLMGenerator) BuildSet(ctx context.Context, subject subjects.Subject) ([]Question, error) {
	slots := BuildSlots(subject.Topics, g.cfg.PerBand)

	qs, err := g.generate(ctx, subject, slots)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: question generation failed, using fallback set: %v\n", err)
		qs = FallbackSet(subject, slots)
		if verr := ValidateSet(qs, subject, g.cfg.PerBand); verr != nil {
			// The fallback is locally defined; failing its own validation
			// is a bug, not a runtime condition.
			return nil, fmt.Errorf("fallback set corrupt: %w", verr)
		}
	}

	g.rng.Shuffle(len(qs), func(i, j int) {
		qs[i], qs[j] = qs[j], qs[i]
	})

	return qs, nil
}

// generate performs the raced external call and maps its output.
func (g *LLMGenerator) generate(ctx context.Context, subject subjects.Subject, slots []Slot) ([]Question, error) {
	if g.provider == nil {
		return nil, fmt.Errorf("no provider configured")
	}

	ctx = llm.WithPurpose(ctx, "question-set")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(subject, slots)},
		},
		Schema:      SetSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	res := await.WithTimeout(ctx, g.cfg.Timeout, func(ctx context.Context) (*llm.Response, error) {
		return g.provider.Generate(ctx, req)
	})

	var text string
	switch {
	case res.Ok():
		text = string(res.Value.Content)
	default:
		// Schema-invalid responses still carry the raw text; repair may
		// salvage them. Timeouts and other failures have nothing to
		// salvage.
		var inv *llm.ErrInvalidResponse
		if errors.As(res.Err, &inv) && len(inv.Content) > 0 {
			text = string(inv.Content)
		} else {
			return nil, fmt.Errorf("generation call: %w", res.Err)
		}
	}

	qs, err := parseSet(text)
	if err != nil {
		return nil, err
	}
	if verr := ValidateSet(qs, subject, g.cfg.PerBand); verr != nil {
		return nil, verr
	}
	return qs, nil
}

// parseSet decodes generated text into questions, repairing the JSON when
// a strict parse fails.
func parseSet(text string) ([]Question, error) {
	var out setOutput
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		if rerr := jsonrepair.Unmarshal(text, &out); rerr != nil {
			return nil, fmt.Errorf("parse question set: %w", rerr)
		}
	}

	qs := make([]Question, 0, len(out.Questions))
	for _, q := range out.Questions {
		d := Difficulty(q.Difficulty)
		qs = append(qs, Question{
			ID:              uuid.NewString(),
			Text:            q.Text,
			Options:         q.Options,
			CorrectIndex:    q.CorrectIndex,
			Explanation:     q.Explanation,
			Difficulty:      d,
			Topic:           q.Topic,
			ExpectedSeconds: d.ExpectedSeconds(),
		})
	}
	return qs, nil
}
