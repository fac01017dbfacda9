package questiongen

import "github.com/arjunvk/levelcheck/internal/llm"

// SetSchema defines the JSON schema for question set generation responses.
var SetSchema = &llm.Schema{
	Name:        "question-set",
	Description: "A balanced set of multiple-choice assessment questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The question prompt, clear and self-contained",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 answer choices",
						},
						"correct_index": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct answer is right, shown after checking",
						},
						"difficulty": map[string]any{
							"type":        "string",
							"enum":        []any{"very-easy", "easy", "intermediate", "advanced", "expert"},
							"description": "The difficulty band this question was written for",
						},
						"topic": map[string]any{
							"type":        "string",
							"description": "The topic this question belongs to, copied from the request",
						},
					},
					"required":             []any{"text", "options", "correct_index", "explanation", "difficulty", "topic"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
