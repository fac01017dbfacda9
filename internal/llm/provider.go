package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts the content-generation backends (Gemini, Perplexity,
// OpenAI, Anthropic). Callers build a Request and receive structured JSON.
type Provider interface {
	// Generate sends a prompt to the model and returns its response.
	// When the request carries a Schema, the provider asks for structured
	// output and validates the result against that schema before returning.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and hard constraints.
	System string

	// Messages is the conversation. Assessment generation is single-turn,
	// so this is normally one user message.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform to.
	// When nil the response Content is the raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in 0.0-1.0. Zero value means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON structure expected back from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "question-set".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated output. With a Schema it is the validated
	// JSON object; without one it is the raw text.
	Content json.RawMessage

	// Usage reports token consumption for the call.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
