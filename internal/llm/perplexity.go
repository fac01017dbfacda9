package llm

import "fmt"

const defaultPerplexityBaseURL = "https://api.perplexity.ai"

// PerplexityProvider wraps OpenAIProvider with Perplexity defaults.
// Perplexity exposes an OpenAI-compatible API, so the underlying SDK is
// reused. Its structured output is best-effort: schema violations surface
// as *ErrInvalidResponse with the raw content attached, which callers can
// run through jsonrepair before falling back.
type PerplexityProvider struct {
	*OpenAIProvider
}

// NewPerplexityProvider creates a provider targeting the Perplexity API.
func NewPerplexityProvider(cfg PerplexityConfig) (*PerplexityProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("perplexity API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultPerplexityBaseURL
	}

	inner, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	})
	if err != nil {
		return nil, err
	}

	return &PerplexityProvider{OpenAIProvider: inner}, nil
}
