package llm

import (
	"context"
	"fmt"

	"github.com/arjunvk/levelcheck/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with the
// standard middleware chain: caller → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, repo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "perplexity":
		base, err = NewPerplexityProvider(cfg.Perplexity)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, repo)
	return WithRetry(logged, cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from LEVELCHECK_* env vars, falling
// back to probing the standard API key variables.
func NewProviderFromEnv(ctx context.Context, repo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, repo)
}
