package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds provider configuration.
type Config struct {
	// Provider selects the backend.
	// Values: "gemini", "perplexity", "openai", "anthropic", "mock"
	Provider string

	Gemini     GeminiConfig
	Perplexity PerplexityConfig
	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
	Retry      RetryConfig

	// Timeout is the budget for a single generation call including
	// retries. Default: 30s.
	Timeout time.Duration
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// PerplexityConfig holds Perplexity-specific configuration.
type PerplexityConfig struct {
	APIKey  string
	Model   string // Default: "sonar"
	BaseURL string // Default: "https://api.perplexity.ai"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional override for OpenAI-compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Perplexity: PerplexityConfig{
			Model: "sonar",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from LEVELCHECK_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("LEVELCHECK_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := os.Getenv("LEVELCHECK_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("LEVELCHECK_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if k := os.Getenv("LEVELCHECK_PERPLEXITY_API_KEY"); k != "" {
		cfg.Perplexity.APIKey = k
	}
	if m := os.Getenv("LEVELCHECK_PERPLEXITY_MODEL"); m != "" {
		cfg.Perplexity.Model = m
	}
	if u := os.Getenv("LEVELCHECK_PERPLEXITY_BASE_URL"); u != "" {
		cfg.Perplexity.BaseURL = u
	}

	if k := os.Getenv("LEVELCHECK_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("LEVELCHECK_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("LEVELCHECK_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("LEVELCHECK_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("LEVELCHECK_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	return cfg
}

// DiscoverConfig probes the standard API key env vars in priority order
// (Gemini → Perplexity → OpenAI → Anthropic) and returns a Config for the
// first provider whose key is found. Returns (Config{}, false) if none.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("PERPLEXITY_API_KEY"); k != "" {
		cfg.Provider = "perplexity"
		cfg.Perplexity.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("LEVELCHECK_GEMINI_API_KEY is required for the gemini provider")
		}
	case "perplexity":
		if c.Perplexity.APIKey == "" {
			return fmt.Errorf("LEVELCHECK_PERPLEXITY_API_KEY is required for the perplexity provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("LEVELCHECK_OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("LEVELCHECK_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown provider: %q", c.Provider)
	}
	return nil
}
