package questiongen

import "time"

// Config controls session set generation.
type Config struct {
	// PerBand is the number of questions per difficulty band.
	// The session size is always PerBand × 5.
	PerBand int

	// MaxTokens is the token budget for the generation response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64

	// Timeout is how long to race the external generator before falling
	// back to the local question set.
	Timeout time.Duration
}

// DefaultConfig returns the standard 2-per-band configuration.
func DefaultConfig() Config {
	return Config{
		PerBand:     2,
		MaxTokens:   4096,
		Temperature: 0.7,
		Timeout:     25 * time.Second,
	}
}
