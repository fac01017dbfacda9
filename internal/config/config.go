// Package config loads the optional YAML config file and applies
// environment overrides. Everything has a default; a missing file is not
// an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arjunvk/levelcheck/internal/subjects"
)

// Config is the file-level configuration.
type Config struct {
	Assessment struct {
		// PerBand is the number of questions per difficulty band.
		PerBand int `yaml:"per_band"`

		// NarrativeTimeout bounds the post-session summary call,
		// as a duration string ("15s").
		NarrativeTimeout string `yaml:"narrative_timeout"`
	} `yaml:"assessment"`

	Video struct {
		// APIKey is the YouTube Data API key. Empty disables video
		// suggestions.
		APIKey string `yaml:"api_key"`

		// MaxResults is the number of videos suggested per weak topic.
		MaxResults int `yaml:"max_results"`
	} `yaml:"video"`

	// Subjects adds custom subjects to the built-in catalog.
	Subjects []SubjectConfig `yaml:"subjects"`
}

// SubjectConfig is one custom subject entry.
type SubjectConfig struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Topics []string `yaml:"topics"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	var cfg Config
	cfg.Assessment.PerBand = 2
	cfg.Assessment.NarrativeTimeout = "15s"
	cfg.Video.MaxResults = 3
	return cfg
}

// DefaultPath returns the config file location: $LEVELCHECK_CONFIG, or
// config.yaml under the XDG config directory.
func DefaultPath() (string, error) {
	if p := os.Getenv("LEVELCHECK_CONFIG"); p != "" {
		return p, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "levelcheck", "config.yaml"), nil
}

// Load reads the YAML file at path, fills defaults, and applies
// environment overrides. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Assessment.PerBand <= 0 {
		cfg.Assessment.PerBand = 2
	}
	if cfg.Video.MaxResults <= 0 {
		cfg.Video.MaxResults = 3
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LEVELCHECK_PER_BAND"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Assessment.PerBand = n
		}
	}
	if v := os.Getenv("LEVELCHECK_YOUTUBE_API_KEY"); v != "" {
		cfg.Video.APIKey = v
	}
}

// NarrativeTimeout parses the configured timeout, falling back to 15s.
func (c Config) NarrativeTimeout() time.Duration {
	if d, err := time.ParseDuration(c.Assessment.NarrativeTimeout); err == nil && d > 0 {
		return d
	}
	return 15 * time.Second
}

// RegisterSubjects adds the configured custom subjects to the catalog.
func (c Config) RegisterSubjects() error {
	for _, sc := range c.Subjects {
		s := subjects.Subject{ID: sc.ID, Name: sc.Name, Topics: sc.Topics}
		if err := subjects.Register(s); err != nil {
			return fmt.Errorf("subject %q: %w", sc.ID, err)
		}
	}
	return nil
}
