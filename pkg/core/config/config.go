// Package config resolves runtime configuration once, from a YAML file
// plus environment overrides, and hands an explicit Config struct to
// every subsystem. No package reads os.Getenv after startup except the
// LLM providers, which keep their own key lookup as a fallback.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	// DefaultUserAgent identifies us to SEC EDGAR. The SEC rejects
	// requests without a contactable User-Agent.
	DefaultUserAgent = "ShareholderCatalyst research@shareholdercatalyst.dev"

	DefaultCacheDir       = "data/cache"
	DefaultLookbackYears  = 3
	DefaultMaxPerCategory = 3
	DefaultRequestPause   = 200 * time.Millisecond
)

// Config is the fully resolved runtime configuration.
type Config struct {
	UserAgent      string        `yaml:"user_agent"`
	CacheDir       string        `yaml:"cache_dir"`
	LookbackYears  int           `yaml:"lookback_years"`
	MaxPerCategory int           `yaml:"max_per_category"`
	RequestPause   time.Duration `yaml:"-"`
	RequestPauseMS int           `yaml:"request_pause_ms"`

	// GeminiAPIKey doubles as the extraction credential. Empty key
	// means the pipeline runs in demo mode.
	GeminiAPIKey string `yaml:"-"`
	DatabaseURL  string `yaml:"-"`

	ActiveProvider string                 `yaml:"active_provider"`
	Agents         map[string]AgentConfig `yaml:"agents"`
}

// AgentConfig allows a per-agent provider override.
type AgentConfig struct {
	Provider    string `yaml:"provider"`
	Description string `yaml:"description"`
}

// Default returns a Config with all defaults applied and environment
// credentials picked up.
func Default() *Config {
	cfg := &Config{
		UserAgent:      DefaultUserAgent,
		CacheDir:       DefaultCacheDir,
		LookbackYears:  DefaultLookbackYears,
		MaxPerCategory: DefaultMaxPerCategory,
		RequestPause:   DefaultRequestPause,
		ActiveProvider: "gemini",
	}
	cfg.applyEnv()
	return cfg
}

// Load reads a YAML config file and layers it over the defaults.
// A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("[CONFIG] %s not found, using defaults\n", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.RequestPauseMS > 0 {
		cfg.RequestPause = time.Duration(cfg.RequestPauseMS) * time.Millisecond
	}
	cfg.applyEnv()
	cfg.normalize()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("EDGAR_USER_AGENT"); v != "" {
		c.UserAgent = v
	}
}

func (c *Config) normalize() {
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.CacheDir == "" {
		c.CacheDir = DefaultCacheDir
	}
	if c.LookbackYears <= 0 {
		c.LookbackYears = DefaultLookbackYears
	}
	if c.MaxPerCategory <= 0 {
		c.MaxPerCategory = DefaultMaxPerCategory
	}
	if c.RequestPause <= 0 {
		c.RequestPause = DefaultRequestPause
	}
	if c.ActiveProvider == "" {
		c.ActiveProvider = "gemini"
	}
}

// HasExtractionCredential reports whether LLM extraction can run.
func (c *Config) HasExtractionCredential() bool {
	return c.GeminiAPIKey != ""
}
