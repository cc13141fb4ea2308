// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mbaxter/adforge/internal/cache"
	"github.com/mbaxter/adforge/internal/provider"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults, environment
// variables, or CLI flags.
type Config struct {
	// Generation
	Provider        string  `json:"provider,omitempty"`          // gemini, openai, or offline
	Model           string  `json:"model,omitempty"`             // provider model name
	APIKey          string  `json:"api_key,omitempty"`           // provider API key
	Temperature     float64 `json:"temperature,omitempty"`       // sampling temperature (0.0-2.0)
	MaxOutputTokens int     `json:"max_output_tokens,omitempty"` // response token cap

	// Infrastructure
	DatabaseURL   string `json:"database_url,omitempty"`    // PostgreSQL connection URL
	RedisURL      string `json:"redis_url,omitempty"`       // Redis connection URL
	Addr          string `json:"addr,omitempty"`            // HTTP listen address
	CacheTTLHours int    `json:"cache_ttl_hours,omitempty"` // variant cache TTL

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	switch c.Provider {
	case "", string(provider.NameGemini), string(provider.NameOpenAI), string(provider.NameOffline):
	default:
		return fmt.Errorf("config error: unknown provider %q", c.Provider)
	}

	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("config error: 'temperature' must be between 0 and 2")
	}
	if c.MaxOutputTokens < 0 {
		return fmt.Errorf("config error: 'max_output_tokens' must be non-negative")
	}
	if c.CacheTTLHours < 0 {
		return fmt.Errorf("config error: 'cache_ttl_hours' must be non-negative")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.Addr == "" {
		result.Addr = defaults.Addr
	}

	// Numeric fields: use default if zero
	if result.Temperature == 0 {
		result.Temperature = defaults.Temperature
	}
	if result.MaxOutputTokens == 0 {
		result.MaxOutputTokens = defaults.MaxOutputTokens
	}
	if result.CacheTTLHours == 0 {
		result.CacheTTLHours = defaults.CacheTTLHours
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// FromEnv builds a Config from environment variables. Empty variables
// leave the corresponding field unset.
func FromEnv() Config {
	cfg := Config{
		Provider:    os.Getenv("ADFORGE_PROVIDER"),
		Model:       os.Getenv("ADFORGE_MODEL"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		Addr:        os.Getenv("ADFORGE_ADDR"),
	}
	cfg.APIKey = apiKeyFromEnv(cfg.Provider)
	return cfg
}

// apiKeyFromEnv picks the conventional API key variable for the provider.
// With no provider set, the Gemini key wins over the OpenAI key, matching
// the default provider.
func apiKeyFromEnv(providerName string) string {
	gemini := os.Getenv("GEMINI_API_KEY")
	if gemini == "" {
		gemini = os.Getenv("GOOGLE_API_KEY")
	}
	openai := os.Getenv("OPENAI_API_KEY")

	switch providerName {
	case string(provider.NameOpenAI):
		return openai
	case string(provider.NameGemini):
		return gemini
	default:
		if gemini != "" {
			return gemini
		}
		return openai
	}
}

// ProviderConfig converts the generation fields into a provider config,
// starting from the provider defaults.
func (c *Config) ProviderConfig() provider.Config {
	pc := provider.DefaultConfig()
	if c.Provider != "" {
		pc.Name = provider.Name(c.Provider)
	}
	if c.Model != "" {
		pc.Model = c.Model
	}
	if c.APIKey != "" {
		pc.APIKey = c.APIKey
	}
	if c.Temperature != 0 {
		pc.Temperature = float32(c.Temperature)
	}
	if c.MaxOutputTokens != 0 {
		pc.MaxOutputTokens = int32(c.MaxOutputTokens)
	}
	return pc
}

// CacheTTL returns the configured cache TTL, falling back to the cache
// package default.
func (c *Config) CacheTTL() time.Duration {
	if c.CacheTTLHours <= 0 {
		return cache.DefaultTTL
	}
	return time.Duration(c.CacheTTLHours) * time.Hour
}
