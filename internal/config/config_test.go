package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbaxter/adforge/internal/provider"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"provider": "openai",
		"model": "gpt-4o-mini",
		"redis_url": "redis://localhost:6379/0",
		"cache_ttl_hours": 12,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 12, cfg.CacheTTLHours)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := &Config{Provider: "anthropic"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestValidate_TemperatureRange(t *testing.T) {
	cfg := &Config{Temperature: 2.5}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "temperature")
}

func TestValidate_NegativeTokens(t *testing.T) {
	cfg := &Config{MaxOutputTokens: -1}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_output_tokens")
}

func TestValidate_Valid(t *testing.T) {
	cfg := &Config{Provider: "offline", Temperature: 0.9, MaxOutputTokens: 1024, CacheTTLHours: 6}

	assert.NoError(t, cfg.Validate())
}

func TestValidate_Empty(t *testing.T) {
	cfg := &Config{}

	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Provider: "openai"}
	defaults := Config{
		Provider:      "gemini",
		Model:         "gemini-2.5-flash",
		RedisURL:      "redis://localhost:6379/0",
		Addr:          ":8080",
		CacheTTLHours: 24,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "openai", merged.Provider, "explicit value wins")
	assert.Equal(t, "gemini-2.5-flash", merged.Model)
	assert.Equal(t, "redis://localhost:6379/0", merged.RedisURL)
	assert.Equal(t, ":8080", merged.Addr)
	assert.Equal(t, 24, merged.CacheTTLHours)
}

func TestProviderConfig(t *testing.T) {
	cfg := &Config{
		Provider:        "offline",
		Model:           "template-v2",
		APIKey:          "unused",
		Temperature:     1.1,
		MaxOutputTokens: 512,
	}

	pc := cfg.ProviderConfig()
	assert.Equal(t, provider.NameOffline, pc.Name)
	assert.Equal(t, "template-v2", pc.Model)
	assert.InDelta(t, 1.1, float64(pc.Temperature), 1e-6)
	assert.Equal(t, int32(512), pc.MaxOutputTokens)
}

func TestProviderConfig_Defaults(t *testing.T) {
	cfg := &Config{}

	pc := cfg.ProviderConfig()
	assert.Equal(t, provider.DefaultConfig(), pc)
}

func TestCacheTTL(t *testing.T) {
	cfg := &Config{CacheTTLHours: 6}
	assert.Equal(t, 6*time.Hour, cfg.CacheTTL())

	empty := &Config{}
	assert.Equal(t, 24*time.Hour, empty.CacheTTL())
}

func TestFromEnv_ProviderKeySelection(t *testing.T) {
	t.Setenv("ADFORGE_PROVIDER", "openai")
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("OPENAI_API_KEY", "oai-key")

	cfg := FromEnv()
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "oai-key", cfg.APIKey)
}

func TestFromEnv_DefaultPrefersGemini(t *testing.T) {
	t.Setenv("ADFORGE_PROVIDER", "")
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("OPENAI_API_KEY", "oai-key")

	cfg := FromEnv()
	assert.Equal(t, "gem-key", cfg.APIKey)
}
