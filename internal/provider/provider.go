// Package provider abstracts the content-generation backends. Providers are
// selected by configuration; callers depend only on the Provider interface.
package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors surfaced by providers. Callers classify failures with
// errors.Is rather than matching message text.
var (
	// ErrBlocked reports that the backend refused the prompt or response
	// on safety grounds.
	ErrBlocked = errors.New("content blocked by safety filters")
	// ErrRateLimited reports quota exhaustion or request throttling.
	ErrRateLimited = errors.New("rate limited")
	// ErrEmptyResponse reports a response with no usable text.
	ErrEmptyResponse = errors.New("no content generated")
)

// Name identifies a generation backend.
type Name string

// Supported backends.
const (
	NameGemini  Name = "gemini"
	NameOpenAI  Name = "openai"
	NameOffline Name = "offline"
)

// ModelInfo describes the active model configuration.
type ModelInfo struct {
	Provider        Name    `json:"provider"`
	Model           string  `json:"model_name"`
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int32   `json:"max_output_tokens"`
}

// Provider is an abstraction over content-generation backends.
type Provider interface {
	// GenerateContent generates free text for the prompt.
	GenerateContent(ctx context.Context, prompt string) (string, error)
	// GenerateList generates list-shaped content: a JSON array when the
	// backend cooperates, otherwise one item per line.
	GenerateList(ctx context.Context, prompt string) ([]string, error)
	// IsAvailable probes the backend with a trivial prompt.
	IsAvailable(ctx context.Context) bool
	// ModelInfo returns the active model configuration.
	ModelInfo() ModelInfo
	// Close releases any resources held by the provider.
	Close() error
}

// Config selects and parameterizes a backend.
type Config struct {
	Name            Name    `json:"name"`
	Model           string  `json:"model"`
	APIKey          string  `json:"-"`
	BaseURL         string  `json:"base_url,omitempty"`
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int32   `json:"max_output_tokens"`
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() Config {
	return Config{
		Name:            NameGemini,
		Model:           "gemini-2.5-flash",
		Temperature:     0.7,
		MaxOutputTokens: 2048,
	}
}

// New creates a provider for the configured backend.
func New(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Name {
	case NameGemini, "":
		return NewGemini(ctx, cfg)
	case NameOpenAI:
		return NewOpenAI(cfg)
	case NameOffline:
		return NewOffline(cfg), nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", cfg.Name)
	}
}

// IsRateLimit reports whether err looks like quota exhaustion. It honors the
// ErrRateLimited sentinel and falls back to message inspection for errors
// surfaced by backend SDKs. The message check requires a full rate-limit
// signature; a bare "rate" substring would also match "generate".
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "rate limit")
}
