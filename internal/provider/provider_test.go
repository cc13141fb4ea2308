package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(context.Background(), Config{Name: "watson"})
	assert.Error(t, err)
}

func TestNew_Offline(t *testing.T) {
	p, err := New(context.Background(), Config{Name: NameOffline})
	require.NoError(t, err)
	defer p.Close()

	info := p.ModelInfo()
	assert.Equal(t, NameOffline, info.Provider)
	assert.True(t, p.IsAvailable(context.Background()))
}

func TestNew_GeminiRequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), Config{Name: NameGemini})
	assert.Error(t, err)
}

func TestNew_OpenAIRequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), Config{Name: NameOpenAI})
	assert.Error(t, err)
}

func TestIsRateLimit(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"sentinel", ErrRateLimited, true},
		{"wrapped sentinel", fmt.Errorf("call failed: %w", ErrRateLimited), true},
		{"status code", errors.New("googleapi: Error 429: Resource exhausted"), true},
		{"quota message", errors.New("Quota exceeded for requests"), true},
		{"rate message", errors.New("request was rate limited"), true},
		{"other error", errors.New("connection refused"), false},
		{"wrapped transport error", fmt.Errorf("failed to generate content: %w", errors.New("invalid API key")), false},
		{"empty response", ErrEmptyResponse, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRateLimit(tt.err))
		})
	}
}

func TestOffline_Deterministic(t *testing.T) {
	p := NewOffline(Config{})
	ctx := context.Background()

	prompt := "Create a catchy marketing headline (under 60 characters) for a local tone."
	first, err := p.GenerateContent(ctx, prompt)
	require.NoError(t, err)
	second, err := p.GenerateContent(ctx, prompt)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestOffline_KindRouting(t *testing.T) {
	p := NewOffline(Config{})
	ctx := context.Background()

	hashtags, err := p.GenerateContent(ctx, "Create 3-5 relevant hashtags for this topic.")
	require.NoError(t, err)
	assert.Contains(t, hashtags, "#")

	cta, err := p.GenerateContent(ctx, "Create a compelling call-to-action (under 50 characters).")
	require.NoError(t, err)
	assert.NotContains(t, cta, "#")
	assert.LessOrEqual(t, len(cta), 50)
}

func TestOffline_GenerateList(t *testing.T) {
	p := NewOffline(Config{})

	items, err := p.GenerateList(context.Background(), "Create 3-5 relevant hashtags for this topic.")
	require.NoError(t, err)

	assert.NotEmpty(t, items)
	for _, item := range items {
		assert.True(t, strings.HasPrefix(item, "#"), "expected hashtag, got %q", item)
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"json array", `["#one", "#two"]`, []string{"#one", "#two"}},
		{"fenced json array", "```json\n[\"#one\", \"#two\"]\n```", []string{"#one", "#two"}},
		{"lines", "#one\n\n  #two  \n#three", []string{"#one", "#two", "#three"}},
		{"single line", "#solo", []string{"#solo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseList(tt.in))
		})
	}
}

func TestParseKeyValue(t *testing.T) {
	jsonIn := `{"headline": "Fresh Bread"}`
	assert.Equal(t, map[string]string{"headline": "Fresh Bread"}, ParseKeyValue(jsonIn))

	lineIn := "headline: Fresh Bread\ncta: Visit Today\nnot a pair"
	got := ParseKeyValue(lineIn)
	assert.Equal(t, "Fresh Bread", got["headline"])
	assert.Equal(t, "Visit Today", got["cta"])
	assert.Len(t, got, 2)
}
