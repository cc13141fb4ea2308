package provider

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI generates content through the OpenAI chat-completions API.
type OpenAI struct {
	client openai.Client
	cfg    Config
}

// NewOpenAI creates an OpenAI provider.
func NewOpenAI(cfg Config) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAI{client: openai.NewClient(opts...), cfg: cfg}, nil
}

// GenerateContent generates text for the prompt.
func (o *OpenAI) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(float64(o.cfg.Temperature)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// GenerateList generates list-shaped content, falling back to line
// splitting when the response is not a JSON array.
func (o *OpenAI) GenerateList(ctx context.Context, prompt string) ([]string, error) {
	full := prompt + "\n\nPlease respond with a list format. Each item on a new line or as a JSON array."
	text, err := o.GenerateContent(ctx, full)
	if err != nil {
		return nil, err
	}
	return ParseList(text), nil
}

// IsAvailable probes the API with a trivial prompt.
func (o *OpenAI) IsAvailable(ctx context.Context) bool {
	text, err := o.GenerateContent(ctx, "Hello, respond with 'OK'")
	return err == nil && strings.Contains(strings.ToLower(text), "ok")
}

// ModelInfo returns the active model configuration.
func (o *OpenAI) ModelInfo() ModelInfo {
	return ModelInfo{
		Provider:        NameOpenAI,
		Model:           o.cfg.Model,
		Temperature:     o.cfg.Temperature,
		MaxOutputTokens: o.cfg.MaxOutputTokens,
	}
}

// Close is a no-op; the HTTP client holds no persistent resources.
func (o *OpenAI) Close() error { return nil }
