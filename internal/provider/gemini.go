package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gemini generates content through the Google Gemini API.
type Gemini struct {
	client *genai.Client
	cfg    Config
}

// NewGemini creates a Gemini provider.
func NewGemini(ctx context.Context, cfg Config) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultConfig().Model
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Gemini{client: client, cfg: cfg}, nil
}

// GenerateContent generates text for the prompt.
func (g *Gemini) GenerateContent(ctx context.Context, prompt string) (string, error) {
	model := g.model()

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return extractText(resp)
}

// GenerateList generates list-shaped content. The backend is asked for a
// JSON array; a non-JSON response falls back to line splitting.
func (g *Gemini) GenerateList(ctx context.Context, prompt string) ([]string, error) {
	full := prompt + "\n\nPlease respond with a list format. Each item on a new line or as a JSON array."
	text, err := g.GenerateContent(ctx, full)
	if err != nil {
		return nil, err
	}
	return ParseList(text), nil
}

// IsAvailable probes the API with a trivial prompt.
func (g *Gemini) IsAvailable(ctx context.Context) bool {
	text, err := g.GenerateContent(ctx, "Hello, respond with 'OK'")
	return err == nil && strings.Contains(strings.ToLower(text), "ok")
}

// ModelInfo returns the active model configuration.
func (g *Gemini) ModelInfo() ModelInfo {
	return ModelInfo{
		Provider:        NameGemini,
		Model:           g.cfg.Model,
		Temperature:     g.cfg.Temperature,
		MaxOutputTokens: g.cfg.MaxOutputTokens,
	}
}

// Close releases the underlying client.
func (g *Gemini) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func (g *Gemini) model() *genai.GenerativeModel {
	model := g.client.GenerativeModel(g.cfg.Model)
	model.SetTemperature(g.cfg.Temperature)
	if g.cfg.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(g.cfg.MaxOutputTokens)
	}
	// Ad copy is benign; relax the default thresholds so competitive
	// language is not rejected outright.
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockOnlyHigh},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockOnlyHigh},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockOnlyHigh},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockOnlyHigh},
	}
	return model
}

// extractText pulls the text parts out of a Gemini response, translating
// safety blocks and empty candidates into sentinel errors.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		return "", fmt.Errorf("prompt rejected (%s): %w", resp.PromptFeedback.BlockReason, ErrBlocked)
	}
	if len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("response withheld: %w", ErrBlocked)
	}
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", ErrEmptyResponse
	}
	return strings.Join(parts, ""), nil
}
