// Package assembler turns provider output into scored ad content. It owns
// content cleaning, hashtag parsing, and the heuristic quality rules.
package assembler

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/mbaxter/adforge/internal/prompts"
	"github.com/mbaxter/adforge/internal/provider"
	"github.com/mbaxter/adforge/internal/types"
)

const maxHashtags = 5

var (
	hashtagPattern    = regexp.MustCompile(`#\w+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	alnumWord         = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// KindStats counts generation attempts for one content kind.
type KindStats struct {
	Generated  int `json:"generated"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// Stats is a snapshot of per-kind generation counters.
type Stats struct {
	Headline KindStats `json:"headline"`
	Body     KindStats `json:"ad_text"`
	Hashtags KindStats `json:"hashtags"`
	CTA      KindStats `json:"cta"`
}

// Assembler generates and scores one complete ad from a marketing context.
// It is safe for concurrent use.
type Assembler struct {
	builder  *prompts.Builder
	provider provider.Provider

	mu    sync.Mutex
	stats Stats
}

// New creates an assembler backed by p.
func New(p provider.Provider) *Assembler {
	return &Assembler{builder: prompts.NewBuilder(), provider: p}
}

// Generate produces a fully scored AdContent for the context and business.
// The four pieces are generated in a fixed order; any provider failure
// aborts the whole round so the caller can retry or fall back.
func (a *Assembler) Generate(ctx context.Context, mc types.MarketingContext, biz types.Business) (types.AdContent, error) {
	headline, err := a.GeneratePiece(ctx, types.ContentHeadline, mc, biz)
	if err != nil {
		return types.AdContent{}, fmt.Errorf("headline generation failed: %w", err)
	}
	body, err := a.GeneratePiece(ctx, types.ContentBody, mc, biz)
	if err != nil {
		return types.AdContent{}, fmt.Errorf("ad text generation failed: %w", err)
	}
	hashtags, err := a.GenerateHashtags(ctx, mc, biz)
	if err != nil {
		return types.AdContent{}, fmt.Errorf("hashtag generation failed: %w", err)
	}
	cta, err := a.GeneratePiece(ctx, types.ContentCTA, mc, biz)
	if err != nil {
		return types.AdContent{}, fmt.Errorf("cta generation failed: %w", err)
	}

	content := types.AdContent{
		Headline: headline,
		Body:     body,
		Hashtags: hashtags,
		CTA:      cta,
		Provider: string(a.provider.ModelInfo().Provider),
	}
	content.Quality = BuildQualityReport(content, mc)
	return content, nil
}

// GeneratePiece generates and scores a single non-hashtag content piece.
func (a *Assembler) GeneratePiece(ctx context.Context, kind types.ContentKind, mc types.MarketingContext, biz types.Business) (types.ContentPiece, error) {
	prompt, err := a.builder.Build(kind, mc, biz)
	if err != nil {
		return types.ContentPiece{}, err
	}
	raw, err := a.provider.GenerateContent(ctx, prompt)
	a.record(kind, err == nil)
	if err != nil {
		return types.ContentPiece{}, err
	}

	text := Clean(raw)
	return types.ContentPiece{
		Kind:         kind,
		Text:         text,
		QualityScore: Score(kind, text),
		Status:       types.StatusGenerated,
	}, nil
}

// GenerateHashtags generates one hashtag response and splits it into
// individually scored pieces.
func (a *Assembler) GenerateHashtags(ctx context.Context, mc types.MarketingContext, biz types.Business) ([]types.ContentPiece, error) {
	prompt, err := a.builder.Build(types.ContentHashtag, mc, biz)
	if err != nil {
		return nil, err
	}
	raw, err := a.provider.GenerateContent(ctx, prompt)
	a.record(types.ContentHashtag, err == nil)
	if err != nil {
		return nil, err
	}

	tags := ParseHashtags(raw)
	pieces := make([]types.ContentPiece, 0, len(tags))
	for _, tag := range tags {
		pieces = append(pieces, types.ContentPiece{
			Kind:         types.ContentHashtag,
			Text:         tag,
			QualityScore: Score(types.ContentHashtag, tag),
			Status:       types.StatusGenerated,
		})
	}
	return pieces, nil
}

// Statistics returns a snapshot of the per-kind generation counters.
func (a *Assembler) Statistics() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

func (a *Assembler) record(kind types.ContentKind, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var ks *KindStats
	switch kind {
	case types.ContentHeadline:
		ks = &a.stats.Headline
	case types.ContentBody:
		ks = &a.stats.Body
	case types.ContentHashtag:
		ks = &a.stats.Hashtags
	case types.ContentCTA:
		ks = &a.stats.CTA
	default:
		return
	}
	ks.Generated++
	if ok {
		ks.Successful++
	} else {
		ks.Failed++
	}
}

// Clean normalizes provider output: a single pair of wrapping quotes is
// removed and runs of whitespace collapse to one space.
func Clean(content string) string {
	content = strings.TrimSpace(content)
	if len(content) >= 2 {
		if (content[0] == '"' && content[len(content)-1] == '"') ||
			(content[0] == '\'' && content[len(content)-1] == '\'') {
			content = content[1 : len(content)-1]
		}
	}
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(content, " "))
}

// ParseHashtags extracts '#' tokens from provider output. When the response
// carries no hashtag markers at all, bare alphanumeric words are coerced
// into hashtags. At most five tags are returned.
func ParseHashtags(content string) []string {
	tags := hashtagPattern.FindAllString(content, -1)
	if len(tags) == 0 {
		for _, word := range strings.Fields(content) {
			if strings.HasPrefix(word, "#") {
				tags = append(tags, word)
			} else if alnumWord.MatchString(word) {
				tags = append(tags, "#"+word)
			}
		}
	}
	if len(tags) > maxHashtags {
		tags = tags[:maxHashtags]
	}
	return tags
}
