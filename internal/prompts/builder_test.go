package prompts

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbaxter/adforge/internal/types"
)

func sampleContext() types.MarketingContext {
	return types.MarketingContext{
		Tone: types.ToneProfile{
			PrimaryTone: types.ToneLocal,
			Sentiment:   types.SentimentNeutral,
		},
		Keywords: types.KeywordProfile{
			Industry:   []string{"food", "retail"},
			Technology: []string{"digital"},
		},
		Regional: types.RegionalProfile{
			PrimaryRegion: "San Francisco Bay Area",
		},
	}
}

func sampleBusiness() types.Business {
	return types.Business{
		OurBrand:      "Corner Bakery",
		Competitor:    "Big Bread Co",
		NicheHashtags: []string{"#sourdough", "#fresh"},
	}
}

func TestBuilder_Headline(t *testing.T) {
	b := NewBuilder()

	prompt, err := b.Build(types.ContentHeadline, sampleContext(), sampleBusiness())
	require.NoError(t, err)

	assert.Contains(t, prompt, "local tone")
	assert.Contains(t, prompt, "Industry: food, retail")
	assert.Contains(t, prompt, "Region: San Francisco Bay Area")
	assert.Contains(t, prompt, "Our Brand: Corner Bakery")
	assert.Contains(t, prompt, "Competitor: Big Bread Co")
	assert.Contains(t, prompt, "#sourdough #fresh")
	assert.Contains(t, prompt, "Corner Bakery is better than Big Bread Co")
}

func TestBuilder_UnknownKind(t *testing.T) {
	b := NewBuilder()

	_, err := b.Build(types.ContentKind("banner"), sampleContext(), sampleBusiness())

	assert.Error(t, err)
}

func TestBuilder_OfferDirectives(t *testing.T) {
	b := NewBuilder()
	biz := sampleBusiness()

	tests := []struct {
		offerType string
		want      string
	}{
		{"discount", "DISCOUNT or SALE"},
		{"free_trial", "FREE TRIAL"},
		{"limited_time", "LIMITED TIME OFFER"},
		{"event", "GRAND OPENING"},
		{"information", "informational ad"},
	}

	for _, tt := range tests {
		t.Run(tt.offerType, func(t *testing.T) {
			biz.OfferType = tt.offerType
			prompt, err := b.Build(types.ContentBody, sampleContext(), biz)
			require.NoError(t, err)
			assert.Contains(t, prompt, tt.want)
		})
	}
}

func TestBuilder_UnknownOfferTypeRendersNothing(t *testing.T) {
	b := NewBuilder()
	biz := sampleBusiness()
	biz.OfferType = "clearance"

	prompt, err := b.Build(types.ContentCTA, sampleContext(), biz)
	require.NoError(t, err)

	assert.NotContains(t, prompt, "OFFER TYPE")
}

func TestBuilder_IntelTruncation(t *testing.T) {
	b := NewBuilder()
	biz := sampleBusiness()
	biz.IntelligenceSource = "website"
	biz.CompetitorDescription = strings.Repeat("x", 500)
	biz.CompetitorServices = []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7"}

	headline, err := b.Build(types.ContentHeadline, sampleContext(), biz)
	require.NoError(t, err)
	body, err := b.Build(types.ContentBody, sampleContext(), biz)
	require.NoError(t, err)

	assert.Contains(t, headline, "Description: "+strings.Repeat("x", 300)+"\n")
	assert.NotContains(t, headline, strings.Repeat("x", 301))
	assert.Contains(t, body, strings.Repeat("x", 400))
	assert.NotContains(t, body, strings.Repeat("x", 401))
	assert.Contains(t, body, "s5")
	assert.NotContains(t, body, "s6", "service list capped at five entries")
	assert.Contains(t, body, "superior to Big Bread Co")
}

func TestTruncate_RuneBoundary(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short string untouched", "café", 10, "café"},
		{"ascii cut", "abcdef", 3, "abc"},
		{"multibyte not split", "abécd", 3, "ab"},
		{"cut lands on boundary", "abécd", 4, "abé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestBuilder_IntelOmittedWhenSourceNone(t *testing.T) {
	b := NewBuilder()
	biz := sampleBusiness()
	biz.IntelligenceSource = "none"
	biz.CompetitorDescription = "A bakery chain."

	prompt, err := b.Build(types.ContentHeadline, sampleContext(), biz)
	require.NoError(t, err)

	assert.NotContains(t, prompt, "Competitor Information")
}

func TestBuilder_BlankIndustryStaysBlank(t *testing.T) {
	b := NewBuilder()
	mc := types.MarketingContext{}

	prompt, err := b.Build(types.ContentHeadline, mc, sampleBusiness())
	require.NoError(t, err)

	// No industry signal must not be replaced with a technology default.
	assert.Contains(t, prompt, "Industry: \n")
	assert.Contains(t, prompt, "professional tone")
	assert.NotContains(t, prompt, "Industry: Technology")
}

func TestBuilder_Deterministic(t *testing.T) {
	b := NewBuilder()

	first, err := b.Build(types.ContentBody, sampleContext(), sampleBusiness())
	require.NoError(t, err)
	second, err := b.Build(types.ContentBody, sampleContext(), sampleBusiness())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
