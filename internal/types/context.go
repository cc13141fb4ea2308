package types

// Tone is a coarse stylistic classification inferred from keyword presence.
type Tone string

// Recognized tones.
const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneFormal       Tone = "formal"
	ToneTechnical    Tone = "technical"
	ToneLocal        Tone = "local"
	ToneCorporate    Tone = "corporate"
)

// Sentiment is the aggregate sentiment detected across input text.
type Sentiment string

// Recognized sentiments.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
	SentimentMixed    Sentiment = "mixed"
)

// RegionType classifies a ZIP-derived region.
type RegionType string

// Recognized region types.
const (
	RegionUrban        RegionType = "urban"
	RegionSuburban     RegionType = "suburban"
	RegionRural        RegionType = "rural"
	RegionMetropolitan RegionType = "metropolitan"
)

// ToneProfile is the output of tone analysis over competitor names and
// hashtags.
type ToneProfile struct {
	PrimaryTone         Tone      `json:"primary_tone"`
	SecondaryTones      []Tone    `json:"secondary_tones,omitempty"`
	Sentiment           Sentiment `json:"sentiment"`
	Confidence          float64   `json:"confidence"`
	LocalIndicators     []string  `json:"local_indicators,omitempty"`
	CorporateIndicators []string  `json:"corporate_indicators,omitempty"`
	TechnicalTerms      []string  `json:"technical_terms,omitempty"`
}

// HasSecondary reports whether tone appears in the secondary tone list.
func (p ToneProfile) HasSecondary(tone Tone) bool {
	for _, t := range p.SecondaryTones {
		if t == tone {
			return true
		}
	}
	return false
}

// KeywordProfile is the output of keyword extraction: categorized keyword
// lists plus raw-token frequency patterns.
type KeywordProfile struct {
	Industry       []string       `json:"industry_keywords,omitempty"`
	Technology     []string       `json:"technology_keywords,omitempty"`
	BusinessType   []string       `json:"business_type_keywords,omitempty"`
	Location       []string       `json:"location_keywords,omitempty"`
	BrandAttribute []string       `json:"brand_attribute_keywords,omitempty"`
	CommonPatterns []string       `json:"common_patterns,omitempty"`
	UniquePatterns []string       `json:"unique_patterns,omitempty"`
	FrequencyMap   map[string]int `json:"frequency_map,omitempty"`
}

// AllKeywords returns every categorized keyword across all categories,
// deduplicated, preserving category order.
func (p KeywordProfile) AllKeywords() []string {
	var all []string
	seen := make(map[string]struct{})
	for _, category := range [][]string{p.Industry, p.Technology, p.BusinessType, p.Location, p.BrandAttribute} {
		for _, k := range category {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			all = append(all, k)
		}
	}
	return all
}

// RegionalProfile is the output of ZIP-code regional analysis. A zero value
// is the defaulted "no regional signal" profile.
type RegionalProfile struct {
	PrimaryRegion         string          `json:"primary_region,omitempty"`
	RegionType            RegionType      `json:"region_type,omitempty"`
	State                 string          `json:"state,omitempty"`
	MetroArea             string          `json:"metro_area,omitempty"`
	PopulationDensity     string          `json:"population_density,omitempty"`
	EconomicIndicators    map[string]bool `json:"economic_indicators,omitempty"`
	DemographicIndicators map[string]bool `json:"demographic_indicators,omitempty"`
	GeographicFeatures    []string        `json:"geographic_features,omitempty"`
	MarketCharacteristics []string        `json:"market_characteristics,omitempty"`
	ZipCodes              []string        `json:"zip_codes_analyzed,omitempty"`
}

// ContextMetadata records what the aggregator saw while building a context.
type ContextMetadata struct {
	TotalInputs int          `json:"total_input_items"`
	InputKinds  []RecordKind `json:"input_types"`
}

// MarketingContext is the immutable aggregate of the three analyzer
// profiles. It is built once per request by the aggregator and passed by
// value; nothing mutates it after construction.
type MarketingContext struct {
	Tone            ToneProfile     `json:"tone_analysis"`
	Keywords        KeywordProfile  `json:"keyword_patterns"`
	Regional        RegionalProfile `json:"regional_info"`
	ConfidenceScore float64         `json:"confidence_score"`
	Metadata        ContextMetadata `json:"analysis_metadata"`
}

// Business carries the request-scoped business fields that accompany a
// MarketingContext into prompt building. Intelligence fields are populated
// only when the competitor-intelligence collaborator returned data.
type Business struct {
	OurBrand      string   `json:"our_brand"`
	Competitor    string   `json:"competitor"`
	NicheHashtags []string `json:"niche_hashtags,omitempty"`
	Zipcode       string   `json:"zipcode,omitempty"`
	Industry      string   `json:"industry,omitempty"`
	AudienceType  string   `json:"audience_type,omitempty"`
	OfferType     string   `json:"offer_type,omitempty"`
	Goal          string   `json:"goal,omitempty"`

	CompetitorDescription string   `json:"competitor_description,omitempty"`
	CompetitorServices    []string `json:"competitor_services,omitempty"`
	CompetitorFeatures    []string `json:"competitor_features,omitempty"`
	CompetitorWebsite     string   `json:"competitor_website,omitempty"`
	IntelligenceSource    string   `json:"intelligence_source,omitempty"`
}
