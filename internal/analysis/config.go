// Package analysis builds marketing context from cleaned input records.
// It provides three heuristic analyzers (tone, keywords, regional) and the
// aggregator that composes their profiles into one MarketingContext.
package analysis

import "github.com/mbaxter/adforge/internal/types"

// ToneConfig holds the word lists and weights used by the tone analyzer.
type ToneConfig struct {
	LocalIndicators     []string
	CorporateIndicators []string
	TechnicalTerms      []string
	PositiveWords       []string
	NegativeWords       []string

	// Weights applied to raw presence scores when picking the primary tone.
	LocalWeight     float64
	CorporateWeight float64
	TechnicalWeight float64
}

// DefaultToneConfig returns the built-in tone indicator lists.
func DefaultToneConfig() ToneConfig {
	return ToneConfig{
		LocalIndicators: []string{
			"local", "family", "community", "neighborhood", "hometown", "mom", "pop",
			"corner", "shop", "store", "market", "cafe", "diner", "pizzeria",
			"boutique", "studio", "salon", "clinic", "pharmacy", "bakery",
			"fresh", "handmade", "artisan", "craft", "traditional", "authentic",
		},
		CorporateIndicators: []string{
			"corporation", "corp", "inc", "llc", "ltd", "company", "enterprise",
			"global", "international", "worldwide", "national", "systems",
			"solutions", "services", "group", "holdings", "ventures",
			"technologies", "digital", "software", "consulting", "management",
		},
		TechnicalTerms: []string{
			"software", "technology", "digital", "cloud", "data", "analytics",
			"platform", "solution", "system", "api", "mobile", "web",
			"development", "engineering", "innovation", "automation",
			"artificial", "intelligence", "machine", "learning", "blockchain",
		},
		PositiveWords: []string{
			"excellent", "amazing", "great", "best", "top", "premium",
			"quality", "reliable", "trusted", "innovative", "cutting-edge",
		},
		NegativeWords: []string{
			"cheap", "poor", "worst", "bad", "terrible", "awful",
			"unreliable", "outdated", "broken", "failed", "disappointing",
		},
		LocalWeight:     0.4,
		CorporateWeight: 0.3,
		TechnicalWeight: 0.2,
	}
}

// KeywordConfig holds the categorization dictionaries for the keyword
// extractor. Industry, business-type and brand-attribute dictionaries are
// many-to-one: any listed term maps to its category name.
type KeywordConfig struct {
	IndustryKeywords       map[string][]string
	TechnologyKeywords     []string
	BusinessTypeKeywords   map[string][]string
	LocationKeywords       []string
	BrandAttributeKeywords map[string][]string

	// MinFrequency is the pattern-detection threshold: tokens seen more
	// than MinFrequency times are common, tokens seen once are unique.
	MinFrequency int
}

// DefaultKeywordConfig returns the built-in categorization dictionaries.
func DefaultKeywordConfig() KeywordConfig {
	return KeywordConfig{
		IndustryKeywords: map[string][]string{
			"technology":  {"tech", "software", "digital", "computer", "internet", "web", "mobile", "app"},
			"healthcare":  {"health", "medical", "clinic", "hospital", "pharmacy", "dental", "wellness"},
			"finance":     {"bank", "financial", "credit", "loan", "investment", "insurance", "trading"},
			"retail":      {"store", "shop", "market", "boutique", "fashion", "clothing", "retail"},
			"food":        {"restaurant", "cafe", "food", "catering", "bakery", "pizza", "coffee"},
			"automotive":  {"auto", "car", "vehicle", "garage", "repair", "dealer", "motor"},
			"real_estate": {"realty", "property", "homes", "construction", "building", "development"},
			"education": {
				"school", "education", "learning", "academy", "university", "training",
				"teacher", "teachers", "educator", "educators", "teaching", "classroom",
				"curriculum", "k12", "k-12", "stem", "tutoring", "tutor", "student",
				"edtech", "educationtechnology", "campus",
			},
			"beauty":  {"beauty", "salon", "spa", "cosmetic", "hair", "nail", "skincare"},
			"fitness": {"fitness", "gym", "workout", "training", "sports", "health", "wellness"},
		},
		TechnologyKeywords: []string{
			"software", "app", "platform", "cloud", "data", "analytics", "ai", "machine learning",
			"blockchain", "cyber", "security", "automation", "robotics", "iot", "api",
			"mobile", "web", "digital", "tech", "innovation", "solution", "system",
		},
		BusinessTypeKeywords: map[string][]string{
			"corporation": {"corp", "corporation", "inc", "incorporated", "company"},
			"llc":         {"llc", "limited liability", "ltd"},
			"partnership": {"partners", "partnership", "associates"},
			"solo":        {"solo", "individual", "personal", "private"},
			"franchise":   {"franchise", "chain", "brand"},
			"consulting":  {"consulting", "consultants", "advisors", "services"},
			"agency":      {"agency", "bureau", "office", "group"},
		},
		LocationKeywords: []string{
			"local", "regional", "national", "global", "international", "worldwide",
			"city", "town", "village", "county", "state", "country", "metro",
			"downtown", "uptown", "suburb", "rural", "urban", "coastal", "mountain",
		},
		BrandAttributeKeywords: map[string][]string{
			"premium":     {"premium", "luxury", "high-end", "exclusive", "elite"},
			"affordable":  {"affordable", "budget", "cheap", "economical", "value", "discount"},
			"quality":     {"quality", "reliable", "trusted", "professional", "expert", "certified"},
			"innovative":  {"innovative", "cutting-edge", "advanced", "modern", "next-gen"},
			"traditional": {"traditional", "classic", "established", "heritage", "authentic"},
			"family":      {"family", "friendly", "welcoming", "personal", "caring", "supportive"},
		},
		MinFrequency: 1,
	}
}

// RegionalConfig holds the ZIP lookup tables for the regional analyzer.
type RegionalConfig struct {
	ZipToRegion map[string]string
	ZipToState  map[string]string
	ZipToMetro  map[string]string
	RegionTypes map[string]types.RegionType

	// MetroPriority orders known major metros for primary-region selection
	// when multiple ZIPs resolve to different regions.
	MetroPriority []string
}

// DefaultRegionalConfig returns the built-in ZIP mappings covering major US
// metros plus a handful of suburban and rural areas.
func DefaultRegionalConfig() RegionalConfig {
	return RegionalConfig{
		ZipToRegion: map[string]string{
			"10001": "New York Metro", "10002": "New York Metro", "10003": "New York Metro",
			"90210": "Beverly Hills", "90211": "Beverly Hills",
			"90001": "Los Angeles Metro", "90012": "Los Angeles Metro",
			"94102": "San Francisco Bay Area", "94103": "San Francisco Bay Area",
			"60601": "Chicago Metro", "60602": "Chicago Metro", "60603": "Chicago Metro",
			"77001": "Houston Metro", "77002": "Houston Metro", "77003": "Houston Metro",
			"33101": "Miami Metro", "33102": "Miami Metro", "33103": "Miami Metro",
			"85001": "Phoenix Metro", "85002": "Phoenix Metro", "85003": "Phoenix Metro",
			"98101": "Seattle Metro", "98102": "Seattle Metro", "98103": "Seattle Metro",
			"02101": "Boston Metro", "02102": "Boston Metro", "02103": "Boston Metro",
			"30301": "Atlanta Metro", "30302": "Atlanta Metro", "30303": "Atlanta Metro",
			"07001": "New Jersey Suburbs", "07002": "New Jersey Suburbs",
			"60001": "Chicago Suburbs", "60002": "Chicago Suburbs",
			"01001": "Western Massachusetts", "01002": "Western Massachusetts",
			"59001": "Montana Rural", "59002": "Montana Rural",
			"99701": "Alaska Rural", "99702": "Alaska Rural",
		},
		ZipToState: map[string]string{
			"10001": "NY", "10002": "NY", "10003": "NY",
			"07001": "NJ", "07002": "NJ",
			"90210": "CA", "90211": "CA", "90001": "CA", "90012": "CA",
			"94102": "CA", "94103": "CA",
			"60601": "IL", "60602": "IL", "60603": "IL", "60001": "IL", "60002": "IL",
			"77001": "TX", "77002": "TX", "77003": "TX",
			"33101": "FL", "33102": "FL", "33103": "FL",
			"85001": "AZ", "85002": "AZ", "85003": "AZ",
			"98101": "WA", "98102": "WA", "98103": "WA",
			"02101": "MA", "02102": "MA", "02103": "MA", "01001": "MA", "01002": "MA",
			"30301": "GA", "30302": "GA", "30303": "GA",
			"59001": "MT", "59002": "MT",
			"99701": "AK", "99702": "AK",
		},
		ZipToMetro: map[string]string{
			"10001": "New York-Newark-Jersey City", "10002": "New York-Newark-Jersey City",
			"90210": "Los Angeles-Long Beach-Anaheim", "90211": "Los Angeles-Long Beach-Anaheim",
			"90001": "Los Angeles-Long Beach-Anaheim", "90012": "Los Angeles-Long Beach-Anaheim",
			"94102": "San Francisco-Oakland-Berkeley", "94103": "San Francisco-Oakland-Berkeley",
			"60601": "Chicago-Naperville-Elgin",
			"77001": "Houston-The Woodlands-Sugar Land",
			"33101": "Miami-Fort Lauderdale-Pompano Beach",
			"85001": "Phoenix-Mesa-Chandler",
			"98101": "Seattle-Tacoma-Bellevue",
			"02101": "Boston-Cambridge-Newton",
			"30301": "Atlanta-Sandy Springs-Alpharetta",
		},
		RegionTypes: map[string]types.RegionType{
			"New York Metro":         types.RegionUrban,
			"Los Angeles Metro":      types.RegionUrban,
			"San Francisco Bay Area": types.RegionUrban,
			"Chicago Metro":          types.RegionUrban,
			"Houston Metro":          types.RegionUrban,
			"Miami Metro":            types.RegionUrban,
			"Phoenix Metro":          types.RegionUrban,
			"Seattle Metro":          types.RegionUrban,
			"Boston Metro":           types.RegionUrban,
			"Atlanta Metro":          types.RegionUrban,
			"New Jersey Suburbs":     types.RegionSuburban,
			"Beverly Hills":          types.RegionSuburban,
			"Chicago Suburbs":        types.RegionSuburban,
			"Western Massachusetts":  types.RegionRural,
			"Montana Rural":          types.RegionRural,
			"Alaska Rural":           types.RegionRural,
		},
		MetroPriority: []string{
			"New York Metro", "Los Angeles Metro", "San Francisco Bay Area",
			"Chicago Metro", "Houston Metro", "Miami Metro",
		},
	}
}
