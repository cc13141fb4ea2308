package analysis

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/mbaxter/adforge/internal/types"
)

var (
	// wordPattern matches words including common business characters.
	wordPattern = regexp.MustCompile(`\b[a-zA-Z0-9&.-]+\b`)

	// hashtagTokenPattern matches the token following a '#'.
	hashtagTokenPattern = regexp.MustCompile(`#([a-zA-Z0-9_]+)`)

	digitRunPattern = regexp.MustCompile(`[0-9]+`)
)

// stopwords are business filler words stripped from competitor names before
// categorization.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "of": {}, "for": {}, "with": {}, "by": {},
	"at": {}, "in": {}, "on": {}, "to": {}, "from": {},
	"corp": {}, "inc": {}, "llc": {}, "ltd": {}, "company": {}, "co": {},
	"group": {}, "systems": {}, "solutions": {}, "services": {},
	"technologies": {}, "enterprise": {},
}

// KeywordExtractor tokenizes competitor names and hashtags and categorizes
// the resulting keywords against the configured dictionaries.
type KeywordExtractor struct {
	cfg KeywordConfig
}

// NewKeywordExtractor builds an extractor from cfg.
func NewKeywordExtractor(cfg KeywordConfig) *KeywordExtractor {
	if cfg.MinFrequency <= 0 {
		cfg.MinFrequency = 1
	}
	return &KeywordExtractor{cfg: cfg}
}

// Analyze extracts and categorizes keywords from the cleaned records.
// Competitor names are tokenized and stopword-filtered; hashtag text is
// parsed for '#' tokens which are compound-split. ZIP records are skipped.
// All output slices are sorted so identical input yields identical profiles.
func (e *KeywordExtractor) Analyze(records []types.CleanedRecord) types.KeywordProfile {
	var all []string
	for _, r := range records {
		switch r.Kind {
		case types.RecordCompetitorName:
			all = append(all, tokenizeName(r.Text)...)
		case types.RecordHashtag:
			all = append(all, tokenizeHashtags(r.Text)...)
		}
	}

	freq := make(map[string]int, len(all))
	for _, k := range all {
		freq[k]++
	}

	common, unique := e.findPatterns(freq)

	keywordSet := make(map[string]struct{}, len(freq))
	for k := range freq {
		keywordSet[k] = struct{}{}
	}

	return types.KeywordProfile{
		Industry:       categorizeMapped(keywordSet, e.cfg.IndustryKeywords),
		Technology:     categorizeListed(keywordSet, e.cfg.TechnologyKeywords),
		BusinessType:   categorizeMapped(keywordSet, e.cfg.BusinessTypeKeywords),
		Location:       categorizeListed(keywordSet, e.cfg.LocationKeywords),
		BrandAttribute: categorizeMapped(keywordSet, e.cfg.BrandAttributeKeywords),
		CommonPatterns: common,
		UniquePatterns: unique,
		FrequencyMap:   freq,
	}
}

// tokenizeName splits a competitor name into lowercased tokens, dropping
// stopwords and tokens of two characters or fewer.
func tokenizeName(name string) []string {
	var out []string
	for _, w := range wordPattern.FindAllString(strings.ToLower(name), -1) {
		if _, skip := stopwords[w]; skip || len(w) <= 2 {
			continue
		}
		out = append(out, w)
	}
	return out
}

// tokenizeHashtags pulls '#' tokens out of free text and compound-splits
// each one.
func tokenizeHashtags(text string) []string {
	var out []string
	for _, m := range hashtagTokenPattern.FindAllStringSubmatch(text, -1) {
		out = append(out, splitCompoundHashtag(m[1])...)
	}
	return out
}

// splitCompoundHashtag splits a hashtag token into lowercased words. Tokens
// with interior capitals split on each uppercase letter, tokens with digits
// split on digit runs (digits themselves are dropped), and everything else
// passes through as a single lowercased word.
func splitCompoundHashtag(tag string) []string {
	switch {
	case strings.IndexFunc(tag, unicode.IsUpper) >= 0:
		var words []string
		start := 0
		for i, r := range tag {
			if i > 0 && unicode.IsUpper(r) {
				words = append(words, strings.ToLower(tag[start:i]))
				start = i
			}
		}
		words = append(words, strings.ToLower(tag[start:]))
		return words
	case strings.IndexFunc(tag, unicode.IsDigit) >= 0:
		var words []string
		for _, part := range digitRunPattern.Split(tag, -1) {
			if part != "" {
				words = append(words, strings.ToLower(part))
			}
		}
		return words
	default:
		return []string{strings.ToLower(tag)}
	}
}

// findPatterns partitions keywords into common (seen more than MinFrequency
// times) and unique (seen exactly once), sorted.
func (e *KeywordExtractor) findPatterns(freq map[string]int) (common, unique []string) {
	for k, n := range freq {
		switch {
		case n >= e.cfg.MinFrequency+1:
			common = append(common, k)
		case n == 1:
			unique = append(unique, k)
		}
	}
	sort.Strings(common)
	sort.Strings(unique)
	return common, unique
}

// categorizeMapped returns the sorted category names whose term list
// intersects the keyword set.
func categorizeMapped(keywords map[string]struct{}, categories map[string][]string) []string {
	var out []string
	for name, terms := range categories {
		for _, t := range terms {
			if _, ok := keywords[t]; ok {
				out = append(out, name)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}

// categorizeListed returns the sorted dictionary terms present in the
// keyword set.
func categorizeListed(keywords map[string]struct{}, terms []string) []string {
	var out []string
	for _, t := range terms {
		if _, ok := keywords[t]; ok {
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}
