package assembler

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mbaxter/adforge/internal/types"
)

// rule is one scoring deduction. Rules are applied in table order and the
// final score is floored at zero.
type rule struct {
	name    string
	penalty float64
	failed  func(text string) bool
}

var hashtagFormat = regexp.MustCompile(`^#[a-zA-Z0-9_]+$`)

var genericHeadlinePhrases = []string{"the best", "number one", "top rated", "premium quality"}
var benefitWords = []string{"benefit", "advantage", "value", "save", "improve", "enhance", "boost"}
var actionWords = []string{"get", "buy", "try", "learn", "discover", "start", "join", "contact", "call"}
var genericCTAs = []string{"learn more", "click here", "read more"}

var headlineRules = []rule{
	{"over 60 characters", 0.2, func(s string) bool { return len(s) > 60 }},
	{"generic phrasing", 0.1, func(s string) bool { return containsAny(s, genericHeadlinePhrases) }},
	{"not capitalized", 0.1, func(s string) bool {
		return s == "" || !unicode.IsUpper([]rune(s)[0])
	}},
}

var bodyRules = []rule{
	{"sentence count outside 2-4", 0.2, func(s string) bool {
		n := strings.Count(s, ".") + strings.Count(s, "!") + strings.Count(s, "?")
		return n < 2 || n > 4
	}},
	{"no benefit language", 0.1, func(s string) bool { return !containsAny(s, benefitWords) }},
}

var hashtagRules = []rule{
	{"missing # prefix", 0.3, func(s string) bool { return !strings.HasPrefix(s, "#") }},
	{"over 30 characters", 0.2, func(s string) bool { return len(s) > 30 }},
	{"invalid characters", 0.2, func(s string) bool { return !hashtagFormat.MatchString(s) }},
}

var ctaRules = []rule{
	{"over 50 characters", 0.2, func(s string) bool { return len(s) > 50 }},
	{"no action word", 0.2, func(s string) bool { return !containsAny(s, actionWords) }},
	{"generic call to action", 0.1, func(s string) bool { return containsAny(s, genericCTAs) }},
}

var rulesByKind = map[types.ContentKind][]rule{
	types.ContentHeadline: headlineRules,
	types.ContentBody:     bodyRules,
	types.ContentHashtag:  hashtagRules,
	types.ContentCTA:      ctaRules,
}

// Score applies the rule table for kind and returns the resulting quality
// score in [0, 1].
func Score(kind types.ContentKind, text string) float64 {
	score := 1.0
	for _, r := range rulesByKind[kind] {
		if r.failed(text) {
			score -= r.penalty
		}
	}
	if score < 0 {
		score = 0
	}
	return score
}

func containsAny(text string, needles []string) bool {
	lower := strings.ToLower(text)
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}
