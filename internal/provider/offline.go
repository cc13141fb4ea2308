package provider

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
)

// Offline is a deterministic template-based provider used for development
// and tests. The same prompt always yields the same output: template and
// filler selection are driven by a hash of the prompt text.
type Offline struct {
	cfg Config
}

// NewOffline creates an offline provider.
func NewOffline(cfg Config) *Offline {
	if cfg.Model == "" {
		cfg.Model = "offline-templates"
	}
	return &Offline{cfg: cfg}
}

var (
	offlineHeadlines = []string{
		"Transform Your %s with %s",
		"%s Solutions That Drive Real Growth",
		"Smart %s for Modern %s",
		"Next-Gen %s Built for %s",
	}
	offlineBodies = []string{
		"Discover how our %s offering can change the way your %s works. We deliver results that matter. Join the clients who already trust our expertise.",
		"Experience %s designed around %s. Our approach combines proven methods with measurable outcomes.",
		"Unlock your potential with %s built for %s. Practical, reliable, and ready today.",
	}
	offlineHashtagSets = [][]string{
		{"#growth", "#quality", "#local", "#trusted"},
		{"#innovation", "#value", "#community", "#service"},
		{"#fresh", "#expert", "#results", "#proven"},
	}
	offlineCTAs = []string{
		"Get Started Today",
		"Visit Us Now",
		"Claim Your Offer",
		"Book a Free Consultation",
	}
	offlineSubjects = []string{"business", "brand", "team", "customers"}
	offlineQualities = []string{"craft", "care", "expertise", "innovation"}
)

// GenerateContent returns deterministic template output keyed off the
// prompt's content kind markers.
func (o *Offline) GenerateContent(_ context.Context, prompt string) (string, error) {
	seed := hashPrompt(prompt)
	lower := strings.ToLower(prompt)

	subject := offlineSubjects[seed%uint64(len(offlineSubjects))]
	quality := offlineQualities[(seed/7)%uint64(len(offlineQualities))]

	switch {
	case strings.Contains(lower, "headline"):
		tpl := offlineHeadlines[seed%uint64(len(offlineHeadlines))]
		return fillTemplate(tpl, capitalize(subject), capitalize(quality)), nil
	case strings.Contains(lower, "hashtag"):
		set := offlineHashtagSets[seed%uint64(len(offlineHashtagSets))]
		return strings.Join(set, " "), nil
	case strings.Contains(lower, "call-to-action"), strings.Contains(lower, "cta"):
		return offlineCTAs[seed%uint64(len(offlineCTAs))], nil
	default:
		tpl := offlineBodies[seed%uint64(len(offlineBodies))]
		return fillTemplate(tpl, quality, subject), nil
	}
}

// GenerateList returns deterministic list output.
func (o *Offline) GenerateList(ctx context.Context, prompt string) ([]string, error) {
	text, err := o.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if strings.Contains(text, "#") {
		return strings.Fields(text), nil
	}
	return ParseList(text), nil
}

// IsAvailable always reports true.
func (o *Offline) IsAvailable(context.Context) bool { return true }

// ModelInfo returns the active model configuration.
func (o *Offline) ModelInfo() ModelInfo {
	return ModelInfo{
		Provider:        NameOffline,
		Model:           o.cfg.Model,
		Temperature:     o.cfg.Temperature,
		MaxOutputTokens: o.cfg.MaxOutputTokens,
	}
}

// Close is a no-op.
func (o *Offline) Close() error { return nil }

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func hashPrompt(prompt string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(prompt))
	return h.Sum64()
}

// fillTemplate substitutes args into the template's verbs, tolerating
// templates with fewer verbs than args.
func fillTemplate(tpl string, args ...string) string {
	n := strings.Count(tpl, "%s")
	vals := make([]any, n)
	for i := 0; i < n; i++ {
		vals[i] = args[i%len(args)]
	}
	return fmt.Sprintf(tpl, vals...)
}
