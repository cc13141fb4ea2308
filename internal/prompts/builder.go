// Package prompts renders generation prompts from a marketing context and
// the request's business details. Rendering is pure: the same context and
// business always produce the same prompt text.
package prompts

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mbaxter/adforge/internal/types"
)

// offerDirectives maps an offer type to the directive block appended to
// prompts. Unknown offer types render nothing.
var offerDirectives = map[string]string{
	"discount":     "IMPORTANT: This is a DISCOUNT or SALE ad. The ad MUST prominently feature discount/sale language, pricing, savings, or special offers. Use words like 'sale', 'discount', 'save', 'special price', 'deal', 'off', '% off', etc.",
	"promotion":    "IMPORTANT: This is a SPECIAL PROMOTION ad. The ad MUST highlight promotional offers, limited-time deals, or special incentives.",
	"free_trial":   "IMPORTANT: This is a FREE TRIAL ad. The ad MUST emphasize the free trial offer and encourage users to try the service/product for free.",
	"limited_time": "IMPORTANT: This is a LIMITED TIME OFFER ad. The ad MUST create urgency with time-sensitive language like 'limited time', 'act now', 'ends soon', 'don't miss out', etc.",
	"new_arrival":  "IMPORTANT: This is a NEW ARRIVAL or LAUNCH ad. The ad MUST highlight new products, services, or features that are just arriving or launching.",
	"event":        "IMPORTANT: This is an EVENT or GRAND OPENING ad. The ad MUST focus on the event, grand opening, or special occasion with event-specific details.",
	"information":  "This is an informational ad focusing on brand awareness and information sharing.",
}

const (
	headlineIntelDescLimit = 300
	bodyIntelDescLimit     = 400
	intelListLimit         = 5
)

// Builder renders per-kind generation prompts.
type Builder struct{}

// NewBuilder returns a prompt builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build renders the prompt for kind. Unknown kinds are an error.
func (b *Builder) Build(kind types.ContentKind, mc types.MarketingContext, biz types.Business) (string, error) {
	switch kind {
	case types.ContentHeadline:
		return b.headline(mc, biz), nil
	case types.ContentBody:
		return b.body(mc, biz), nil
	case types.ContentHashtag:
		return b.hashtags(mc, biz), nil
	case types.ContentCTA:
		return b.cta(mc, biz), nil
	default:
		return "", fmt.Errorf("unknown content kind: %q", kind)
	}
}

func (b *Builder) headline(mc types.MarketingContext, biz types.Business) string {
	tone := primaryTone(mc)
	industry := joinLimited(mc.Keywords.Industry, 2)
	tech := joinLimited(mc.Keywords.Technology, 2)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Create a catchy marketing headline (under 60 characters) for a %s tone.\n\n", tone)
	fmt.Fprintf(&sb, "Industry: %s\n", industry)
	fmt.Fprintf(&sb, "Tech focus: %s\n", tech)
	fmt.Fprintf(&sb, "Region: %s\n\n", mc.Regional.PrimaryRegion)
	fmt.Fprintf(&sb, "Our Brand: %s\n", biz.OurBrand)
	fmt.Fprintf(&sb, "Competitor: %s\n", biz.Competitor)
	fmt.Fprintf(&sb, "Niche Hashtags: %s", strings.Join(biz.NicheHashtags, " "))
	sb.WriteString(offerContext(biz.OfferType))
	sb.WriteString(headlineIntelContext(biz))
	fmt.Fprintf(&sb, "\n\nCreate a competitive headline that highlights how %s is better than %s. "+
		"If industry/tech is blank, infer from context without assuming technology. "+
		"Generate only the headline, no explanations.", biz.OurBrand, biz.Competitor)
	return sb.String()
}

func (b *Builder) body(mc types.MarketingContext, biz types.Business) string {
	tone := primaryTone(mc)
	industry := joinLimited(mc.Keywords.Industry, 2)
	tech := joinLimited(mc.Keywords.Technology, 2)
	target := joinLimited(mc.Keywords.BusinessType, 2)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Create compelling ad text (2-3 sentences) for a %s tone.\n\n", tone)
	fmt.Fprintf(&sb, "Industry: %s\n", industry)
	fmt.Fprintf(&sb, "Tech focus: %s\n", tech)
	fmt.Fprintf(&sb, "Target: %s\n\n", target)
	fmt.Fprintf(&sb, "Our Brand: %s\n", biz.OurBrand)
	fmt.Fprintf(&sb, "Competitor: %s\n", biz.Competitor)
	fmt.Fprintf(&sb, "Niche Hashtags: %s", strings.Join(biz.NicheHashtags, " "))
	sb.WriteString(offerContext(biz.OfferType))
	sb.WriteString(bodyIntelContext(biz))
	sb.WriteString("\n\nIf fields are blank, infer from context (e.g., Education, Healthcare) without defaulting to tech. " +
		"Focus on benefits and value. Generate only the ad text.")
	return sb.String()
}

func (b *Builder) hashtags(mc types.MarketingContext, biz types.Business) string {
	tone := primaryTone(mc)

	relevant := append(append([]string{}, mc.Keywords.Industry...), mc.Keywords.Technology...)
	keywordsText := "general business"
	if len(relevant) > 0 {
		keywordsText = strings.Join(relevant, ", ")
	}

	domainNote := "Avoid generic marketing/business/sales terms unless clearly relevant. "
	for _, industry := range mc.Keywords.Industry {
		if strings.EqualFold(industry, "education") {
			domainNote = "Focus on STEM education; avoid marketing/business/sales terms. "
			break
		}
	}

	var sb strings.Builder
	sb.WriteString("Create 3-5 relevant hashtags for this topic.\n\n")
	fmt.Fprintf(&sb, "Keywords: %s\n", keywordsText)
	fmt.Fprintf(&sb, "Tone: %s\n", tone)
	fmt.Fprintf(&sb, "Guidance: %sDo not assume technology if keywords don't indicate it.\n\n", domainNote)
	fmt.Fprintf(&sb, "Our Brand: %s\n", biz.OurBrand)
	fmt.Fprintf(&sb, "Competitor: %s\n", biz.Competitor)
	fmt.Fprintf(&sb, "Niche Hashtags (seed): %s\n\n", strings.Join(biz.NicheHashtags, " "))
	sb.WriteString("Return only hashtags separated by spaces (e.g., #hashtag1 #hashtag2 #hashtag3).")
	return sb.String()
}

func (b *Builder) cta(mc types.MarketingContext, biz types.Business) string {
	tone := primaryTone(mc)
	industry := joinLimited(mc.Keywords.Industry, 2)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Create a compelling call-to-action (under 50 characters) for %s tone.\n\n", tone)
	fmt.Fprintf(&sb, "Industry: %s\n\n", industry)
	fmt.Fprintf(&sb, "Our Brand: %s\n", biz.OurBrand)
	fmt.Fprintf(&sb, "Competitor: %s", biz.Competitor)
	sb.WriteString(offerContext(biz.OfferType))
	sb.WriteString("\n\nIf industry is blank, infer from context without assuming technology. Generate only the CTA text.")
	return sb.String()
}

// primaryTone returns the detected tone, defaulting to professional only
// when analysis produced nothing.
func primaryTone(mc types.MarketingContext) types.Tone {
	if mc.Tone.PrimaryTone == "" {
		return types.ToneProfessional
	}
	return mc.Tone.PrimaryTone
}

// offerContext renders the offer directive block, or "" when the offer type
// is absent or unknown.
func offerContext(offerType string) string {
	directive, ok := offerDirectives[offerType]
	if !ok {
		return ""
	}
	return "\n\nOFFER TYPE: " + directive
}

// headlineIntelContext renders the compact intelligence block used by the
// headline prompt. Descriptions are truncated and list fields capped so a
// verbose scrape cannot dominate the prompt.
func headlineIntelContext(biz types.Business) string {
	if biz.CompetitorDescription == "" || biz.IntelligenceSource == "" || biz.IntelligenceSource == "none" {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "\nCompetitor Information (from %s):\n", biz.IntelligenceSource)
	fmt.Fprintf(&sb, "Description: %s\n", truncate(biz.CompetitorDescription, headlineIntelDescLimit))
	if len(biz.CompetitorServices) > 0 {
		fmt.Fprintf(&sb, "Services: %s\n", joinLimited(biz.CompetitorServices, intelListLimit))
	}
	if len(biz.CompetitorFeatures) > 0 {
		fmt.Fprintf(&sb, "Key Features: %s\n", joinLimited(biz.CompetitorFeatures, intelListLimit))
	}
	return sb.String()
}

// bodyIntelContext renders the longer intelligence block used by the ad-text
// prompt, including the differentiation instruction.
func bodyIntelContext(biz types.Business) string {
	if biz.CompetitorDescription == "" || biz.IntelligenceSource == "" || biz.IntelligenceSource == "none" {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n\nCompetitor Intelligence (from %s):\n", biz.IntelligenceSource)
	fmt.Fprintf(&sb, "About %s: %s\n", biz.Competitor, truncate(biz.CompetitorDescription, bodyIntelDescLimit))
	if len(biz.CompetitorServices) > 0 {
		fmt.Fprintf(&sb, "Their Services: %s\n", joinLimited(biz.CompetitorServices, intelListLimit))
	}
	if len(biz.CompetitorFeatures) > 0 {
		fmt.Fprintf(&sb, "Their Key Features: %s\n", joinLimited(biz.CompetitorFeatures, intelListLimit))
	}
	fmt.Fprintf(&sb, "\nCreate competitive ad text that highlights how %s is superior to %s based on this intelligence. "+
		"Focus on advantages and differentiation.", biz.OurBrand, biz.Competitor)
	return sb.String()
}

func joinLimited(items []string, limit int) string {
	if len(items) > limit {
		items = items[:limit]
	}
	return strings.Join(items, ", ")
}

// truncate cuts s to at most limit bytes without splitting a rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
