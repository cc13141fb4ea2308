package assembler

import (
	"strings"

	"github.com/mbaxter/adforge/internal/types"
)

// toneConsistencyStub is the fixed tone-consistency score. Scoring tone
// drift across pieces needs language analysis this pipeline does not do
// yet, so the dimension reports a constant.
const toneConsistencyStub = 0.8

var engagementHeadlineStrong = []string{"new", "exclusive", "limited", "breakthrough"}
var engagementHeadlineSoft = []string{"free", "save", "win", "get"}
var engagementBodyUrgency = []string{"now", "today", "immediately", "instant"}
var engagementBodyPersonal = []string{"you", "your", "transform", "achieve"}
var engagementCTAWords = []string{"now", "today", "free", "limited"}

var localToneWords = []string{"local", "community", "neighborhood", "family"}
var corporateToneWords = []string{"professional", "expert", "solutions", "enterprise"}

// BuildQualityReport computes the five-dimension scorecard for an assembled
// ad against the context it was generated from.
func BuildQualityReport(content types.AdContent, mc types.MarketingContext) types.QualityReport {
	q := types.QualityReport{
		Readability:           (content.Headline.QualityScore + content.Body.QualityScore + content.CTA.QualityScore) / 3.0,
		Engagement:            engagementScore(content),
		BrandAlignment:        brandAlignmentScore(content, mc),
		ToneConsistency:       toneConsistencyStub,
		LengthAppropriateness: lengthScore(content),
	}
	q.ComputeOverall()
	q.Issues = qualityIssues(q)
	q.Suggestions = qualitySuggestions(q, mc)
	return q
}

// engagementScore starts at 0.5 and adds bonuses for urgency and personal
// language, capped at 1.0.
func engagementScore(content types.AdContent) float64 {
	score := 0.5
	if containsAny(content.Headline.Text, engagementHeadlineStrong) {
		score += 0.2
	}
	if containsAny(content.Headline.Text, engagementHeadlineSoft) {
		score += 0.1
	}
	if containsAny(content.Body.Text, engagementBodyUrgency) {
		score += 0.1
	}
	if containsAny(content.Body.Text, engagementBodyPersonal) {
		score += 0.1
	}
	if containsAny(content.CTA.Text, engagementCTAWords) {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// brandAlignmentScore starts at 0.7 and rewards vocabulary matching the
// detected primary tone.
func brandAlignmentScore(content types.AdContent, mc types.MarketingContext) float64 {
	score := 0.7
	combined := strings.Join([]string{content.Headline.Text, content.Body.Text, content.CTA.Text}, " ")
	switch mc.Tone.PrimaryTone {
	case types.ToneLocal:
		if containsAny(combined, localToneWords) {
			score += 0.2
		}
	case types.ToneCorporate:
		if containsAny(combined, corporateToneWords) {
			score += 0.2
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// lengthScore penalizes pieces that run past their limits, floored at zero.
func lengthScore(content types.AdContent) float64 {
	score := 1.0
	if len(content.Headline.Text) > 60 {
		score -= 0.3
	}
	if len(content.Body.Text) > 200 {
		score -= 0.2
	}
	if len(content.CTA.Text) > 50 {
		score -= 0.3
	}
	if score < 0 {
		score = 0
	}
	return score
}

func qualityIssues(q types.QualityReport) []string {
	var issues []string
	if q.Readability < 0.6 {
		issues = append(issues, "Content readability could be improved")
	}
	if q.Engagement < 0.6 {
		issues = append(issues, "Content lacks engagement elements")
	}
	if q.BrandAlignment < 0.6 {
		issues = append(issues, "Content may not align well with brand tone")
	}
	if q.ToneConsistency < 0.6 {
		issues = append(issues, "Tone consistency across content pieces needs improvement")
	}
	if q.LengthAppropriateness < 0.6 {
		issues = append(issues, "Content lengths may not be optimal")
	}
	return issues
}

func qualitySuggestions(q types.QualityReport, mc types.MarketingContext) []string {
	var suggestions []string
	if q.Engagement < 0.7 {
		suggestions = append(suggestions, "Consider adding more compelling action words and urgency indicators")
	}
	if q.Readability < 0.7 {
		suggestions = append(suggestions, "Simplify language and improve sentence structure")
	}
	switch mc.Tone.PrimaryTone {
	case types.ToneLocal:
		if q.BrandAlignment < 0.7 {
			suggestions = append(suggestions, "Add more local and community-focused language")
		}
	case types.ToneCorporate:
		if q.BrandAlignment < 0.7 {
			suggestions = append(suggestions, "Use more professional and authoritative language")
		}
	}
	return suggestions
}
