package analysis

import (
	"regexp"
	"strings"

	"github.com/mbaxter/adforge/internal/types"
)

// ToneAnalyzer scores brand voice signals in the combined input text.
// Matching is whole-word and case-insensitive; indicator patterns are
// compiled once at construction.
type ToneAnalyzer struct {
	cfg ToneConfig

	localPatterns     []*regexp.Regexp
	corporatePatterns []*regexp.Regexp
	technicalPatterns []*regexp.Regexp
	positivePatterns  []*regexp.Regexp
	negativePatterns  []*regexp.Regexp
}

// NewToneAnalyzer builds an analyzer from cfg.
func NewToneAnalyzer(cfg ToneConfig) *ToneAnalyzer {
	return &ToneAnalyzer{
		cfg:               cfg,
		localPatterns:     compileWordPatterns(cfg.LocalIndicators),
		corporatePatterns: compileWordPatterns(cfg.CorporateIndicators),
		technicalPatterns: compileWordPatterns(cfg.TechnicalTerms),
		positivePatterns:  compileWordPatterns(cfg.PositiveWords),
		negativePatterns:  compileWordPatterns(cfg.NegativeWords),
	}
}

func compileWordPatterns(words []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(w)) + `\b`)
	}
	return patterns
}

// Analyze derives a ToneProfile from the cleaned records. Only the record
// text participates; record kinds are ignored here. Empty input yields the
// neutral default profile.
func (a *ToneAnalyzer) Analyze(records []types.CleanedRecord) types.ToneProfile {
	text := joinRecordText(records)
	if text == "" {
		return types.ToneProfile{
			PrimaryTone: types.ToneProfessional,
			Sentiment:   types.SentimentNeutral,
		}
	}

	localScore, localHits := matchScore(text, a.cfg.LocalIndicators, a.localPatterns)
	corporateScore, corporateHits := matchScore(text, a.cfg.CorporateIndicators, a.corporatePatterns)
	technicalScore, technicalHits := matchScore(text, a.cfg.TechnicalTerms, a.technicalPatterns)

	weighted := map[types.Tone]float64{
		types.ToneLocal:     localScore * a.cfg.LocalWeight,
		types.ToneCorporate: corporateScore * a.cfg.CorporateWeight,
		types.ToneTechnical: technicalScore * a.cfg.TechnicalWeight,
	}

	profile := types.ToneProfile{
		PrimaryTone:         primaryTone(weighted),
		SecondaryTones:      secondaryTones(weighted, localScore, corporateScore, technicalScore),
		Sentiment:           a.sentiment(text),
		Confidence:          toneConfidence(localScore, corporateScore, technicalScore),
		LocalIndicators:     localHits,
		CorporateIndicators: corporateHits,
		TechnicalTerms:      technicalHits,
	}
	return profile
}

// matchScore returns the fraction of indicators present plus the matched
// indicator words in list order.
func matchScore(text string, words []string, patterns []*regexp.Regexp) (float64, []string) {
	if len(words) == 0 {
		return 0, nil
	}
	var hits []string
	for i, p := range patterns {
		if p.MatchString(text) {
			hits = append(hits, strings.ToLower(words[i]))
		}
	}
	return float64(len(hits)) / float64(len(words)), hits
}

// primaryTone picks the tone with the highest weighted score, checking local,
// corporate then technical so ties resolve in that order. Scores below 0.05
// fall back to the professional default.
func primaryTone(weighted map[types.Tone]float64) types.Tone {
	best := types.ToneLocal
	for _, tone := range []types.Tone{types.ToneLocal, types.ToneCorporate, types.ToneTechnical} {
		if weighted[tone] > weighted[best] {
			best = tone
		}
	}
	if weighted[best] < 0.05 {
		return types.ToneProfessional
	}
	return best
}

// secondaryTones collects every non-primary tone whose raw score exceeds
// 0.2, adds casual when the local score exceeds 0.1 and formal when the
// corporate score exceeds 0.3. Output order is fixed.
func secondaryTones(weighted map[types.Tone]float64, localScore, corporateScore, technicalScore float64) []types.Tone {
	primary := primaryTone(weighted)
	raw := []struct {
		tone  types.Tone
		score float64
	}{
		{types.ToneLocal, localScore},
		{types.ToneCorporate, corporateScore},
		{types.ToneTechnical, technicalScore},
	}
	var out []types.Tone
	for _, r := range raw {
		if r.tone != primary && r.score > 0.2 {
			out = append(out, r.tone)
		}
	}
	if localScore > 0.1 {
		out = append(out, types.ToneCasual)
	}
	if corporateScore > 0.3 {
		out = append(out, types.ToneFormal)
	}
	return out
}

// sentiment counts positive and negative word hits. More positives wins,
// more negatives wins, equal nonzero counts are mixed, otherwise neutral.
func (a *ToneAnalyzer) sentiment(text string) types.Sentiment {
	positive := countMatches(text, a.positivePatterns)
	negative := countMatches(text, a.negativePatterns)
	switch {
	case positive > negative:
		return types.SentimentPositive
	case negative > positive:
		return types.SentimentNegative
	case positive > 0:
		return types.SentimentMixed
	default:
		return types.SentimentNeutral
	}
}

func countMatches(text string, patterns []*regexp.Regexp) int {
	n := 0
	for _, p := range patterns {
		if p.MatchString(text) {
			n++
		}
	}
	return n
}

// toneConfidence is the top raw score plus an alignment bonus of 0.1 per
// tone scoring above 0.1, with the bonus capped at 0.3 and the total capped
// at 1.0.
func toneConfidence(scores ...float64) float64 {
	var max float64
	aligned := 0
	for _, s := range scores {
		if s > max {
			max = s
		}
		if s > 0.1 {
			aligned++
		}
	}
	bonus := 0.1 * float64(aligned)
	if bonus > 0.3 {
		bonus = 0.3
	}
	confidence := max + bonus
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

// joinRecordText lowercases and concatenates competitor and hashtag text
// with spaces. ZIP records carry no tone signal and are skipped.
func joinRecordText(records []types.CleanedRecord) string {
	parts := make([]string, 0, len(records))
	for _, r := range records {
		if r.Kind == types.RecordZipCode || r.Text == "" {
			continue
		}
		parts = append(parts, strings.ToLower(r.Text))
	}
	return strings.Join(parts, " ")
}
