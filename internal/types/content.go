package types

// ContentKind identifies which part of an ad a content piece belongs to.
type ContentKind string

// Content kinds generated per variant.
const (
	ContentHeadline ContentKind = "headline"
	ContentBody     ContentKind = "ad_text"
	ContentHashtag  ContentKind = "hashtags"
	ContentCTA      ContentKind = "cta"
)

// ContentStatus tracks the lifecycle of a generated piece.
type ContentStatus string

// Content statuses.
const (
	StatusGenerated ContentStatus = "generated"
	StatusFallback  ContentStatus = "fallback"
)

// ContentPiece is one generated unit of ad copy with its heuristic quality
// score.
type ContentPiece struct {
	Kind         ContentKind   `json:"content_type"`
	Text         string        `json:"content"`
	QualityScore float64       `json:"quality_score"`
	Status       ContentStatus `json:"status"`
}

// QualityReport is the 5-dimension heuristic scorecard for one assembled ad.
// Overall is always the arithmetic mean of the five sub-scores.
type QualityReport struct {
	Readability           float64  `json:"readability_score"`
	Engagement            float64  `json:"engagement_score"`
	BrandAlignment        float64  `json:"brand_alignment_score"`
	ToneConsistency       float64  `json:"tone_consistency_score"`
	LengthAppropriateness float64  `json:"length_appropriateness"`
	Overall               float64  `json:"overall_score"`
	Issues                []string `json:"quality_issues,omitempty"`
	Suggestions           []string `json:"suggestions,omitempty"`
}

// ComputeOverall recalculates Overall from the five sub-scores.
func (q *QualityReport) ComputeOverall() {
	q.Overall = (q.Readability + q.Engagement + q.BrandAlignment +
		q.ToneConsistency + q.LengthAppropriateness) / 5.0
}

// AdContent is the full set of pieces assembled for one generation round.
type AdContent struct {
	Headline ContentPiece   `json:"headline"`
	Body     ContentPiece   `json:"ad_text"`
	Hashtags []ContentPiece `json:"hashtags"`
	CTA      ContentPiece   `json:"cta"`
	Quality  QualityReport  `json:"overall_quality"`
	Provider string         `json:"provider,omitempty"`
}

// GeneratedVariant is one complete ad ready for delivery: reconciled
// hashtags, flattened text fields, and the overall quality score.
// QualityScore is nil for content whose quality could not be assessed.
type GeneratedVariant struct {
	Headline     string   `json:"headline"`
	Body         string   `json:"ad_text"`
	Hashtags     []string `json:"hashtags"`
	CTA          string   `json:"cta"`
	QualityScore *float64 `json:"quality_score"`
	Provenance   string   `json:"provenance,omitempty"`
}
