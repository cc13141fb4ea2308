package analysis

import (
	"sync"

	"github.com/mbaxter/adforge/internal/types"
)

// AnalyzerStats counts one analyzer's invocations.
type AnalyzerStats struct {
	Processed  int `json:"processed"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// Stats is a snapshot of aggregator counters.
type Stats struct {
	TotalProcessed int           `json:"total_processed"`
	Successful     int           `json:"successful"`
	Failed         int           `json:"failed"`
	Tone           AnalyzerStats `json:"tone_analysis"`
	Keywords       AnalyzerStats `json:"keyword_extraction"`
	Regional       AnalyzerStats `json:"regional_analysis"`
}

// Aggregator runs the three analyzers over a cleaned record set and
// composes their profiles into one MarketingContext. It is safe for
// concurrent use.
type Aggregator struct {
	tone     *ToneAnalyzer
	keywords *KeywordExtractor
	regional *RegionalAnalyzer

	mu    sync.Mutex
	stats Stats
}

// NewAggregator builds an aggregator with the default analyzer
// configurations.
func NewAggregator() *Aggregator {
	return &Aggregator{
		tone:     NewToneAnalyzer(DefaultToneConfig()),
		keywords: NewKeywordExtractor(DefaultKeywordConfig()),
		regional: NewRegionalAnalyzer(DefaultRegionalConfig()),
	}
}

// BuildContext runs all three analyzers and composes the result. The
// returned context is a value: callers receive their own copy and nothing
// mutates it afterwards. An empty record set is an error.
func (a *Aggregator) BuildContext(records []types.CleanedRecord) (types.MarketingContext, error) {
	if len(records) == 0 {
		a.countBuild(false)
		return types.MarketingContext{}, &AggregationError{Message: "no input records provided"}
	}

	tone := a.analyzeTone(records)
	keywords := a.analyzeKeywords(records)
	regional := a.analyzeRegional(records)

	ctx := types.MarketingContext{
		Tone:            tone,
		Keywords:        keywords,
		Regional:        regional,
		ConfidenceScore: aggregateConfidence(tone, keywords, regional),
		Metadata: types.ContextMetadata{
			TotalInputs: len(records),
			InputKinds:  recordKinds(records),
		},
	}
	a.countBuild(true)
	return ctx, nil
}

// AnalyzeTone runs tone analysis alone.
func (a *Aggregator) AnalyzeTone(records []types.CleanedRecord) types.ToneProfile {
	return a.analyzeTone(records)
}

// AnalyzeKeywords runs keyword extraction alone.
func (a *Aggregator) AnalyzeKeywords(records []types.CleanedRecord) types.KeywordProfile {
	return a.analyzeKeywords(records)
}

// AnalyzeRegional runs regional analysis alone.
func (a *Aggregator) AnalyzeRegional(records []types.CleanedRecord) types.RegionalProfile {
	return a.analyzeRegional(records)
}

// Statistics returns a snapshot of the aggregator counters.
func (a *Aggregator) Statistics() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

func (a *Aggregator) analyzeTone(records []types.CleanedRecord) types.ToneProfile {
	a.mu.Lock()
	a.stats.Tone.Processed++
	a.stats.Tone.Successful++
	a.mu.Unlock()
	return a.tone.Analyze(records)
}

func (a *Aggregator) analyzeKeywords(records []types.CleanedRecord) types.KeywordProfile {
	a.mu.Lock()
	a.stats.Keywords.Processed++
	a.stats.Keywords.Successful++
	a.mu.Unlock()
	return a.keywords.Analyze(records)
}

func (a *Aggregator) analyzeRegional(records []types.CleanedRecord) types.RegionalProfile {
	a.mu.Lock()
	a.stats.Regional.Processed++
	a.stats.Regional.Successful++
	a.mu.Unlock()
	return a.regional.Analyze(records)
}

func (a *Aggregator) countBuild(ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stats.TotalProcessed++
	if ok {
		a.stats.Successful++
	} else {
		a.stats.Failed++
	}
}

// aggregateConfidence averages three per-analyzer confidences: the tone
// profile's own confidence, keyword volume normalized against ten, and
// regional completeness weighted 0.4 region, 0.3 state, 0.3 metro.
func aggregateConfidence(tone types.ToneProfile, keywords types.KeywordProfile, regional types.RegionalProfile) float64 {
	keywordConfidence := float64(len(keywords.AllKeywords())) / 10.0
	if keywordConfidence > 1.0 {
		keywordConfidence = 1.0
	}

	var regionalConfidence float64
	if regional.PrimaryRegion != "" {
		regionalConfidence += 0.4
	}
	if regional.State != "" {
		regionalConfidence += 0.3
	}
	if regional.MetroArea != "" {
		regionalConfidence += 0.3
	}

	return (tone.Confidence + keywordConfidence + regionalConfidence) / 3.0
}

// recordKinds returns the distinct record kinds in first-seen order.
func recordKinds(records []types.CleanedRecord) []types.RecordKind {
	var kinds []types.RecordKind
	seen := make(map[types.RecordKind]struct{}, 3)
	for _, r := range records {
		if _, ok := seen[r.Kind]; ok {
			continue
		}
		seen[r.Kind] = struct{}{}
		kinds = append(kinds, r.Kind)
	}
	return kinds
}
