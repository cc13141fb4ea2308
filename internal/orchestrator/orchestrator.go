// Package orchestrator coordinates a full ad-generation run: cache lookup,
// competitor intelligence, context analysis, the per-variant generation loop
// with rate-limit retries, and fallback synthesis so callers always receive
// the requested number of variants.
package orchestrator

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/mbaxter/adforge/internal/analysis"
	"github.com/mbaxter/adforge/internal/assembler"
	"github.com/mbaxter/adforge/internal/cache"
	"github.com/mbaxter/adforge/internal/provider"
	"github.com/mbaxter/adforge/internal/types"
)

const (
	// maxAttempts bounds generation attempts per variant when the provider
	// reports rate limiting.
	maxAttempts = 3

	// pacingDelay separates consecutive variant generations.
	pacingDelay = 2 * time.Second

	// backoffUnit scales with the retry count: 10s, then 20s.
	backoffUnit = 10 * time.Second
)

// fallbackQualityScore is assigned to synthesized variants.
const fallbackQualityScore = 0.5

// Generator produces one scored ad from a marketing context.
type Generator interface {
	Generate(ctx context.Context, mc types.MarketingContext, biz types.Business) (types.AdContent, error)
}

// GeneratorStats is implemented by generators that track per-kind counters.
type GeneratorStats interface {
	Statistics() assembler.Stats
}

// Stats combines the analysis counters with the generator's per-kind
// counters, when the generator exposes them.
type Stats struct {
	Analysis   analysis.Stats   `json:"analysis"`
	Generation *assembler.Stats `json:"generation,omitempty"`
}

// IntelGatherer collects best-effort competitor intelligence.
type IntelGatherer interface {
	Gather(ctx context.Context, businessName, websiteURL string) types.CompetitorIntel
}

// Store persists completed campaigns. Persistence is best effort; failures
// never fail the run.
type Store interface {
	SaveCampaign(ctx context.Context, req types.GenerateRequest, ads []types.GeneratedVariant) (int64, error)
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration)

// Orchestrator runs end-to-end ad generation.
type Orchestrator struct {
	generator  Generator
	aggregator *analysis.Aggregator
	cache      cache.Cache
	intel      IntelGatherer
	store      Store
	sleep      SleepFunc
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithCache replaces the default in-memory cache.
func WithCache(c cache.Cache) Option {
	return func(o *Orchestrator) { o.cache = c }
}

// WithIntel enables competitor-intelligence gathering.
func WithIntel(g IntelGatherer) Option {
	return func(o *Orchestrator) { o.intel = g }
}

// WithStore enables campaign persistence.
func WithStore(s Store) Option {
	return func(o *Orchestrator) { o.store = s }
}

// WithSleeper replaces the wall-clock sleeper, for tests.
func WithSleeper(s SleepFunc) Option {
	return func(o *Orchestrator) { o.sleep = s }
}

// New creates an orchestrator around gen. Without options it uses an
// in-memory cache, no intelligence gathering, and no persistence.
func New(gen Generator, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		generator:  gen,
		aggregator: analysis.NewAggregator(),
		cache:      cache.NewMemory(),
		sleep:      sleepContext,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Statistics snapshots the orchestrator's counters.
func (o *Orchestrator) Statistics() Stats {
	s := Stats{Analysis: o.aggregator.Statistics()}
	if g, ok := o.generator.(GeneratorStats); ok {
		gs := g.Statistics()
		s.Generation = &gs
	}
	return s
}

// Generate runs one complete generation job. The response always reports
// Success true with exactly req.Count() ads unless the request itself is
// invalid or context analysis fails; generation failures are absorbed by
// fallback synthesis and surfaced through Degraded and FailedAttempts.
func (o *Orchestrator) Generate(ctx context.Context, req types.GenerateRequest) types.GenerateResponse {
	if err := req.Validate(); err != nil {
		return types.GenerateResponse{Error: fmt.Sprintf("invalid request: %v", err)}
	}
	count := req.Count()

	key := cache.Key(req.OurBrand, req.CompetitorName, req.Zipcode, count)
	if cached, ok, err := o.cache.Get(ctx, key); err != nil {
		log.Printf("orchestrator: cache read failed: %v", err)
	} else if ok && len(cached) == count {
		return types.GenerateResponse{
			Success: true,
			Ads:     cached,
			Count:   len(cached),
			Cached:  true,
		}
	}

	intel := types.CompetitorIntel{BusinessName: req.CompetitorName, Source: "none"}
	if o.intel != nil {
		intel = o.intel.Gather(ctx, req.CompetitorName, req.WebsiteURL)
	}

	mc, err := o.aggregator.BuildContext(Records(req))
	if err != nil {
		return types.GenerateResponse{Error: fmt.Sprintf("context analysis failed: %v", err)}
	}
	biz := buildBusiness(req, intel)

	var ads []types.GeneratedVariant
	failed := 0
	for i := 0; i < count; i++ {
		var content types.AdContent
		var err error
		if i == 0 {
			// The first variant is a single direct attempt; pacing and
			// rate-limit retries apply to the variants after it.
			content, err = o.generator.Generate(ctx, mc, biz)
		} else {
			o.sleep(ctx, pacingDelay)
			content, err = o.generateWithRetry(ctx, mc, biz)
		}
		if err != nil {
			log.Printf("orchestrator: variant %d failed: %v", i+1, err)
			failed++
			continue
		}
		ads = append(ads, toVariant(content, req))
	}

	ads = fillToCount(ads, req, count)

	if err := o.cache.Put(ctx, key, ads); err != nil {
		log.Printf("orchestrator: cache write failed: %v", err)
	}

	var campaignID *int64
	if o.store != nil {
		if id, err := o.store.SaveCampaign(ctx, req, ads); err != nil {
			log.Printf("orchestrator: campaign save failed: %v", err)
		} else {
			campaignID = &id
		}
	}

	return types.GenerateResponse{
		Success:        true,
		Ads:            ads,
		Count:          len(ads),
		Degraded:       failed > 0,
		FailedAttempts: failed,
		CampaignID:     campaignID,
	}
}

// generateWithRetry attempts one variant, retrying only on rate-limit
// errors with a linearly growing backoff. Any other error abandons the
// variant immediately.
func (o *Orchestrator) generateWithRetry(ctx context.Context, mc types.MarketingContext, biz types.Business) (types.AdContent, error) {
	retries := 0
	for {
		content, err := o.generator.Generate(ctx, mc, biz)
		if err == nil {
			return content, nil
		}
		if !provider.IsRateLimit(err) {
			return types.AdContent{}, err
		}
		retries++
		if retries >= maxAttempts {
			return types.AdContent{}, fmt.Errorf("rate limited after %d attempts: %w", maxAttempts, err)
		}
		wait := backoffUnit * time.Duration(retries)
		log.Printf("orchestrator: rate limited, retry %d in %s", retries, wait)
		o.sleep(ctx, wait)
	}
}

// Records converts the request into the cleaned record set the analyzers
// consume.
func Records(req types.GenerateRequest) []types.CleanedRecord {
	records := []types.CleanedRecord{types.CompetitorRecord(req.CompetitorName)}
	for _, tag := range req.Hashtags {
		if tag = strings.TrimSpace(tag); tag != "" {
			records = append(records, types.HashtagRecord(tag))
		}
	}
	if req.Zipcode != "" {
		records = append(records, types.ZipRecord(req.Zipcode))
	}
	return records
}

// buildBusiness merges request fields with gathered intelligence.
func buildBusiness(req types.GenerateRequest, intel types.CompetitorIntel) types.Business {
	biz := types.Business{
		OurBrand:           req.OurBrand,
		Competitor:         req.CompetitorName,
		NicheHashtags:      req.Hashtags,
		Zipcode:            req.Zipcode,
		Industry:           req.Industry,
		AudienceType:       req.AudienceType,
		OfferType:          req.OfferType,
		Goal:               req.Goal,
		IntelligenceSource: intel.Source,
	}
	if !intel.Empty() {
		biz.CompetitorDescription = intel.Description
		biz.CompetitorServices = intel.Services
		biz.CompetitorFeatures = intel.KeyFeatures
		biz.CompetitorWebsite = intel.Website
	}
	return biz
}

// toVariant flattens assembled content into a deliverable variant, applying
// per-field defaults and hashtag reconciliation.
func toVariant(content types.AdContent, req types.GenerateRequest) types.GeneratedVariant {
	aiTags := make([]string, 0, len(content.Hashtags))
	for _, piece := range content.Hashtags {
		aiTags = append(aiTags, piece.Text)
	}

	hashtags := reconcileHashtags(req.Hashtags, aiTags)
	if len(hashtags) == 0 {
		hashtags = []string{"#business"}
	}

	headline := content.Headline.Text
	if headline == "" {
		headline = fmt.Sprintf("New %s Solution", req.CompetitorName)
	}
	body := content.Body.Text
	if body == "" {
		body = "Discover our amazing services and experience the difference today!"
	}
	cta := content.CTA.Text
	if cta == "" {
		cta = "Learn More Today!"
	}

	score := content.Quality.Overall
	return types.GeneratedVariant{
		Headline:     headline,
		Body:         body,
		Hashtags:     hashtags,
		CTA:          cta,
		QualityScore: &score,
		Provenance:   content.Provider,
	}
}

// reconcileHashtags merges user-supplied hashtags with generated ones.
// User hashtags come first, normalized to a single '#' prefix; generated
// tags are appended unless the user already supplied them, compared
// case-insensitively. Without user hashtags the generated set is used
// as is.
func reconcileHashtags(userTags, aiTags []string) []string {
	var user []string
	for _, tag := range userTags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + strings.TrimLeft(tag, "#")
		}
		user = append(user, tag)
	}
	if len(user) == 0 {
		return append([]string(nil), aiTags...)
	}

	seen := make(map[string]struct{}, len(user))
	for _, tag := range user {
		seen[strings.ToLower(strings.TrimSpace(tag))] = struct{}{}
	}
	final := append([]string(nil), user...)
	for _, tag := range aiTags {
		if _, ok := seen[strings.ToLower(strings.TrimSpace(tag))]; ok {
			continue
		}
		final = append(final, tag)
	}
	return final
}

// fillToCount pads the ad list with synthesized variants until it holds
// exactly count entries. When no variant was generated at all, the first
// three fallbacks use distinct competitive templates.
func fillToCount(ads []types.GeneratedVariant, req types.GenerateRequest, count int) []types.GeneratedVariant {
	if len(ads) == 0 {
		for i := 0; i < count; i++ {
			ads = append(ads, defaultVariant(req, i))
		}
	}
	for len(ads) < count {
		ads = append(ads, padVariant(req))
	}
	if len(ads) > count {
		ads = ads[:count]
	}
	return ads
}

func defaultVariant(req types.GenerateRequest, i int) types.GeneratedVariant {
	var headline, body, cta string
	switch i {
	case 0:
		headline = fmt.Sprintf("%s: Better Than %s", req.OurBrand, req.CompetitorName)
		body = fmt.Sprintf("Experience the difference with %s. Quality service you can trust. We deliver excellence every time.", req.OurBrand)
		cta = "Learn More Today!"
	case 1:
		headline = fmt.Sprintf("Discover %s Today", req.OurBrand)
		body = fmt.Sprintf("Join thousands of satisfied customers who chose %s. Get the quality you deserve.", req.OurBrand)
		cta = "Get Started Now!"
	default:
		headline = fmt.Sprintf("Experience %s", req.OurBrand)
		body = fmt.Sprintf("%s offers superior service and unmatched quality. See why customers prefer us.", req.OurBrand)
		cta = "Contact Us Today!"
	}
	return synthesized(headline, body, cta, req)
}

func padVariant(req types.GenerateRequest) types.GeneratedVariant {
	return synthesized(
		fmt.Sprintf("Discover %s", req.OurBrand),
		fmt.Sprintf("Experience the difference with %s. Quality service you can trust.", req.OurBrand),
		"Learn More Today!",
		req,
	)
}

func synthesized(headline, body, cta string, req types.GenerateRequest) types.GeneratedVariant {
	hashtags := reconcileHashtags(req.Hashtags, nil)
	if len(hashtags) == 0 {
		hashtags = []string{"#business"}
	}
	score := fallbackQualityScore
	return types.GeneratedVariant{
		Headline:     headline,
		Body:         body,
		Hashtags:     hashtags,
		CTA:          cta,
		QualityScore: &score,
		Provenance:   "fallback",
	}
}

// sleepContext waits for d, returning early when ctx is done.
func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
