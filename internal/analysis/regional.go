package analysis

import (
	"strings"
	"unicode"

	"github.com/mbaxter/adforge/internal/types"
)

// RegionalAnalyzer resolves ZIP codes against static lookup tables to infer
// region, state, metro area and market characteristics.
type RegionalAnalyzer struct {
	cfg RegionalConfig
}

// NewRegionalAnalyzer builds an analyzer from cfg.
func NewRegionalAnalyzer(cfg RegionalConfig) *RegionalAnalyzer {
	return &RegionalAnalyzer{cfg: cfg}
}

// Analyze resolves ZIP records into a regional profile. Records of other
// kinds are ignored, unknown ZIPs resolve to nothing, and no ZIP records at
// all yields the zero-value profile.
func (a *RegionalAnalyzer) Analyze(records []types.CleanedRecord) types.RegionalProfile {
	var zips []string
	for _, r := range records {
		if r.Kind == types.RecordZipCode && r.Text != "" {
			zips = append(zips, r.Text)
		}
	}
	if len(zips) == 0 {
		return types.RegionalProfile{}
	}

	var regions, states, metros []string
	for _, z := range zips {
		five := extractFiveDigitZip(z)
		if five == "" {
			continue
		}
		if region, ok := a.cfg.ZipToRegion[five]; ok {
			regions = appendUnique(regions, region)
		}
		if state, ok := a.cfg.ZipToState[five]; ok {
			states = appendUnique(states, state)
		}
		if metro, ok := a.cfg.ZipToMetro[five]; ok {
			metros = appendUnique(metros, metro)
		}
	}

	primary := a.primaryRegion(regions)
	regionType, ok := a.cfg.RegionTypes[primary]
	if !ok {
		regionType = majorityRegionType(regions, a.cfg.RegionTypes)
	}

	profile := types.RegionalProfile{
		PrimaryRegion:         primary,
		RegionType:            regionType,
		PopulationDensity:     densityFor(regions, a.cfg.RegionTypes),
		EconomicIndicators:    economicIndicators(primary, states),
		DemographicIndicators: demographicIndicators(primary),
		GeographicFeatures:    geographicFeatures(regions, states),
		MarketCharacteristics: marketCharacteristics(regions, regionType),
		ZipCodes:              zips,
	}
	if len(states) > 0 {
		profile.State = states[0]
	}
	if len(metros) > 0 {
		profile.MetroArea = metros[0]
	}
	return profile
}

// extractFiveDigitZip strips formatting and returns the first five digits,
// or "" when fewer than five digits are present.
func extractFiveDigitZip(zip string) string {
	var digits []rune
	for _, r := range zip {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
			if len(digits) == 5 {
				return string(digits)
			}
		}
	}
	return ""
}

// primaryRegion picks the single resolved region, or the highest-priority
// major metro when ZIPs span several regions, or the first-seen region when
// none of them is a major metro.
func (a *RegionalAnalyzer) primaryRegion(regions []string) string {
	if len(regions) == 0 {
		return ""
	}
	if len(regions) == 1 {
		return regions[0]
	}
	for _, metro := range a.cfg.MetroPriority {
		for _, r := range regions {
			if r == metro {
				return metro
			}
		}
	}
	return regions[0]
}

// majorityRegionType votes over the types of all matched regions, used
// when the primary region has no type mapping. Ties resolve to the type
// seen first.
func majorityRegionType(regions []string, regionTypes map[string]types.RegionType) types.RegionType {
	counts := make(map[types.RegionType]int)
	var order []types.RegionType
	for _, r := range regions {
		t, ok := regionTypes[r]
		if !ok {
			continue
		}
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}

	var best types.RegionType
	bestCount := 0
	for _, t := range order {
		if counts[t] > bestCount {
			best = t
			bestCount = counts[t]
		}
	}
	return best
}

// densityFor classifies population density from the first region with a
// known type. Unclassified regions default to Medium.
func densityFor(regions []string, regionTypes map[string]types.RegionType) string {
	if len(regions) == 0 {
		return ""
	}
	for _, r := range regions {
		switch regionTypes[r] {
		case types.RegionUrban:
			return "High"
		case types.RegionSuburban:
			return "Medium"
		case types.RegionRural:
			return "Low"
		}
	}
	return "Medium"
}

func economicIndicators(primary string, states []string) map[string]bool {
	indicators := make(map[string]bool)
	switch {
	case strings.Contains(primary, "New York"):
		indicators["financial_center"] = true
		indicators["high_income"] = true
		indicators["diverse_economy"] = true
	case strings.Contains(primary, "San Francisco"), strings.Contains(primary, "Silicon Valley"):
		indicators["tech_hub"] = true
		indicators["high_income"] = true
		indicators["innovation_center"] = true
	case strings.Contains(primary, "Los Angeles"):
		indicators["entertainment_hub"] = true
		indicators["diverse_economy"] = true
		indicators["international_trade"] = true
	}
	if len(states) > 0 {
		switch states[0] {
		case "CA":
			indicators["high_gdp"] = true
			indicators["tech_industry"] = true
		case "NY":
			indicators["financial_services"] = true
			indicators["high_gdp"] = true
		case "TX":
			indicators["energy_sector"] = true
			indicators["business_friendly"] = true
		}
	}
	return indicators
}

func demographicIndicators(primary string) map[string]bool {
	indicators := make(map[string]bool)
	switch {
	case strings.Contains(primary, "New York"), strings.Contains(primary, "Los Angeles"):
		indicators["diverse_population"] = true
		indicators["young_professionals"] = true
		indicators["international_community"] = true
	case strings.Contains(primary, "San Francisco"):
		indicators["tech_workers"] = true
		indicators["high_education"] = true
		indicators["young_professionals"] = true
	case strings.Contains(primary, "Miami"):
		indicators["hispanic_population"] = true
		indicators["international_community"] = true
	}
	return indicators
}

func geographicFeatures(regions, states []string) []string {
	var features []string
	for _, region := range regions {
		switch {
		case strings.Contains(region, "New York"):
			features = append(features, "coastal", "harbor", "rivers")
		case strings.Contains(region, "Los Angeles"):
			features = append(features, "coastal", "mountains", "desert_proximity")
		case strings.Contains(region, "San Francisco"):
			features = append(features, "coastal", "bay", "hills")
		case strings.Contains(region, "Chicago"):
			features = append(features, "lakefront", "flat_terrain")
		case strings.Contains(region, "Miami"):
			features = append(features, "coastal", "tropical", "beaches")
		case strings.Contains(region, "Phoenix"):
			features = append(features, "desert", "mountains", "dry_climate")
		case strings.Contains(region, "Seattle"):
			features = append(features, "coastal", "mountains", "forests")
		case strings.Contains(region, "Boston"):
			features = append(features, "coastal", "historic", "harbor")
		}
	}
	for _, state := range states {
		switch state {
		case "CA":
			features = append(features, "pacific_coast", "diverse_geography")
		case "NY":
			features = append(features, "atlantic_coast", "great_lakes")
		case "TX":
			features = append(features, "gulf_coast", "plains", "desert")
		case "FL":
			features = append(features, "gulf_coast", "atlantic_coast", "tropical")
		case "AZ":
			features = append(features, "desert", "grand_canyon", "mountains")
		case "WA":
			features = append(features, "pacific_coast", "mountains", "rainforest")
		}
	}
	return dedupe(features)
}

func marketCharacteristics(regions []string, regionType types.RegionType) []string {
	var characteristics []string
	switch regionType {
	case types.RegionUrban:
		characteristics = append(characteristics,
			"high_population_density", "diverse_demographics", "competitive_market",
			"high_disposable_income", "technology_adoption")
	case types.RegionSuburban:
		characteristics = append(characteristics,
			"family_oriented", "moderate_population_density", "stable_market",
			"middle_income", "traditional_values")
	case types.RegionRural:
		characteristics = append(characteristics,
			"low_population_density", "close_community", "price_sensitive",
			"traditional_markets", "local_focus")
	}
	for _, region := range regions {
		switch {
		case strings.Contains(region, "New York"):
			characteristics = append(characteristics, "fast_paced", "high_end_consumption", "global_market")
		case strings.Contains(region, "Los Angeles"):
			characteristics = append(characteristics, "creative_industry", "entertainment_focus", "diverse_culture")
		case strings.Contains(region, "San Francisco"):
			characteristics = append(characteristics, "tech_savvy", "innovation_focused", "sustainability_minded")
		case strings.Contains(region, "Chicago"):
			characteristics = append(characteristics, "business_hub", "manufacturing", "logistics_center")
		}
	}
	return dedupe(characteristics)
}

// appendUnique appends v unless already present, preserving first-seen order.
func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(list))
	out := list[:0]
	for _, v := range list {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
