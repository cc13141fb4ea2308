package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mbaxter/adforge/internal/types"
)

func TestRegionalAnalyzer_KnownZip(t *testing.T) {
	analyzer := NewRegionalAnalyzer(DefaultRegionalConfig())

	profile := analyzer.Analyze([]types.CleanedRecord{
		types.ZipRecord("94102"),
	})

	assert.Equal(t, "San Francisco Bay Area", profile.PrimaryRegion)
	assert.Equal(t, types.RegionUrban, profile.RegionType)
	assert.Equal(t, "CA", profile.State)
	assert.Equal(t, "San Francisco-Oakland-Berkeley", profile.MetroArea)
	assert.Equal(t, "High", profile.PopulationDensity)
	assert.True(t, profile.EconomicIndicators["tech_hub"])
	assert.True(t, profile.EconomicIndicators["high_gdp"])
	assert.True(t, profile.DemographicIndicators["tech_workers"])
	assert.Contains(t, profile.GeographicFeatures, "bay")
	assert.Contains(t, profile.MarketCharacteristics, "tech_savvy")
	assert.Equal(t, []string{"94102"}, profile.ZipCodes)
}

func TestRegionalAnalyzer_UnknownZip(t *testing.T) {
	analyzer := NewRegionalAnalyzer(DefaultRegionalConfig())

	profile := analyzer.Analyze([]types.CleanedRecord{
		types.ZipRecord("00000"),
	})

	assert.Empty(t, profile.PrimaryRegion)
	assert.Empty(t, profile.State)
	assert.Empty(t, profile.PopulationDensity)
	assert.Equal(t, []string{"00000"}, profile.ZipCodes)
}

func TestRegionalAnalyzer_NoZipRecords(t *testing.T) {
	analyzer := NewRegionalAnalyzer(DefaultRegionalConfig())

	profile := analyzer.Analyze([]types.CleanedRecord{
		types.CompetitorRecord("Corner Bakery"),
	})

	assert.Equal(t, types.RegionalProfile{}, profile)
}

func TestRegionalAnalyzer_MetroPriority(t *testing.T) {
	analyzer := NewRegionalAnalyzer(DefaultRegionalConfig())

	// Rural Montana plus Manhattan resolves to the higher-priority metro.
	profile := analyzer.Analyze([]types.CleanedRecord{
		types.ZipRecord("59001"),
		types.ZipRecord("10001"),
	})

	assert.Equal(t, "New York Metro", profile.PrimaryRegion)
	assert.Equal(t, types.RegionUrban, profile.RegionType)
}

func TestMajorityRegionType(t *testing.T) {
	regionTypes := map[string]types.RegionType{
		"A": types.RegionRural,
		"B": types.RegionRural,
		"C": types.RegionUrban,
	}

	assert.Equal(t, types.RegionRural, majorityRegionType([]string{"A", "C", "B"}, regionTypes))

	// Ties resolve to the type seen first.
	assert.Equal(t, types.RegionUrban, majorityRegionType([]string{"C", "A"}, regionTypes))

	// Unmapped regions contribute nothing.
	assert.Equal(t, types.RegionType(""), majorityRegionType([]string{"X"}, regionTypes))
}

func TestExtractFiveDigitZip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "94102", "94102"},
		{"zip plus four", "94102-1234", "94102"},
		{"spaced", "94 102", "94102"},
		{"too short", "9410", ""},
		{"no digits", "abcde", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractFiveDigitZip(tt.in))
		})
	}
}
