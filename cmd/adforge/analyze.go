package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mbaxter/adforge/internal/analysis"
	"github.com/mbaxter/adforge/internal/orchestrator"
	"github.com/mbaxter/adforge/internal/types"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Run context analysis without generating ads",
	Long: `Runs the tone, keyword, and regional analyzers over the competitor name,
hashtags, and ZIP code and prints the resulting marketing context.`,
	RunE: runAnalyzeCmd,
}

var (
	anCompetitor string
	anZipcode    string
	anHashtags   []string
	anJSON       bool
)

func init() {
	analyzeCommand.Flags().StringVarP(&anCompetitor, "competitor", "c", "", "Competitor business name (required)")
	analyzeCommand.Flags().StringVarP(&anZipcode, "zip", "z", "", "Target ZIP code")
	analyzeCommand.Flags().StringSliceVar(&anHashtags, "hashtags", nil, "Niche hashtags (comma separated)")
	analyzeCommand.Flags().BoolVar(&anJSON, "json", false, "Print the full context as JSON")

	_ = analyzeCommand.MarkFlagRequired("competitor")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(_ *cobra.Command, _ []string) error {
	req := types.GenerateRequest{
		OurBrand:       "analysis",
		CompetitorName: anCompetitor,
		Zipcode:        anZipcode,
		Hashtags:       anHashtags,
	}

	mc, err := analysis.NewAggregator().BuildContext(orchestrator.Records(req))
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if anJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(mc)
	}

	fmt.Printf("Primary tone:   %s\n", mc.Tone.PrimaryTone)
	if len(mc.Tone.SecondaryTones) > 0 {
		tones := make([]string, 0, len(mc.Tone.SecondaryTones))
		for _, t := range mc.Tone.SecondaryTones {
			tones = append(tones, string(t))
		}
		fmt.Printf("Secondary:      %s\n", strings.Join(tones, ", "))
	}
	fmt.Printf("Sentiment:      %s\n", mc.Tone.Sentiment)
	fmt.Printf("Tone confidence: %.2f\n", mc.Tone.Confidence)
	if keywords := mc.Keywords.AllKeywords(); len(keywords) > 0 {
		fmt.Printf("Keywords:       %s\n", strings.Join(keywords, ", "))
	}
	if mc.Regional.PrimaryRegion != "" {
		fmt.Printf("Region:         %s (%s, %s)\n", mc.Regional.PrimaryRegion, mc.Regional.State, mc.Regional.RegionType)
	}
	fmt.Printf("Overall confidence: %.2f\n", mc.ConfidenceScore)
	return nil
}
