package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mbaxter/adforge/internal/types"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate ad variants for a competitor",
	Long: `Analyzes the competitor name, hashtags, and ZIP code, gathers competitor
intelligence, and generates the requested number of scored ad variants.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runGenerateCmd,
}

var (
	genConfigPath string
	genBrand      string
	genCompetitor string
	genZipcode    string
	genHashtags   []string
	genIndustry   string
	genAudience   string
	genOfferType  string
	genGoal       string
	genWebsiteURL string
	genCount      int
	genProvider   string
	genModel      string
	genAPIKey     string
	genJSON       bool
	genVerbose    bool
)

func init() {
	generateCommand.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	generateCommand.Flags().StringVarP(&genBrand, "brand", "b", "", "Your brand name (required)")
	generateCommand.Flags().StringVarP(&genCompetitor, "competitor", "c", "", "Competitor business name (required)")
	generateCommand.Flags().StringVarP(&genZipcode, "zip", "z", "", "Target ZIP code")
	generateCommand.Flags().StringSliceVar(&genHashtags, "hashtags", nil, "Niche hashtags (comma separated)")
	generateCommand.Flags().StringVar(&genIndustry, "industry", "", "Industry hint")
	generateCommand.Flags().StringVar(&genAudience, "audience", "", "Target audience type")
	generateCommand.Flags().StringVar(&genOfferType, "offer", "", "Offer type (discount, promotion, free_trial, limited_time, new_arrival, event, information)")
	generateCommand.Flags().StringVar(&genGoal, "goal", "", "Campaign goal")
	generateCommand.Flags().StringVar(&genWebsiteURL, "website", "", "Competitor website URL (auto-discovered if not provided)")
	generateCommand.Flags().IntVarP(&genCount, "count", "n", 0, "Number of variants to generate (default 3)")
	generateCommand.Flags().StringVar(&genProvider, "provider", "", "Generation provider (gemini, openai, offline)")
	generateCommand.Flags().StringVar(&genModel, "model", "", "Provider model name")
	generateCommand.Flags().StringVar(&genAPIKey, "api-key", "", "Provider API key (optional, defaults to GEMINI_API_KEY / OPENAI_API_KEY env vars)")
	generateCommand.Flags().BoolVar(&genJSON, "json", false, "Print the full response as JSON")
	generateCommand.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = generateCommand.MarkFlagRequired("brand")
	_ = generateCommand.MarkFlagRequired("competitor")

	rootCmd.AddCommand(generateCommand)
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(genConfigPath, genVerbose)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("provider") {
		cfg.Provider = genProvider
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = genModel
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = genAPIKey
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	o, cleanup, err := buildOrchestrator(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	req := types.GenerateRequest{
		OurBrand:       genBrand,
		CompetitorName: genCompetitor,
		Zipcode:        genZipcode,
		Hashtags:       genHashtags,
		Industry:       genIndustry,
		AudienceType:   genAudience,
		OfferType:      genOfferType,
		Goal:           genGoal,
		WebsiteURL:     genWebsiteURL,
		NumVariations:  genCount,
	}

	resp := o.Generate(ctx, req)
	if !resp.Success {
		return fmt.Errorf("generation failed: %s", resp.Error)
	}

	if genJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	printVariants(resp)
	return nil
}

func printVariants(resp types.GenerateResponse) {
	if resp.Cached {
		fmt.Println("(served from cache)")
	}
	if resp.Degraded {
		fmt.Printf("(degraded: %d generation attempt(s) failed, fallback copy used)\n", resp.FailedAttempts)
	}
	for i, ad := range resp.Ads {
		fmt.Printf("\n--- Variant %d ---\n", i+1)
		fmt.Printf("Headline: %s\n", ad.Headline)
		fmt.Printf("Ad Text:  %s\n", ad.Body)
		fmt.Printf("Hashtags: %s\n", strings.Join(ad.Hashtags, " "))
		fmt.Printf("CTA:      %s\n", ad.CTA)
		if ad.QualityScore != nil {
			fmt.Printf("Quality:  %.2f\n", *ad.QualityScore)
		}
	}
	if resp.CampaignID != nil {
		fmt.Printf("\nSaved as campaign %d\n", *resp.CampaignID)
	}
}
