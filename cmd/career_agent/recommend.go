package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/advisor"
	"github.com/jonathan/career-compass/internal/observability"
	"github.com/jonathan/career-compass/internal/types"
)

var recommendCommand = &cobra.Command{
	Use:   "recommend",
	Short: "Score a profile against the catalog and print the top career matches",
	Long: `Scores the profile against every catalog entry, ranks the matches, and prints the top results with reasoning.

Student profiles (kind "student") are gated by stream and marks eligibility and get roadmaps and scholarships attached.`,
	RunE: runRecommend,
}

var (
	recommendConfigPath  string
	recommendProfilePath string
	recommendSeed        int64
	recommendTop         int
	recommendVerbose     bool
	recommendJSON        bool
)

func init() {
	recommendCommand.Flags().StringVar(&recommendConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	recommendCommand.Flags().StringVarP(&recommendProfilePath, "profile", "p", "", "Path to profile JSON file")
	recommendCommand.Flags().Int64Var(&recommendSeed, "seed", 0, "Scoring perturbation seed (0 picks one at startup)")
	recommendCommand.Flags().IntVar(&recommendTop, "top", 0, "Number of recommendations to return (default 3)")
	recommendCommand.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Enable debug logging")
	recommendCommand.Flags().BoolVar(&recommendJSON, "json", false, "Print raw JSON instead of formatted output")

	rootCmd.AddCommand(recommendCommand)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := mergedConfig(recommendConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = recommendProfilePath
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = recommendSeed
	}
	if cmd.Flags().Changed("top") {
		cfg.TopN = recommendTop
	}
	if recommendVerbose {
		cfg.Verbose = true
		cfg.LogLevel = "debug"
	}
	if cfg.Profile == "" {
		return fmt.Errorf("--profile is required")
	}

	profile, err := loadProfile(cfg.Profile)
	if err != nil {
		return err
	}

	a, err := buildApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	printer := observability.NewPrinter(os.Stdout)

	if profile.Kind == types.KindStudent {
		recs, err := a.advisor.RecommendPaths(ctx, profile)
		if err != nil {
			return err
		}
		if recommendJSON {
			return printJSON(recs)
		}
		printer.PrintStudentRecommendations(recs)
		if recommendVerbose {
			for _, rec := range recs {
				fmt.Println()
				printer.PrintStudentRoadmap(rec.Roadmap)
			}
		}
		if len(recs) > 0 {
			fmt.Println()
			fmt.Println(advisor.ParentExplanation(recs))
		}
		return nil
	}

	recs, err := a.advisor.RecommendCareers(ctx, profile)
	if err != nil {
		return err
	}
	if recommendJSON {
		return printJSON(recs)
	}
	printer.PrintRecommendations(recs)
	for _, rec := range recs {
		fmt.Printf("\n%s: %s\n", rec.Career.Title, rec.Reasoning)
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
