package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/observability"
	"github.com/jonathan/career-compass/internal/types"
)

var schemesCommand = &cobra.Command{
	Use:   "schemes",
	Short: "List government schemes and market data",
	Long:  "Lists government support schemes, filtered by the profile when one is given. With --market, prints the labor-market snapshot instead.",
	RunE:  runSchemes,
}

var (
	schemesConfigPath  string
	schemesProfilePath string
	schemesMarket      bool
	schemesJSON        bool
)

func init() {
	schemesCommand.Flags().StringVar(&schemesConfigPath, "config", "", "Path to config.json file")
	schemesCommand.Flags().StringVarP(&schemesProfilePath, "profile", "p", "", "Path to profile JSON file (optional)")
	schemesCommand.Flags().BoolVar(&schemesMarket, "market", false, "Print the labor-market snapshot instead of schemes")
	schemesCommand.Flags().BoolVar(&schemesJSON, "json", false, "Print raw JSON instead of formatted output")

	rootCmd.AddCommand(schemesCommand)
}

func runSchemes(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := mergedConfig(schemesConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = schemesProfilePath
	}

	var profile *types.Profile
	if cfg.Profile != "" {
		profile, err = loadProfile(cfg.Profile)
		if err != nil {
			return err
		}
	}

	a, err := buildApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	if schemesMarket {
		data, err := a.advisor.MarketData(ctx)
		if err != nil {
			return err
		}
		if schemesJSON {
			return printJSON(data)
		}
		for _, row := range data {
			fmt.Printf("%-22s demand %.0f%%  %s  %d openings\n",
				row.Skill, row.DemandTrend, row.AverageSalary, row.JobOpenings)
		}
		return nil
	}

	schemes, err := a.advisor.Schemes(ctx, profile)
	if err != nil {
		return err
	}
	if schemesJSON {
		return printJSON(schemes)
	}
	observability.NewPrinter(os.Stdout).PrintSchemes(schemes)
	return nil
}
