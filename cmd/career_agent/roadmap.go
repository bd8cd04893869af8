package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/observability"
)

var roadmapCommand = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate a learning roadmap toward a chosen career",
	Long:  "Computes the profile's missing skills for the chosen career and prints an ordered learning plan with durations, priorities, and resources.",
	RunE:  runRoadmap,
}

var (
	roadmapConfigPath  string
	roadmapProfilePath string
	roadmapCareerID    string
	roadmapJSON        bool
)

func init() {
	roadmapCommand.Flags().StringVar(&roadmapConfigPath, "config", "", "Path to config.json file")
	roadmapCommand.Flags().StringVarP(&roadmapProfilePath, "profile", "p", "", "Path to profile JSON file")
	roadmapCommand.Flags().StringVarP(&roadmapCareerID, "career", "c", "", "Career id to plan toward")
	roadmapCommand.Flags().BoolVar(&roadmapJSON, "json", false, "Print raw JSON instead of formatted output")

	rootCmd.AddCommand(roadmapCommand)
}

func runRoadmap(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := mergedConfig(roadmapConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = roadmapProfilePath
	}
	if cfg.Profile == "" {
		return fmt.Errorf("--profile is required")
	}
	if roadmapCareerID == "" {
		return fmt.Errorf("--career is required")
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

	stages, err := a.advisor.Roadmap(ctx, profile, roadmapCareerID)
	if err != nil {
		return err
	}

	if roadmapJSON {
		return printJSON(stages)
	}
	observability.NewPrinter(os.Stdout).PrintRoadmap(stages)
	return nil
}
