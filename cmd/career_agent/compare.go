package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/observability"
)

var compareCommand = &cobra.Command{
	Use:   "compare <career1> <career2>",
	Short: "Compare two career paths side by side",
	Long:  "Prints a structured comparison of duration, difficulty, cost, job demand, and salary for two career path ids, with an overall recommendation.",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

var (
	compareConfigPath string
	compareJSON       bool
)

func init() {
	compareCommand.Flags().StringVar(&compareConfigPath, "config", "", "Path to config.json file")
	compareCommand.Flags().BoolVar(&compareJSON, "json", false, "Print raw JSON instead of formatted output")

	rootCmd.AddCommand(compareCommand)
}

func runCompare(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := mergedConfig(compareConfigPath)
	if err != nil {
		return err
	}

	a, err := buildApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	comparison, err := a.advisor.Compare(ctx, args[0], args[1])
	if err != nil {
		return fmt.Errorf("comparing %s and %s: %w", args[0], args[1], err)
	}

	if compareJSON {
		return printJSON(comparison)
	}
	observability.NewPrinter(os.Stdout).PrintComparison(comparison)
	return nil
}
