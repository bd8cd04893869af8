package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/types"
)

var chatCommand = &cobra.Command{
	Use:   "chat <question>",
	Short: "Ask a free-form career question",
	Long:  "Answers a career question, personalized with the profile when one is given. Uses the LLM when an API key is configured and canned guidance otherwise.",
	Args:  cobra.ExactArgs(1),
	RunE:  runChat,
}

var (
	chatConfigPath  string
	chatProfilePath string
)

func init() {
	chatCommand.Flags().StringVar(&chatConfigPath, "config", "", "Path to config.json file")
	chatCommand.Flags().StringVarP(&chatProfilePath, "profile", "p", "", "Path to profile JSON file (optional)")

	rootCmd.AddCommand(chatCommand)
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := mergedConfig(chatConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = chatProfilePath
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

	fmt.Println(a.chat.Answer(ctx, profile, args[0]))
	return nil
}
