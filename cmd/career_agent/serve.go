package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP REST API server",
	Long:  "Serves the recommendation, roadmap, comparison, and chat endpoints over HTTP with graceful shutdown on SIGINT/SIGTERM.",
	RunE:  runServe,
}

var (
	serveConfigPath string
	servePort       int
)

func init() {
	serveCommand.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	serveCommand.Flags().IntVar(&servePort, "port", 0, "HTTP listen port (default 8080)")

	rootCmd.AddCommand(serveCommand)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := mergedConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	a, err := buildApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	srv := server.New(server.Config{Port: cfg.Port}, a.advisor, a.chat, a.store, a.log)
	return srv.Start()
}
