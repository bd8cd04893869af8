package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/career-compass/internal/advisor"
	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/chat"
	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/govdata"
	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/logging"
	"github.com/jonathan/career-compass/internal/ranking"
	"github.com/jonathan/career-compass/internal/types"
)

// app holds the wired collaborators shared by all commands.
type app struct {
	cfg     config.Config
	store   catalog.Store
	advisor *advisor.Advisor
	chat    *chat.Service
	client  llm.Client
	log     *logging.Logger
}

// buildApp wires the catalog, engine, and enrichment providers from the
// merged configuration.
func buildApp(ctx context.Context, cfg config.Config) (*app, error) {
	log := logging.New(cfg.LogLevel)

	var store catalog.Store
	var err error
	if cfg.DatabaseURL != "" {
		store, err = catalog.LoadPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("loading catalog from database: %w", err)
		}
	} else {
		store, err = catalog.NewEmbedded()
		if err != nil {
			return nil, fmt.Errorf("loading embedded catalog: %w", err)
		}
	}

	opts := []advisor.Option{}
	if cfg.TopN > 0 {
		opts = append(opts, advisor.WithTopN(cfg.TopN))
	}

	var client llm.Client
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey != "" {
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return nil, fmt.Errorf("creating LLM client: %w", err)
		}
		opts = append(opts, advisor.WithLLM(client))
	}

	if cfg.PortalURL != "" {
		provider, err := govdata.NewHTTPProvider(cfg.PortalURL, nil)
		if err != nil {
			return nil, fmt.Errorf("creating portal provider: %w", err)
		}
		opts = append(opts, advisor.WithDataProvider(provider))
	}

	adv := advisor.New(store, ranking.NewSeededSource(cfg.Seed), log, opts...)

	return &app{
		cfg:     cfg,
		store:   store,
		advisor: adv,
		chat:    chat.NewService(client),
		client:  client,
		log:     log,
	}, nil
}

// close releases the LLM client and flushes logs.
func (a *app) close() {
	if a.client != nil {
		_ = a.client.Close()
	}
	_ = a.log.Sync()
}

// loadProfile reads and validates a profile JSON file.
func loadProfile(path string) (*types.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}

	var profile types.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parsing profile JSON: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &profile, nil
}

// mergedConfig loads the optional config file and applies it under the
// built-in defaults. Flag overrides happen per command after this.
func mergedConfig(configPath string) (config.Config, error) {
	defaults := config.Config{
		TopN:     3,
		Port:     8080,
		LogLevel: "info",
	}

	if configPath == "" {
		return defaults, nil
	}

	loaded, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return config.Config{}, err
	}
	return loaded.MergeWithDefaults(defaults), nil
}
