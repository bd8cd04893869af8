// Package advisor orchestrates the recommendation pipeline: scoring and
// ranking, roadmap generation, scholarship matching, and best-effort
// enrichment from the government data provider and the LLM.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/compare"
	"github.com/jonathan/career-compass/internal/govdata"
	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/logging"
	"github.com/jonathan/career-compass/internal/ranking"
	"github.com/jonathan/career-compass/internal/roadmap"
	"github.com/jonathan/career-compass/internal/scholarship"
	"github.com/jonathan/career-compass/internal/types"
)

// Advisor wires the catalog, engine, and enrichment providers together.
// Each request is independent; the advisor holds no per-request state.
type Advisor struct {
	store    catalog.Store
	engine   *ranking.Engine
	roadmaps *roadmap.Generator
	data     govdata.Provider
	client   llm.Client
	log      *logging.Logger
}

// Option configures optional collaborators.
type Option func(*Advisor)

// WithLLM enables LLM reasoning enrichment and chat. Generation failures
// never fail a request.
func WithLLM(client llm.Client) Option {
	return func(a *Advisor) { a.client = client }
}

// WithDataProvider overrides the enrichment data source.
func WithDataProvider(provider govdata.Provider) Option {
	return func(a *Advisor) { a.data = provider }
}

// WithTopN caps how many recommendations each run returns.
func WithTopN(n int) Option {
	return func(a *Advisor) { a.engine.Limit = n }
}

// New builds an advisor over the given store and randomness source.
func New(store catalog.Store, rand ranking.RandomSource, log *logging.Logger, opts ...Option) *Advisor {
	a := &Advisor{
		store:    store,
		engine:   ranking.NewEngine(rand),
		roadmaps: roadmap.NewGenerator(store),
		data:     govdata.NewStaticProvider(),
		log:      log,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RecommendCareers runs the general pipeline: validate, score, rank, then
// enrich reasoning through the LLM when one is configured.
func (a *Advisor) RecommendCareers(ctx context.Context, profile *types.Profile) ([]types.Recommendation, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	recs := a.engine.RecommendCareers(profile, a.store.Careers())
	a.enrichReasoning(ctx, profile, recs)

	a.log.Info("recommended careers",
		"profile", profile.Name,
		"results", len(recs))
	return recs, nil
}

// RecommendPaths runs the student pipeline: eligibility gate, score, rank,
// then attach roadmaps, scholarships, and demand data per recommendation.
// Demand lookups fan out concurrently; a failed lookup leaves Demand nil.
func (a *Advisor) RecommendPaths(ctx context.Context, profile *types.Profile) ([]types.StudentRecommendation, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	recs := a.engine.RecommendPaths(profile, a.store.StudentPaths())
	for i := range recs {
		recs[i].Roadmap = a.roadmaps.Student(profile, recs[i].CareerPath)
		recs[i].Scholarships = scholarship.ForPath(profile, recs[i].CareerPath)
	}

	group, gctx := errgroup.WithContext(ctx)
	for i := range recs {
		group.Go(func() error {
			demand, err := a.data.CareerDemand(gctx, recs[i].CareerPath.ID)
			if err != nil {
				a.log.Warn("demand lookup failed",
					"career", recs[i].CareerPath.ID,
					"error", err)
				return nil
			}
			recs[i].Demand = demand
			return nil
		})
	}
	_ = group.Wait()

	a.log.Info("recommended student paths",
		"profile", profile.Name,
		"results", len(recs))
	return recs, nil
}

// Roadmap generates the learning plan toward a chosen career. The missing
// skills are recomputed from the profile so the plan matches the current
// scoring run.
func (a *Advisor) Roadmap(ctx context.Context, profile *types.Profile, careerID string) ([]types.RoadmapStage, error) {
	career, err := a.store.Career(careerID)
	if err != nil {
		return nil, fmt.Errorf("roadmap: %w", err)
	}

	score := a.engine.ScoreCareer(profile, career)
	stages := a.roadmaps.General(career.Title, score.MissingSkills)

	a.log.Info("generated roadmap",
		"career", careerID,
		"stages", len(stages))
	return stages, nil
}

// Compare produces the side-by-side analysis of two career paths.
func (a *Advisor) Compare(ctx context.Context, firstID, secondID string) (*types.Comparison, error) {
	return compare.ByID(a.store, firstID, secondID)
}

// Schemes returns government schemes relevant to the profile.
func (a *Advisor) Schemes(ctx context.Context, profile *types.Profile) ([]types.Scheme, error) {
	return a.data.Schemes(ctx, profile)
}

// MarketData returns the current labor-market snapshot.
func (a *Advisor) MarketData(ctx context.Context) ([]types.MarketData, error) {
	return a.data.MarketData(ctx)
}

// enrichReasoning asks the LLM for a personalized explanation per
// recommendation. Any failure keeps the canned reasoning.
func (a *Advisor) enrichReasoning(ctx context.Context, profile *types.Profile, recs []types.Recommendation) {
	if a.client == nil {
		return
	}
	for i := range recs {
		prompt := llm.BuildReasoningPrompt(profile, recs[i].Career.Title, recs[i].StrengthSkills, recs[i].MissingSkills)
		text, err := a.client.GenerateContent(ctx, prompt, llm.TierLite)
		if err != nil {
			a.log.Warn("reasoning enrichment failed",
				"career", recs[i].Career.ID,
				"error", err)
			continue
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			recs[i].Reasoning = trimmed
		}
	}
}
