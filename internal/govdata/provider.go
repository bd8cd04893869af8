// Package govdata supplies government-scheme and labor-market enrichment.
// All data here is best effort: callers must tolerate empty results and nil
// demand records without failing the recommendation.
package govdata

import (
	"context"

	"github.com/jonathan/career-compass/internal/types"
)

// Provider is the enrichment data source contract.
type Provider interface {
	// Schemes returns government support programs relevant to the profile.
	// A nil profile returns the full table.
	Schemes(ctx context.Context, profile *types.Profile) ([]types.Scheme, error)

	// MarketData returns the current skill-demand snapshot.
	MarketData(ctx context.Context) ([]types.MarketData, error)

	// CareerDemand returns the demand record for a career title or id, or
	// nil when the career is not tracked.
	CareerDemand(ctx context.Context, career string) (*types.DemandData, error)
}
