// Package llm wraps the text-generation capability behind a tiered client
// so callers pick a capability level, not a provider model name.
package llm

// ModelTier selects how much model capability a call needs.
type ModelTier string

const (
	// TierLite is for simple tasks: chat answers, short reasoning blurbs
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: structured output, summaries
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning: multi-step guidance, planning
	TierAdvanced ModelTier = "advanced"
)

// Provider identifies the backing LLM provider.
type Provider string

// ProviderGemini is the Google Gemini provider, currently the only one wired.
const ProviderGemini Provider = "gemini"

// Config maps tiers to provider model names.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default Gemini tier mapping.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a tier. Unmapped tiers fall back to
// standard, then lite, so a partially configured map still resolves.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with one tier remapped. The
// receiver is not modified.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string, len(c.Models)+1),
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}
