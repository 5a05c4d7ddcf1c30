// Package llm provides the model invoker: it sends prompt pairs to an
// external completion provider under a timeout budget and returns the raw
// completion text. It never interprets the response; JSON recovery belongs
// to the sanitize package so it stays unit-testable without network access.
package llm

// ModelTier represents the capability level needed for a task.
type ModelTier string

const (
	// TierLite is for simple extraction tasks.
	TierLite ModelTier = "lite"
	// TierStandard is for structured parsing.
	TierStandard ModelTier = "standard"
	// TierAdvanced is for rewriting and tailoring.
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider.
type Provider string

// Supported providers.
const (
	ProviderGemini Provider = "gemini"
)

// Config holds the provider and per-tier model names.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default Gemini configuration.
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

// GetModel returns the model name for a tier, falling back to standard
// then lite when the tier is not configured.
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
