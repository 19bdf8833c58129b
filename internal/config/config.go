package config

import "github.com/freeatlas/resourcefinder/internal/evaluator"

// Config represents the application configuration
type Config struct {
	Catalog    CatalogConfig    `toml:"catalog"`
	Scoring    ScoringConfig    `toml:"scoring"`
	Evaluation EvaluationConfig `toml:"evaluation"`
	Output     OutputConfig     `toml:"output"`
	MCP        MCPConfig        `toml:"mcp"`
}

// CatalogConfig controls where the resource catalog comes from
type CatalogConfig struct {
	// Path to a TOML catalog file. Empty means the builtin catalog.
	Path string `toml:"path"`
}

// ScoringConfig contains the relevance scoring weights and thresholds
type ScoringConfig struct {
	TagWeight       float64 `toml:"tag_weight"`
	ClusterWeight   float64 `toml:"cluster_weight"`
	NationalBoost   float64 `toml:"national_boost"`
	LocalBoost      float64 `toml:"local_boost"`
	NearbyBoost     float64 `toml:"nearby_boost"`
	UnmatchedBoost  float64 `toml:"unmatched_boost"`
	DefaultBoost    float64 `toml:"default_boost"`
	HighThreshold   float64 `toml:"high_threshold"`
	MediumThreshold float64 `toml:"medium_threshold"`
}

// EvaluationConfig contains result ordering and truncation settings
type EvaluationConfig struct {
	TopResults    int    `toml:"top_results"`
	FallbackQuery string `toml:"fallback_query"`
}

// OutputConfig contains display settings
type OutputConfig struct {
	Format string `toml:"format"`
}

// MCPConfig contains MCP server settings
type MCPConfig struct {
	Enabled   bool   `toml:"enabled"`
	Transport string `toml:"transport"`
}

// ScorerConfig converts the scoring section into evaluator weights
func (c *Config) ScorerConfig() evaluator.ScorerConfig {
	return evaluator.ScorerConfig{
		TagWeight:       c.Scoring.TagWeight,
		ClusterWeight:   c.Scoring.ClusterWeight,
		NationalBoost:   c.Scoring.NationalBoost,
		LocalBoost:      c.Scoring.LocalBoost,
		NearbyBoost:     c.Scoring.NearbyBoost,
		UnmatchedBoost:  c.Scoring.UnmatchedBoost,
		DefaultBoost:    c.Scoring.DefaultBoost,
		HighThreshold:   c.Scoring.HighThreshold,
		MediumThreshold: c.Scoring.MediumThreshold,
	}
}

// EvaluatorConfig converts the evaluation section into orchestration
// settings
func (c *Config) EvaluatorConfig() evaluator.EvaluatorConfig {
	return evaluator.EvaluatorConfig{
		TopResults:    c.Evaluation.TopResults,
		FallbackQuery: c.Evaluation.FallbackQuery,
	}
}

// Default returns a Config with the standard weights and settings
func Default() *Config {
	scorer := evaluator.DefaultScorerConfig()
	eval := evaluator.DefaultEvaluatorConfig()

	return &Config{
		Scoring: ScoringConfig{
			TagWeight:       scorer.TagWeight,
			ClusterWeight:   scorer.ClusterWeight,
			NationalBoost:   scorer.NationalBoost,
			LocalBoost:      scorer.LocalBoost,
			NearbyBoost:     scorer.NearbyBoost,
			UnmatchedBoost:  scorer.UnmatchedBoost,
			DefaultBoost:    scorer.DefaultBoost,
			HighThreshold:   scorer.HighThreshold,
			MediumThreshold: scorer.MediumThreshold,
		},
		Evaluation: EvaluationConfig{
			TopResults:    eval.TopResults,
			FallbackQuery: eval.FallbackQuery,
		},
		Output: OutputConfig{
			Format: "table",
		},
		MCP: MCPConfig{
			Enabled:   true,
			Transport: "stdio",
		},
	}
}
