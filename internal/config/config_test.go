package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Scoring.TagWeight != 0.9 {
		t.Errorf("expected TagWeight=0.9, got %g", cfg.Scoring.TagWeight)
	}
	if cfg.Scoring.HighThreshold != 0.75 {
		t.Errorf("expected HighThreshold=0.75, got %g", cfg.Scoring.HighThreshold)
	}
	if cfg.Evaluation.TopResults != 3 {
		t.Errorf("expected TopResults=3, got %d", cfg.Evaluation.TopResults)
	}
	if cfg.Evaluation.FallbackQuery != "Free resources" {
		t.Errorf("expected FallbackQuery='Free resources', got %q", cfg.Evaluation.FallbackQuery)
	}
	if cfg.Output.Format != "table" {
		t.Errorf("expected Format=table, got %s", cfg.Output.Format)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "weight above one",
			modify: func(c *Config) {
				c.Scoring.TagWeight = 1.5
			},
			wantErr: true,
		},
		{
			name: "negative boost",
			modify: func(c *Config) {
				c.Scoring.LocalBoost = -0.1
			},
			wantErr: true,
		},
		{
			name: "medium threshold above high",
			modify: func(c *Config) {
				c.Scoring.MediumThreshold = 0.8
			},
			wantErr: true,
		},
		{
			name: "zero top results",
			modify: func(c *Config) {
				c.Evaluation.TopResults = 0
			},
			wantErr: true,
		},
		{
			name: "blank fallback query",
			modify: func(c *Config) {
				c.Evaluation.FallbackQuery = "   "
			},
			wantErr: true,
		},
		{
			name: "invalid output format",
			modify: func(c *Config) {
				c.Output.Format = "yaml"
			},
			wantErr: true,
		},
		{
			name: "invalid mcp transport",
			modify: func(c *Config) {
				c.MCP.Transport = "http"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Evaluation.TopResults != 3 {
		t.Errorf("expected default TopResults=3, got %d", cfg.Evaluation.TopResults)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[scoring]
local_boost = 0.5

[evaluation]
top_results = 5

[output]
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Scoring.LocalBoost != 0.5 {
		t.Errorf("LocalBoost = %g, want 0.5", cfg.Scoring.LocalBoost)
	}
	if cfg.Evaluation.TopResults != 5 {
		t.Errorf("TopResults = %d, want 5", cfg.Evaluation.TopResults)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Format = %s, want json", cfg.Output.Format)
	}
	// Untouched sections keep defaults.
	if cfg.Scoring.TagWeight != 0.9 {
		t.Errorf("TagWeight = %g, want default 0.9", cfg.Scoring.TagWeight)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[evaluation]
top_results = 0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() = nil error, want validation failure")
	}
}

func TestScorerConfigRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Scoring.NearbyBoost = 0.3

	sc := cfg.ScorerConfig()
	if sc.NearbyBoost != 0.3 {
		t.Errorf("NearbyBoost = %g, want 0.3", sc.NearbyBoost)
	}
	if sc.TagWeight != cfg.Scoring.TagWeight {
		t.Errorf("TagWeight = %g, want %g", sc.TagWeight, cfg.Scoring.TagWeight)
	}
}
