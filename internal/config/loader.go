package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file. A missing file is not
// an error: the defaults apply, so the tool works out of the box.
func Load(path string) (*Config, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	cfg := Default()

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Catalog.Path != "" {
		cfg.Catalog.Path, err = expandPath(cfg.Catalog.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to expand catalog path: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	weights := []struct {
		name  string
		value float64
	}{
		{"scoring.tag_weight", c.Scoring.TagWeight},
		{"scoring.cluster_weight", c.Scoring.ClusterWeight},
		{"scoring.national_boost", c.Scoring.NationalBoost},
		{"scoring.local_boost", c.Scoring.LocalBoost},
		{"scoring.nearby_boost", c.Scoring.NearbyBoost},
		{"scoring.unmatched_boost", c.Scoring.UnmatchedBoost},
		{"scoring.default_boost", c.Scoring.DefaultBoost},
	}
	for _, w := range weights {
		if w.value < 0 || w.value > 1 {
			errs = append(errs, fmt.Errorf("%s must be between 0 and 1, got %g", w.name, w.value))
		}
	}

	if c.Scoring.HighThreshold <= 0 || c.Scoring.HighThreshold > 1 {
		errs = append(errs, errors.New("scoring.high_threshold must be in (0, 1]"))
	}
	if c.Scoring.MediumThreshold <= 0 || c.Scoring.MediumThreshold > 1 {
		errs = append(errs, errors.New("scoring.medium_threshold must be in (0, 1]"))
	}
	if c.Scoring.MediumThreshold >= c.Scoring.HighThreshold {
		errs = append(errs, errors.New("scoring.medium_threshold must be below scoring.high_threshold"))
	}

	if c.Evaluation.TopResults < 1 {
		errs = append(errs, errors.New("evaluation.top_results must be at least 1"))
	}
	if strings.TrimSpace(c.Evaluation.FallbackQuery) == "" {
		errs = append(errs, errors.New("evaluation.fallback_query must not be empty"))
	}

	if c.Output.Format != "table" && c.Output.Format != "json" {
		errs = append(errs, fmt.Errorf("output.format must be 'table' or 'json', got %q", c.Output.Format))
	}

	if c.MCP.Transport != "stdio" {
		errs = append(errs, fmt.Errorf("mcp.transport must be 'stdio', got %q", c.MCP.Transport))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
