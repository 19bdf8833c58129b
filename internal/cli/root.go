package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/freeatlas/resourcefinder/internal/catalog"
	"github.com/freeatlas/resourcefinder/internal/config"
)

var (
	// Version info set from main
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"

	// Global flags
	configPath string
	outputFmt  string
)

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, c, b string) {
	version = v
	commit = c
	buildTime = b
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "resourcefinder",
	Short: "Find free community resources that match what you need",
	Long: `resourcefinder ranks a catalog of free community resources
(libraries, clinics, food programs, and more) against what you need
and where you are.

It provides:
  - Relevance scoring with keyword and location matching
  - Plain-language rationale for every match
  - A browsable, validated resource catalog
  - MCP server for AI assistant integration`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (default: ~/.config/resourcefinder/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "",
		"output format (table, json; default from config)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}
		configPath = filepath.Join(home, ".config", "resourcefinder", "config.toml")
	}
}

// loadCatalog builds the catalog from the configured source and runs
// the startup validation pass
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path != "" {
		return catalog.Load(cfg.Catalog.Path)
	}

	cat := catalog.Builtin()
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("builtin catalog is invalid: %w", err)
	}
	return cat, nil
}

// resolveFormat picks the output format: flag wins over config
func resolveFormat(cfg *config.Config) string {
	if outputFmt != "" {
		return outputFmt
	}
	return cfg.Output.Format
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("resourcefinder %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", buildTime)
	},
}
