package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/freeatlas/resourcefinder/internal/config"
	"github.com/freeatlas/resourcefinder/internal/evaluator"
	"github.com/freeatlas/resourcefinder/internal/output"
)

var findLocation string

var findCmd = &cobra.Command{
	Use:   "find [need...]",
	Short: "Rank resources against what you need",
	Long: `Rank the resource catalog against a free-text need and an optional
location, and show the top matches with scores and rationale.

An empty need falls back to a generic free-resources search.

Examples:
  resourcefinder find healthy meals --location "New York"
  resourcefinder find free coworking with wifi -l Chicago
  resourcefinder find bike commute -l Chicago -o json`,
	RunE: runFind,
}

func init() {
	findCmd.Flags().StringVarP(&findLocation, "location", "l", "", "city you are in")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	eval := evaluator.New(cat, cfg.ScorerConfig(), cfg.EvaluatorConfig())
	payload := eval.Evaluate(query, findLocation)

	return output.Output(resolveFormat(cfg), payload)
}
