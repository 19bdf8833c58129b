// Package evaluator implements the resource ranking engine: keyword
// extraction, per-resource relevance scoring, result ordering, and the
// derived summary and category distribution. Evaluation is a pure,
// synchronous function over an immutable catalog snapshot; identical
// inputs always produce identical output.
package evaluator

import (
	"sort"
	"strings"

	"github.com/freeatlas/resourcefinder/internal/catalog"
)

// EvaluatorConfig configures the orchestration around the scorer
type EvaluatorConfig struct {
	TopResults    int    // How many ranked results to return
	FallbackQuery string // Substituted when the trimmed query is empty
}

// DefaultEvaluatorConfig returns the standard orchestration settings
func DefaultEvaluatorConfig() EvaluatorConfig {
	return EvaluatorConfig{
		TopResults:    3,
		FallbackQuery: "Free resources",
	}
}

// Evaluator ranks a catalog of resources against a free-text need and
// location
type Evaluator struct {
	catalog *catalog.Catalog
	scorer  *Scorer
	config  EvaluatorConfig
}

// New creates an Evaluator over the given catalog
func New(cat *catalog.Catalog, scorerConfig ScorerConfig, config EvaluatorConfig) *Evaluator {
	return &Evaluator{
		catalog: cat,
		scorer:  NewScorer(scorerConfig, cat.Clusters),
		config:  config,
	}
}

// NewDefault creates an Evaluator with the standard weights and settings
func NewDefault(cat *catalog.Catalog) *Evaluator {
	return New(cat, DefaultScorerConfig(), DefaultEvaluatorConfig())
}

// Evaluate scores every catalog resource against the query and location
// and returns the ranked top results, the narrative summary, and the
// category distribution over the returned slice. The summary is nil
// only when the catalog is empty.
func (e *Evaluator) Evaluate(query, location string) *Payload {
	query = strings.TrimSpace(query)
	location = strings.TrimSpace(location)

	text := query
	if text == "" {
		text = e.config.FallbackQuery
	}
	terms := ExtractKeywords(text)

	scored := make([]Result, 0, e.catalog.Len())
	for i := range e.catalog.Resources {
		scored = append(scored, e.scorer.Score(&e.catalog.Resources[i], terms, location))
	}

	// Stable sort: equal scores preserve catalog order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	top := scored
	if len(top) > e.config.TopResults {
		top = top[:e.config.TopResults]
	}

	var summary *Summary
	if len(scored) > 0 {
		s := pickHeadline(scored[0], query, location)
		summary = &s
	}

	return &Payload{
		Results:              top,
		Summary:              summary,
		CategoryDistribution: distribution(top),
	}
}

// distribution counts results per category over the top slice only,
// in first-seen order
func distribution(results []Result) []DistributionEntry {
	counts := make(map[catalog.Category]int)
	var order []catalog.Category

	for _, r := range results {
		if counts[r.Resource.Category] == 0 {
			order = append(order, r.Resource.Category)
		}
		counts[r.Resource.Category]++
	}

	entries := make([]DistributionEntry, 0, len(order))
	for _, cat := range order {
		entries = append(entries, DistributionEntry{Category: cat, Amount: counts[cat]})
	}

	return entries
}
