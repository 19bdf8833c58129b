package evaluator

import (
	"fmt"
	"math"
	"strings"

	"github.com/freeatlas/resourcefinder/internal/catalog"
)

// ScorerConfig configures the relevance scoring algorithm
type ScorerConfig struct {
	TagWeight       float64 // Added per term that substring-matches a resource tag
	ClusterWeight   float64 // Added per term whose keyword cluster matches the category
	NationalBoost   float64 // Location boost for nationwide resources
	LocalBoost      float64 // Location boost for an exact coverage-city match
	NearbyBoost     float64 // Location boost for a partial coverage-city match
	UnmatchedBoost  float64 // Location boost when a supplied location matches nothing
	DefaultBoost    float64 // Location boost when no location was supplied
	HighThreshold   float64 // Minimum score for high confidence
	MediumThreshold float64 // Minimum score for medium confidence
}

// DefaultScorerConfig returns the standard scoring weights
func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		TagWeight:       0.9,
		ClusterWeight:   0.7,
		NationalBoost:   0.15,
		LocalBoost:      0.35,
		NearbyBoost:     0.25,
		UnmatchedBoost:  0.05,
		DefaultBoost:    0.10,
		HighThreshold:   0.75,
		MediumThreshold: 0.45,
	}
}

// Scorer computes relevance for a single resource against a term list
// and a requested location
type Scorer struct {
	config   ScorerConfig
	clusters map[string]catalog.Category
}

// NewScorer creates a Scorer with the given weights and cluster table
func NewScorer(config ScorerConfig, clusters map[string]catalog.Category) *Scorer {
	return &Scorer{config: config, clusters: clusters}
}

// Score evaluates one resource. It is total: empty term lists and empty
// locations are valid inputs.
func (s *Scorer) Score(resource *catalog.ResourceRecord, terms []string, location string) Result {
	// Non-nil so the JSON payload always carries an array, even with
	// no matches.
	matched := []string{}
	seen := make(map[string]bool)
	intentScore := 0.0

	for _, term := range terms {
		// Both bonuses can apply to the same term: a tag hit and a
		// cluster hit each add their full weight.
		if tagContains(resource.Tags, term) {
			if !seen[term] {
				seen[term] = true
				matched = append(matched, term)
			}
			intentScore += s.config.TagWeight
		}

		if mapped, ok := s.clusters[term]; ok && mapped == resource.Category {
			if !seen[term] {
				seen[term] = true
				matched = append(matched, term)
			}
			intentScore += s.config.ClusterWeight
		}
	}

	locationBoost, tier := s.locationBoost(resource, location)

	// Normalize by query length so longer queries don't trivially
	// inflate scores; guard the division for empty term lists.
	baseScore := intentScore / float64(max(len(terms), 1))
	score := math.Min(1, baseScore+locationBoost)

	return Result{
		Resource:        resource,
		Score:           score,
		Confidence:      s.confidence(score),
		MatchedKeywords: matched,
		LocationTier:    tier,
		Rationale:       s.rationale(resource, matched, tier),
	}
}

// locationBoost resolves the location tier and its score contribution.
// A supplied location that matches no coverage city keeps the national
// tier and earns only the unmatched boost.
func (s *Scorer) locationBoost(resource *catalog.ResourceRecord, location string) (float64, LocationTier) {
	if resource.Coverage.IsNational() {
		return s.config.NationalBoost, TierNational
	}

	locationLower := strings.ToLower(location)
	if locationLower == "" {
		return s.config.DefaultBoost, TierNational
	}

	partial := false
	for _, city := range resource.Coverage.Cities {
		cityLower := strings.ToLower(city)
		if cityLower == locationLower {
			return s.config.LocalBoost, TierLocal
		}
		if strings.Contains(locationLower, cityLower) || strings.Contains(cityLower, locationLower) {
			partial = true
		}
	}

	if partial {
		return s.config.NearbyBoost, TierNearby
	}

	return s.config.UnmatchedBoost, TierNational
}

// confidence maps a final score to its tier. Lower bounds are inclusive.
func (s *Scorer) confidence(score float64) Confidence {
	switch {
	case score >= s.config.HighThreshold:
		return ConfidenceHigh
	case score >= s.config.MediumThreshold:
		return ConfidenceMedium
	default:
		return ConfidenceEmerging
	}
}

// rationale builds the ordered explanation lines for a scored resource
func (s *Scorer) rationale(resource *catalog.ResourceRecord, matched []string, tier LocationTier) []string {
	var lines []string

	if len(matched) > 0 {
		lines = append(lines, fmt.Sprintf("Matches your keywords: %s.", strings.Join(matched, ", ")))
	}

	switch tier {
	case TierLocal:
		lines = append(lines, "Confirmed availability in your city.")
	case TierNearby:
		lines = append(lines, "Regional partners operate within reach.")
	default:
		lines = append(lines, "Available nationally with remote intake options.")
	}

	if resource.ProofRequired != nil {
		lines = append(lines, fmt.Sprintf("Bring: %s.", *resource.ProofRequired))
	}

	if resource.Notes != nil {
		lines = append(lines, *resource.Notes)
	}

	return lines
}

// tagContains reports whether any tag contains the term as a substring
func tagContains(tags []string, term string) bool {
	for _, tag := range tags {
		if strings.Contains(tag, term) {
			return true
		}
	}
	return false
}
