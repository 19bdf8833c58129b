package evaluator

import "github.com/freeatlas/resourcefinder/internal/catalog"

// Confidence classifies overall match strength, derived solely from the
// numeric score
type Confidence string

const (
	ConfidenceHigh     Confidence = "high"
	ConfidenceMedium   Confidence = "medium"
	ConfidenceEmerging Confidence = "emerging"
)

// LocationTier classifies how directly a resource serves the requested
// location. A supplied location that matches none of a resource's
// coverage cities still reports TierNational; the narrative copy only
// distinguishes local and nearby from everything else.
type LocationTier string

const (
	TierLocal    LocationTier = "local"
	TierNearby   LocationTier = "nearby"
	TierNational LocationTier = "national"
)

// Result is the scored outcome for a single resource. It is recomputed
// on every evaluation and never mutated after creation.
type Result struct {
	Resource        *catalog.ResourceRecord `json:"resource"`
	Score           float64                 `json:"score"`
	Confidence      Confidence              `json:"confidence"`
	MatchedKeywords []string                `json:"matched_keywords"`
	LocationTier    LocationTier            `json:"location_match"`
	Rationale       []string                `json:"rationale"`
}

// Summary is the narrative derived from the top-ranked result
type Summary struct {
	Headline    string `json:"headline"`
	Nuance      string `json:"nuance"`
	Opportunity string `json:"opportunity"`
}

// DistributionEntry counts how many of the top results fall in one
// category. Amounts sum to the number of returned results, not the
// catalog size.
type DistributionEntry struct {
	Category catalog.Category `json:"category"`
	Amount   int              `json:"amount"`
}

// Payload is the complete output of one evaluation
type Payload struct {
	Results              []Result            `json:"results"`
	Summary              *Summary            `json:"summary,omitempty"`
	CategoryDistribution []DistributionEntry `json:"category_distribution"`
}
