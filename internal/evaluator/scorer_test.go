package evaluator

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/freeatlas/resourcefinder/internal/catalog"
)

func testScorer() *Scorer {
	return NewScorer(DefaultScorerConfig(), map[string]catalog.Category{
		"bike":    catalog.CategoryMobility,
		"commute": catalog.CategoryMobility,
		"meal":    catalog.CategoryFood,
	})
}

func bikeResource() *catalog.ResourceRecord {
	return &catalog.ResourceRecord{
		ID:       "bike-pass",
		Name:     "Bike Pass",
		Category: catalog.CategoryMobility,
		Tags:     []string{"bike", "commute", "transport"},
		Coverage: catalog.InCities("Chicago", "Seattle"),
	}
}

func TestScorer_IntentScoring(t *testing.T) {
	s := testScorer()

	tests := []struct {
		name        string
		terms       []string
		wantMatched []string
		wantBase    float64 // score minus the location boost
	}{
		{
			name:        "tag and cluster bonuses stack on one term",
			terms:       []string{"bike"},
			wantMatched: []string{"bike"},
			wantBase:    1.6, // 0.9 tag + 0.7 cluster
		},
		{
			name:        "unmatched term dilutes the base",
			terms:       []string{"bike", "zzz"},
			wantMatched: []string{"bike"},
			wantBase:    0.8,
		},
		{
			name:        "duplicate terms amplify but dedupe in matched",
			terms:       []string{"bike", "bike"},
			wantMatched: []string{"bike"},
			wantBase:    1.6,
		},
		{
			name:        "no matches",
			terms:       []string{"zzz"},
			wantMatched: []string{},
			wantBase:    0,
		},
		{
			name:        "empty terms",
			terms:       nil,
			wantMatched: []string{},
			wantBase:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No location: the boost is the default 0.1, so the base
			// is recoverable unless the clamp kicked in.
			result := s.Score(bikeResource(), tt.terms, "")

			wantScore := math.Min(1, tt.wantBase+0.1)
			if math.Abs(result.Score-wantScore) > 1e-9 {
				t.Errorf("Score = %g, want %g", result.Score, wantScore)
			}
			if !reflect.DeepEqual(result.MatchedKeywords, tt.wantMatched) {
				t.Errorf("MatchedKeywords = %v, want %v", result.MatchedKeywords, tt.wantMatched)
			}
		})
	}
}

func TestScorer_LocationTiers(t *testing.T) {
	s := testScorer()

	national := &catalog.ResourceRecord{
		ID:       "everywhere",
		Name:     "Everywhere",
		Category: catalog.CategoryFood,
		Coverage: catalog.Nationwide(),
	}
	scoped := &catalog.ResourceRecord{
		ID:       "scoped",
		Name:     "Scoped",
		Category: catalog.CategoryFood,
		Coverage: catalog.InCities("New York", "Chicago"),
	}

	// With no terms the base score is zero, so the final score equals
	// the location boost exactly.
	tests := []struct {
		name      string
		resource  *catalog.ResourceRecord
		location  string
		wantBoost float64
		wantTier  LocationTier
	}{
		{
			name:      "national coverage",
			resource:  national,
			location:  "Chicago",
			wantBoost: 0.15,
			wantTier:  TierNational,
		},
		{
			name:      "exact city match is local",
			resource:  scoped,
			location:  "chicago",
			wantBoost: 0.35,
			wantTier:  TierLocal,
		},
		{
			name:      "location containing a coverage city is nearby",
			resource:  scoped,
			location:  "New York City",
			wantBoost: 0.25,
			wantTier:  TierNearby,
		},
		{
			name:      "coverage city containing the location is nearby",
			resource:  scoped,
			location:  "york",
			wantBoost: 0.25,
			wantTier:  TierNearby,
		},
		{
			name:      "unmatched city keeps national tier",
			resource:  scoped,
			location:  "Atlantis",
			wantBoost: 0.05,
			wantTier:  TierNational,
		},
		{
			name:      "no location supplied",
			resource:  scoped,
			location:  "",
			wantBoost: 0.10,
			wantTier:  TierNational,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.Score(tt.resource, nil, tt.location)

			if math.Abs(result.Score-tt.wantBoost) > 1e-9 {
				t.Errorf("Score = %g, want %g", result.Score, tt.wantBoost)
			}
			if result.LocationTier != tt.wantTier {
				t.Errorf("LocationTier = %v, want %v", result.LocationTier, tt.wantTier)
			}
		})
	}
}

func TestScorer_ScoreClamped(t *testing.T) {
	s := testScorer()

	// Two terms with stacked tag and cluster bonuses plus a local
	// boost push past 1 before clamping.
	result := s.Score(bikeResource(), []string{"bike", "commute"}, "Chicago")

	if result.Score != 1 {
		t.Errorf("Score = %g, want 1", result.Score)
	}
	if result.Confidence != ConfidenceHigh {
		t.Errorf("Confidence = %v, want %v", result.Confidence, ConfidenceHigh)
	}
}

func TestScorer_Confidence(t *testing.T) {
	s := testScorer()

	tests := []struct {
		score float64
		want  Confidence
	}{
		{1.0, ConfidenceHigh},
		{0.75, ConfidenceHigh},
		{0.7499, ConfidenceMedium},
		{0.45, ConfidenceMedium},
		{0.4499, ConfidenceEmerging},
		{0, ConfidenceEmerging},
	}

	for _, tt := range tests {
		if got := s.confidence(tt.score); got != tt.want {
			t.Errorf("confidence(%g) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestScorer_Rationale(t *testing.T) {
	s := testScorer()

	proof := "Income verification"
	notes := "Helmets available at community centers."
	resource := &catalog.ResourceRecord{
		ID:            "bike-pass",
		Name:          "Bike Pass",
		Category:      catalog.CategoryMobility,
		Tags:          []string{"bike"},
		ProofRequired: &proof,
		Notes:         &notes,
		Coverage:      catalog.InCities("Chicago"),
	}

	result := s.Score(resource, []string{"bike"}, "Chicago")

	want := []string{
		"Matches your keywords: bike.",
		"Confirmed availability in your city.",
		"Bring: Income verification.",
		"Helmets available at community centers.",
	}
	if !reflect.DeepEqual(result.Rationale, want) {
		t.Errorf("Rationale = %v, want %v", result.Rationale, want)
	}
}

func TestScorer_RationaleOmitsAbsentFields(t *testing.T) {
	s := testScorer()

	result := s.Score(bikeResource(), []string{"zzz"}, "")

	if len(result.Rationale) != 1 {
		t.Fatalf("Rationale = %v, want exactly the location line", result.Rationale)
	}
	if !strings.Contains(result.Rationale[0], "nationally") {
		t.Errorf("Rationale[0] = %q, want national phrasing", result.Rationale[0])
	}
}
