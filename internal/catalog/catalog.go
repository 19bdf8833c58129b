package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Category classifies a resource into one of the fixed catalog categories
type Category string

const (
	CategoryWorkspace Category = "workspace"
	CategoryInternet  Category = "internet"
	CategoryFood      Category = "food"
	CategoryCulture   Category = "culture"
	CategoryLearning  Category = "learning"
	CategoryHealth    Category = "health"
	CategoryFinance   Category = "finance"
	CategoryMobility  Category = "mobility"
)

// Labels maps every category to its display label. Adding a category
// without a label here is a validation error at load time.
var Labels = map[Category]string{
	CategoryWorkspace: "Work & Study",
	CategoryInternet:  "Connectivity",
	CategoryFood:      "Food & Groceries",
	CategoryCulture:   "Arts & Culture",
	CategoryLearning:  "Learning",
	CategoryHealth:    "Health",
	CategoryFinance:   "Finance & Legal",
	CategoryMobility:  "Mobility",
}

// Valid reports whether the category is part of the fixed set
func (c Category) Valid() bool {
	_, ok := Labels[c]
	return ok
}

// Label returns the display label for the category
func (c Category) Label() string {
	if label, ok := Labels[c]; ok {
		return label
	}
	return string(c)
}

// Coverage describes the geographic reach of a resource: either
// nationwide, or a non-empty list of covered cities
type Coverage struct {
	National bool     `json:"national,omitempty" toml:"national"`
	Cities   []string `json:"cities,omitempty" toml:"cities"`
}

// Nationwide returns coverage spanning the whole country
func Nationwide() Coverage {
	return Coverage{National: true}
}

// InCities returns coverage limited to the given cities
func InCities(cities ...string) Coverage {
	return Coverage{Cities: cities}
}

// IsNational reports whether the resource is available everywhere
func (c Coverage) IsNational() bool {
	return c.National
}

// ResourceRecord describes a single community resource in the catalog
type ResourceRecord struct {
	ID            string   `json:"id" toml:"id"`
	Name          string   `json:"name" toml:"name"`
	Category      Category `json:"category" toml:"category"`
	Description   string   `json:"description" toml:"description"`
	Tags          []string `json:"tags" toml:"tags"`
	Availability  string   `json:"availability" toml:"availability"`
	ProofRequired *string  `json:"proof_required,omitempty" toml:"proof_required"`
	Notes         *string  `json:"notes,omitempty" toml:"notes"`
	Website       *string  `json:"website,omitempty" toml:"website"`
	Coverage      Coverage `json:"coverage" toml:"coverage"`
	Highlights    []string `json:"highlights" toml:"highlights"`
}

// Catalog is an ordered, read-only collection of resources plus the
// keyword-cluster table used for intent matching. Construct once at
// startup; never mutate afterwards.
type Catalog struct {
	Resources []ResourceRecord
	Clusters  map[string]Category
}

// Get returns the resource with the given id, or nil if absent
func (c *Catalog) Get(id string) *ResourceRecord {
	for i := range c.Resources {
		if c.Resources[i].ID == id {
			return &c.Resources[i]
		}
	}
	return nil
}

// ByCategory returns the resources in the given category, in catalog order
func (c *Catalog) ByCategory(cat Category) []ResourceRecord {
	var out []ResourceRecord
	for _, r := range c.Resources {
		if r.Category == cat {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of resources in the catalog
func (c *Catalog) Len() int {
	return len(c.Resources)
}

// Validate checks the catalog's data-integrity preconditions. It is run
// once at startup so the evaluator can assume well-formed records.
func (c *Catalog) Validate() error {
	var errs []error

	seen := make(map[string]bool, len(c.Resources))
	for i, r := range c.Resources {
		if r.ID == "" {
			errs = append(errs, fmt.Errorf("resource %d: id is required", i))
			continue
		}
		if seen[r.ID] {
			errs = append(errs, fmt.Errorf("resource %q: duplicate id", r.ID))
		}
		seen[r.ID] = true

		if r.Name == "" {
			errs = append(errs, fmt.Errorf("resource %q: name is required", r.ID))
		}
		if !r.Category.Valid() {
			errs = append(errs, fmt.Errorf("resource %q: unknown category %q", r.ID, r.Category))
		}
		if r.Coverage.National && len(r.Coverage.Cities) > 0 {
			errs = append(errs, fmt.Errorf("resource %q: coverage cannot be both national and city-scoped", r.ID))
		}
		if !r.Coverage.National && len(r.Coverage.Cities) == 0 {
			errs = append(errs, fmt.Errorf("resource %q: coverage needs at least one city", r.ID))
		}
		for _, tag := range r.Tags {
			if tag != strings.ToLower(tag) {
				errs = append(errs, fmt.Errorf("resource %q: tag %q must be lowercase", r.ID, tag))
			}
		}
	}

	for term, cat := range c.Clusters {
		if term != strings.ToLower(term) {
			errs = append(errs, fmt.Errorf("keyword cluster %q: term must be lowercase", term))
		}
		if !cat.Valid() {
			errs = append(errs, fmt.Errorf("keyword cluster %q: unknown category %q", term, cat))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
