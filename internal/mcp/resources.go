package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/freeatlas/resourcefinder/internal/catalog"
)

// Resource defines an MCP resource
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

// ResourceDefinitions lists all available resources
var ResourceDefinitions = []Resource{
	{
		URI:         "resourcefinder://catalog",
		Name:        "Resource Catalog",
		Description: "All community resources with categories, tags, and coverage",
		MimeType:    "text/plain",
	},
	{
		URI:         "resourcefinder://categories",
		Name:        "Categories",
		Description: "The fixed resource categories and their display labels",
		MimeType:    "text/plain",
	},
}

// resourcesListResult is the response for resources/list
type resourcesListResult struct {
	Resources []Resource `json:"resources"`
}

// readResourceParams is the params for resources/read
type readResourceParams struct {
	URI string `json:"uri"`
}

// readResourceResult is the response for resources/read
type readResourceResult struct {
	Contents []resourceContent `json:"contents"`
}

type resourceContent struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
}

func (s *Server) handleReadResource(ctx context.Context, uri string) (string, error) {
	switch uri {
	case "resourcefinder://catalog":
		return s.catalogText(), nil
	case "resourcefinder://categories":
		return s.categoriesText(), nil
	default:
		return "", fmt.Errorf("unknown resource: %s", uri)
	}
}

func (s *Server) catalogText() string {
	var b strings.Builder

	for _, r := range s.catalog.Resources {
		coverage := "national"
		if !r.Coverage.IsNational() {
			coverage = strings.Join(r.Coverage.Cities, ", ")
		}

		fmt.Fprintf(&b, "%s (%s) [%s]\n", r.Name, r.ID, r.Category.Label())
		fmt.Fprintf(&b, "  %s\n", r.Description)
		fmt.Fprintf(&b, "  Tags: %s\n", strings.Join(r.Tags, ", "))
		fmt.Fprintf(&b, "  Coverage: %s\n", coverage)
		fmt.Fprintf(&b, "  Availability: %s\n", r.Availability)
		if r.ProofRequired != nil {
			fmt.Fprintf(&b, "  Bring: %s\n", *r.ProofRequired)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (s *Server) categoriesText() string {
	var b strings.Builder

	// Deterministic order: walk the catalog rather than the map.
	seen := make(map[catalog.Category]bool)
	for _, r := range s.catalog.Resources {
		if seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		fmt.Fprintf(&b, "%s: %s\n", r.Category, r.Category.Label())
	}

	return b.String()
}
