package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalogFile(t, `
[[resources]]
id = "test-hub"
name = "Test Hub"
category = "workspace"
description = "Desks and meeting rooms."
tags = ["desk", "meeting"]
availability = "Weekdays"
proof_required = "Membership card"
highlights = ["Standing desks"]

[resources.coverage]
cities = ["Springfield"]

[[resources]]
id = "test-pantry"
name = "Test Pantry"
category = "food"
description = "Groceries for anyone."
tags = ["groceries"]
availability = "Daily"
highlights = []

[resources.coverage]
national = true
`)

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cat.Len() != 2 {
		t.Fatalf("got %d resources, want 2", cat.Len())
	}

	hub := cat.Get("test-hub")
	if hub == nil {
		t.Fatal("test-hub missing")
	}
	if hub.ProofRequired == nil || *hub.ProofRequired != "Membership card" {
		t.Errorf("ProofRequired = %v", hub.ProofRequired)
	}
	if hub.Notes != nil {
		t.Errorf("Notes = %v, want nil for absent field", hub.Notes)
	}
	if hub.Coverage.IsNational() || len(hub.Coverage.Cities) != 1 {
		t.Errorf("Coverage = %+v", hub.Coverage)
	}

	pantry := cat.Get("test-pantry")
	if pantry == nil || !pantry.Coverage.IsNational() {
		t.Errorf("test-pantry coverage = %+v", pantry)
	}

	// A file without clusters keeps the builtin cluster table.
	if len(cat.Clusters) == 0 {
		t.Error("clusters empty, want builtin fallback")
	}
}

func TestLoadCustomClusters(t *testing.T) {
	path := writeCatalogFile(t, `
[[resources]]
id = "test-pantry"
name = "Test Pantry"
category = "food"
description = "Groceries."
tags = ["groceries"]
availability = "Daily"
highlights = []

[resources.coverage]
national = true

[clusters]
snack = "food"
`)

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cat.Clusters) != 1 || cat.Clusters["snack"] != CategoryFood {
		t.Errorf("Clusters = %v", cat.Clusters)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Load() error = %v, want not-found error", err)
	}
}

func TestLoadInvalidCatalog(t *testing.T) {
	path := writeCatalogFile(t, `
[[resources]]
id = "broken"
name = "Broken"
category = "parking"
description = "Bad category."
tags = []
availability = "Never"
highlights = []

[resources.coverage]
national = true
`)

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "unknown category") {
		t.Errorf("Load() error = %v, want validation error", err)
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	path := writeCatalogFile(t, "this is not toml [")

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("Load() error = %v, want parse error", err)
	}
}
