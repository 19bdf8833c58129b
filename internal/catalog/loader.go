package catalog

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// catalogFile is the on-disk TOML shape of a catalog override
type catalogFile struct {
	Resources []ResourceRecord    `toml:"resources"`
	Clusters  map[string]Category `toml:"clusters"`
}

// Load reads a catalog from a TOML file. The file replaces the builtin
// catalog entirely; if it defines no keyword clusters, the builtin
// cluster table is kept so intent matching still works.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	cat := &Catalog{
		Resources: file.Resources,
		Clusters:  file.Clusters,
	}
	if len(cat.Clusters) == 0 {
		cat.Clusters = builtinClusters
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	return cat, nil
}
