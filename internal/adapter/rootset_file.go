package adapter

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/rootscan/internal/model"
)

// rootSetFile represents the structure of a root-set YAML file.
type rootSetFile struct {
	Sets map[string][]string `yaml:"sets"`
}

// ParseRootSetFile reads a YAML file of named root sets. Sets are returned in
// name order; blank roots are dropped while the order of the rest is kept.
func ParseRootSetFile(path m.Path) ([]m.RootSet, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var file rootSetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	sets := make([]m.RootSet, 0, len(file.Sets))

	for name, roots := range file.Sets {
		cleaned := make([]string, 0, len(roots))
		for _, root := range roots {
			root = strings.TrimSpace(root)
			if root != "" {
				cleaned = append(cleaned, root)
			}
		}

		sets = append(sets, m.RootSet{Name: name, Roots: cleaned})
	}

	sort.Slice(sets, func(i, j int) bool {
		return sets[i].Name < sets[j].Name
	})

	return sets, nil
}
