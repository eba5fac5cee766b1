// Package dataset holds the authored comparison content. The canonical
// copy ships inside the binary as embedded YAML, one file per pair;
// content authors can point the server at a directory of the same files
// to preview edits without rebuilding.
package dataset

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/moeloubani/language-transfer-hub-sub000/internal/comparison"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Load builds the comparison registry from the embedded dataset.
func Load() (*comparison.Registry, error) {
	return loadFS(dataFS, "data")
}

// LoadDir builds the registry from *.yaml files in an on-disk directory.
func LoadDir(dir string) (*comparison.Registry, error) {
	return loadFS(os.DirFS(dir), ".")
}

func loadFS(fsys fs.FS, root string) (*comparison.Registry, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("reading dataset dir: %w", err)
	}

	records := make(map[comparison.PairKey]*comparison.LanguageComparison)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}

		key, err := comparison.ParsePairKey(strings.TrimSuffix(name, ".yaml"))
		if err != nil {
			return nil, fmt.Errorf("dataset file %s: %w", name, err)
		}

		data, err := fs.ReadFile(fsys, filepath.ToSlash(filepath.Join(root, name)))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		rec := &comparison.LanguageComparison{}
		if err := yaml.Unmarshal(data, rec); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		if _, dup := records[key]; dup {
			return nil, fmt.Errorf("duplicate dataset file for pair %s", key)
		}
		records[key] = rec
	}

	reg, err := comparison.NewRegistry(records)
	if err != nil {
		return nil, fmt.Errorf("building registry: %w", err)
	}
	return reg, nil
}
