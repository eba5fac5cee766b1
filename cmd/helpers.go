package cmd

import (
	"fmt"
	"os"

	"github.com/moeloubani/language-transfer-hub-sub000/internal/comparison"
	"github.com/moeloubani/language-transfer-hub-sub000/internal/config"
	"github.com/moeloubani/language-transfer-hub-sub000/internal/dataset"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `langhub init` to create a config file", err)
	}
	return cfg, nil
}

// loadRegistry loads the comparison dataset, either from the directory
// configured via data_dir or from the embedded copy shipped in the binary.
func loadRegistry(cfg *config.Config) (*comparison.Registry, error) {
	if cfg.DataDir != "" {
		reg, err := dataset.LoadDir(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("loading dataset from %s: %w", cfg.DataDir, err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Loaded %d pairs from %s\n", reg.Len(), cfg.DataDir)
		}
		return reg, nil
	}
	reg, err := dataset.Load()
	if err != nil {
		return nil, fmt.Errorf("loading embedded dataset: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Loaded %d pairs from the embedded dataset\n", reg.Len())
	}
	return reg, nil
}
