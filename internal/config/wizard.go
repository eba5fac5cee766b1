package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// highlightThemes are the chroma styles offered by the wizard. Any valid
// chroma style name works in the config file; these are the curated ones.
var highlightThemes = []string{"github", "monokai", "dracula", "solarized-light", "nord"}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string, languages []string) (*Config, error) {
	fmt.Println("Welcome to langhub! Let's configure your comparison hub.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port for the local server",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port selection: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 2. Highlight theme.
	themePrompt := promptui.Select{
		Label: "Select syntax highlighting theme",
		Items: highlightThemes,
	}
	_, cfg.Theme, err = themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}

	// 3. Default pair.
	if len(languages) > 0 {
		sourcePrompt := promptui.Select{Label: "Default source language", Items: languages}
		_, cfg.DefaultSource, err = sourcePrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("source selection: %w", err)
		}
		targetPrompt := promptui.Select{Label: "Default target language", Items: languages}
		_, cfg.DefaultTarget, err = targetPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("target selection: %w", err)
		}
	}

	// 4. Static build output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for static builds",
		Default: cfg.OutputDir,
	}
	cfg.OutputDir, err = outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 5. Pair filters for static builds.
	includePrompt := promptui.Prompt{
		Label:   "Pair patterns to build (comma-separated globs over source-target keys)",
		Default: strings.Join(cfg.Include, ","),
	}
	includeStr, err := includePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("include patterns: %w", err)
	}
	cfg.Include = splitAndTrim(includeStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Printf("\nConfiguration written to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty entries.
func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
