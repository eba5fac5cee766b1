package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.Theme != "github" {
		t.Errorf("expected default theme %q, got %q", "github", cfg.Theme)
	}
	if cfg.DefaultTab != string(TabSyntax) {
		t.Errorf("expected default tab %q, got %q", TabSyntax, cfg.DefaultTab)
	}
	if cfg.OutputDir != "site" {
		t.Errorf("expected default output_dir %q, got %q", "site", cfg.OutputDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.langhub.yml")

	original := DefaultConfig()
	original.Port = 9090
	original.Theme = "monokai"
	original.DefaultSource = "python"
	original.DefaultTarget = "go"
	original.DefaultTab = string(TabPitfalls)
	original.Include = []string{"java-*", "python-go"}
	original.OutputDir = "public"

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.Theme != original.Theme {
		t.Errorf("theme: got %q, want %q", loaded.Theme, original.Theme)
	}
	if loaded.DefaultSource != original.DefaultSource {
		t.Errorf("default_source: got %q, want %q", loaded.DefaultSource, original.DefaultSource)
	}
	if loaded.DefaultTab != original.DefaultTab {
		t.Errorf("default_tab: got %q, want %q", loaded.DefaultTab, original.DefaultTab)
	}
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if len(loaded.Include) != len(original.Include) {
		t.Fatalf("include length: got %d, want %d", len(loaded.Include), len(original.Include))
	}
	for i, v := range loaded.Include {
		if v != original.Include[i] {
			t.Errorf("include[%d]: got %q, want %q", i, v, original.Include[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	os.Setenv("LANGHUB_THEME", "dracula")
	defer os.Unsetenv("LANGHUB_THEME")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Theme != "dracula" {
		t.Errorf("env override not applied: theme = %q", loaded.Theme)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")

	// A config file that parses but fails validation must be rejected
	// at load time, before any command acts on it.
	if err := os.WriteFile(path, []byte("default_tab: summary\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load accepted a config with an invalid default_tab")
	}

	if err := os.WriteFile(path, []byte("port: 70000\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load accepted a config with an out-of-range port")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero port", func(c *Config) { c.Port = 0 }, true},
		{"huge port", func(c *Config) { c.Port = 70000 }, true},
		{"empty theme", func(c *Config) { c.Theme = "" }, true},
		{"bad tab", func(c *Config) { c.DefaultTab = "summary" }, true},
		{"empty tab ok", func(c *Config) { c.DefaultTab = "" }, false},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, true},
		{"missing data dir", func(c *Config) { c.DataDir = "/definitely/not/here" }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestValidTab(t *testing.T) {
	for _, tab := range Tabs {
		if !ValidTab(string(tab)) {
			t.Errorf("ValidTab(%q) = false", tab)
		}
	}
	if ValidTab("overview") {
		t.Error("ValidTab(overview) = true, want false")
	}
}
