package config

// DefaultExcludes are pair patterns skipped by static builds by default.
var DefaultExcludes = []string{}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:          8080,
		Theme:         "github",
		DefaultSource: "java",
		DefaultTarget: "python",
		DefaultTab:    string(TabSyntax),
		OutputDir:     "site",
		Include:       []string{"**"},
		Exclude:       DefaultExcludes,
	}
}
