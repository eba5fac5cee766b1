package config

// Tab identifies one of the comparison views.
type Tab string

const (
	TabSyntax      Tab = "syntax"
	TabPitfalls    Tab = "pitfalls"
	TabDifferences Tab = "differences"
	TabFrameworks  Tab = "frameworks"
)

// Tabs lists the views in display order.
var Tabs = []Tab{TabSyntax, TabPitfalls, TabDifferences, TabFrameworks}

// ValidTab reports whether s names a known tab.
func ValidTab(s string) bool {
	for _, t := range Tabs {
		if string(t) == s {
			return true
		}
	}
	return false
}

// Config is the top-level langhub configuration, corresponding to .langhub.yml.
type Config struct {
	Port            int      `yaml:"port" koanf:"port"`
	Theme           string   `yaml:"theme" koanf:"theme"`
	DefaultSource   string   `yaml:"default_source" koanf:"default_source"`
	DefaultTarget   string   `yaml:"default_target" koanf:"default_target"`
	DefaultTab      string   `yaml:"default_tab" koanf:"default_tab"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	DataDir         string   `yaml:"data_dir" koanf:"data_dir"`
	OutputDir       string   `yaml:"output_dir" koanf:"output_dir"`
	Include         []string `yaml:"include" koanf:"include"`
	Exclude         []string `yaml:"exclude" koanf:"exclude"`
	LiveReload      bool     `yaml:"live_reload" koanf:"live_reload"`
}
