// Package config handles .nerdash.yaml and .nerdash.toml configuration files.
package config

// Config represents the contents of a nerdash config file.
type Config struct {
	Title    string         `yaml:"title,omitempty" toml:"title,omitempty"`
	Strict   *bool          `yaml:"strict,omitempty" toml:"strict,omitempty"`
	Generate GenerateConfig `yaml:"generate,omitempty" toml:"generate,omitempty"`
	Refresh  RefreshConfig  `yaml:"refresh,omitempty" toml:"refresh,omitempty"`
	Stats    StatsConfig    `yaml:"stats,omitempty" toml:"stats,omitempty"`
	Export   ExportConfig   `yaml:"export,omitempty" toml:"export,omitempty"`
}

// GenerateConfig holds defaults for the generate command.
type GenerateConfig struct {
	Input  string `yaml:"input,omitempty" toml:"input,omitempty"`
	Output string `yaml:"output,omitempty" toml:"output,omitempty"`
}

// RefreshConfig holds defaults for the refresh command.
type RefreshConfig struct {
	Input     string `yaml:"input,omitempty" toml:"input,omitempty"`
	Dashboard string `yaml:"dashboard,omitempty" toml:"dashboard,omitempty"`
}

// StatsConfig holds defaults for the stats command.
type StatsConfig struct {
	Format string `yaml:"format,omitempty" toml:"format,omitempty"`
}

// ExportConfig holds defaults for the export command.
type ExportConfig struct {
	// Dir is where CSV exports are written when no output file is given.
	Dir string `yaml:"dir,omitempty" toml:"dir,omitempty"`
}

// File names looked up in the working directory. YAML wins when both exist.
const (
	FileName     = ".nerdash.yaml"
	TOMLFileName = ".nerdash.toml"
)

// Built-in defaults applied beneath every config layer.
const (
	DefaultGenerateInput    = "output.json"
	DefaultGenerateOutput   = "ner_dashboard.html"
	DefaultRefreshInput     = "output/output.json"
	DefaultRefreshDashboard = "vis/dashboard.html"
	DefaultStatsFormat      = "table"
)

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Generate: GenerateConfig{Input: DefaultGenerateInput, Output: DefaultGenerateOutput},
		Refresh:  RefreshConfig{Input: DefaultRefreshInput, Dashboard: DefaultRefreshDashboard},
		Stats:    StatsConfig{Format: DefaultStatsFormat},
	}
}

// StrictEnabled reports whether strict mode is switched on.
func (c *Config) StrictEnabled() bool {
	return c.Strict != nil && *c.Strict
}
