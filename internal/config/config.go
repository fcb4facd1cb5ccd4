// Package config loads the evaluate run configuration from a YAML or JSON
// file. Flags override whatever the file sets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config collects every knob of an evaluate run. Zero values mean "use the
// default"; Normalize fills those in.
type Config struct {
	// Input is the dataset root holding index.csv and the revision trees.
	Input string `yaml:"input" json:"input"`
	// Out is the report directory (report.csv, files/, run DB).
	Out string `yaml:"out" json:"out"`
	// Renderer selects the predicted-variant source: stub, oracle or http.
	Renderer string `yaml:"renderer" json:"renderer"`
	// RendererURL is the base URL of the rendering service (http renderer).
	RendererURL string `yaml:"renderer_url" json:"renderer_url"`
	// TokenFile holds the bearer token for the rendering service.
	TokenFile string `yaml:"token_file" json:"token_file"`
	// Parallel bounds concurrent file evaluations.
	Parallel int `yaml:"parallel" json:"parallel"`
	// DB is the run store path; empty means <out>/runs.db.
	DB string `yaml:"db" json:"db"`
	// Demo names an embedded scenario to evaluate instead of a dataset.
	Demo string `yaml:"demo" json:"demo"`
	// MaxLineLen is the line-length limit for dataset files (0 = default).
	MaxLineLen int `yaml:"max_line_len" json:"max_line_len"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input:    ".",
		Out:      "styleval-report",
		Renderer: "stub",
		Parallel: 1,
	}
}

// Load reads a config file into the given base configuration. YAML and JSON
// both parse; JSON is a YAML subset, so one decoder covers the two.
func Load(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Normalize fills defaults for unset fields and validates the renderer
// choice.
func (c *Config) Normalize() error {
	def := Default()
	if c.Input == "" {
		c.Input = def.Input
	}
	if c.Out == "" {
		c.Out = def.Out
	}
	if c.Renderer == "" {
		c.Renderer = def.Renderer
	}
	if c.Parallel < 1 {
		c.Parallel = 1
	}
	switch c.Renderer {
	case "stub", "oracle":
	case "http":
		if c.RendererURL == "" {
			return fmt.Errorf("renderer %q requires renderer_url", c.Renderer)
		}
	default:
		return fmt.Errorf("unknown renderer %q (want stub, oracle or http)", c.Renderer)
	}
	return nil
}
