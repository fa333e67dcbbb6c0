// Package config loads the optional YAML generation config. A config file
// is equivalent to the generate command's flags; it exists so repeated runs
// can be checked into the source tree.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config describes one generation run.
type Config struct {
	// Spec is a path or HTTP(S) URL of the OpenAPI document.
	Spec    string   `yaml:"spec"`
	Targets []Target `yaml:"targets"`
}

// Target selects an emitter and where its output goes.
type Target struct {
	// Type names the registered emitter; "rust" is the only built-in.
	Type   string `yaml:"type"`
	OutDir string `yaml:"outDir"`
}

// Load reads and validates a YAML config file. Relative paths are
// absolutized against the working directory, except when the spec is a URL.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Spec == "" {
		return nil, errors.New("config.spec is required")
	}
	if len(cfg.Targets) == 0 {
		return nil, errors.New("config.targets must list at least one target")
	}
	for i := range cfg.Targets {
		t := &cfg.Targets[i]
		if t.Type == "" {
			t.Type = "rust"
		}
		if t.OutDir == "" {
			return nil, fmt.Errorf("targets[%d] missing required field outDir", i)
		}
		if !filepath.IsAbs(t.OutDir) {
			abs, err := filepath.Abs(t.OutDir)
			if err != nil {
				return nil, err
			}
			t.OutDir = abs
		}
	}
	if u, err := url.Parse(cfg.Spec); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		// keep URLs as-is
	} else if !filepath.IsAbs(cfg.Spec) {
		abs, err := filepath.Abs(cfg.Spec)
		if err != nil {
			return nil, err
		}
		cfg.Spec = abs
	}
	return &cfg, nil
}
