// Package config holds the generator manifest.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the YAML manifest controlling a generation run. Budgets maps
// item names to triangle budget overrides; items without an entry keep
// their built in budget.
type Config struct {
	OutputDir  string         `yaml:"output_dir"`
	ListenAddr string         `yaml:"listen_addr"`
	LogLevel   string         `yaml:"log_level"`
	LogFile    string         `yaml:"log_file"`
	Budgets    map[string]int `yaml:"budgets"`
}

// Default returns the manifest defaults.
func Default() *Config {
	return &Config{
		OutputDir:  "assets/meshes/items",
		ListenAddr: ":8000",
		LogLevel:   "info",
	}
}

// Load reads the YAML manifest at path on top of the defaults. An empty
// path returns the defaults unchanged; flags are applied by the caller on
// top of the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read config %q", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "Failed to parse config %q", path)
	}
	return cfg, nil
}

// Budget returns the triangle budget for an item, preferring a manifest
// override over the built in default.
func (c *Config) Budget(name string, builtin int) int {
	if budget, ok := c.Budgets[name]; ok {
		return budget
	}
	return builtin
}
