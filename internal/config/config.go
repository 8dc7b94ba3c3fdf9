package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the game-side configuration document. Fields omitted from the
// YAML file keep their defaults.
type Config struct {
	Version     string  `yaml:"version" json:"version"`
	CatalogPath string  `yaml:"catalog_path" json:"catalog_path"`
	Game        Balance `yaml:"game" json:"game"`
}

// Load reads a config file, layering it over the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{Game: Default()}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
