package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/philipp01105/safelog/logger"
)

// Config is the YAML-backed logging configuration. Category levels use
// the same dot-separated names the registry resolves:
//
//	root: info
//	categories:
//	  app.db: debug
//	  app.net: warn
type Config struct {
	// Root is the root category level name; empty keeps the current level
	Root string `yaml:"root"`
	// Categories maps category names to level names
	Categories map[string]string `yaml:"categories"`
}

// Parse decodes and validates a YAML configuration document. Unknown
// level names are rejected rather than silently defaulted, so a typo in
// a config file fails loudly.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if cfg.Root != "" {
		if _, err := logger.ParseLevelStrict(cfg.Root); err != nil {
			return nil, fmt.Errorf("config: root: %w", err)
		}
	}
	for name, level := range cfg.Categories {
		if _, err := logger.ParseLevelStrict(level); err != nil {
			return nil, fmt.Errorf("config: category %q: %w", name, err)
		}
	}
	return &cfg, nil
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Apply updates the registry's category levels from the configuration.
// Parent entries are applied before their children, so a config that
// sets both "app" and "app.db" gives the subtree the parent level first
// and the more specific level after.
func (c *Config) Apply(reg *logger.Registry) {
	if c.Root != "" {
		level, _ := logger.ParseLevelStrict(c.Root)
		reg.SetLevel("", level, true)
	}

	names := make([]string, 0, len(c.Categories))
	for name := range c.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		level, _ := logger.ParseLevelStrict(c.Categories[name])
		reg.SetLevel(name, level, true)
	}
}

// ApplyFile is the Load-then-Apply convenience used at startup and by
// the watcher.
func ApplyFile(path string, reg *logger.Registry) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	cfg.Apply(reg)
	return nil
}
