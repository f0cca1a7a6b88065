package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileNames are the configuration files looked up by default, in order.
var FileNames = []string{".gitlineage.json", ".gitlineage.yaml", ".gitlineage.yml"}

// Config is the root configuration structure.
type Config struct {
	Repository RepositoryConfig `json:"repository" yaml:"repository"`
	Lineage    LineageConfig    `json:"lineage" yaml:"lineage"`
	Output     OutputConfig     `json:"output" yaml:"output"`
	Refs       RefsConfig       `json:"refs" yaml:"refs"`
}

// RepositoryConfig holds repository access configuration.
type RepositoryConfig struct {
	Backend string `json:"backend" yaml:"backend"` // "go-git" or "git"
}

// LineageConfig holds graph construction configuration.
type LineageConfig struct {
	CacheSize int `json:"cacheSize" yaml:"cacheSize"` // Reachability cache entries, 0 disables
}

// OutputConfig holds rendering configuration.
type OutputConfig struct {
	Format          string `json:"format" yaml:"format"`                   // dot, json, mermaid, console
	ShortHashLength int    `json:"shortHashLength" yaml:"shortHashLength"` // Default: 7
}

// RefsConfig holds ref selection configuration.
type RefsConfig struct {
	Match []string `json:"match" yaml:"match"` // Glob patterns of refs added to every graph
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Repository: RepositoryConfig{
			Backend: "go-git",
		},
		Lineage: LineageConfig{
			CacheSize: 4096,
		},
		Output: OutputConfig{
			Format:          "dot",
			ShortHashLength: 7,
		},
		Refs: RefsConfig{
			Match: []string{},
		},
	}
}

// Validate checks that configured values are usable.
func (c *Config) Validate() error {
	switch c.Repository.Backend {
	case "go-git", "git":
	default:
		return fmt.Errorf("repository.backend must be \"go-git\" or \"git\", got %q", c.Repository.Backend)
	}
	if c.Lineage.CacheSize < 0 {
		return fmt.Errorf("lineage.cacheSize must not be negative, got %d", c.Lineage.CacheSize)
	}
	if c.Output.ShortHashLength < 4 || c.Output.ShortHashLength > 40 {
		return fmt.Errorf("output.shortHashLength must be between 4 and 40, got %d", c.Output.ShortHashLength)
	}
	return nil
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := append([]string(nil), FileNames...)
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			home = os.Getenv("HOME")
		}
		if home != "" {
			for _, name := range FileNames {
				candidates = append(candidates, filepath.Join(home, name))
			}
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file. Files ending in .yaml or .yml
// are written as YAML, everything else as JSON.
func SaveConfig(cfg *Config, path string) error {
	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
