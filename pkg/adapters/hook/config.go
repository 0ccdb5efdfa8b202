package hook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config defines one command triggered by reduced changes.
type Config struct {
	Name    string   `yaml:"name" json:"name"`
	On      []string `yaml:"on" json:"on"` // change kinds; empty matches every change
	Command string   `yaml:"command" json:"command"`
	Args    []string `yaml:"args" json:"args"`
}

// ConfigFile represents the structure of hooks.yaml
type ConfigFile struct {
	Hooks []Config `yaml:"hooks" json:"hooks"`
}

// LoadConfigs reads a configuration file (YAML or JSON) and returns the hook
// list in declaration order. A missing file means "no hooks configured".
func LoadConfigs(path string) ([]Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Config{}, nil
		}
		return nil, fmt.Errorf("failed to read hooks config: %w", err)
	}

	var cfg ConfigFile
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse hooks.json: %w", err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse hooks.yaml: %w", err)
		}
	}

	hooks := make([]Config, 0, len(cfg.Hooks))
	for _, h := range cfg.Hooks {
		if h.Name == "" || h.Command == "" {
			continue
		}
		hooks = append(hooks, h)
	}

	return hooks, nil
}
