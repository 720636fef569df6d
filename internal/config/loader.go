package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "blockfall.yaml"

// Load loads blockfall configuration. Keys missing from a file keep their
// default values.
// Search order: customPath -> ~/.blockfall/configs/blockfall.yaml -> ./configs/blockfall.yaml -> embedded default
func Load(customPath string) (BlockfallConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BlockfallConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return BlockfallConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(fileName), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultBlockfallYAML)
	if err != nil {
		return DefaultBlockfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults.
func Parse(data []byte) (BlockfallConfig, error) {
	cfg := DefaultBlockfallConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlockfallConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg BlockfallConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "configs", filename)
}
