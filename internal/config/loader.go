package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlaster loads UFO Master Blaster configuration.
// Search order: customPath -> ~/.blaster/configs/blaster.yaml -> ./configs/blaster.yaml -> embedded default
func LoadBlaster(customPath string) (BlasterConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BlasterConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseBlaster(data)
		if err != nil {
			return BlasterConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("blaster.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseBlaster(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/blaster.yaml"); err == nil {
		if cfg, err := parseBlaster(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseBlaster(defaultBlasterYAML)
	if err != nil {
		return DefaultBlasterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseBlaster decodes YAML over the defaults, so partial files only
// override the keys they mention, then validates the result.
// Unknown keys are rejected so a stray knob is not silently ignored.
func parseBlaster(data []byte) (BlasterConfig, error) {
	cfg := DefaultBlasterConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return BlasterConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BlasterConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blaster", "configs", filename)
}
