package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds the contents of .uipatterns/config.yaml.
type ProjectConfig struct {
	Version      string `yaml:"version"`
	PatternsPath string `yaml:"patterns_path"`
	LogFile      string `yaml:"log_file"`
}

// loadProjectConfig reads .uipatterns/config.yaml from the current directory.
// Returns nil (no error) if the file does not exist.
func loadProjectConfig() (*ProjectConfig, error) {
	data, err := os.ReadFile(".uipatterns/config.yaml")
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolvePatternsPath returns the external patterns file to use, applying the
// fallback chain:
//  1. Explicit --patterns flag value (non-empty override)
//  2. patterns_path from .uipatterns/config.yaml
//  3. Empty: use the bundled library
//
// A config file that exists but fails to parse is an error, not a silent
// fallback to the bundled library.
func resolvePatternsPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	cfg, err := loadProjectConfig()
	if err != nil {
		return "", fmt.Errorf("failed to read .uipatterns/config.yaml: %w", err)
	}
	if cfg != nil {
		return cfg.PatternsPath, nil
	}
	return "", nil
}

// resolveLogFile returns the tool-call log path, flag first, then config.
func resolveLogFile(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	cfg, err := loadProjectConfig()
	if err != nil {
		return "", fmt.Errorf("failed to read .uipatterns/config.yaml: %w", err)
	}
	if cfg != nil {
		return cfg.LogFile, nil
	}
	return "", nil
}
