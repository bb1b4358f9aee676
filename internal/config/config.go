// Package config handles loading the gate's configuration.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/adrianpk/blockgate/internal/policy"
)

// Config tunes the gate. The configuration file is optional: the markers
// themselves carry the protection intent, this file only adjusts how they
// are found and reported.
type Config struct {
	Version       int      `yaml:"version"`
	Markers       []string `yaml:"markers"`
	ProtectConfig bool     `yaml:"protect_config"`
	Debug         bool     `yaml:"debug"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Version:       1,
		Markers:       append([]string(nil), policy.DefaultMarkers...),
		ProtectConfig: true,
	}
}

// Load loads configuration. If a local config exists in the working
// directory it is used; otherwise the global config is used. A missing or
// broken config file must never disable the gate, so both cases fall back
// to defaults.
func Load() *Config {
	cfg := Default()

	path := localConfigPath()
	if path == "" || !exists(path) {
		path = globalConfigPath()
	}
	if path == "" || !exists(path) {
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return Default()
	}

	// Marker names listed in the file extend the recognized set; the
	// defaults always stay active.
	cfg.Markers = appendUnique(append([]string(nil), policy.DefaultMarkers...), cfg.Markers)

	return cfg
}

func appendUnique(base, items []string) []string {
	seen := make(map[string]bool)
	for _, s := range base {
		seen[s] = true
	}
	result := base
	for _, s := range items {
		if !seen[s] {
			result = append(result, s)
			seen[s] = true
		}
	}
	return result
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func localConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.Join(cwd, ".blockgate.yml")
}

func globalConfigPath() string {
	dir := policy.SelfConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yml")
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	return globalConfigPath()
}
