package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.gplayrc, $XDG_CONFIG_HOME/gplay/config.toml, ~/.config/gplay/config.toml
func Load() (*Config, error) {
	cfg := &Config{}

	// Try loading from file
	path := FindConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// Apply defaults, then environment variable overrides
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// FindConfigFile returns the first existing config file path, or "".
func FindConfigFile() string {
	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// DefaultPath returns where a new config file is created.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gplayrc"
	}
	return filepath.Join(home, ".gplayrc")
}

func searchPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	paths := []string{
		filepath.Join(home, ".gplayrc"),
	}

	// XDG_CONFIG_HOME or default
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	return append(paths, filepath.Join(xdgConfig, "gplay", "config.toml"))
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Station
	if v := os.Getenv("GPLAY_STATION_NUM_ENTRIES"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Station.NumEntries = i
		}
	}
	if v := os.Getenv("GPLAY_STATION_MAX_RESULTS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Station.MaxResults = i
		}
	}

	// Output
	if v := os.Getenv("GPLAY_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}

	// Log
	if v := os.Getenv("GPLAY_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("GPLAY_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
