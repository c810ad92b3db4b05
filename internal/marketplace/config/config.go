// Package config loads the marketplace configuration. Configuration is a
// TOML file; every field has a working default so the marketplace runs with
// no config file at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// StorageConfig holds persistence-related configuration
type StorageConfig struct {
	Backend string `toml:"backend"` // Storage backend: "sqlite" or "memory"
	Path    string `toml:"path"`    // Path to the sqlite database file
	Key     string `toml:"key"`     // Logical key the catalog is stored under
}

// ConfigParam holds all configuration parameters for the marketplace
type ConfigParam struct {
	// Configuration version
	FormatVersion string `toml:"format_version"` // Version of this configuration file format

	// Logging configuration
	LogLevel string `toml:"log_level"` // Log level: debug, info, warn, error, disabled

	// Import configuration
	StrictImport bool `toml:"strict_import"` // Whether imported records are schema-validated

	// Collation configuration
	Collation string `toml:"collation"` // BCP 47 language tag for name ordering

	// Storage configuration
	Storage StorageConfig `toml:"storage"`
}

// CollationTag returns the configured collation language, falling back to
// English for unparseable tags.
func (c *ConfigParam) CollationTag() language.Tag {
	tag, err := language.Parse(c.Collation)
	if err != nil {
		return language.English
	}
	return tag
}

var config *ConfigParam

// Config returns the current configuration. LoadConfig or TestInit must be
// called first.
func Config() *ConfigParam {
	return config
}

// DefaultConfigPath returns the default location of the config file under
// the OS-specific user config directory.
func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "seismic-marketplace", "config.toml"), nil
}

// defaultConfig returns the built-in configuration.
func defaultConfig() (*ConfigParam, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user config directory: %w", err)
	}
	return &ConfigParam{
		FormatVersion: "0.1.0",
		LogLevel:      "warn",
		Collation:     "en",
		Storage: StorageConfig{
			Backend: "sqlite",
			Path:    filepath.Join(configDir, "seismic-marketplace", "marketplace.db"),
			Key:     "scm_contracts_v1",
		},
	}, nil
}

// LoadConfig loads configuration from the given file. An empty path selects
// the default location; a missing file at the default location is not an
// error and yields the built-in defaults. File values override defaults
// field by field.
func LoadConfig(file string) error {
	cfg, err := defaultConfig()
	if err != nil {
		return err
	}

	explicit := file != ""
	if !explicit {
		file, err = DefaultConfigPath()
		if err != nil {
			return err
		}
	}

	if _, statErr := os.Stat(file); statErr != nil {
		if explicit {
			return fmt.Errorf("unable to read config file: %w", statErr)
		}
		config = cfg
		return nil
	}

	if _, err := toml.DecodeFile(file, cfg); err != nil {
		return fmt.Errorf("unable to parse config file %s: %w", file, err)
	}

	if cfg.Storage.Backend != "sqlite" && cfg.Storage.Backend != "memory" {
		return fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
	if cfg.Storage.Key == "" {
		return fmt.Errorf("storage key must not be empty")
	}

	config = cfg
	return nil
}

// TestInit installs an in-memory configuration for tests.
func TestInit() {
	config = &ConfigParam{
		FormatVersion: "0.1.0",
		LogLevel:      "disabled",
		Collation:     "en",
		Storage: StorageConfig{
			Backend: "memory",
			Key:     "scm_contracts_v1",
		},
	}
}
