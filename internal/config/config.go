// Package config loads and persists user preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fenilsonani/macsweep/pkg/utils"
)

// Config represents the application configuration
type Config struct {
	// ScanPath overrides the root for path-scoped cleaners
	// (ds-store, large-files). Empty means the home directory.
	ScanPath string `yaml:"scan_path"`

	// LargeFileMinSize is the large-files floor, e.g. "100MB".
	LargeFileMinSize string `yaml:"large_file_min_size"`

	// DuplicateRoots overrides the directories the duplicate finder
	// walks. Empty means Documents, Downloads, Desktop and Pictures.
	DuplicateRoots []string `yaml:"duplicate_roots"`

	// DuplicateMinSize and DuplicateMaxSize bound which files the
	// duplicate finder considers, e.g. "1MB" and "500MB". Empty keeps
	// the defaults.
	DuplicateMinSize string `yaml:"duplicate_min_size"`
	DuplicateMaxSize string `yaml:"duplicate_max_size"`

	// DisabledCategories are never scanned or cleaned.
	DisabledCategories []string `yaml:"disabled_categories"`

	// ReportPath is where `clean --report` writes its summary.
	// Empty means ~/macsweep-report.txt.
	ReportPath string `yaml:"report_path"`
}

// GetDefault returns the default configuration
func GetDefault() *Config {
	return &Config{
		LargeFileMinSize: "100MB",
	}
}

// LargeFileMinBytes parses the configured large-file floor.
func (c *Config) LargeFileMinBytes() int64 { return parseSizeOrZero(c.LargeFileMinSize) }

// DuplicateMinBytes parses the duplicate finder's lower size bound.
func (c *Config) DuplicateMinBytes() int64 { return parseSizeOrZero(c.DuplicateMinSize) }

// DuplicateMaxBytes parses the duplicate finder's upper size bound.
func (c *Config) DuplicateMaxBytes() int64 { return parseSizeOrZero(c.DuplicateMaxSize) }

func parseSizeOrZero(size string) int64 {
	if size == "" {
		return 0
	}
	n, err := utils.ParseSize(size)
	if err != nil {
		return 0
	}
	return n
}

// CategoryDisabled reports whether a category is switched off.
func (c *Config) CategoryDisabled(name string) bool {
	for _, disabled := range c.DisabledCategories {
		if disabled == name {
			return true
		}
	}
	return false
}

// Load loads configuration from a file
func Load(configPath string) (*Config, error) {
	// If config doesn't exist, return default config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefault(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Save saves configuration to a file
func Save(config *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.LargeFileMinSize != "" {
		if _, err := utils.ParseSize(c.LargeFileMinSize); err != nil {
			return fmt.Errorf("invalid large_file_min_size: %w", err)
		}
	}

	if c.DuplicateMinSize != "" {
		if _, err := utils.ParseSize(c.DuplicateMinSize); err != nil {
			return fmt.Errorf("invalid duplicate_min_size: %w", err)
		}
	}
	if c.DuplicateMaxSize != "" {
		if _, err := utils.ParseSize(c.DuplicateMaxSize); err != nil {
			return fmt.Errorf("invalid duplicate_max_size: %w", err)
		}
	}

	if c.ScanPath != "" && !filepath.IsAbs(c.ScanPath) {
		return fmt.Errorf("scan_path must be absolute: %s", c.ScanPath)
	}

	for _, root := range c.DuplicateRoots {
		if !filepath.IsAbs(root) {
			return fmt.Errorf("duplicate root must be absolute: %s", root)
		}
	}

	return nil
}

// GetConfigPath returns the default config path
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(homeDir, ".config", "macsweep")
	return filepath.Join(configDir, "config.yaml"), nil
}

// EnsureConfigExists creates a default config file if it doesn't exist
func EnsureConfigExists() (string, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(GetDefault(), configPath); err != nil {
			return "", err
		}
	}

	return configPath, nil
}
