// Package config provides configuration management for the seed builder.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tusseed/internal/tus"
)

// Configuration validation errors.
var (
	ErrInvalidFeature       = errors.New("seed.features contains an unknown feature")
	ErrDuplicateFeature     = errors.New("seed.features contains a duplicate feature")
	ErrInvalidOutputFormat  = errors.New("output.format must be one of: json, csv, sqlite")
	ErrInvalidLogLevel      = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat     = errors.New("logging.format must be one of: text, json")
	ErrInvalidReportFeature = errors.New("report.features contains an unknown feature")
)

// Config represents the complete seed builder configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Report  ReportConfig  `yaml:"report"`
	Seed    SeedConfig    `yaml:"seed"`
}

// SeedConfig controls which features end up in the seed.
type SeedConfig struct {
	Features           []string `yaml:"features"`
	DropMissing        bool     `yaml:"drop_missing"`
	ValidateHouseholds bool     `yaml:"validate_households"`
}

// InputConfig names the survey files. Command line arguments take precedence.
type InputConfig struct {
	Individuals string `yaml:"individuals"`
	Households  string `yaml:"households"`
}

// OutputConfig defines output behavior.
type OutputConfig struct {
	Path        string `yaml:"path"`
	Format      string `yaml:"format"`
	PrettyPrint bool   `yaml:"pretty_print"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ReportConfig defines the summary printed after a run.
type ReportConfig struct {
	Features         []string `yaml:"features"`
	Enabled          bool     `yaml:"enabled"`
	ShowDistribution bool     `yaml:"show_distribution"`
}

// DefaultConfig returns the configuration used when no file is given:
// every feature, household validation on, missing values kept.
func DefaultConfig() *Config {
	return &Config{
		Seed: SeedConfig{
			ValidateHouseholds: true,
		},
		Output: OutputConfig{
			PrettyPrint: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Report: ReportConfig{
			Enabled: true,
		},
	}
}

// LoadConfig loads configuration from YAML file. Keys absent from the file keep their defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Seed.Features))

	for i, name := range c.Seed.Features {
		f, err := tus.LookupFeature(name)
		if err != nil {
			return fmt.Errorf("%w: features[%d] %q", ErrInvalidFeature, i, name)
		}

		if seen[f.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateFeature, f.Name)
		}

		seen[f.Name] = true
	}

	for i, name := range c.Report.Features {
		if _, err := tus.LookupFeature(name); err != nil {
			return fmt.Errorf("%w: features[%d] %q", ErrInvalidReportFeature, i, name)
		}
	}

	switch strings.ToLower(c.Output.Format) {
	case "", "json", "csv", "sqlite", "sqlite3", "db":
	default:
		return ErrInvalidOutputFormat
	}

	// Validate logging config
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return ErrInvalidLogLevel
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		return ErrInvalidLogFormat
	}

	return nil
}

// FeatureNames returns the canonical names of the configured seed features.
// An empty list selects every feature.
func (c *Config) FeatureNames() []string {
	names := make([]string, 0, len(c.Seed.Features))

	for _, name := range c.Seed.Features {
		if f, err := tus.LookupFeature(name); err == nil {
			names = append(names, f.Name)
		}
	}

	return names
}

// String returns a string representation of the config.
func (c *Config) String() string {
	features := "all"
	if len(c.Seed.Features) > 0 {
		features = strings.Join(c.FeatureNames(), ",")
	}

	return fmt.Sprintf(
		"Config{Features: %s, Validate: %t, DropMissing: %t, Output: %s}",
		features,
		c.Seed.ValidateHouseholds,
		c.Seed.DropMissing,
		c.Output.Path,
	)
}
