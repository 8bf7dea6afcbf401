// Package config provides configuration management for semed.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats for edited documents.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Input formats. FormatAuto picks by file extension.
const (
	FormatAuto = "auto"
)

// Config holds the semed configuration.
type Config struct {
	Catalog      string `yaml:"catalog,omitempty"`
	OutputFormat string `yaml:"output_format,omitempty"`
	InputFormat  string `yaml:"input_format,omitempty"`
}

// Validate checks that the configured formats are known. Empty values mean
// the defaults.
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case "", FormatHTML, FormatMarkdown, FormatJSON:
	default:
		return fmt.Errorf("invalid output_format %q: must be html, markdown or json", c.OutputFormat)
	}
	switch c.InputFormat {
	case "", FormatAuto, FormatHTML, FormatMarkdown:
	default:
		return fmt.Errorf("invalid input_format %q: must be auto, html or markdown", c.InputFormat)
	}
	return nil
}

// Output returns the output format, defaulting to html.
func (c *Config) Output() string {
	if c.OutputFormat == "" {
		return FormatHTML
	}
	return c.OutputFormat
}

// Input returns the input format, defaulting to auto.
func (c *Config) Input() string {
	if c.InputFormat == "" {
		return FormatAuto
	}
	return c.InputFormat
}

// CatalogPath returns the catalog path with a leading ~ expanded.
func (c *Config) CatalogPath() string {
	if !strings.HasPrefix(c.Catalog, "~/") {
		return c.Catalog
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return c.Catalog
	}
	return filepath.Join(home, c.Catalog[2:])
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if catalog := os.Getenv("SEMED_CATALOG"); catalog != "" {
		c.Catalog = catalog
	}
	if format := os.Getenv("SEMED_OUTPUT_FORMAT"); format != "" {
		c.OutputFormat = strings.ToLower(format)
	}
	if format := os.Getenv("SEMED_INPUT_FORMAT"); format != "" {
		c.InputFormat = strings.ToLower(format)
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "semed", "config.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".semed", "config.yml")
	}

	return filepath.Join(home, ".config", "semed", "config.yml")
}

// PathOrDefault returns path, or the default path when path is empty.
func PathOrDefault(path string) string {
	if path == "" {
		return DefaultConfigPath()
	}
	return path
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		// If file doesn't exist, start with empty config
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
