// Package config provides configuration loading and management for speclint.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/speclint/language"
)

// Config represents the complete speclint configuration
type Config struct {
	// Language is the document language for parsing and rule messages
	// ("ja" or "en", default: "ja")
	Language string `yaml:"language"`
	// DevMode enables experimental report sections (traceability matrix
	// and coverage metrics). Injected here so callers pass it explicitly
	// instead of probing process-wide state.
	DevMode bool `yaml:"dev_mode"`
	// Styles are custom document styles registered alongside the built-in
	// requirements/design/tasks styles
	Styles []Style `yaml:"styles"`
}

// Style declares a custom document style: its required sections and the
// validation rules to run
type Style struct {
	// Name is the registration name used with ValidateWithStyle
	Name string `yaml:"name"`
	// Description is a short human-readable summary
	Description string `yaml:"description"`
	// Sections are required section type names (e.g., "overview",
	// "functional_requirements")
	Sections []string `yaml:"sections"`
	// Rules are rule names from the rule registry (e.g.,
	// "requirement-id-format")
	Rules []string `yaml:"rules"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Language: string(language.Japanese),
		DevMode:  false,
		Styles:   nil,
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if !language.Language(c.Language).Valid() {
		return fmt.Errorf("language must be %q or %q, got %q",
			language.Japanese, language.English, c.Language)
	}

	seen := make(map[string]bool)
	for _, style := range c.Styles {
		if style.Name == "" {
			return fmt.Errorf("style name is required")
		}
		if seen[style.Name] {
			return fmt.Errorf("duplicate style name: %s", style.Name)
		}
		seen[style.Name] = true

		for _, name := range style.Sections {
			if !knownSection(name) {
				return fmt.Errorf("style %s: unknown section type: %s", style.Name, name)
			}
		}
		for _, name := range style.Rules {
			if _, ok := ruleFactories[name]; !ok {
				return fmt.Errorf("style %s: unknown rule: %s", style.Name, name)
			}
		}
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Language != "" {
		c.Language = other.Language
	}
	if other.DevMode {
		c.DevMode = true
	}
	if len(other.Styles) > 0 {
		c.Styles = other.Styles
	}
}
