package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// Config holds the demo settings for the debounced input.
type Config struct {
	// Quiet period before a commit fires, in milliseconds.
	DebounceMS int `yaml:"debounce_ms"`

	// Initial owner value of the field.
	Value string `yaml:"value"`

	// Cosmetic passthroughs
	Label       string `yaml:"label"`
	Placeholder string `yaml:"placeholder"`

	// UI preferences
	Theme string `yaml:"theme"`
	Debug bool   `yaml:"debug"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		DebounceMS:  3000,
		Value:       "",
		Label:       "Notes",
		Placeholder: "Type and pause to commit",
		Theme:       "quiet",
		Debug:       false,
	}
}

// Debounce returns the quiet period as a duration. Non-positive values
// fall back to the default.
func (c *Config) Debounce() time.Duration {
	if c.DebounceMS <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// Manager handles configuration loading and saving
type Manager struct {
	configPath string
	config     *Config
}

// NewManager creates a manager for the config file at path.
func NewManager(path string) *Manager {
	return &Manager{
		configPath: path,
		config:     DefaultConfig(),
	}
}

// Load reads the configuration from disk. A missing file is not an
// error; the defaults stand.
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.configPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}

	m.expandEnvVars(config)
	m.config = config
	return nil
}

// Save writes the current configuration to disk
func (m *Manager) Save() error {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	return m.config
}

// expandEnvVars expands environment variables in config values
func (m *Manager) expandEnvVars(config *Config) {
	config.Value = m.expandString(config.Value)
	config.Label = m.expandString(config.Label)
	config.Placeholder = m.expandString(config.Placeholder)
	config.Theme = m.expandString(config.Theme)
}

// expandString expands environment variables in a string
// Supports $VAR and ${VAR} syntax
func (m *Manager) expandString(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		// Return original if env var not found
		return match
	})
}
