// Package config loads and saves the assistant's YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

const (
	// DefaultBaseDir is the base configuration directory name
	DefaultBaseDir = ".jarvisedu"
	// DefaultConfigFile is the default configuration filename
	DefaultConfigFile = "config.yaml"
	// DefaultDataDir is the default data directory name, relative to
	// the config directory
	DefaultDataDir = "data"
)

// Config is the on-disk configuration for the assistant.
type Config struct {
	// DataDir is where the key-value store lives. Relative paths are
	// resolved against the config directory.
	DataDir string `yaml:"data_dir,omitempty"`

	// Chat configures the conversational fallback model.
	Chat ChatConfig `yaml:"chat,omitempty"`

	// Questions overrides the canned slot-filling prompts, keyed by
	// "{context}.{field}" (e.g. "add_assignment.course").
	Questions map[string]string `yaml:"questions,omitempty"`

	// Music maps spoken keywords to audio files for the music intent.
	Music map[string]string `yaml:"music,omitempty"`

	// Focus configures the focus-mode timer defaults, in minutes.
	Focus FocusConfig `yaml:"focus,omitempty"`

	// configPath is the path to the config file
	configPath string
}

// ChatConfig holds the chat model credentials and bounds.
type ChatConfig struct {
	// APIKey authenticates against the model API. Falls back to the
	// OPENAI_API_KEY environment variable when empty.
	APIKey string `yaml:"api_key,omitempty"`

	// Model is the chat model name (optional, uses default if empty)
	Model string `yaml:"model,omitempty"`

	// BaseURL is the API base URL (optional, uses default if empty)
	BaseURL string `yaml:"base_url,omitempty"`
}

// FocusConfig holds focus-timer defaults.
type FocusConfig struct {
	SessionMinutes int `yaml:"session_minutes,omitempty"`
	ExtendMinutes  int `yaml:"extend_minutes,omitempty"`
}

// Load loads or creates the configuration at the default path.
func Load() (*Config, error) {
	return LoadWithPath("")
}

// LoadWithPath loads configuration from a custom path.
func LoadWithPath(customPath string) (*Config, error) {
	var configPath string

	if customPath != "" {
		configPath = customPath
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, DefaultBaseDir, DefaultConfigFile)
	}

	// Ensure config directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := &Config{configPath: configPath}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config file
			return cfg, cfg.Save()
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.configPath = configPath
	return cfg, nil
}

// Save saves the configuration to disk.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Path returns the config file path.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the config directory path.
func (c *Config) Dir() string {
	return filepath.Dir(c.configPath)
}

// ResolveDataDir returns the absolute data directory, applying the
// default and resolving relative paths against the config directory.
func (c *Config) ResolveDataDir() string {
	dir := c.DataDir
	if dir == "" {
		dir = DefaultDataDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(c.Dir(), dir)
	}
	return dir
}

// ChatAPIKey returns the configured key, falling back to the
// environment.
func (c *Config) ChatAPIKey() string {
	if c.Chat.APIKey != "" {
		return c.Chat.APIKey
	}
	return os.Getenv("OPENAI_API_KEY")
}

// MaskAPIKey masks an API key for display.
func MaskAPIKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
