package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the jdoc bot.
type Config struct {
	Libraries LibrariesConfig `yaml:"libraries"`
	Bot       BotConfig       `yaml:"bot"`
	Suggest   SuggestConfig   `yaml:"suggest"`
	Urban     UrbanConfig     `yaml:"urban"`
}

// LibrariesConfig holds javadoc archive discovery configuration.
type LibrariesConfig struct {
	Dir      string   `yaml:"dir"`
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// BotConfig holds chat behavior configuration.
type BotConfig struct {
	Trigger          string `yaml:"trigger"`
	ChoiceTTLSeconds int    `yaml:"choice_ttl_seconds"`
	MaxMessageLength int    `yaml:"max_message_length"`
}

// SuggestConfig holds "did you mean" configuration.
type SuggestConfig struct {
	Enabled       bool    `yaml:"enabled"`
	MinSimilarity float64 `yaml:"min_similarity"`
}

// UrbanConfig holds the urban dictionary command configuration.
type UrbanConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Libraries: LibrariesConfig{
			Dir:      "javadocs",
			Includes: []string{"**/*.zip"},
			Excludes: []string{},
		},
		Bot: BotConfig{
			Trigger:          "=",
			ChoiceTTLSeconds: 30,
			MaxMessageLength: 500,
		},
		Suggest: SuggestConfig{
			Enabled:       true,
			MinSimilarity: 0.9,
		},
		Urban: UrbanConfig{
			BaseURL:        "https://api.urbandictionary.com/v0",
			TimeoutSeconds: 10,
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for jdoc.yaml).
func LoadFromDir(dir string) (*Config, error) {
	// Try jdoc.yaml in the directory
	path := filepath.Join(dir, "jdoc.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	// Try .jdoc/config.yaml
	path = filepath.Join(dir, ".jdoc", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	// Return defaults
	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// IndexDBPath returns the path to the index database.
func IndexDBPath(dir string) string {
	return filepath.Join(dir, ".jdoc", "index.db")
}

// EnsureDataDir ensures the .jdoc directory exists.
func EnsureDataDir(dir string) error {
	dataDir := filepath.Join(dir, ".jdoc")
	return os.MkdirAll(dataDir, 0755)
}
