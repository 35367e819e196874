package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Paths    PathsConfig    `yaml:"paths"`
}

// DefaultsConfig holds default values
type DefaultsConfig struct {
	Concurrency int    `yaml:"concurrency"`
	Source      string `yaml:"source"`
}

// PathsConfig holds custom path overrides
type PathsConfig struct {
	Inbox   string `yaml:"inbox"`
	Library string `yaml:"library"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Concurrency: 1,
			Source:      "manual",
		},
	}
}

// AppDir returns the application directory (~/.ytscribe)
func AppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ytscribe"
	}
	return filepath.Join(home, ".ytscribe")
}

// ConfigPath returns the config file path
func ConfigPath() string {
	return filepath.Join(AppDir(), "config.yaml")
}

// InboxDir returns the drop folder for incoming transcript files
func (c *Config) InboxDir() string {
	if c.Paths.Inbox != "" {
		return c.Paths.Inbox
	}
	return filepath.Join(AppDir(), "inbox")
}

// LibraryDir returns the directory holding stored transcript records
func (c *Config) LibraryDir() string {
	if c.Paths.Library != "" {
		return c.Paths.Library
	}
	return filepath.Join(AppDir(), "library")
}

// EnsureDirs creates all required directories
func (c *Config) EnsureDirs() error {
	dirs := []string{AppDir(), c.InboxDir(), c.LibraryDir()}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Load reads config from file, returns default if not exists
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadDefault loads config from default path
func LoadDefault() (*Config, error) {
	return Load(ConfigPath())
}

// Save writes config to file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
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

// SaveDefault saves config to default path
func (c *Config) SaveDefault() error {
	return c.Save(ConfigPath())
}
