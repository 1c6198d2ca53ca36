package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the httpie configuration file.
type Config struct {
	Color           string            `yaml:"color,omitempty" json:"color,omitempty"`
	Timeout         string            `yaml:"timeout,omitempty" json:"timeout,omitempty"` // Go duration, "" or "0" = none
	FollowRedirects *bool             `yaml:"followRedirects,omitempty" json:"followRedirects,omitempty"`
	MaxRedirects    int               `yaml:"maxRedirects,omitempty" json:"maxRedirects,omitempty"`
	ValidateSSL     *bool             `yaml:"validateSSL,omitempty" json:"validateSSL,omitempty"`
	Proxy           string            `yaml:"proxy,omitempty" json:"proxy,omitempty"`
	Compressed      *bool             `yaml:"compressed,omitempty" json:"compressed,omitempty"`
	Headers         map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"` // Default headers for all requests
	LogLevel        string            `yaml:"logLevel,omitempty" json:"logLevel,omitempty"`
	LogFile         string            `yaml:"logFile,omitempty" json:"logFile,omitempty"`
	EnvFile         string            `yaml:"envFile,omitempty" json:"envFile,omitempty"` // .env file for {{$NAME}} references

	// Path is the file the config was read from, empty for defaults.
	Path string `yaml:"-" json:"-"`
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetFollowRedirects returns the follow redirects setting, defaulting to true
func (c *Config) GetFollowRedirects() bool {
	return getBool(c.FollowRedirects, true)
}

// GetValidateSSL returns the validate SSL setting, defaulting to true
func (c *Config) GetValidateSSL() bool {
	return getBool(c.ValidateSSL, true)
}

// GetCompressed returns the compressed setting, defaulting to false
func (c *Config) GetCompressed() bool {
	return getBool(c.Compressed, false)
}

// GetTimeout parses Timeout. An empty value means no timeout.
func (c *Config) GetTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid timeout %q: must not be negative", c.Timeout)
	}
	return d, nil
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".httpie.yaml",
	".httpie.yml",
	".httpie.json",
	".httpierc",
}

// LoadConfig loads configuration from the specified path or searches for config files
// in the working directory and then the home directory.
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return FindAndLoadConfig(dirs...)
}

// FindAndLoadConfig returns the first config file found in dirs, or defaults.
func FindAndLoadConfig(dirs ...string) (*Config, error) {
	for _, dir := range dirs {
		for _, filename := range ConfigFilenames {
			configPath := filepath.Join(dir, filename)
			if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
				return loadConfigFromFile(configPath)
			}
		}
	}

	return DefaultConfig(), nil
}

// loadConfigFromFile loads configuration from a specific file
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	config.Path = path

	return config, nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.Color != "" {
		result.Color = other.Color
	}
	if other.Timeout != "" {
		result.Timeout = other.Timeout
	}
	if other.MaxRedirects > 0 {
		result.MaxRedirects = other.MaxRedirects
	}
	if other.Proxy != "" {
		result.Proxy = other.Proxy
	}
	if other.LogLevel != "" {
		result.LogLevel = other.LogLevel
	}
	if other.LogFile != "" {
		result.LogFile = other.LogFile
	}
	if other.EnvFile != "" {
		result.EnvFile = other.EnvFile
	}

	// Boolean flags - only override if explicitly set in other config
	if other.FollowRedirects != nil {
		result.FollowRedirects = other.FollowRedirects
	}
	if other.ValidateSSL != nil {
		result.ValidateSSL = other.ValidateSSL
	}
	if other.Compressed != nil {
		result.Compressed = other.Compressed
	}

	if len(other.Headers) > 0 {
		headers := make(map[string]string, len(c.Headers)+len(other.Headers))
		for k, v := range c.Headers {
			headers[k] = v
		}
		for k, v := range other.Headers {
			headers[k] = v
		}
		result.Headers = headers
	}

	return &result
}

// SaveConfig writes the configuration as YAML.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
