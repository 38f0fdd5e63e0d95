package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the f2html configuration
type Config struct {
	Timeout     int               `yaml:"timeout,omitempty"` // milliseconds, 0 waits indefinitely
	ValidateSSL *bool             `yaml:"validateSSL,omitempty"`
	Proxy       string            `yaml:"proxy,omitempty"`
	Headers     map[string]string `yaml:"headers,omitempty"` // Default headers for all requests
	Timezone    string            `yaml:"timezone,omitempty"`
	TimeLayout  string            `yaml:"timeLayout,omitempty"`
	LogLevel    string            `yaml:"logLevel,omitempty"`
	LogFormat   string            `yaml:"logFormat,omitempty"`
	NoColor     *bool             `yaml:"noColor,omitempty"`
}

// Environment variables that override file settings
const (
	EnvTimeout  = "F2HTML_TIMEOUT"
	EnvTimezone = "F2HTML_TIMEZONE"
	EnvLogLevel = "F2HTML_LOG_LEVEL"
	EnvProxy    = "F2HTML_PROXY"
)

// BoolPtr returns a pointer to a bool value
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

// GetValidateSSL returns the validate SSL setting, defaulting to true
func (c *Config) GetValidateSSL() bool {
	return getBool(c.ValidateSSL, true)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

func (c *Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Millisecond
}

// Location resolves Timezone. An empty timezone means the local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".f2html.yaml",
	".f2html.yml",
	"f2html.yaml",
}

// LoadConfig loads configuration from the specified path or searches for
// config files in the current directory, then applies environment overrides.
func LoadConfig(path string) (*Config, error) {
	var cfg *Config
	var err error
	if path != "" {
		cfg, err = loadConfigFromFile(path)
	} else {
		cfg, err = FindAndLoadConfig(".")
	}
	if err != nil {
		return nil, err
	}

	vars, err := readEnv(".env")
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(vars); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	return DefaultConfig(), nil
}

func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return config, nil
}

// readEnv returns the variables of a dotenv file overlaid with the process
// environment. A missing file is not an error.
func readEnv(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		vars = make(map[string]string)
	}

	for _, key := range []string{EnvTimeout, EnvTimezone, EnvLogLevel, EnvProxy} {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
	}
	return vars, nil
}

// ApplyEnv overrides settings from F2HTML_* variables.
func (c *Config) ApplyEnv(vars map[string]string) error {
	if v := vars[EnvTimeout]; v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			return fmt.Errorf("invalid %s %q: expected milliseconds", EnvTimeout, v)
		}
		c.Timeout = ms
	}
	if v := vars[EnvTimezone]; v != "" {
		c.Timezone = v
	}
	if v := vars[EnvLogLevel]; v != "" {
		c.LogLevel = v
	}
	if v := vars[EnvProxy]; v != "" {
		c.Proxy = v
	}
	return nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.Timeout > 0 {
		result.Timeout = other.Timeout
	}
	if other.Proxy != "" {
		result.Proxy = other.Proxy
	}
	if other.Timezone != "" {
		result.Timezone = other.Timezone
	}
	if other.TimeLayout != "" {
		result.TimeLayout = other.TimeLayout
	}
	if other.LogLevel != "" {
		result.LogLevel = other.LogLevel
	}
	if other.LogFormat != "" {
		result.LogFormat = other.LogFormat
	}

	// Boolean flags - only override if explicitly set in other config
	if other.ValidateSSL != nil {
		result.ValidateSSL = other.ValidateSSL
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}

	if len(other.Headers) > 0 {
		merged := make(map[string]string, len(c.Headers)+len(other.Headers))
		for k, v := range c.Headers {
			merged[k] = v
		}
		for k, v := range other.Headers {
			merged[k] = v
		}
		result.Headers = merged
	}

	return &result
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
