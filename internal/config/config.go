package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "TRIC_CONFIG"

// Config holds the complete compiler configuration
type Config struct {
	Compiler CompilerConfig `toml:"compiler" yaml:"compiler"`
	Output   OutputConfig   `toml:"output" yaml:"output"`
}

// CompilerConfig holds settings for the compilation stages
type CompilerConfig struct {
	Debug       bool   `toml:"debug" yaml:"debug"`
	Diagnostics string `toml:"diagnostics" yaml:"diagnostics"` // plain or rich
	Color       string `toml:"color" yaml:"color"`             // auto, always or never
	LogLevel    string `toml:"log_level" yaml:"log_level"`
}

// OutputConfig holds settings for the artifact written after a successful compilation
type OutputConfig struct {
	Dump string `toml:"dump" yaml:"dump"` // yaml, json, text or none
	Dir  string `toml:"dir" yaml:"dir"`   // empty writes beside the input file
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyDefaults()
	cfg.Output.Dir = os.ExpandEnv(cfg.Output.Dir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadDefault loads the file named by TRIC_CONFIG, or else the first of
// ./tric.toml and ./tric.yaml that exists. Without any file it returns
// Default() and an empty path.
func LoadDefault() (*Config, string, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		for _, p := range []string{"./tric.toml", "./tric.yaml", "./tric.yml"} {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), "", nil
	}

	cfg, err := Load(path)
	return cfg, path, err
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Compiler.Diagnostics == "" {
		c.Compiler.Diagnostics = "plain"
	}
	if c.Compiler.Color == "" {
		c.Compiler.Color = "auto"
	}
	if c.Compiler.LogLevel == "" {
		c.Compiler.LogLevel = "warn"
	}
	if c.Output.Dump == "" {
		c.Output.Dump = "yaml"
	}
}

// Validate reports the first setting outside its allowed values.
func (c *Config) Validate() error {
	checks := []struct {
		key     string
		value   string
		allowed []string
	}{
		{"compiler.diagnostics", c.Compiler.Diagnostics, []string{"plain", "rich"}},
		{"compiler.color", c.Compiler.Color, []string{"auto", "always", "never"}},
		{"compiler.log_level", c.Compiler.LogLevel, []string{"debug", "info", "warn", "error"}},
		{"output.dump", c.Output.Dump, []string{"yaml", "json", "text", "none"}},
	}
	for _, check := range checks {
		if !slices.Contains(check.allowed, check.value) {
			return fmt.Errorf("%s must be one of %s, got %q", check.key, strings.Join(check.allowed, ", "), check.value)
		}
	}
	return nil
}
