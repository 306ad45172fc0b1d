// Package config handles global quill configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the global configuration. Every field is optional; flags
// override anything set here.
type Config struct {
	// DefaultDirectory is the notes directory used when no directory is
	// given on the command line.
	DefaultDirectory string `toml:"default_directory"`

	// Pattern selects note files within the directory (doublestar glob).
	Pattern string `toml:"pattern"`

	// Workers bounds concurrent file processing. 1 means sequential.
	Workers int `toml:"workers"`

	// Generator configures the description backend.
	Generator GeneratorConfig `toml:"generator"`
}

// GeneratorConfig selects and tunes the description-generation backend.
type GeneratorConfig struct {
	// Provider is one of: openai, openai-compatible, anthropic, ollama, static.
	Provider string `toml:"provider"`

	Model   string `toml:"model"`
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`

	// TimeoutSecs bounds a single generation call. 0 uses the backend default.
	TimeoutSecs int `toml:"timeout_secs"`

	MaxTokens   int     `toml:"max_tokens"`
	Temperature float32 `toml:"temperature"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Pattern: "*.md",
		Workers: 1,
		Generator: GeneratorConfig{
			Provider:    "openai",
			Model:       "gpt-4o-mini",
			TimeoutSecs: 60,
			MaxTokens:   256,
			Temperature: 0.2,
		},
	}
}

// Load reads the config from the resolved default location. A missing
// file yields the defaults, not an error.
func Load() (*Config, error) {
	return LoadFrom(ResolveConfigPath(""))
}

// LoadFrom reads the config from an explicit path, layered over defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolveConfigPath returns the config file location: explicit override,
// then $QUILL_CONFIG, then ~/.config/quill/config.toml.
func ResolveConfigPath(override string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	if env := os.Getenv("QUILL_CONFIG"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "quill", "config.toml")
}

// ExpandPath resolves a leading ~ against the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
