package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config represents the application configuration
type Config struct {
	Gemini    GeminiConfig `json:"gemini"`
	LogLevel  string       `json:"log_level"`
	LogFormat string       `json:"log_format"`
	LogFile   string       `json:"log_file"`
}

// GeminiConfig holds the Gemini API configuration.
// An empty APIKey is a valid, expected state: the app starts and degrades
// to a fixed fallback reply instead of refusing to run.
type GeminiConfig struct {
	APIKey            string `json:"api_key"`
	Model             string `json:"model"`
	BaseURL           string `json:"base_url"`
	APITimeoutSeconds int    `json:"api_timeout_seconds"`
}

// Default returns a configuration with default values
func Default() Config {
	return Config{
		Gemini: GeminiConfig{
			APIKey:            "",
			Model:             "gemini-2.0-flash",
			BaseURL:           "https://generativelanguage.googleapis.com",
			APITimeoutSeconds: 30,
		},
		LogLevel:  "info",
		LogFormat: "json",
	}
}

// Load loads configuration from the specified path.
// If the file doesn't exist, creates one with default values.
// Environment variables override file values.
func Load(configPath string) (Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return Config{}, fmt.Errorf("failed to create config directory: %w", err)
	}

	var cfg Config

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		cfg = Default()
		if err := Save(configPath, cfg); err != nil {
			return Config{}, fmt.Errorf("failed to create default config: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
		cfg = fillDefaults(cfg)
	}

	return applyEnvironmentOverrides(cfg), nil
}

// fillDefaults backfills fields older config files don't have.
func fillDefaults(cfg Config) Config {
	def := Default()
	if strings.TrimSpace(cfg.Gemini.Model) == "" {
		cfg.Gemini.Model = def.Gemini.Model
	}
	if strings.TrimSpace(cfg.Gemini.BaseURL) == "" {
		cfg.Gemini.BaseURL = def.Gemini.BaseURL
	}
	if cfg.Gemini.APITimeoutSeconds <= 0 {
		cfg.Gemini.APITimeoutSeconds = def.Gemini.APITimeoutSeconds
	}
	if strings.TrimSpace(cfg.LogLevel) == "" {
		cfg.LogLevel = def.LogLevel
	}
	if strings.TrimSpace(cfg.LogFormat) == "" {
		cfg.LogFormat = def.LogFormat
	}
	return cfg
}

// applyEnvironmentOverrides applies environment variable overrides.
func applyEnvironmentOverrides(cfg Config) Config {
	// GEMINI_API_KEY is the name the Gemini docs use; GEMCHAT_API_KEY wins
	// when both are set.
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		cfg.Gemini.APIKey = apiKey
	}
	if apiKey := os.Getenv("GEMCHAT_API_KEY"); apiKey != "" {
		cfg.Gemini.APIKey = apiKey
	}

	if model := os.Getenv("GEMCHAT_MODEL"); model != "" {
		cfg.Gemini.Model = model
	}

	if timeoutStr := os.Getenv("GEMCHAT_API_TIMEOUT"); timeoutStr != "" {
		if timeout, err := strconv.Atoi(timeoutStr); err == nil && timeout > 0 {
			cfg.Gemini.APITimeoutSeconds = timeout
		}
	}

	if logLevel := strings.ToLower(os.Getenv("GEMCHAT_LOG_LEVEL")); logLevel != "" {
		switch logLevel {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = logLevel
		}
	}

	return cfg
}

// Save saves the configuration to the specified path
func Save(configPath string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// A missing API key is deliberately not an error here.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Gemini.Model) == "" {
		return fmt.Errorf("gemini model is required")
	}

	base := strings.TrimSpace(c.Gemini.BaseURL)
	if base == "" {
		return fmt.Errorf("gemini base_url is required")
	}
	if u, err := url.Parse(base); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("gemini base_url is not a valid URL: %s", base)
	}

	if c.Gemini.APITimeoutSeconds <= 0 {
		return fmt.Errorf("api_timeout_seconds must be positive, got: %d", c.Gemini.APITimeoutSeconds)
	}

	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unsupported log level: %s", c.LogLevel)
	}

	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case "", "json", "text":
	default:
		return fmt.Errorf("unsupported log format: %s", c.LogFormat)
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gemchat/config.json"
	}
	return filepath.Join(homeDir, ".gemchat", "config.json")
}
