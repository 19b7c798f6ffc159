// Package config provides Viper-based configuration management for geekctl
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"

	"github.com/geek-project/geekctl/internal/token"
)

// Config represents the complete geekctl configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// APIConfig contains the content platform endpoint settings
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// AuthConfig contains session credential settings
type AuthConfig struct {
	TokenFile string `mapstructure:"token_file"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Colors bool `mapstructure:"colors"`
}

// Load reads configuration from file and environment variables
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set config file if specified
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Search paths for .geekctl.yaml
		v.SetConfigName(".geekctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/geekctl")
	}

	// Environment variables
	v.SetEnvPrefix("GEEKCTL")
	v.AutomaticEnv()

	// Set defaults
	setDefaults(v)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	// Resolve the token file location if not set
	if v.GetString("auth.token_file") == "" {
		path, err := token.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolving token path: %w", err)
		}
		v.Set("auth.token_file", path)
	}

	// Unmarshal into struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.base_url", "http://geek.itheima.net/v1_0")
	v.SetDefault("api.timeout", 5*time.Second)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	// Output defaults
	v.SetDefault("output.colors", true)
}

// validate checks the configuration for errors
func validate(cfg *Config) error {
	// Validate the API base URL
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api base_url: %s", cfg.API.BaseURL)
	}

	// Validate the request timeout
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api timeout must be positive, got %s", cfg.API.Timeout)
	}

	// Validate logging level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be debug, info, warn, or error)", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s (must be text or json)", cfg.Logging.Format)
	}

	return nil
}
