package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the Instagram web client
type Config struct {
	// API endpoints
	Endpoints EndpointsConfig `yaml:"endpoints" json:"endpoints"`

	// HTTP transport settings
	HTTP HTTPConfig `yaml:"http" json:"http"`

	// Login settings
	Login LoginConfig `yaml:"login" json:"login"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// EndpointsConfig holds the target API URLs
type EndpointsConfig struct {
	BaseURL    string `yaml:"base_url" json:"base_url"`
	GraphQLURL string `yaml:"graphql_url" json:"graphql_url"`
}

// HTTPConfig holds HTTP transport configuration
type HTTPConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent"`
}

// LoginConfig holds login-related configuration.
// The password is never read from the config file; it comes from a
// credential store or an interactive prompt.
type LoginConfig struct {
	Username string `yaml:"username" json:"username"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// LoadConfig loads configuration with the precedence:
// defaults < config file < .env file < environment variables
func LoadConfig(configFile string) (*Config, error) {
	cfg := DefaultConfig()

	if err := cfg.LoadFromFile(configFile); err != nil {
		return nil, err
	}

	// Load .env if present; missing file is fine
	_ = godotenv.Load()

	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Endpoints: EndpointsConfig{
			BaseURL:    "https://www.instagram.com",
			GraphQLURL: "https://www.instagram.com/graphql/query",
		},
		HTTP: HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		},
		Login: LoginConfig{},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	if baseURL := os.Getenv("IGCLIENT_BASE_URL"); baseURL != "" {
		c.Endpoints.BaseURL = baseURL
	}
	if graphqlURL := os.Getenv("IGCLIENT_GRAPHQL_URL"); graphqlURL != "" {
		c.Endpoints.GraphQLURL = graphqlURL
	}
	if userAgent := os.Getenv("IGCLIENT_USER_AGENT"); userAgent != "" {
		c.HTTP.UserAgent = userAgent
	}
	if timeout := os.Getenv("IGCLIENT_HTTP_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid IGCLIENT_HTTP_TIMEOUT: %w", err)
		}
		c.HTTP.Timeout = d
	}
	if username := os.Getenv("IGCLIENT_USERNAME"); username != "" {
		c.Login.Username = username
	}
	if logLevel := os.Getenv("IGCLIENT_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFile := os.Getenv("IGCLIENT_LOG_FILE"); logFile != "" {
		c.Logging.File = logFile
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	locations := []string{
		".igclient.yaml",
		".igclient.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "igclient", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".config", "igclient", "config.yml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Endpoints.BaseURL == "" {
		errs = append(errs, errors.New("base URL is required"))
	}
	if c.Endpoints.GraphQLURL == "" {
		errs = append(errs, errors.New("graphql URL is required"))
	}
	for _, u := range []string{c.Endpoints.BaseURL, c.Endpoints.GraphQLURL} {
		if u != "" && !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			errs = append(errs, fmt.Errorf("endpoint %q must start with http:// or https://", u))
		}
	}
	if c.HTTP.Timeout <= 0 {
		errs = append(errs, errors.New("http timeout must be positive"))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error", "disabled":
	default:
		errs = append(errs, fmt.Errorf("unknown log level: %s", c.Logging.Level))
	}

	if len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, err := range errs {
			msgs[i] = err.Error()
		}
		return fmt.Errorf("configuration validation failed: %s", strings.Join(msgs, "; "))
	}

	return nil
}
