package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultAPIBaseURL     = "http://localhost:8080"
	DefaultRegion         = "us-east-1"
	DefaultSessionDBPath  = "bookarc.db"
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "info"
)

var (
	ErrMissingAPIBaseURL = errors.New("api base url is required")
	ErrMissingClientID   = errors.New("identity client id is required")
)

// Config holds runtime settings for the BookArc CLI.
//
// IdentityEndpoint is optional; when empty the regional identity provider
// endpoint is used. RequestsPerSecond <= 0 disables outbound throttling.
type Config struct {
	APIBaseURL        string        `env:"BOOKARC_API_URL"`
	Region            string        `env:"BOOKARC_REGION"`
	IdentityClientID  string        `env:"BOOKARC_CLIENT_ID"`
	IdentityEndpoint  string        `env:"BOOKARC_IDENTITY_ENDPOINT"`
	SessionDBPath     string        `env:"BOOKARC_SESSION_DB"`
	RequestTimeout    time.Duration `env:"BOOKARC_REQUEST_TIMEOUT"`
	RequestsPerSecond float64       `env:"BOOKARC_RPS"`
	SafeUploads       bool          `env:"BOOKARC_SAFE_UPLOADS"`
	LogLevel          string        `env:"BOOKARC_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.Region = DefaultRegion
	c.SessionDBPath = DefaultSessionDBPath
	c.RequestTimeout = DefaultRequestTimeout
	c.SafeUploads = true
	c.LogLevel = DefaultLogLevel
}

// Validate reports settings the client cannot start without.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return ErrMissingAPIBaseURL
	}
	if c.IdentityClientID == "" {
		return ErrMissingClientID
	}
	return nil
}

// Load builds a Config from defaults, then the JSON file named by -c or
// -config, then BOOKARC_* environment variables, then flags. Later
// sources win.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("config flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
