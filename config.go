package coda

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the production Coda REST API endpoint.
const DefaultBaseURL = "https://coda.io/apis/v1"

// Version is the library version, sent in the default User-Agent.
const Version = "1.0.0"

// Config configures the Coda client.
type Config struct {
	// APIToken authenticates with the Coda API.
	// Generate one at https://coda.io/account.
	APIToken string

	// BaseURL is the API endpoint. Defaults to DefaultBaseURL.
	// Override for testing against a local fixture server.
	BaseURL string

	// UserAgent is sent with every request.
	UserAgent string

	// Timeout bounds each HTTP request. Defaults to 30 seconds.
	Timeout time.Duration

	// ExportPollInterval is the base delay between export status polls.
	// Defaults to 2 seconds. Coda's export endpoint is eventually
	// consistent across their servers, so early polls can 404.
	ExportPollInterval time.Duration

	// MaxExportPolls bounds the export poll loop. Defaults to 15.
	MaxExportPolls int

	// Debug enables request/response logging on the Logger.
	Debug bool

	// Logger receives structured request logs. Defaults to a no-op logger.
	// Must write to stderr (or a file) when the MCP server is running:
	// stdout carries the protocol stream.
	Logger *zap.Logger
}

// DefaultConfig returns a Config with sensible defaults.
// The API token must still be provided.
func DefaultConfig() Config {
	return Config{
		BaseURL:            DefaultBaseURL,
		UserAgent:          "coda-mcp/" + Version,
		Timeout:            30 * time.Second,
		ExportPollInterval: 2 * time.Second,
		MaxExportPolls:     15,
	}
}

// ConfigFromEnv reads configuration from environment variables.
//
//	CODA_API_KEY     → APIToken
//	CODA_BASE_URL    → BaseURL
//	CODA_USER_AGENT  → UserAgent
//	CODA_TIMEOUT     → Timeout (seconds)
//	CODA_DEBUG       → Debug (any non-empty value enables)
func ConfigFromEnv() Config {
	cfg := Config{
		APIToken:  os.Getenv("CODA_API_KEY"),
		BaseURL:   os.Getenv("CODA_BASE_URL"),
		UserAgent: os.Getenv("CODA_USER_AGENT"),
		Debug:     os.Getenv("CODA_DEBUG") != "",
	}
	if v := os.Getenv("CODA_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}
	return cfg
}

// Validate checks the configuration for errors.
// Returns *ValidationError for invalid fields.
func (c *Config) Validate() error {
	if c.APIToken == "" {
		return &ValidationError{Field: "APIToken", Message: "required: set CODA_API_KEY or pass a token"}
	}
	if c.Timeout < 0 {
		return &ValidationError{Field: "Timeout", Message: "must be non-negative"}
	}
	if c.MaxExportPolls < 0 {
		return &ValidationError{Field: "MaxExportPolls", Message: "must be non-negative"}
	}
	return nil
}

// WithDefaults fills in default values for unset fields.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = def.UserAgent
	}
	if c.Timeout == 0 {
		c.Timeout = def.Timeout
	}
	if c.ExportPollInterval == 0 {
		c.ExportPollInterval = def.ExportPollInterval
	}
	if c.MaxExportPolls == 0 {
		c.MaxExportPolls = def.MaxExportPolls
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}
