// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"3000"`

	// User store
	// StoreBackend selects where entitlement records live: "file" or "redis".
	StoreBackend string `env:"STORE_BACKEND" envDefault:"file"`
	DataFile     string `env:"DATA_FILE" envDefault:"users.json"`

	// Cache (Redis). Required when STORE_BACKEND=redis, optional otherwise
	// (rate limiting degrades to disabled without it).
	RedisURL string `env:"REDIS_URL" envDefault:""`

	// Gemini provider
	GeminiAPIKey    string `env:"GEMINI_API_KEY,required"`
	GeminiModel     string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	GeminiMaxTokens int    `env:"GEMINI_MAX_TOKENS" envDefault:"1000"`

	// Razorpay gateway
	RazorpayKeyID     string `env:"RAZORPAY_KEY_ID,required"`
	RazorpayKeySecret string `env:"RAZORPAY_KEY_SECRET,required"`
	RazorpayCurrency  string `env:"RAZORPAY_CURRENCY" envDefault:"INR"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"90s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Rate limiting for the generation endpoint
	RateLimitEnabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimitRPS     int  `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst   int  `env:"RATE_LIMIT_BURST" envDefault:"10"`

	// CORS configuration
	// Comma-separated list of allowed origins (e.g., "https://example.com,https://app.example.com")
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:""`

	// Request body size limit in bytes (default 1MB)
	MaxRequestBodySize int64 `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1048576"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// GetCORSAllowedOrigins parses the comma-separated origins string into a slice.
func (c *Config) GetCORSAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}

	origins := strings.Split(c.CORSAllowedOrigins, ",")
	result := make([]string, 0, len(origins))

	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// Load parses environment variables and returns a Config.
// Returns an error if required variables are missing.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.StoreBackend != "file" && cfg.StoreBackend != "redis" {
		return nil, fmt.Errorf("invalid STORE_BACKEND %q: must be file or redis", cfg.StoreBackend)
	}
	if cfg.StoreBackend == "redis" && cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required when STORE_BACKEND=redis")
	}

	return cfg, nil
}
