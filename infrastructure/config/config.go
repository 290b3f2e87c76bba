// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Store backends for analyzed sessions
const (
	StoreMemory   = "memory"
	StoreDynamoDB = "dynamodb"
)

// Config holds all service configuration
type Config struct {
	// Server
	ServerAddr      string
	Environment     string
	ShutdownTimeout time.Duration

	// Auth
	JWTSecret string
	TokenTTL  time.Duration

	// Chat completion backend
	OpenAIAPIKey string
	OpenAIModel  string
	ChatTimeout  time.Duration
	ChatEnabled  bool

	// Analysis
	AnalysisDelay time.Duration

	// Session store
	SessionStore     string
	DynamoDBTable    string
	DynamoDBEndpoint string

	// Rate limiting
	AuthRateLimit  int
	AuthRateWindow time.Duration
	UserRateLimit  int
	UserRateWindow time.Duration

	// CORS
	AllowedOrigins []string
}

// Load reads configuration from environment variables with defaults
func Load() (*Config, error) {
	cfg := &Config{
		ServerAddr:      getEnv("SERVER_ADDR", ":8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		JWTSecret: getEnv("JWT_SECRET", ""),
		TokenTTL:  getEnvDuration("TOKEN_TTL", 24*time.Hour),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		ChatTimeout:  getEnvDuration("CHAT_TIMEOUT", 30*time.Second),

		AnalysisDelay: getEnvDuration("ANALYSIS_DELAY", 2*time.Second),

		SessionStore:     getEnv("SESSION_STORE", StoreMemory),
		DynamoDBTable:    getEnv("DYNAMODB_TABLE", "teachback-sessions"),
		DynamoDBEndpoint: getEnv("DYNAMODB_ENDPOINT", ""),

		AuthRateLimit:  getEnvInt("AUTH_RATE_LIMIT", 10),
		AuthRateWindow: getEnvDuration("AUTH_RATE_WINDOW", time.Minute),
		UserRateLimit:  getEnvInt("USER_RATE_LIMIT", 120),
		UserRateWindow: getEnvDuration("USER_RATE_WINDOW", time.Minute),

		AllowedOrigins: []string{getEnv("ALLOWED_ORIGIN", "*")},
	}

	cfg.ChatEnabled = cfg.OpenAIAPIKey != ""

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration consistency. Production tightens the
// rules; development fills in what it can.
func (c *Config) Validate() error {
	if c.SessionStore != StoreMemory && c.SessionStore != StoreDynamoDB {
		return fmt.Errorf("unknown session store: %s", c.SessionStore)
	}

	if c.IsProduction() {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if len(c.AllowedOrigins) == 1 && c.AllowedOrigins[0] == "*" {
			return fmt.Errorf("ALLOWED_ORIGIN must be explicit in production")
		}
	} else if c.JWTSecret == "" {
		c.JWTSecret = "development-secret-do-not-use"
	}

	return nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
