package config

import "os"

// Config holds the application configuration
// Note: This is a stateless configuration - no database or auth secrets needed
// The engine analyzes what callers send; persistence lives with the callers
type Config struct {
	// Environment
	Environment string
	Port        string

	// Engine defaults
	DefaultKey string // Fallback key when a request names an unsupported one

	// CORS
	AllowedOrigins string // Comma-separated list, "*" allows any origin

	// Observability
	SentryDSN string // Sentry DSN for error tracking
}

func Load() *Config {
	return &Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		Port:           getEnv("PORT", "8080"),
		DefaultKey:     getEnv("DEFAULT_KEY", "C"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		SentryDSN:      getEnv("SENTRY_DSN", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

// IsProduction returns true when running in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
