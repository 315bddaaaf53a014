package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	APP_DEBUG=false
//	REQUEST_TIMEOUT=10s
//	RATE_LIMIT_PER_MINUTE=60
//	LOG_LEVEL=info
//	LOG_PRETTY=false
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	RateLimit RateLimitConfig // Per-client request limits
	Log       LogConfig       // Logger settings
}

// ServerConfig holds HTTP server settings.
//
// Fields:
//   - Port: TCP port the HTTP server listens on (e.g., "8080").
//   - Debug: enables gin debug mode and debug-level logging.
//   - RequestTimeout: deadline attached to every request context.
type ServerConfig struct {
	Port           string
	Debug          bool
	RequestTimeout time.Duration
}

// RateLimitConfig bounds how many requests a single client IP may issue per minute.
type RateLimitConfig struct {
	PerMinute int
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string
	Pretty bool
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read-only afterwards.
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() terminates the app.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("APP_DEBUG", false)
	viper.SetDefault("REQUEST_TIMEOUT", "10s")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", false)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			Debug:          viper.GetBool("APP_DEBUG"),
			RequestTimeout: viper.GetDuration("REQUEST_TIMEOUT"),
		},
		RateLimit: RateLimitConfig{
			PerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Pretty: viper.GetBool("LOG_PRETTY"),
		},
	}

	// debug mode always logs at debug level
	if AppConfig.Server.Debug {
		AppConfig.Log.Level = "debug"
	}

	validateConfig()
}

// validateConfig terminates the application when a critical value is
// missing or unusable, listing every offending variable at once.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Server.RequestTimeout <= 0 {
		missing = append(missing, "REQUEST_TIMEOUT")
	}
	if AppConfig.RateLimit.PerMinute <= 0 {
		missing = append(missing, "RATE_LIMIT_PER_MINUTE")
	}

	if len(missing) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", missing)
	}
}
