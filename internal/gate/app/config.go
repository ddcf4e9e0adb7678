package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer    string // Issuer claim expected on bearer tokens (default: credgate)
	JWTSecret string // Required: HS256 secret for verifying bearer tokens

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./gate.db)
	MintCreatorToken     bool          // Whether createApp mints a membership token for the creator (default: true)
	DefaultBaseURI       string        // Optional: fallback base URI for token metadata
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
	EventRetention       time.Duration // How long event log entries are kept (default: 90 days)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:               getEnvOrDefault("GATE_ISSUER", "credgate"),
		JWTSecret:            os.Getenv("GATE_JWT_SECRET"),
		DatabaseFile:         getEnvOrDefault("GATE_DATABASE_FILE", "gate.db"),
		MintCreatorToken:     getEnvBoolOrDefault("GATE_MINT_CREATOR_TOKEN", true),
		DefaultBaseURI:       os.Getenv("GATE_DEFAULT_BASE_URI"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		EventRetention:       getEnvDurationOrDefault("EVENT_RETENTION", 90*24*time.Hour),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
