package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	SessionSecret string        // Required: HMAC secret for session JWTs
	Issuer        string        // Optional: issuer claim for session tokens (default: secondate)
	SessionTTL    time.Duration // Optional: session token lifetime (default: 7 days)

	DatabaseFile string // Optional: path to SQLite database file (default: ./couple.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	CORSAllowedOrigins []string // Optional: comma-separated allowed origins (default: http://localhost:3000)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 4000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// SecureCookies reports whether session cookies should carry the Secure
// flag. Local dev runs over plain http.
func (c Config) SecureCookies() bool {
	return c.Env == "prod" || c.Env == "staging"
}

func LoadConfig() Config {
	cfg := Config{
		SessionSecret:       os.Getenv("SESSION_SECRET"),
		Issuer:              getEnvOrDefault("SESSION_ISSUER", "secondate"),
		SessionTTL:          getEnvDurationOrDefault("SESSION_TTL", 7*24*time.Hour),
		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "couple.db"),
		PepperFile:          getEnvOrDefault("PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 4000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	origins := getEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
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

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
