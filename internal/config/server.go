package config

import (
	"os"
	"strconv"
	"time"
)

// ServerConfig holds the settings of the quoting HTTP service, loaded from
// environment variables.
type ServerConfig struct {
	Port           string
	GinMode        string
	RequestTimeout time.Duration
	LogLevel       string
	Backend        BackendConfig
	Redis          RedisConfig
}

// BackendConfig locates the catalog REST backend.
type BackendConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	// Retries is how many times a failed GET is retried on 5xx or
	// transport errors.
	Retries int
}

// RedisConfig configures the postal-code adjustment cache. An empty Addr
// disables the cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// LoadServerConfig reads configuration from environment variables with defaults.
func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Port:           getEnvOrDefault("PORT", "8080"),
		GinMode:        getEnvOrDefault("GIN_MODE", "release"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		Backend: BackendConfig{
			BaseURL: getEnvOrDefault("BACKEND_URL", "http://localhost:3000/api"),
			Token:   getEnvOrDefault("BACKEND_TOKEN", ""),
			Timeout: getEnvDuration("BACKEND_TIMEOUT", 5*time.Second),
			Retries: getEnvInt("BACKEND_RETRIES", 2),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", ""),
			Password: getEnvOrDefault("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      getEnvDuration("CACHE_TTL", 30*time.Minute),
		},
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvDuration accepts Go durations ("90s") or plain seconds ("90").
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultVal
}
