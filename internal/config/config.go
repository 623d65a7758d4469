package config

import (
	"os"
	"strings"
	"time"
)

// Config holds all runtime configuration, read from the environment
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
	TokenTTL      time.Duration
}

// Load reads configuration from the environment with development defaults
func Load() *Config {
	return &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		MongoURI:      getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGO_DB", "moodwellness"),
		RedisAddr:     normalizeRedisAddr(getEnvOrDefault("REDIS_URI", "localhost:6379")),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     getEnvOrDefault("JWT_SECRET", "super-secret-key-change-in-production"),
		TokenTTL:      getDurationOrDefault("TOKEN_TTL", 7*24*time.Hour),
	}
}

// normalizeRedisAddr strips an optional redis:// scheme prefix
func normalizeRedisAddr(addr string) string {
	return strings.TrimPrefix(addr, "redis://")
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}
