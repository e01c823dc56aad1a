package config

import (
	"log"
	"os"
	"time"
)

// Config stores all configuration of the application, read from the
// environment after main loads the .env file.
type Config struct {
	// Server
	ServerPort string
	ClientURL  string

	// Metrics simulation
	MetricsInterval time.Duration

	// OpenAI
	OpenAIAPIKey string

	// Admin login
	AdminEmail        string
	AdminPasswordHash string // bcrypt hash; plain fallback below for dev
	AdminPassword     string
	JWTSecretKey      string
}

// Load reads configuration from environment variables with dev defaults.
func Load() *Config {
	cfg := &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		ClientURL:         getEnv("CLIENT_URL", "http://localhost:3000"),
		MetricsInterval:   getDuration("METRICS_INTERVAL", 5*time.Second),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@pilgrimpath.com"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin"),
		JWTSecretKey:      getEnv("JWT_SECRET_KEY", "pilgrimpath-dev-secret"),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s %q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}
