package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

const defaultAPIBaseURL = "https://api.zeiris.id.lv/crud/api_v1"

type Config struct {
	APIBaseURL    string
	SessionDBPath string
	HTTPTimeout   time.Duration
	Language      string
	LogLevel      string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		APIBaseURL:    getEnv("TASKMASTER_API_URL", defaultAPIBaseURL),
		SessionDBPath: getEnv("TASKMASTER_SESSION_DB", defaultSessionDBPath()),
		HTTPTimeout:   getDurationEnv("TASKMASTER_HTTP_TIMEOUT", 15*time.Second),
		Language:      getEnv("TASKMASTER_LANG", "en"),
		LogLevel:      getEnv("TASKMASTER_LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func defaultSessionDBPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "session.db"
	}
	return filepath.Join(base, "taskmaster", "session.db")
}
