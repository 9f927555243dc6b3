package config

import (
	"os"
	"strconv"
)

// Config holds all environment-driven settings. Load is called once from main
// after godotenv has populated the process environment.
type Config struct {
	Port        string
	Environment string
	LogLevel    string

	CORSOrigin string

	RedisURL string

	GroqAPIKey      string
	GroqModel       string
	DailyTokenLimit int64
}

const (
	defaultPort       = "8080"
	defaultModel      = "llama-3.1-8b-instant"
	defaultDailyLimit = 2_500_000
)

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", defaultPort),
		Environment:     getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSOrigin:      getEnv("CORS_ORIGIN", "http://localhost:3000"),
		RedisURL:        os.Getenv("REDIS_URL"),
		GroqAPIKey:      os.Getenv("GROQ_API_KEY"),
		GroqModel:       getEnv("GROQ_MODEL", defaultModel),
		DailyTokenLimit: getEnvInt64("GROQ_DAILY_TOKEN_LIMIT", defaultDailyLimit),
	}
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment != "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
