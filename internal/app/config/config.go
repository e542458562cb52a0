package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string
	Env             string
	LogLevel        string
	CORSAllowOrigin string

	// AI collaborator. An absent key is allowed: requests then fail and the
	// fail-soft layer degrades the output instead of crashing.
	AIProvider       string
	GeminiBaseURL    string
	GeminiAPIKey     string
	GeminiModel      string
	AIRequestTimeout time.Duration
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:         env("HTTP_ADDR", ":8080"),
		Env:              env("ENV", "development"),
		LogLevel:         env("LOG_LEVEL", "info"),
		CORSAllowOrigin:  env("CORS_ALLOW_ORIGIN", "*"),
		AIProvider:       env("AI_PROVIDER", "gemini"),
		GeminiBaseURL:    env("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GeminiAPIKey:     env("GEMINI_API_KEY", ""),
		GeminiModel:      env("GEMINI_MODEL", "gemini-3-flash-preview"),
		AIRequestTimeout: envDuration("AI_REQUEST_TIMEOUT", 15*time.Second),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
