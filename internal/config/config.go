package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey      string
	GeminiModel       string
	GeminiTimeoutSecs int

	// Mock video processing
	VideoProcessingDelayMS int

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                   getEnvOrDefault("PORT", "8080"),
		Env:                    getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:           getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:            getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiTimeoutSecs:      getEnvAsIntOrDefault("GEMINI_TIMEOUT_SECONDS", 30),
		VideoProcessingDelayMS: getEnvAsIntOrDefault("VIDEO_PROCESSING_DELAY_MS", 2000),
		FrontendURL:            getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
	}

	return cfg
}

// Configured reports whether the generative backend credential is present.
// Its absence is not fatal: handlers fall back to canned unavailable replies.
func (c *Config) Configured() bool {
	return c.GeminiAPIKey != ""
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
