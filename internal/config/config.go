package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"alfredoptarigan/resume-insight/internal/apperrors"
)

type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	Groq    GroqConfig
	Storage StorageConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey    string
	Model     string
	RateLimit RateLimitConfig
}

type GroqConfig struct {
	APIKey    string
	Model     string
	BaseURL   string
	RateLimit RateLimitConfig
}

// RateLimitConfig throttles outbound calls to one upstream. A non-positive
// RequestsPerSecond disables throttling.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type StorageConfig struct {
	MaxFileSize int64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment and default values.")
	}

	return FromEnv()
}

// FromEnv builds a Config from the current process environment without
// touching any .env file.
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			RateLimit: RateLimitConfig{
				RequestsPerSecond: getEnvAsFloat("GEMINI_REQUESTS_PER_SECOND", 0),
				Burst:             int(getEnvAsInt64("GEMINI_BURST", 1)),
			},
		},
		Groq: GroqConfig{
			APIKey:  getEnv("GROQ_API_KEY", ""),
			Model:   getEnv("GROQ_MODEL", "llama3-8b-8192"),
			BaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			RateLimit: RateLimitConfig{
				RequestsPerSecond: getEnvAsFloat("GROQ_REQUESTS_PER_SECOND", 0),
				Burst:             int(getEnvAsInt64("GROQ_BURST", 1)),
			},
		},
		Storage: StorageConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
	}
}

// Validate reports every required value that is missing. It is meant to be
// called once at startup, before any client is constructed.
func (c *Config) Validate() error {
	var missing []string

	if strings.TrimSpace(c.Gemini.APIKey) == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if strings.TrimSpace(c.Groq.APIKey) == "" {
		missing = append(missing, "GROQ_API_KEY")
	}
	if c.Storage.MaxFileSize <= 0 {
		missing = append(missing, "MAX_FILE_SIZE")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrConfiguration, strings.Join(missing, ", "))
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
