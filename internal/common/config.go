package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/joseph-ayodele/pdf-renamer/constants"
)

// Config holds all application configuration
type Config struct {
	Strategy string
	Extract  ExtractConfig
	LLM      LLMConfig
}

// ExtractConfig holds text-extraction configuration
type ExtractConfig struct {
	MaxPages int // pages to read per PDF; <= 0 means all pages
}

// LLMConfig holds OpenAI-related configuration
type LLMConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// LoadConfig loads configuration from the environment, reading a .env file
// first if one is present next to the working directory.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Strategy: getEnv("RENAMER_STRATEGY", constants.StrategyPattern),
		Extract: ExtractConfig{
			MaxPages: getEnvAsInt("RENAMER_MAX_PAGES", 6),
		},
		LLM: LLMConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.2),
			MaxTokens:   getEnvAsInt("OPENAI_MAX_TOKENS", 24),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration. The OpenAI key is checked here
// once, up front, so a missing credential is reported a single time instead of
// per file.
func (c *Config) Validate() error {
	if _, ok := constants.Strategies[c.Strategy]; !ok {
		return NewAppError("CONFIG_ERROR", fmt.Sprintf("unknown strategy %q", c.Strategy), ErrInvalidInput)
	}
	if c.Strategy == constants.StrategyOpenAI && c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required for the openai strategy", ErrInvalidInput)
	}
	return nil
}
