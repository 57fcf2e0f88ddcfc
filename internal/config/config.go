package config

import (
	"os"
	"strconv"
	"time"
)

const (
	productionBaseURL = "https://api.ebay.com"
	sandboxBaseURL    = "https://api.sandbox.ebay.com"
)

type Config struct {
	HTTP      HTTPConfig
	Ebay      EbayConfig
	Engine    EngineConfig
	Log       LogConfig
	RateLimit RateLimitConfig
}

type HTTPConfig struct {
	Port string
}

type EbayConfig struct {
	ClientID      string
	ClientSecret  string
	Env           string
	BaseURL       string
	MarketplaceID string
	Timeout       time.Duration
}

type EngineConfig struct {
	SearchTimeout time.Duration
}

type LogConfig struct {
	Level string
}

type RateLimitConfig struct {
	RequestsPerMinute int
}

// Load читает конфиг из окружения. Креденшлы ebay не валидируются здесь:
// их отсутствие всплывет при первом обращении за токеном (ErrMissingCredentials).
func Load() *Config {
	env := getEnvOrDefault("EBAY_ENV", "production")
	baseURL := productionBaseURL
	if env == "sandbox" {
		baseURL = sandboxBaseURL
	}

	return &Config{
		HTTP: HTTPConfig{
			Port: getEnvOrDefault("HTTP_PORT", "8080"),
		},
		Ebay: EbayConfig{
			ClientID:      os.Getenv("EBAY_CLIENT_ID"),
			ClientSecret:  os.Getenv("EBAY_CLIENT_SECRET"),
			Env:           env,
			BaseURL:       getEnvOrDefault("EBAY_BASE_URL", baseURL),
			MarketplaceID: getEnvOrDefault("EBAY_MARKETPLACE_ID", "EBAY_US"),
			Timeout:       time.Duration(getEnvIntOrDefault("EBAY_TIMEOUT_SEC", 15)) * time.Second,
		},
		Engine: EngineConfig{
			SearchTimeout: time.Duration(getEnvIntOrDefault("SEARCH_TIMEOUT_SEC", 30)) * time.Second,
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: getEnvIntOrDefault("RATE_LIMIT_PER_MINUTE", 30),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
