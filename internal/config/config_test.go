package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_PORT", "EBAY_CLIENT_ID", "EBAY_CLIENT_SECRET", "EBAY_ENV",
		"EBAY_BASE_URL", "EBAY_MARKETPLACE_ID", "EBAY_TIMEOUT_SEC",
		"SEARCH_TIMEOUT_SEC", "LOG_LEVEL", "RATE_LIMIT_PER_MINUTE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "production", cfg.Ebay.Env)
	assert.Equal(t, "https://api.ebay.com", cfg.Ebay.BaseURL)
	assert.Equal(t, "EBAY_US", cfg.Ebay.MarketplaceID)
	assert.Equal(t, 15*time.Second, cfg.Ebay.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Engine.SearchTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 30, cfg.RateLimit.RequestsPerMinute)
}

func TestLoad_SandboxBaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("EBAY_ENV", "sandbox")

	cfg := Load()
	assert.Equal(t, "https://api.sandbox.ebay.com", cfg.Ebay.BaseURL)
}

func TestLoad_ExplicitBaseURLWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("EBAY_ENV", "sandbox")
	t.Setenv("EBAY_BASE_URL", "http://127.0.0.1:9090")

	cfg := Load()
	assert.Equal(t, "http://127.0.0.1:9090", cfg.Ebay.BaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("EBAY_CLIENT_ID", "id")
	t.Setenv("EBAY_CLIENT_SECRET", "secret")
	t.Setenv("EBAY_TIMEOUT_SEC", "5")
	t.Setenv("SEARCH_TIMEOUT_SEC", "60")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "120")

	cfg := Load()

	assert.Equal(t, "9000", cfg.HTTP.Port)
	assert.Equal(t, "id", cfg.Ebay.ClientID)
	assert.Equal(t, "secret", cfg.Ebay.ClientSecret)
	assert.Equal(t, 5*time.Second, cfg.Ebay.Timeout)
	assert.Equal(t, 60*time.Second, cfg.Engine.SearchTimeout)
	assert.Equal(t, 120, cfg.RateLimit.RequestsPerMinute)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("EBAY_TIMEOUT_SEC", "fast")

	cfg := Load()
	assert.Equal(t, 15*time.Second, cfg.Ebay.Timeout)
}
