package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("PAGARME_API_KEY", "")

	cfg := Load()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "./data/recibo.db", cfg.DBPath)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.PagarmeAPIKey)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://a.com, https://b.com,")
	t.Setenv("PAGARME_API_KEY", "sk_test_123")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, cfg.CORSOrigins)
	assert.Equal(t, "sk_test_123", cfg.PagarmeAPIKey)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadInvalidPortFallsBack(t *testing.T) {
	t.Setenv("PORT", "abc")
	assert.Equal(t, 8080, Load().Port)
}
