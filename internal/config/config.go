package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port                 int
	DBPath               string
	JWTSecret            string
	CORSOrigins          []string
	LogLevel             string
	PagarmeAPIKey        string
	PagarmeWebhookSecret string
	PagarmeBaseURL       string
}

// Load lê a configuração das variáveis de ambiente, com valores padrão para desenvolvimento.
func Load() *Config {
	return &Config{
		Port:                 envInt("PORT", 8080),
		DBPath:               envString("DB_PATH", "./data/recibo.db"),
		JWTSecret:            envString("JWT_SECRET", "dev-secret-change-me"),
		CORSOrigins:          envList("CORS_ORIGINS", []string{"http://localhost:5173"}),
		LogLevel:             envString("LOG_LEVEL", "INFO"),
		PagarmeAPIKey:        os.Getenv("PAGARME_API_KEY"),
		PagarmeWebhookSecret: os.Getenv("PAGARME_WEBHOOK_SECRET"),
		PagarmeBaseURL:       os.Getenv("PAGARME_BASE_URL"),
	}
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envList(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
