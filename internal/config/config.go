package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port           int
	Environment    string
	LogLevel       string
	PublicBaseURL  string
	DatabaseURL    string
	NatsURL        string
	NatsToken      string
	OpenMicAPIKey  string
	OpenMicBaseURL string
	OpenMicTimeout time.Duration
	OpenAIAPIKey   string
	OpenAIModel    string
	PatientsPath   string
}

// Load reads configuration from the environment. The cmd layer loads .env
// first, so values there behave like real environment variables.
func Load() Config {
	return Config{
		Port:           envInt("PORT", 8080),
		Environment:    envStr("ENVIRONMENT", "local"),
		LogLevel:       envStr("LOG_LEVEL", "info"),
		PublicBaseURL:  strings.TrimRight(envStr("PUBLIC_BASE_URL", ""), "/"),
		DatabaseURL:    envStr("DATABASE_URL", ""),
		NatsURL:        envStr("NATS_URL", ""),
		NatsToken:      envStr("NATS_TOKEN", ""),
		OpenMicAPIKey:  envStr("OPENMIC_API_KEY", ""),
		OpenMicBaseURL: strings.TrimRight(envStr("OPENMIC_BASE_URL", "https://api.openmic.ai/v1"), "/"),
		OpenMicTimeout: time.Duration(envInt("OPENMIC_TIMEOUT_SEC", 15)) * time.Second,
		OpenAIAPIKey:   envStr("OPENAI_API_KEY", ""),
		OpenAIModel:    envStr("OPENAI_MODEL", "gpt-4o-mini"),
		PatientsPath:   envStr("PATIENTS_PATH", ""),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
