package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Lumexa LumexaConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type LumexaConfig struct {
	BaseURL        string
	StoreToken     string
	TimeoutSeconds int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	timeoutSeconds := 30
	if raw := os.Getenv("LUMEXA_HTTP_TIMEOUT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("invalid http timeout")
		}
		timeoutSeconds = parsed
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Lumexa Order CLI"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Lumexa: LumexaConfig{
			BaseURL:        getEnv("LUMEXA_BASE_URL", "http://localhost:8080"),
			StoreToken:     getEnv("LUMEXA_STORE_TOKEN", ""),
			TimeoutSeconds: timeoutSeconds,
		},
	}

	if cfg.Lumexa.StoreToken == "" {
		return nil, errors.New("missing store token")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
