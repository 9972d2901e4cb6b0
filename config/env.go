package config

import (
	"log"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every environment knob the gateway reads.
// Values come from the process environment; a local .env file is
// loaded first for development convenience.
type Config struct {
	Port           string `env:"API_PORT_2"`
	CloudRunPort   string `env:"PORT"`
	GoEnv          string `env:"GO_ENV" envDefault:"development"`
	CorsOrigins    string `env:"CORS_ALLOWED_ORIGINS"`
	RedisAddress   string `env:"REDIS_ADDRESS"`
	ApiSecret      string `env:"API_SECRET"`
	TokenLifespan  int    `env:"TOKEN_HOUR_LIFESPAN" envDefault:"24"`
	ErpApiBaseURL  string `env:"ERP_API_BASE_URL"`
	ErpApiKey      string `env:"ERP_API_KEY"`
	ErpApiKeyHdr   string `env:"ERP_API_KEY_HEADER" envDefault:"X-API-Key"`
	LookupCacheTTL int    `env:"LOOKUP_CACHE_TTL_SECONDS" envDefault:"300"`
}

var (
	cfg     Config
	cfgOnce sync.Once
)

// GetConfig parses the environment once and returns the shared Config.
func GetConfig() Config {
	cfgOnce.Do(func() {
		godotenv.Load()
		if err := env.Parse(&cfg); err != nil {
			log.Printf("failed to parse environment: %v", err)
		}
	})
	return cfg
}

// ListenPort resolves the HTTP port: API_PORT_2, then PORT (Cloud Run), then 8080.
func (c Config) ListenPort() string {
	if c.Port != "" {
		return c.Port
	}
	if c.CloudRunPort != "" {
		return c.CloudRunPort
	}
	return "8080"
}

func (c Config) IsProduction() bool {
	return c.GoEnv == "production"
}
