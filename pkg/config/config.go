package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

type Config struct {
	Listen     string
	Mode       string
	CORSOrigin string

	TransLink TransLinkConfig
}

type TransLinkConfig struct {
	BaseURL string
	APIKey  string
}

// Load reads the runtime configuration from the environment, optionally
// seeded from a .env file in the working directory
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("Loaded environment from .env file")
	}

	return Config{
		Listen:     getEnv("TRANSITFLOW_LISTEN", ":3000"),
		Mode:       getEnv("TRANSITFLOW_MODE", ModeProduction),
		CORSOrigin: getEnv("TRANSITFLOW_CORS_ORIGIN", "http://localhost:3001"),

		TransLink: TransLinkConfig{
			BaseURL: getEnv("TRANSITFLOW_TRANSLINK_BASE_URL", "https://api.translink.ca/rttiapi/v1"),
			APIKey:  os.Getenv("TRANSITFLOW_TRANSLINK_API_KEY"),
		},
	}
}

func (c Config) IsDevelopment() bool {
	return c.Mode == ModeDevelopment
}

func getEnv(name string, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}

	return fallback
}
