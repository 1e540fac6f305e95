package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":3000", cfg.Listen)
	assert.Equal(t, ModeProduction, cfg.Mode)
	assert.Equal(t, "http://localhost:3001", cfg.CORSOrigin)
	assert.Equal(t, "https://api.translink.ca/rttiapi/v1", cfg.TransLink.BaseURL)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TRANSITFLOW_LISTEN", ":9999")
	t.Setenv("TRANSITFLOW_MODE", ModeDevelopment)
	t.Setenv("TRANSITFLOW_CORS_ORIGIN", "https://transitflow.example")
	t.Setenv("TRANSITFLOW_TRANSLINK_API_KEY", "secret")

	cfg := Load()

	assert.Equal(t, ":9999", cfg.Listen)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "https://transitflow.example", cfg.CORSOrigin)
	assert.Equal(t, "secret", cfg.TransLink.APIKey)
}
