package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "READ_TIMEOUT", "LOG_LEVEL", "ALLOW_ORIGINS", "SEED_SAMPLES", "SHEET_WORKERS", "DRAWING_URL", "DESIGNS_DB_PATH"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 10, cfg.ReadTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.AllowOrigins)
	assert.True(t, cfg.SeedSamples)
	assert.GreaterOrEqual(t, cfg.SheetWorkers, 1)
	assert.Equal(t, "http://localhost:3003", cfg.DrawingURL)
	assert.Equal(t, "data/db/designs.db", cfg.DesignsDBPath)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("READ_TIMEOUT", "not-a-number")
	t.Setenv("WRITE_TIMEOUT", "30")
	t.Setenv("ALLOW_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("SEED_SAMPLES", "false")
	t.Setenv("SHEET_WORKERS", "-3")
	t.Setenv("DRAWING_URL", "http://drawing:3003/")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 10, cfg.ReadTimeout)
	assert.Equal(t, 30, cfg.WriteTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowOrigins)
	assert.False(t, cfg.SeedSamples)
	assert.Equal(t, 1, cfg.SheetWorkers)
	assert.Equal(t, "http://drawing:3003", cfg.DrawingURL)
}
