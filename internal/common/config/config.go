package config

import (
	"os"
	"runtime"
	"strconv"
	"strings"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int
	WriteTimeout int
	LogLevel     string
	AllowOrigins []string

	// drawing service
	DesignsDBPath string
	SeedSamples   bool
	SheetWorkers  int

	// gateway
	DrawingURL string
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "3000"),
		Environment:   getEnv("ENV", "development"),
		ReadTimeout:   getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout:  getEnvAsInt("WRITE_TIMEOUT", 10),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowOrigins:  getEnvAsList("ALLOW_ORIGINS", []string{"*"}),
		DesignsDBPath: getEnv("DESIGNS_DB_PATH", "data/db/designs.db"),
		SeedSamples:   getEnvAsBool("SEED_SAMPLES", true),
		SheetWorkers:  max(1, getEnvAsInt("SHEET_WORKERS", runtime.NumCPU())),
		DrawingURL:    strings.TrimRight(getEnv("DRAWING_URL", "http://localhost:3003"), "/"),
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultVal
}

// getEnvAsList разбирает список через запятую.
func getEnvAsList(key string, defaultVal []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
