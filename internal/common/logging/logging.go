package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ============================================================
// Logger
// ============================================================

// New строит zap-логгер: production-конфиг для ENV=production,
// development-конфиг иначе. Пустой level оставляет уровень конфига.
func New(environment, level string) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	if environment == "production" {
		config = zap.NewProductionConfig()
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", level, err)
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Must для main: без логгера сервис не стартует.
func Must(environment, level string) *zap.Logger {
	logger, err := New(environment, level)
	if err != nil {
		panic(err)
	}
	return logger
}
