package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// ============================================================
// Logger Middleware
// ============================================================

// Logger пишет одну запись zap на запрос. Ошибку хендлера не глотает:
// её дальше обрабатывает ErrorHandler приложения.
func Logger(log *zap.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("content_type", c.Get(fiber.HeaderContentType)),
		}
		switch {
		case status >= 500:
			log.Error("request", append(fields, zap.Error(err))...)
		case status >= 400:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
		return err
	}
}
