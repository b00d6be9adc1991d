package main

import (
	"fmt"
	"time"

	"furniture-studio/internal/common/config"
	"furniture-studio/internal/common/health"
	"furniture-studio/internal/common/logging"
	"furniture-studio/internal/common/middleware"
	"furniture-studio/internal/gateway/handlers"
	"furniture-studio/internal/gateway/proxy"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/zap"
)

// ============================================================
// API Gateway
// ============================================================

func main() {
	cfg := config.Load()

	logger := logging.Must(cfg.Environment, cfg.LogLevel).Named("gateway")
	defer logger.Sync()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "API Gateway",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger(logger.Named("http")))
	app.Use(middleware.CORS(cfg.AllowOrigins))

	// Drawing Service
	drawing := proxy.New(cfg.DrawingURL, time.Duration(cfg.WriteTimeout)*time.Second, logger.Named("proxy"))

	// ============================================================
	// Health Check Routes
	// ============================================================

	health.New(logger, map[string]health.Check{
		"drawing": drawing.Ping,
	}).Register(app)

	app.Get("/docs", handlers.SwaggerUI)
	app.Get("/docs/openapi.yaml", handlers.SwaggerSpec)

	// ============================================================
	// API Routes
	// ============================================================

	api := app.Group("/api/v1")

	api.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Furniture Studio API v1",
			"status":  "ok",
		})
	})

	// ============================================================
	// Service Routes (Proxy)
	// ============================================================

	drawing.Mount(api)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("starting api gateway",
		zap.String("addr", addr),
		zap.String("env", cfg.Environment),
		zap.String("drawing_url", cfg.DrawingURL),
	)

	if err := app.Listen(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
