package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"furniture-studio/internal/common/config"
	"furniture-studio/internal/common/health"
	"furniture-studio/internal/common/logging"
	"furniture-studio/internal/common/middleware"
	"furniture-studio/internal/drawing/handlers"
	"furniture-studio/internal/drawing/repository"
	"furniture-studio/internal/drawing/service"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/zap"
)

// ============================================================
// Drawing Service
// ============================================================

func main() {
	cfg := config.Load()
	if os.Getenv("PORT") == "" {
		cfg.Port = "3003"
	}

	logger := logging.Must(cfg.Environment, cfg.LogLevel).Named("drawing")
	defer logger.Sync()

	db, err := repository.OpenSQLite(cfg.DesignsDBPath)
	if err != nil {
		logger.Fatal("open db", zap.Error(err))
	}
	defer db.Close()

	repo := repository.New(db)
	if err := repo.Init(context.Background(), cfg.SeedSamples); err != nil {
		logger.Fatal("init db", zap.Error(err))
	}

	svc := service.New(logger, cfg.SheetWorkers)
	drawingHandler := handlers.NewDrawingHandler(svc, repo, logger.Named("designs"))

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Drawing Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger(logger.Named("http")))
	app.Use(middleware.CORS(cfg.AllowOrigins))

	// ============================================================
	// Health Check Routes
	// ============================================================

	health.New(logger, map[string]health.Check{
		"designs-db": repo.Ping,
	}).Register(app)

	// ============================================================
	// Drawing Routes
	// ============================================================

	drawingHandler.Register(app)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("starting drawing service",
		zap.String("addr", addr),
		zap.String("env", cfg.Environment),
		zap.String("db", cfg.DesignsDBPath),
		zap.Int("sheet_workers", cfg.SheetWorkers),
	)

	if err := app.Listen(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
