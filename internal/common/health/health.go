package health

import (
	"context"
	"sort"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// ============================================================
// Health Check Handlers
// ============================================================

// Check — проверка зависимости (БД, upstream-сервис).
type Check func(ctx context.Context) error

type Probes struct {
	checks  map[string]Check
	timeout time.Duration
	logger  *zap.Logger
}

func New(logger *zap.Logger, checks map[string]Check) *Probes {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Probes{checks: checks, timeout: 2 * time.Second, logger: logger}
}

// Liveness проверяет, что приложение работает
func (p *Probes) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
	})
}

// Readiness прогоняет все проверки; любая ошибка даёт 503.
func (p *Probes) Readiness(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), p.timeout)
	defer cancel()

	names := make([]string, 0, len(p.checks))
	for name := range p.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	results := fiber.Map{}
	ready := true
	for _, name := range names {
		if err := p.checks[name](ctx); err != nil {
			p.logger.Warn("readiness check failed", zap.String("check", name), zap.Error(err))
			results[name] = err.Error()
			ready = false
			continue
		}
		results[name] = "ok"
	}

	if !ready {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "not ready",
			"checks": results,
		})
	}
	return c.JSON(fiber.Map{
		"status": "ready",
		"checks": results,
	})
}

// Startup проверяет, что приложение успешно запустилось
func (p *Probes) Startup(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "started",
	})
}

// Register вешает пробы на /health/*.
func (p *Probes) Register(app *fiber.App) {
	app.Get("/health/live", p.Liveness)
	app.Get("/health/ready", p.Readiness)
	app.Get("/health/startup", p.Startup)
}
