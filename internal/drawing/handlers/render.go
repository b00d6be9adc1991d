package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"furniture-studio/internal/drawing/models"
	"furniture-studio/internal/drawing/renderer"
	"furniture-studio/internal/drawing/service"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// ============================================================
// Drawing Handler
// ============================================================

const maxSheetSpecs = 100

// DesignStore — хранилище сохранённых дизайнов.
type DesignStore interface {
	Create(ctx context.Context, in models.DesignInput) (*models.Design, error)
	GetByID(ctx context.Context, id string) (*models.Design, error)
	List(ctx context.Context, project string) ([]models.Design, error)
	Update(ctx context.Context, id string, in models.DesignInput) (*models.Design, error)
	Delete(ctx context.Context, id string) error
}

type DrawingHandler struct {
	svc    *service.Service
	store  DesignStore
	logger *zap.Logger
}

func NewDrawingHandler(svc *service.Service, store DesignStore, logger *zap.Logger) *DrawingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DrawingHandler{svc: svc, store: store, logger: logger}
}

// Register вешает маршруты сервиса чертежей.
func (h *DrawingHandler) Register(r fiber.Router) {
	r.Post("/render", h.Render)
	r.Post("/preview", h.Preview)
	r.Post("/sheet", h.Sheet)
	r.Get("/categories", h.Categories)

	r.Get("/designs", h.ListDesigns)
	r.Post("/designs", h.CreateDesign)
	r.Get("/designs/:id", h.GetDesign)
	r.Put("/designs/:id", h.UpdateDesign)
	r.Delete("/designs/:id", h.DeleteDesign)
	r.Get("/designs/:id/svg", h.DesignSVG)
	r.Get("/designs/:id/preview", h.DesignPreview)
}

// Render рисует спецификацию из тела запроса и отдаёт SVG.
func (h *DrawingHandler) Render(c fiber.Ctx) error {
	spec, err := parseSpec(c.Body())
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	opts, err := renderOptions(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return h.sendSVG(c, spec, opts)
}

// Preview отдаёт HTML-карточку превью.
func (h *DrawingHandler) Preview(c fiber.Ctx) error {
	spec, err := parseSpec(c.Body())
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	opts, err := renderOptions(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return h.sendPreview(c, spec, opts)
}

type sheetRequest struct {
	Specs          []models.FurnitureSpec `json:"specs"`
	ShowDimensions bool                   `json:"showDimensions"`
	Class          string                 `json:"class"`
}

// Sheet рисует несколько спецификаций за один запрос.
func (h *DrawingHandler) Sheet(c fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return fail(c, fiber.StatusBadRequest, "body required")
	}

	var req sheetRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		h.logger.Debug("sheet decode error", zap.Error(err))
		return fail(c, fiber.StatusBadRequest, "invalid JSON payload")
	}
	if len(req.Specs) == 0 {
		return fail(c, fiber.StatusBadRequest, "specs required")
	}
	if len(req.Specs) > maxSheetSpecs {
		return fail(c, fiber.StatusBadRequest, fmt.Sprintf("too many specs: %d > %d", len(req.Specs), maxSheetSpecs))
	}
	for i, spec := range req.Specs {
		if err := spec.Check(); err != nil {
			return fail(c, fiber.StatusBadRequest, fmt.Sprintf("specs[%d]: %v", i, err))
		}
	}

	items, err := h.svc.Sheet(c.Context(), req.Specs, service.RenderOptions{ShowDimensions: req.ShowDimensions, Class: req.Class})
	if err != nil {
		h.logger.Error("sheet render failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "render failed")
	}
	return c.JSON(fiber.Map{"items": items})
}

// Categories перечисляет поддерживаемые типы и их параметры по умолчанию.
func (h *DrawingHandler) Categories(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": renderer.Categories()})
}

// ============================================================
// Helpers
// ============================================================

func (h *DrawingHandler) sendSVG(c fiber.Ctx, spec models.FurnitureSpec, opts service.RenderOptions) error {
	out, err := h.svc.RenderSVG(spec, opts)
	if err != nil {
		h.logger.Error("render failed", zap.String("type", spec.Type), zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "render failed")
	}
	if _, ok := spec.Category(); !ok {
		h.logger.Info("unsupported furniture type", zap.String("type", spec.Type))
	}

	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.SendString(out)
}

func (h *DrawingHandler) sendPreview(c fiber.Ctx, spec models.FurnitureSpec, opts service.RenderOptions) error {
	out, err := h.svc.Preview(spec, opts)
	if err != nil {
		h.logger.Error("preview failed", zap.String("type", spec.Type), zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "render failed")
	}

	c.Type("html", "utf-8")
	return c.SendString(out)
}

var errBodyRequired = errors.New("body required")

// parseSpec декодирует и проверяет спецификацию. Неизвестный тип не
// ошибка: рендер нарисует заглушку.
func parseSpec(body []byte) (models.FurnitureSpec, error) {
	var spec models.FurnitureSpec
	if len(body) == 0 {
		return spec, errBodyRequired
	}
	if err := json.Unmarshal(body, &spec); err != nil {
		return spec, errors.New("invalid JSON payload")
	}
	if err := spec.Check(); err != nil {
		return spec, err
	}
	return spec, nil
}

// renderOptions читает ?dimensions= и ?class=.
func renderOptions(c fiber.Ctx) (service.RenderOptions, error) {
	opts := service.RenderOptions{Class: c.Query("class")}
	if raw := c.Query("dimensions"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, fmt.Errorf("invalid dimensions flag %q", raw)
		}
		opts.ShowDimensions = v
	}
	return opts, nil
}

func fail(c fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}
