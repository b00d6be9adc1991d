package handlers

import (
	"encoding/json"
	"errors"

	"furniture-studio/internal/drawing/models"
	"furniture-studio/internal/drawing/repository"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// ============================================================
// Designs
// ============================================================

func (h *DrawingHandler) ListDesigns(c fiber.Ctx) error {
	designs, err := h.store.List(c.Context(), c.Query("project"))
	if err != nil {
		return h.storeError(c, "list", err)
	}
	return c.JSON(fiber.Map{"designs": designs})
}

func (h *DrawingHandler) CreateDesign(c fiber.Ctx) error {
	in, err := parseDesign(c.Body())
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	d, err := h.store.Create(c.Context(), in)
	if err != nil {
		return h.storeError(c, "create", err)
	}
	h.logger.Info("design created", zap.String("id", d.ID), zap.String("type", d.Spec.Type), zap.String("project", d.Project))
	return c.Status(fiber.StatusCreated).JSON(d)
}

func (h *DrawingHandler) GetDesign(c fiber.Ctx) error {
	d, err := h.store.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return h.storeError(c, "get", err)
	}
	return c.JSON(d)
}

func (h *DrawingHandler) UpdateDesign(c fiber.Ctx) error {
	in, err := parseDesign(c.Body())
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	d, err := h.store.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return h.storeError(c, "update", err)
	}
	return c.JSON(d)
}

func (h *DrawingHandler) DeleteDesign(c fiber.Ctx) error {
	if err := h.store.Delete(c.Context(), c.Params("id")); err != nil {
		return h.storeError(c, "delete", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DesignSVG рисует сохранённый дизайн; ?dimensions= и ?class= как у /render.
func (h *DrawingHandler) DesignSVG(c fiber.Ctx) error {
	d, err := h.store.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return h.storeError(c, "get", err)
	}
	opts, err := renderOptions(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return h.sendSVG(c, d.Spec, opts)
}

func (h *DrawingHandler) DesignPreview(c fiber.Ctx) error {
	d, err := h.store.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return h.storeError(c, "get", err)
	}
	opts, err := renderOptions(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return h.sendPreview(c, d.Spec, opts)
}

func (h *DrawingHandler) storeError(c fiber.Ctx, op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "design not found")
	}
	h.logger.Error("design store failed", zap.String("op", op), zap.Error(err))
	return fail(c, fiber.StatusInternalServerError, "storage failure")
}

func parseDesign(body []byte) (models.DesignInput, error) {
	var in models.DesignInput
	if len(body) == 0 {
		return in, errBodyRequired
	}
	if err := json.Unmarshal(body, &in); err != nil {
		return in, errors.New("invalid JSON payload")
	}
	return in, in.Validate()
}
