package service

import (
	"bytes"
	"context"
	"fmt"

	"furniture-studio/internal/drawing/encoder"
	"furniture-studio/internal/drawing/models"
	"furniture-studio/internal/drawing/renderer"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ============================================================
// Render Service
// ============================================================

type RenderOptions struct {
	ShowDimensions bool   `json:"showDimensions"`
	Class          string `json:"class"`
}

// SheetItem — один чертёж листа; порядок совпадает с входным.
type SheetItem struct {
	Type       string `json:"type"`
	Title      string `json:"title"`
	Dimensions string `json:"dimensions"`
	Supported  bool   `json:"supported"`
	SVG        string `json:"svg"`
}

type Service struct {
	logger  *zap.Logger
	workers int
}

func New(logger *zap.Logger, workers int) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers < 1 {
		workers = 1
	}
	return &Service{logger: logger, workers: workers}
}

func (s *Service) RenderSVG(spec models.FurnitureSpec, opts RenderOptions) (string, error) {
	d := renderer.Render(spec, opts.ShowDimensions, opts.Class)
	out, err := encoder.SVGString(d)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", spec.Type, err)
	}

	s.logger.Debug("rendered drawing",
		zap.String("type", spec.Type),
		zap.String("dimensions", spec.DimensionLabel()),
		zap.Int("bytes", len(out)),
	)
	return out, nil
}

func (s *Service) Preview(spec models.FurnitureSpec, opts RenderOptions) (string, error) {
	var buf bytes.Buffer
	if err := encoder.PreviewCard(&buf, spec, opts.ShowDimensions, opts.Class); err != nil {
		return "", fmt.Errorf("preview %s: %w", spec.Type, err)
	}
	return buf.String(), nil
}

// Sheet рисует пачку спецификаций параллельно, не больше workers
// одновременно. Первая ошибка или отмена ctx прерывает весь лист.
func (s *Service) Sheet(ctx context.Context, specs []models.FurnitureSpec, opts RenderOptions) ([]SheetItem, error) {
	items := make([]SheetItem, len(specs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, spec := range specs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := s.RenderSVG(spec, opts)
			if err != nil {
				return fmt.Errorf("sheet item %d: %w", i, err)
			}
			_, supported := spec.Category()
			items[i] = SheetItem{
				Type:       spec.Type,
				Title:      spec.DisplayName(),
				Dimensions: spec.DimensionLabel(),
				Supported:  supported,
				SVG:        out,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logger.Info("rendered sheet", zap.Int("items", len(items)), zap.Int("workers", s.workers))
	return items, nil
}
