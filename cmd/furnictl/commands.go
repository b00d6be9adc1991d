package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"furniture-studio/internal/drawing/encoder"
	"furniture-studio/internal/drawing/models"
	"furniture-studio/internal/drawing/renderer"
	"furniture-studio/internal/drawing/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ============================================================
// Commands
// ============================================================

func runRender(cmd *cobra.Command, args []string) error {
	spec, err := loadSpec(specFile)
	if err != nil {
		return err
	}
	warnUnsupported(spec)

	return writeOutput(cmd, outPath, func(w io.Writer) error {
		return encoder.EncodeSVG(w, renderer.Render(spec, showDimensions, styleClass))
	})
}

func runPreview(cmd *cobra.Command, args []string) error {
	spec, err := loadSpec(specFile)
	if err != nil {
		return err
	}
	warnUnsupported(spec)

	return writeOutput(cmd, outPath, func(w io.Writer) error {
		return encoder.PreviewPage(w, spec, showDimensions, styleClass)
	})
}

func runSheet(cmd *cobra.Command, args []string) error {
	specs, err := loadSpecList(specFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc := service.New(logger, workers)
	items, err := svc.Sheet(ctx, specs, service.RenderOptions{ShowDimensions: showDimensions, Class: styleClass})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(sheetDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for i, it := range items {
		name := filepath.Join(sheetDir, fmt.Sprintf("%02d-%s.svg", i+1, models.FurnitureSpec{Type: it.Type}.FileStem()))
		if err := os.WriteFile(name, []byte(it.SVG), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		logger.Debug("sheet item written", zap.String("file", name))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d drawings to %s\n", len(items), sheetDir)
	return nil
}

func runCategories(cmd *cobra.Command, args []string) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(renderer.Categories()); err != nil {
		return fmt.Errorf("encode categories: %w", err)
	}
	return enc.Close()
}

// ============================================================
// Helpers
// ============================================================

// loadSpec читает YAML или JSON (JSON является подмножеством YAML).
func loadSpec(path string) (models.FurnitureSpec, error) {
	var spec models.FurnitureSpec
	data, err := os.ReadFile(path)
	if err != nil {
		return spec, fmt.Errorf("read spec: %w", err)
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return spec, fmt.Errorf("parse spec %s: %w", path, err)
	}
	if err := spec.Check(); err != nil {
		return spec, fmt.Errorf("invalid spec %s: %w", path, err)
	}
	return spec, nil
}

func loadSpecList(path string) ([]models.FurnitureSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read specs: %w", err)
	}
	var specs []models.FurnitureSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parse specs %s: %w", path, err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("no specs in %s", path)
	}
	for i, s := range specs {
		if err := s.Check(); err != nil {
			return nil, fmt.Errorf("invalid spec #%d in %s: %w", i+1, path, err)
		}
	}
	return specs, nil
}

func warnUnsupported(spec models.FurnitureSpec) {
	if _, ok := spec.Category(); !ok {
		logger.Warn("unsupported furniture type, drawing placeholder", zap.String("type", spec.Type))
	}
}

func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	logger.Info("written", zap.String("file", path))
	return nil
}
