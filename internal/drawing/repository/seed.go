package repository

import (
	"context"
	"fmt"

	"furniture-studio/internal/drawing/models"
)

// ============================================================
// Seeding
// ============================================================

const sampleProject = "showroom"

// Samples возвращает по одному образцу на каждый рендерер.
func Samples() []models.DesignInput {
	return []models.DesignInput{
		{Name: "Master bed", Project: sampleProject, Spec: models.FurnitureSpec{Type: "bed", Width: 1600, Height: 900, Depth: 2000, Options: models.Options{"drawers": 2}}},
		{Name: "Hallway wardrobe", Project: sampleProject, Spec: models.FurnitureSpec{Type: "wardrobe", Width: 1800, Height: 2400, Depth: 600, Options: models.Options{"loft": true, "drawers": 2, "mirror": true}}},
		{Name: "Straight kitchen", Project: sampleProject, Spec: models.FurnitureSpec{Type: "kitchen", Width: 3000, Height: 2400, Depth: 600, Options: models.Options{"pulloutShelves": 1}}},
		{Name: "Living room TV unit", Project: sampleProject, Spec: models.FurnitureSpec{Type: "tvunit", Width: 1800, Height: 1200, Depth: 450, Options: models.Options{"ledLighting": true}}},
		{Name: "Bedroom dresser", Project: sampleProject, Spec: models.FurnitureSpec{Type: "dresser", Width: 1200, Height: 800, Depth: 500, Options: models.Options{"drawers": 4, "doors": 0}}},
		{Name: "Study bookshelf", Project: sampleProject, Spec: models.FurnitureSpec{Type: "bookshelf", Width: 1200, Height: 2000, Depth: 350}},
		{Name: "Dining table", Project: sampleProject, Spec: models.FurnitureSpec{Type: "table", Width: 1600, Height: 750, Depth: 900}},
	}
}

// seedSamples заполняет только пустую таблицу.
func (r *Repository) seedSamples(ctx context.Context) error {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM designs`).Scan(&n); err != nil {
		return fmt.Errorf("count designs: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, in := range Samples() {
		if _, err := r.Create(ctx, in); err != nil {
			return fmt.Errorf("seed %s: %w", in.Name, err)
		}
	}
	return nil
}
