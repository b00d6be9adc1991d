package service

import (
	"context"
	"testing"

	"furniture-studio/internal/drawing/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRenderSVG(t *testing.T) {
	svc := New(zap.NewNop(), 2)

	out, err := svc.RenderSVG(models.FurnitureSpec{Type: "kitchen", Width: 3000, Height: 2400, Depth: 600}, RenderOptions{ShowDimensions: true, Class: "k"})
	require.NoError(t, err)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, `class="k"`)
	assert.Contains(t, out, "3000mm")

	again, err := svc.RenderSVG(models.FurnitureSpec{Type: "kitchen", Width: 3000, Height: 2400, Depth: 600}, RenderOptions{ShowDimensions: true, Class: "k"})
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestPreview(t *testing.T) {
	svc := New(nil, 0)

	out, err := svc.Preview(models.FurnitureSpec{Type: "bed", Width: 1600, Height: 900, Depth: 2000}, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, out, "Bed")
	assert.Contains(t, out, "1600mm × 900mm × 2000mm")
}

func TestSheetPreservesOrder(t *testing.T) {
	svc := New(zap.NewNop(), 3)

	var specs []models.FurnitureSpec
	for _, c := range models.KnownCategories {
		specs = append(specs, models.FurnitureSpec{Type: string(c), Width: 1200, Height: 1800, Depth: 500})
	}
	specs = append(specs, models.FurnitureSpec{Type: "hammock", Width: 2000, Height: 1000, Depth: 800})

	items, err := svc.Sheet(context.Background(), specs, RenderOptions{ShowDimensions: true})
	require.NoError(t, err)
	require.Len(t, items, len(specs))

	for i, it := range items {
		assert.Equal(t, specs[i].Type, it.Type)
		assert.Equal(t, specs[i].DimensionLabel(), it.Dimensions)
		assert.NotEmpty(t, it.SVG)

		single, err := svc.RenderSVG(specs[i], RenderOptions{ShowDimensions: true})
		require.NoError(t, err)
		assert.Equal(t, single, it.SVG, specs[i].Type)
	}

	last := items[len(items)-1]
	assert.False(t, last.Supported)
	assert.Contains(t, last.SVG, "Unsupported furniture type")
	assert.True(t, items[0].Supported)
}

func TestSheetEmpty(t *testing.T) {
	items, err := New(zap.NewNop(), 4).Sheet(context.Background(), nil, RenderOptions{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSheetCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	specs := []models.FurnitureSpec{{Type: "bed", Width: 1600, Height: 900, Depth: 2000}}
	_, err := New(zap.NewNop(), 1).Sheet(ctx, specs, RenderOptions{})
	require.ErrorIs(t, err, context.Canceled)
}
