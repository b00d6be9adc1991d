package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"furniture-studio/internal/drawing/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T, seed bool) *Repository {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "db", "designs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := New(db)
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	repo.now = func() time.Time {
		clock = clock.Add(time.Millisecond)
		return clock
	}
	require.NoError(t, repo.Init(context.Background(), seed))
	return repo
}

func wardrobeInput() models.DesignInput {
	return models.DesignInput{
		Name:    "Bedroom wardrobe",
		Project: "flat-12",
		Spec: models.FurnitureSpec{
			Type: "wardrobe", Width: 1800, Height: 2400, Depth: 600,
			Options: models.Options{"loft": true, "drawers": 2, "tvSize": `65"`},
		},
	}
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, false)

	created, err := repo.Create(ctx, wardrobeInput())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bedroom wardrobe", got.Name)
	assert.Equal(t, "flat-12", got.Project)
	assert.Equal(t, "wardrobe", got.Spec.Type)
	assert.Equal(t, 2400.0, got.Spec.Height)

	opts := got.Spec.Options.Wardrobe()
	assert.True(t, opts.Loft)
	assert.Equal(t, 2, opts.Drawers)
	assert.Equal(t, `65"`, got.Spec.Options.String("tvSize", ""))
}

func TestGetMissing(t *testing.T) {
	repo := newRepo(t, false)
	_, err := repo.GetByID(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListByProject(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, false)

	first, err := repo.Create(ctx, wardrobeInput())
	require.NoError(t, err)
	other := wardrobeInput()
	other.Project = "office"
	_, err = repo.Create(ctx, other)
	require.NoError(t, err)
	second := wardrobeInput()
	second.Name = "Second"
	secondDesign, err := repo.Create(ctx, second)
	require.NoError(t, err)

	flat, err := repo.List(ctx, "flat-12")
	require.NoError(t, err)
	require.Len(t, flat, 2)
	assert.Equal(t, first.ID, flat[0].ID)
	assert.Equal(t, secondDesign.ID, flat[1].ID)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := repo.List(ctx, "missing")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, false)

	created, err := repo.Create(ctx, wardrobeInput())
	require.NoError(t, err)

	in := wardrobeInput()
	in.Name = "Renamed"
	in.Spec.Type = "cabinet"
	in.Spec.Options = nil
	updated, err := repo.Update(ctx, created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "cabinet", updated.Spec.Type)
	assert.Empty(t, updated.Spec.Options)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Greater(t, updated.UpdatedAt, created.UpdatedAt)

	_, err = repo.Update(ctx, "nope", in)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, false)

	created, err := repo.Create(ctx, wardrobeInput())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, created.ID), ErrNotFound)
}

func TestInitSeedsOnce(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, true)

	all, err := repo.List(ctx, sampleProject)
	require.NoError(t, err)
	require.Len(t, all, len(Samples()))

	// повторная инициализация не дублирует образцы
	require.NoError(t, repo.Init(ctx, true))
	again, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, again, len(Samples()))

	require.NoError(t, repo.Ping(ctx))
}

func TestSamplesCoverEveryRenderer(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Samples() {
		require.NoError(t, s.Validate(), s.Name)
		c, ok := s.Spec.Category()
		require.True(t, ok, s.Name)
		seen[string(c)] = true
	}
	for _, typ := range []string{"bed", "wardrobe", "kitchen", "tvunit", "dresser", "bookshelf", "table"} {
		assert.True(t, seen[typ], typ)
	}
}
