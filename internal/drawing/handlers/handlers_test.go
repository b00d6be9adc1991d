package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"furniture-studio/internal/drawing/models"
	"furniture-studio/internal/drawing/repository"
	"furniture-studio/internal/drawing/service"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApp(t *testing.T, store DesignStore) *fiber.App {
	t.Helper()
	if store == nil {
		db, err := repository.OpenSQLite(filepath.Join(t.TempDir(), "designs.db"))
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		repo := repository.New(db)
		require.NoError(t, repo.Init(context.Background(), false))
		store = repo
	}

	app := fiber.New()
	NewDrawingHandler(service.New(zap.NewNop(), 2), store, zap.NewNop()).Register(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, string) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(data)
}

func errorOf(t *testing.T, body string) string {
	t.Helper()
	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	return payload["error"]
}

func TestRender(t *testing.T) {
	app := newApp(t, nil)

	resp, body := do(t, app, fiber.MethodPost, "/render?dimensions=true&class=thumb",
		`{"type":"wardrobe","width":1800,"height":2100,"depth":600,"options":{"loft":true}}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, "<svg")
	assert.Contains(t, body, `class="thumb"`)
	assert.Contains(t, body, "1800mm")
	assert.Contains(t, body, "Loft: Yes")
}

func TestRenderUnknownTypeIsNotAnError(t *testing.T) {
	app := newApp(t, nil)

	resp, body := do(t, app, fiber.MethodPost, "/render", `{"type":"unicorn-chair","width":800,"height":900,"depth":800}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Unsupported furniture type")
	assert.Contains(t, body, "unicorn-chair")
}

func TestRenderBadRequests(t *testing.T) {
	app := newApp(t, nil)

	cases := []struct {
		name, path, body, want string
	}{
		{"empty body", "/render", "", "body required"},
		{"broken json", "/render", `{"type":`, "invalid JSON payload"},
		{"zero width", "/render", `{"type":"bed","width":0,"height":900,"depth":2000}`, "width must be positive, got 0"},
		{"negative depth", "/preview", `{"type":"bed","width":1600,"height":900,"depth":-5}`, "depth must be positive, got -5"},
		{"bad flag", "/render?dimensions=maybe", `{"type":"bed","width":1600,"height":900,"depth":2000}`, `invalid dimensions flag "maybe"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := do(t, app, fiber.MethodPost, tc.path, tc.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tc.want, errorOf(t, body))
		})
	}
}

func TestPreview(t *testing.T) {
	app := newApp(t, nil)

	resp, body := do(t, app, fiber.MethodPost, "/preview", `{"type":"tvunit","width":1800,"height":600,"depth":450}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))
	assert.Contains(t, body, "TV Unit")
	assert.Contains(t, body, "1800mm × 600mm × 450mm")
}

func TestSheet(t *testing.T) {
	app := newApp(t, nil)

	resp, body := do(t, app, fiber.MethodPost, "/sheet", `{
		"showDimensions": true,
		"specs": [
			{"type":"bed","width":1600,"height":900,"depth":2000},
			{"type":"hammock","width":2000,"height":1000,"depth":800},
			{"type":"shelving","width":1200,"height":2000,"depth":350}
		]
	}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Items []service.SheetItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	require.Len(t, payload.Items, 3)
	assert.Equal(t, "bed", payload.Items[0].Type)
	assert.False(t, payload.Items[1].Supported)
	assert.Equal(t, "Shelving", payload.Items[2].Title)
	assert.Contains(t, payload.Items[0].SVG, "2000mm")

	resp, body = do(t, app, fiber.MethodPost, "/sheet", `{"specs":[]}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "specs required", errorOf(t, body))

	resp, body = do(t, app, fiber.MethodPost, "/sheet", `{"specs":[{"type":"bed","width":1,"height":1,"depth":1},{"type":"bed","width":1,"height":0,"depth":1}]}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "specs[1]: height must be positive, got 0", errorOf(t, body))

	resp, body = do(t, app, fiber.MethodPost, "/sheet", `{"specs":[{"type":"bookshelf","width":900,"height":1800,"depth":300,"options":{"shelves":2e9}}]}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "specs[0]: options.shelves must be at most 64, got 2000000000", errorOf(t, body))
}

func TestOversizedCountsRejected(t *testing.T) {
	app := newApp(t, nil)

	resp, body := do(t, app, fiber.MethodPost, "/render", `{"type":"bookshelf","width":900,"height":1800,"depth":300,"options":{"shelves":2e9,"books":false}}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "options.shelves must be at most 64, got 2000000000", errorOf(t, body))

	resp, body = do(t, app, fiber.MethodPost, "/preview", `{"type":"kitchen","width":3000,"height":2400,"depth":600,"options":{"baseCabinets":65}}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "options.baseCabinets must be at most 64, got 65", errorOf(t, body))

	resp, body = do(t, app, fiber.MethodPost, "/designs", `{"name":"x","spec":{"type":"wardrobe","width":1800,"height":2400,"depth":600,"options":{"drawers":1000}}}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "options.drawers must be at most 64, got 1000", errorOf(t, body))

	resp, _ = do(t, app, fiber.MethodPost, "/render", `{"type":"bookshelf","width":900,"height":1800,"depth":300,"options":{"shelves":64}}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCategories(t *testing.T) {
	app := newApp(t, nil)

	resp, body := do(t, app, fiber.MethodGet, "/categories", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Categories []struct {
			Type     string         `json:"type"`
			Name     string         `json:"name"`
			Renderer string         `json:"renderer"`
			Defaults map[string]any `json:"defaults"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	require.Len(t, payload.Categories, len(models.KnownCategories))

	for _, c := range payload.Categories {
		if c.Type == "wardrobe" {
			assert.EqualValues(t, 3, c.Defaults["shelves"])
			assert.Equal(t, "wardrobe", c.Renderer)
		}
		if c.Type == "dresser" {
			assert.Equal(t, "cabinet", c.Renderer)
		}
	}
}

func TestDesignLifecycle(t *testing.T) {
	app := newApp(t, nil)

	resp, body := do(t, app, fiber.MethodPost, "/designs",
		`{"name":"Kids room","project":"flat-7","spec":{"type":"bed","width":900,"height":800,"depth":1900,"options":{"bedType":"single"}}}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Design
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.NotEmpty(t, created.ID)

	resp, body = do(t, app, fiber.MethodGet, "/designs?project=flat-7", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list struct {
		Designs []models.Design `json:"designs"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Len(t, list.Designs, 1)
	assert.Equal(t, created.ID, list.Designs[0].ID)

	resp, body = do(t, app, fiber.MethodGet, "/designs/"+created.ID+"/svg?dimensions=1", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Type: Single")
	assert.Contains(t, body, "1900mm")

	resp, body = do(t, app, fiber.MethodPut, "/designs/"+created.ID,
		`{"name":"Kids room","project":"flat-7","spec":{"type":"bookshelf","width":900,"height":1800,"depth":300}}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var updated models.Design
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, "bookshelf", updated.Spec.Type)

	resp, body = do(t, app, fiber.MethodGet, "/designs/"+created.ID+"/preview", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Bookshelf")

	resp, _ = do(t, app, fiber.MethodDelete, "/designs/"+created.ID, "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, body = do(t, app, fiber.MethodGet, "/designs/"+created.ID, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "design not found", errorOf(t, body))
}

func TestDesignValidation(t *testing.T) {
	app := newApp(t, nil)

	resp, body := do(t, app, fiber.MethodPost, "/designs", `{"project":"x","spec":{"type":"bed","width":900,"height":800,"depth":1900}}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "name is required", errorOf(t, body))

	resp, body = do(t, app, fiber.MethodPut, "/designs/missing", `{"name":"a","spec":{"type":"bed","width":900,"height":800,"depth":1900}}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "design not found", errorOf(t, body))

	resp, _ = do(t, app, fiber.MethodDelete, "/designs/missing", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

type brokenStore struct{}

func (brokenStore) Create(context.Context, models.DesignInput) (*models.Design, error) {
	return nil, errors.New("disk I/O error")
}
func (brokenStore) GetByID(context.Context, string) (*models.Design, error) {
	return nil, errors.New("disk I/O error")
}
func (brokenStore) List(context.Context, string) ([]models.Design, error) {
	return nil, errors.New("disk I/O error")
}
func (brokenStore) Update(context.Context, string, models.DesignInput) (*models.Design, error) {
	return nil, errors.New("disk I/O error")
}
func (brokenStore) Delete(context.Context, string) error { return errors.New("disk I/O error") }

func TestStorageFailureIs500(t *testing.T) {
	app := newApp(t, brokenStore{})

	resp, body := do(t, app, fiber.MethodGet, "/designs", "")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "storage failure", errorOf(t, body))

	resp, _ = do(t, app, fiber.MethodGet, "/designs/abc/svg", "")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

type ctxKey struct{}

// ctxStore запоминает значение из контекста, с которым её вызвали.
type ctxStore struct {
	seen []any
}

func (s *ctxStore) record(ctx context.Context) {
	s.seen = append(s.seen, ctx.Value(ctxKey{}))
}

func (s *ctxStore) Create(ctx context.Context, _ models.DesignInput) (*models.Design, error) {
	s.record(ctx)
	return nil, repository.ErrNotFound
}
func (s *ctxStore) GetByID(ctx context.Context, _ string) (*models.Design, error) {
	s.record(ctx)
	return nil, repository.ErrNotFound
}
func (s *ctxStore) List(ctx context.Context, _ string) ([]models.Design, error) {
	s.record(ctx)
	return []models.Design{}, nil
}
func (s *ctxStore) Update(ctx context.Context, _ string, _ models.DesignInput) (*models.Design, error) {
	s.record(ctx)
	return nil, repository.ErrNotFound
}
func (s *ctxStore) Delete(ctx context.Context, _ string) error {
	s.record(ctx)
	return repository.ErrNotFound
}

func TestRequestContextReachesStoreAndSheet(t *testing.T) {
	store := &ctxStore{}
	cancelled, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey{}, "req-1"))

	app := fiber.New()
	app.Use(func(c fiber.Ctx) error {
		if c.Get("X-Cancelled") != "" {
			c.SetContext(cancelled)
			return c.Next()
		}
		c.SetContext(context.WithValue(c.Context(), ctxKey{}, "req-1"))
		return c.Next()
	})
	NewDrawingHandler(service.New(zap.NewNop(), 2), store, zap.NewNop()).Register(app)

	resp, _ := do(t, app, fiber.MethodGet, "/designs", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = do(t, app, fiber.MethodGet, "/designs/abc", "")
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp, _ = do(t, app, fiber.MethodDelete, "/designs/abc", "")
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, []any{"req-1", "req-1", "req-1"}, store.seen)

	// отменённый запрос не дорисовывает лист
	cancel()
	req := httptest.NewRequest(fiber.MethodPost, "/sheet", strings.NewReader(`{"specs":[{"type":"bed","width":1600,"height":900,"depth":2000}]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Cancelled", "1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
