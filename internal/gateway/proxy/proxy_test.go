package proxy

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type echo struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Query       string `json:"query"`
	Auth        string `json:"auth"`
	ContentType string `json:"contentType"`
	Body        string `json:"body"`
}

func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health/live" {
			w.WriteHeader(http.StatusOK)
			return
		}
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Upstream", "drawing")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(echo{
			Method:      r.Method,
			Path:        r.URL.Path,
			Query:       r.URL.RawQuery,
			Auth:        r.Header.Get("Authorization"),
			ContentType: r.Header.Get("Content-Type"),
			Body:        string(body),
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func gateway(upstream string) *fiber.App {
	app := fiber.New()
	New(upstream, 2*time.Second, zap.NewNop()).Mount(app.Group("/api/v1"))
	return app
}

func TestForwardsRequest(t *testing.T) {
	srv := newUpstream(t)
	app := gateway(srv.URL + "/")

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/render?dimensions=true&class=x", strings.NewReader(`{"type":"bed"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token-1")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "drawing", resp.Header.Get("X-Upstream"))

	var got echo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, echo{
		Method:      "POST",
		Path:        "/render",
		Query:       "dimensions=true&class=x",
		Auth:        "Bearer token-1",
		ContentType: "application/json",
		Body:        `{"type":"bed"}`,
	}, got)
}

func TestForwardsNestedPaths(t *testing.T) {
	srv := newUpstream(t)
	app := gateway(srv.URL)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/api/v1/designs/abc", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var got echo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "DELETE", got.Method)
	assert.Equal(t, "/designs/abc", got.Path)
	assert.Empty(t, got.Query)
}

func TestUnreachableUpstream(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	app := gateway(url)
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/categories", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "failed to reach upstream service", body["error"])

	require.Error(t, New(url, time.Second, nil).Ping(context.Background()))
}

func TestPing(t *testing.T) {
	srv := newUpstream(t)
	require.NoError(t, New(srv.URL, time.Second, nil).Ping(context.Background()))
}

func TestCancelledRequestIsNotForwarded(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	app := fiber.New()
	app.Use(func(c fiber.Ctx) error {
		c.SetContext(ctx)
		return c.Next()
	})
	New(srv.URL, 2*time.Second, zap.NewNop()).Mount(app.Group("/api/v1"))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/v1/sheet", strings.NewReader(`{"specs":[]}`)))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Zero(t, hits)
}
