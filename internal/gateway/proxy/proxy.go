package proxy

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// ============================================================
// Proxy Handler
// ============================================================

// заголовки соединения не пробрасываются ни туда, ни обратно
var hopHeaders = map[string]bool{
	"Connection":        true,
	"Keep-Alive":        true,
	"Transfer-Encoding": true,
	"Upgrade":           true,
	"Content-Length":    true,
}

type Proxy struct {
	upstream string
	client   *http.Client
	logger   *zap.Logger
}

func New(upstream string, timeout time.Duration, logger *zap.Logger) *Proxy {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Proxy{
		upstream: strings.TrimRight(upstream, "/"),
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// Mount проксирует всё под r на upstream, сохраняя хвост пути.
func (p *Proxy) Mount(r fiber.Router) {
	r.All("/*", func(c fiber.Ctx) error {
		return p.Forward(c, "/"+c.Params("*"))
	})
}

// Forward проксирует запрос на upstream+path с query исходного запроса.
func (p *Proxy) Forward(c fiber.Ctx, path string) error {
	target := p.upstream + path
	if qs := c.Request().URI().QueryString(); len(qs) > 0 {
		target += "?" + string(qs)
	}

	p.logger.Debug("proxy request",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.String("target", target),
		zap.Int("content_length", len(c.Body())),
	)

	req, err := http.NewRequestWithContext(c.Context(), c.Method(), target, bytes.NewReader(c.Body()))
	if err != nil {
		p.logger.Error("build request", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "proxy failed"})
	}

	if contentType := c.Get(fiber.HeaderContentType); contentType != "" {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}
	if accept := c.Get(fiber.HeaderAccept); accept != "" {
		req.Header.Set(fiber.HeaderAccept, accept)
	}
	if auth := c.Get(fiber.HeaderAuthorization); auth != "" {
		req.Header.Set(fiber.HeaderAuthorization, auth)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn("upstream unreachable", zap.String("target", target), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to reach upstream service"})
	}
	defer resp.Body.Close()

	return p.copyResponse(c, resp)
}

func (p *Proxy) copyResponse(c fiber.Ctx, resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		p.logger.Warn("read upstream response", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "invalid upstream response"})
	}

	for key, values := range resp.Header {
		if hopHeaders[key] || len(values) == 0 {
			continue
		}
		c.Set(key, values[0])
	}

	c.Status(resp.StatusCode)
	return c.Send(data)
}

// Ping проверяет upstream по его /health/live; для readiness гейтвея.
func (p *Proxy) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.upstream+"/health/live", nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream returned %d", resp.StatusCode)
	}
	return nil
}
