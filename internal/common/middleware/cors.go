package middleware

import (
	"slices"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

// CORS разрешает перечисленные источники; "*" разрешает любые (dev).
func CORS(origins []string) fiber.Handler {
	if len(origins) == 0 || slices.Contains(origins, "*") {
		origins = []string{"*"}
	}
	return cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowMethods:  []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions},
		ExposeHeaders: []string{"Content-Type"},
	})
}
