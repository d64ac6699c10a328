package middlewares

import (
	"github.com/gofiber/fiber/v2"

	database "decofilm_backend/internals/databases"
)

// RequireDatabase answers 503 on every /api route while no database is
// configured. The payload is the exact sentinel the admin frontend keys its
// sample-data fallback on.
func RequireDatabase() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if database.IsDegraded() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error":   "database not configured",
				"details": "set DB_HOST/DB_USER/DB_PASSWORD/DB_NAME to enable persistence",
			})
		}
		return c.Next()
	}
}
