package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sudanscouts/community-backend/internal/locale"
)

// LocaleMiddleware resolves the active locale for the request, checking the
// lang query param first, then Accept-Language, defaulting to Arabic.
func LocaleMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Query("lang")
		if raw == "" {
			raw = c.Get("Accept-Language")
		}
		c.Locals("locale", locale.Parse(raw))
		return c.Next()
	}
}
