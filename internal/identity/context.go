// Package identity reads per-request values (the authenticated user and
// the active locale) out of the Fiber context.
package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sudanscouts/community-backend/internal/locale"
)

// GetUserID extracts the user UUID from JWT claims in context.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}

// GetLocale returns the locale resolved by the locale middleware,
// defaulting when the middleware did not run.
func GetLocale(c *fiber.Ctx) locale.Locale {
	if loc, ok := c.Locals("locale").(locale.Locale); ok {
		return loc
	}
	return locale.Default
}
