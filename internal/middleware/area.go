package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sudanscouts/community-backend/internal/authz"
	"github.com/sudanscouts/community-backend/internal/dto"
	"github.com/sudanscouts/community-backend/internal/identity"
	"github.com/sudanscouts/community-backend/internal/services"
)

// RequireArea guards a protected area. The role is resolved fresh on every
// request, never cached past a role change, and the resolver fails closed,
// so a broken lookup can only deny.
func RequireArea(roles *services.RoleService, area authz.Area) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := identity.GetUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		role := roles.Resolve(userID)
		if role == authz.NoRole {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Sign in required",
			})
		}
		if !authz.CanAccess(role, area) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "You are not authorized to perform this action",
			})
		}

		c.Locals("role", role)
		return c.Next()
	}
}

// RequireAnyArea admits a caller whose role can enter at least one admin
// area. Used for shared surfaces like media upload.
func RequireAnyArea(roles *services.RoleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := identity.GetUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		role := roles.Resolve(userID)
		if role == authz.NoRole {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Sign in required",
			})
		}
		if !authz.CanAccess(role, authz.AreaFinance) && !authz.CanAccess(role, authz.AreaMedia) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "You are not authorized to perform this action",
			})
		}

		c.Locals("role", role)
		return c.Next()
	}
}
