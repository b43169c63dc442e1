package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sudanscouts/community-backend/internal/dto"
	"github.com/sudanscouts/community-backend/internal/models"
	"github.com/sudanscouts/community-backend/internal/services"
)

// ScoutHandler serves the member list, profiles and the admin mutations.
type ScoutHandler struct {
	service *services.ScoutService
}

func NewScoutHandler(service *services.ScoutService) *ScoutHandler {
	return &ScoutHandler{service: service}
}

// List handles GET /api/scouts
func (h *ScoutHandler) List(c *fiber.Ctx) error {
	scouts, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Could not fetch members list",
		})
	}
	return c.JSON(scouts)
}

// Get handles GET /api/scouts/:id
func (h *ScoutHandler) Get(c *fiber.Ctx) error {
	scout, err := h.service.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrScoutNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Member not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Could not fetch member",
		})
	}
	return c.JSON(scout)
}

// Create handles POST /api/admin/scouts
func (h *ScoutHandler) Create(c *fiber.Ctx) error {
	var scout models.Scout
	if err := c.BodyParser(&scout); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.service.Create(&scout); err != nil {
		if errors.Is(err, services.ErrDuplicateScoutID) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(scout)
}

// Update handles PUT /api/admin/scouts/:id
func (h *ScoutHandler) Update(c *fiber.Ctx) error {
	var scout models.Scout
	if err := c.BodyParser(&scout); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.service.Update(c.Params("id"), &scout); err != nil {
		if errors.Is(err, services.ErrScoutNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Member not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(scout)
}

// Delete handles DELETE /api/admin/scouts/:id
func (h *ScoutHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		if errors.Is(err, services.ErrScoutNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Member not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete member",
		})
	}
	return c.JSON(fiber.Map{"message": "Member deleted"})
}

// SetPaymentStatus handles PUT /api/admin/scouts/:id/payments/:index
func (h *ScoutHandler) SetPaymentStatus(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid payment index",
		})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	scout, err := h.service.SetPaymentStatus(c.Params("id"), index, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrScoutNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Member not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(scout)
}
