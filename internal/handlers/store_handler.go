package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sudanscouts/community-backend/internal/dto"
	"github.com/sudanscouts/community-backend/internal/services"
)

// StoreHandler serves checkout and the contact form. Both end in a
// prefilled messaging deep link, never a payment call.
type StoreHandler struct {
	checkout *services.CheckoutService
}

func NewStoreHandler(checkout *services.CheckoutService) *StoreHandler {
	return &StoreHandler{checkout: checkout}
}

// Checkout handles POST /api/store/checkout
func (h *StoreHandler) Checkout(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.checkout.PlaceOrder(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMessagingDisabled):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrUnknownCartProduct):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
	}
	return c.JSON(resp)
}

// Contact handles POST /api/contact
func (h *StoreHandler) Contact(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.checkout.ContactLink(&req)
	if err != nil {
		if errors.Is(err, services.ErrMessagingDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(resp)
}
