package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sudanscouts/community-backend/internal/dto"
	"github.com/sudanscouts/community-backend/internal/services"
)

type UploadHandler struct {
	service *services.UploadService
}

func NewUploadHandler(service *services.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload handles POST /api/admin/uploads with a multipart "file" field.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "No file provided",
		})
	}

	url, err := h.service.Save(header)
	if err != nil {
		if errors.Is(err, services.ErrUploadTooLarge) || errors.Is(err, services.ErrUploadBadType) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Upload failed",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{URL: url})
}
