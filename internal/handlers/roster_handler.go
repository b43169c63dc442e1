package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/sudanscouts/community-backend/internal/dto"
	"github.com/sudanscouts/community-backend/internal/identity"
	"github.com/sudanscouts/community-backend/internal/roster"
	"github.com/sudanscouts/community-backend/internal/services"
)

// RosterHandler serves the CSV export download and the import upload.
type RosterHandler struct {
	service *services.RosterService
}

func NewRosterHandler(service *services.RosterService) *RosterHandler {
	return &RosterHandler{service: service}
}

// Export handles GET /api/admin/roster/export: the full member collection
// as a CSV in the request's locale.
func (h *RosterHandler) Export(c *fiber.Ctx) error {
	data, err := h.service.Export(identity.GetLocale(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to export members",
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+roster.Filename()+`"`)
	return c.Send(data)
}

// Import handles POST /api/admin/roster/import with a multipart "file"
// field. A file that cannot be parsed fails the whole operation; row-level
// problems only show up in the report's error count.
func (h *RosterHandler) Import(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "A CSV file is required",
		})
	}

	file, err := header.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Could not read the uploaded file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Could not read the uploaded file",
		})
	}

	report, err := h.service.Import(data)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(report)
}
