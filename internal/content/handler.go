package content

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/lumina-store/lumina/internal/apperr"
	"github.com/lumina-store/lumina/internal/middleware"
)

// Handler exposes the admin content endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a content HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns every content block.
func (h *Handler) List(c *fiber.Ctx) error {
	entries, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"content": entries})
}

// Upsert creates or rewrites one content block.
func (h *Handler) Upsert(c *fiber.Ctx) error {
	var input Input
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body")
	}
	editor, ok := middleware.UserFromCtx(c)
	if !ok {
		return apperr.Auth("authorization required")
	}
	if err := h.service.Upsert(c.UserContext(), input, editor.ID); err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "content updated"})
}
