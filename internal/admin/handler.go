package admin

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the admin dashboard endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs an admin HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Users returns the user listing with wallet balances.
func (h *Handler) Users(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"users": users})
}

// Stats returns the dashboard summary.
func (h *Handler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"stats": stats})
}
