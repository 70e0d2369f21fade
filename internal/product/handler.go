package product

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/lumina-store/lumina/internal/apperr"
)

// Handler exposes catalogue HTTP endpoints, public and admin.
type Handler struct {
	service *Service
}

// NewHandler constructs a product HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List serves the public storefront listing.
func (h *Handler) List(c *fiber.Ctx) error {
	products, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"products": products})
}

// Get serves one public product page.
func (h *Handler) Get(c *fiber.Ctx) error {
	p, err := h.service.Get(c.UserContext(), c.Params("productId"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"product": p})
}

// AdminList returns the full catalogue, hidden items included.
func (h *Handler) AdminList(c *fiber.Ctx) error {
	products, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"products": products})
}

// Create adds a catalogue item.
func (h *Handler) Create(c *fiber.Ctx) error {
	var input Input
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body")
	}
	p, err := h.service.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "product created", "product": p})
}

// Update rewrites a catalogue item.
func (h *Handler) Update(c *fiber.Ctx) error {
	var input Input
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body")
	}
	p, err := h.service.Update(c.UserContext(), c.Params("productId"), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "product updated", "product": p})
}
