package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lumina-store/lumina/internal/product"
)

// RegisterProductRoutes wires the public catalogue endpoints.
func RegisterProductRoutes(r fiber.Router, h *product.Handler) {
	r.Get("/products", h.List)
	r.Get("/products/:productId", h.Get)
}
