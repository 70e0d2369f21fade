package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lumina-store/lumina/internal/admin"
	"github.com/lumina-store/lumina/internal/content"
	"github.com/lumina-store/lumina/internal/product"
)

// RegisterAdminRoutes wires the admin-only surface. The caller passes a
// group already gated by the admin middleware.
func RegisterAdminRoutes(r fiber.Router, h *admin.Handler, ch *content.Handler, ph *product.Handler) {
	r.Get("/users", h.Users)
	r.Get("/stats", h.Stats)
	r.Get("/content", ch.List)
	r.Post("/content", ch.Upsert)
	r.Get("/products", ph.AdminList)
	r.Post("/products", ph.Create)
	r.Put("/products/:productId", ph.Update)
}
