package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lumina-store/lumina/internal/auth"
)

// RegisterAuthRoutes wires account and session endpoints. Logout and verify
// read the token themselves so that revoking an already-dead token still
// succeeds.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler) {
	group := r.Group("/auth")
	group.Post("/register", h.Register)
	group.Post("/login", h.Login)
	group.Get("/verify", h.Verify)
	group.Post("/logout", h.Logout)
	group.Post("/change-password", h.ChangePassword)
}
