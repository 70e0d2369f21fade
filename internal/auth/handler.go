package auth

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lumina-store/lumina/internal/apperr"
)

// Handler exposes account and session endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs the auth HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// TokenFromRequest extracts the raw bearer token from the Authorization or
// X-Authorization header, stripping an optional "Bearer " prefix.
func TokenFromRequest(c *fiber.Ctx) string {
	value := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if value == "" {
		value = strings.TrimSpace(c.Get("X-Authorization"))
	}
	if len(value) >= 7 && strings.EqualFold(value[:7], "bearer ") {
		return strings.TrimSpace(value[7:])
	}
	return value
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}

// Register handles account creation.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	result, err := h.service.Register(c.UserContext(), Credentials{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(authResponse{Message: "registration successful", Token: result.Token, User: result.User})
}

// Login verifies credentials and issues a fresh session token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	result, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(authResponse{Message: "login successful", Token: result.Token, User: result.User})
}

// Verify resolves the presented token to its owner's profile.
func (h *Handler) Verify(c *fiber.Ctx) error {
	user, err := h.service.VerifySession(c.UserContext(), TokenFromRequest(c))
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"valid": true, "user": user})
}

// Logout revokes the presented session token.
func (h *Handler) Logout(c *fiber.Ctx) error {
	if err := h.service.Logout(c.UserContext(), TokenFromRequest(c)); err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "logged out"})
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// ChangePassword rotates the caller's credential.
func (h *Handler) ChangePassword(c *fiber.Ctx) error {
	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := h.service.ChangePassword(c.UserContext(), TokenFromRequest(c), req.OldPassword, req.NewPassword); err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "password updated"})
}
