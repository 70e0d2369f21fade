package wallet

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/lumina-store/lumina/internal/apperr"
	"github.com/lumina-store/lumina/internal/middleware"
)

// Handler exposes wallet HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a wallet HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type walletResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Balance  int64  `json:"balance"`
	Currency string `json:"currency"`
}

// Me returns the authenticated caller's wallet.
func (h *Handler) Me(c *fiber.Ctx) error {
	user, ok := middleware.UserFromCtx(c)
	if !ok {
		return apperr.Auth("authorization required")
	}
	wallet, err := h.service.GetByUser(c.UserContext(), user.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.NotFound("wallet not found")
		}
		return apperr.Unexpected(err)
	}
	return c.Status(http.StatusOK).JSON(walletResponse{
		ID:       wallet.ID,
		UserID:   wallet.UserID,
		Balance:  wallet.Balance,
		Currency: wallet.Currency,
	})
}
