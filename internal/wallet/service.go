package wallet

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service exposes wallet provisioning and lookup.
type Service struct {
	repo     Repository
	currency string
}

// NewService builds a wallet service instance.
func NewService(repo Repository, currency string) *Service {
	if currency == "" {
		currency = "RUB"
	}
	return &Service{repo: repo, currency: currency}
}

// CreateForUser provisions the user's zero-balance wallet. Called once, at
// registration.
func (s *Service) CreateForUser(ctx context.Context, userID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return err
	}
	wallet := Wallet{
		ID:        uuid.New().String(),
		UserID:    userID,
		Balance:   0,
		Currency:  s.currency,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, wallet)
}

// GetByUser retrieves the wallet owned by the given user.
func (s *Service) GetByUser(ctx context.Context, userID string) (Wallet, error) {
	return s.repo.GetByUser(ctx, userID)
}
