package admin

import (
	"context"

	"github.com/lumina-store/lumina/internal/apperr"
)

// Service exposes the admin dashboard reads.
type Service struct {
	repo Repository
}

// NewService builds an admin service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListUsers returns every account with its wallet balance.
func (s *Service) ListUsers(ctx context.Context) ([]UserRecord, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return users, nil
}

// Stats returns the dashboard summary.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return Stats{}, apperr.Unexpected(err)
	}
	return stats, nil
}
