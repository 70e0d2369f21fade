package content

import (
	"context"

	"github.com/google/uuid"

	"github.com/lumina-store/lumina/internal/apperr"
)

// Service exposes admin content management.
type Service struct {
	repo Repository
}

// NewService builds a content service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every content block.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return entries, nil
}

// Upsert creates or rewrites the block at (section, key) on behalf of the
// editing admin.
func (s *Service) Upsert(ctx context.Context, input Input, editorID string) error {
	if input.Section == "" || input.Key == "" {
		return apperr.Validation("section and key are required")
	}
	contentType := input.ContentType
	if contentType == "" {
		contentType = "text"
	}
	entry := Entry{
		ID:          uuid.New().String(),
		Section:     input.Section,
		Key:         input.Key,
		Content:     input.Content,
		ContentType: contentType,
		UpdatedBy:   editorID,
	}
	if err := s.repo.Upsert(ctx, entry); err != nil {
		return apperr.Unexpected(err)
	}
	return nil
}
