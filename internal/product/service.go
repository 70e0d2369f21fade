package product

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lumina-store/lumina/internal/apperr"
)

// Service exposes the public catalogue reads and the admin catalogue writes.
type Service struct {
	repo  Repository
	cache *Cache
}

// NewService builds a product service instance.
func NewService(repo Repository, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// List returns the active catalogue, serving from the cache when possible.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	if products, ok := s.cache.GetListing(ctx); ok {
		return products, nil
	}
	products, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	s.cache.SetListing(ctx, products)
	return products, nil
}

// Get returns one active product.
func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	p, err := s.repo.GetActive(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Product{}, apperr.NotFound("product not found")
		}
		return Product{}, apperr.Unexpected(err)
	}
	return p, nil
}

// ListAll returns the full catalogue for the admin surface.
func (s *Service) ListAll(ctx context.Context) ([]Product, error) {
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return products, nil
}

// Create adds a catalogue item and invalidates the public listing.
func (s *Service) Create(ctx context.Context, input Input) (Product, error) {
	if input.Title == "" {
		return Product{}, apperr.Validation("title is required")
	}
	now := time.Now().UTC()
	p := Product{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Product{}, apperr.Unexpected(err)
	}
	s.cache.Invalidate(ctx)
	return p, nil
}

// Update rewrites a catalogue item and invalidates the public listing.
func (s *Service) Update(ctx context.Context, id string, input Input) (Product, error) {
	if input.Title == "" {
		return Product{}, apperr.Validation("title is required")
	}
	p := Product{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		IsActive:    true,
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}
	stored, err := s.repo.Update(ctx, p)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Product{}, apperr.NotFound("product not found")
		}
		return Product{}, apperr.Unexpected(err)
	}
	s.cache.Invalidate(ctx)
	return stored, nil
}
