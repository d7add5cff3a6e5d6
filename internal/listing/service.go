package listing

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service provides listing-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new listing service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns listings matching the query along with the total count.
func (s *Service) List(ctx context.Context, q Query) ([]Listing, int, error) {
	return s.repo.List(ctx, q)
}

// GetByID returns a single listing by its ID.
func (s *Service) GetByID(ctx context.Context, id string) (Listing, error) {
	return s.repo.GetByID(ctx, id)
}

// Create assigns an ID and timestamps, then persists the listing.
func (s *Service) Create(ctx context.Context, l *Listing) error {
	now := time.Now().UTC().Truncate(time.Second)
	l.ID = uuid.NewString()
	l.CreatedAt = now
	l.UpdatedAt = now
	return s.repo.Create(ctx, l)
}

// Update persists the new field values for an existing listing.
func (s *Service) Update(ctx context.Context, l *Listing) error {
	l.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	return s.repo.Update(ctx, l)
}

// Delete removes a listing by its ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
