package book

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns books matching the query along with the total count.
func (s *Service) List(ctx context.Context, q Query) ([]Book, int, error) {
	return s.repo.List(ctx, q)
}

// GetByID returns a single book by its ID.
func (s *Service) GetByID(ctx context.Context, id string) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Create assigns an ID and timestamps, then persists the book.
func (s *Service) Create(ctx context.Context, b *Book) error {
	now := time.Now().UTC().Truncate(time.Second)
	b.ID = uuid.NewString()
	b.CreatedAt = now
	b.UpdatedAt = now
	return s.repo.Create(ctx, b)
}

// Update persists the new field values for an existing book.
func (s *Service) Update(ctx context.Context, b *Book) error {
	b.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	return s.repo.Update(ctx, b)
}

// Delete removes a book by its ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
