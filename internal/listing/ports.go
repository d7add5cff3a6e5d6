package listing

import (
	"context"
)

// Repository defines the contract for listing data storage.
type Repository interface {
	List(ctx context.Context, q Query) ([]Listing, int, error)
	GetByID(ctx context.Context, id string) (Listing, error)
	Create(ctx context.Context, l *Listing) error
	Update(ctx context.Context, l *Listing) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]Listing, error)
}
