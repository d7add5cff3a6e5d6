package listing

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a listing is not found.
var ErrNotFound = errors.New("listing not found")

// Listing represents a marketplace listing.
type Listing struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Location    string    `db:"location" json:"location"`
	Description string    `db:"description" json:"description,omitempty"`
	Price       float64   `db:"price" json:"price"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Query defines filters and pagination for listing searches.
type Query struct {
	Location string
	Q        string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
	Desc     bool
	Limit    int
	Offset   int
}
