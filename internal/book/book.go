package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Book represents a book record.
type Book struct {
	ID            string    `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Author        string    `db:"author" json:"author"`
	Description   string    `db:"description" json:"description,omitempty"`
	PublishedDate string    `db:"published_date" json:"published_date,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// Query defines filters and pagination for listing books.
type Query struct {
	Author string
	Q      string
	Sort   string
	Desc   bool
	Limit  int
	Offset int
}
