package report

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a report is not found.
var ErrNotFound = errors.New("report not found")

// Report statuses.
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Report is an asynchronously generated market summary over listings.
type Report struct {
	ID          string    `db:"id" json:"id"`
	Status      string    `db:"status" json:"status"`
	RequestedBy string    `db:"requested_by" json:"requested_by"`
	ResultJSON  []byte    `db:"result_json" json:"-"`
	Error       string    `db:"error" json:"error,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Result is the computed payload of a completed report.
type Result struct {
	TotalListings   int            `json:"total_listings"`
	AveragePrice    float64        `json:"average_price"`
	MinPrice        float64        `json:"min_price"`
	MaxPrice        float64        `json:"max_price"`
	MostExpensiveID string         `json:"most_expensive_id,omitempty"`
	CountByLocation map[string]int `json:"count_by_location"`
	GeneratedAt     time.Time      `json:"generated_at"`
}
