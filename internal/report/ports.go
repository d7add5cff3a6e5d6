package report

import (
	"context"

	"catalogapi/internal/jobs"
	"catalogapi/internal/listing"
)

// Repository defines the contract for report data storage.
type Repository interface {
	Create(ctx context.Context, rep *Report) error
	GetByID(ctx context.Context, id string) (Report, error)
	SetStatus(ctx context.Context, id, status string) error
	Complete(ctx context.Context, id string, resultJSON []byte) error
	Fail(ctx context.Context, id, errMsg string) error
}

// ListingSource supplies the listings a report is computed over.
type ListingSource interface {
	ListAll(ctx context.Context) ([]listing.Listing, error)
}

// Enqueuer submits background work, typically the jobs.Runner.
type Enqueuer interface {
	Enqueue(job jobs.Job) error
}
