package report

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
)

// Service requests report generation and runs it on the background runner.
type Service struct {
	repo     Repository
	listings ListingSource
	runner   Enqueuer
}

func NewService(repo Repository, listings ListingSource, runner Enqueuer) *Service {
	return &Service{repo: repo, listings: listings, runner: runner}
}

// Request persists a pending report and enqueues its generation. The pending
// row is created first so a queue rejection never leaves a dangling job.
func (s *Service) Request(ctx context.Context, requestedBy string) (Report, error) {
	now := time.Now().UTC().Truncate(time.Second)
	rep := Report{
		ID:          uuid.NewString(),
		Status:      StatusPending,
		RequestedBy: requestedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, &rep); err != nil {
		return Report{}, err
	}

	reportID := rep.ID
	if err := s.runner.Enqueue(func(jobCtx context.Context) {
		s.generate(jobCtx, reportID)
	}); err != nil {
		if failErr := s.repo.Fail(ctx, reportID, "job queue unavailable"); failErr != nil {
			log.Printf("report %s: failed to mark as failed: %v", reportID, failErr)
		}
		return Report{}, err
	}

	return rep, nil
}

// GetByID returns a report by its ID.
func (s *Service) GetByID(ctx context.Context, id string) (Report, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) generate(ctx context.Context, id string) {
	if err := s.repo.SetStatus(ctx, id, StatusRunning); err != nil {
		log.Printf("report %s: cannot mark running: %v", id, err)
		return
	}

	listings, err := s.listings.ListAll(ctx)
	if err != nil {
		s.fail(ctx, id, err.Error())
		return
	}

	result := Compute(listings, time.Now())
	payload, err := json.Marshal(result)
	if err != nil {
		s.fail(ctx, id, err.Error())
		return
	}

	if err := s.repo.Complete(ctx, id, payload); err != nil {
		log.Printf("report %s: cannot mark completed: %v", id, err)
	}
}

func (s *Service) fail(ctx context.Context, id, msg string) {
	if err := s.repo.Fail(ctx, id, msg); err != nil {
		log.Printf("report %s: cannot mark failed: %v", id, err)
	}
}
