// Package jobs provides a small in-process background job runner: a bounded
// queue drained by a fixed pool of workers, with graceful shutdown.
package jobs

import (
	"context"
	"errors"
	"log"
	"sync"
)

var (
	// ErrQueueFull is returned when the queue cannot accept more jobs.
	ErrQueueFull = errors.New("job queue is full")
	// ErrStopped is returned when the runner is shutting down.
	ErrStopped = errors.New("job runner is stopped")
)

// Job is a unit of background work. The context is canceled when the runner
// shuts down hard.
type Job func(ctx context.Context)

type Runner struct {
	queue   chan Job
	workers int

	mu      sync.Mutex
	stopped bool

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

func NewRunner(workers, queueSize int) *Runner {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &Runner{
		queue:   make(chan Job, queueSize),
		workers: workers,
	}
}

// Start launches the worker pool.
func (r *Runner) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(ctx, i)
	}
}

func (r *Runner) worker(ctx context.Context, id int) {
	defer r.wg.Done()
	for job := range r.queue {
		func() {
			defer func() {
				if err := recover(); err != nil {
					log.Printf("job panic recovered: worker=%d error=%v", id, err)
				}
			}()
			job(ctx)
		}()
	}
}

// Enqueue submits a job without blocking. It fails fast when the queue is
// full so callers can surface backpressure to clients.
func (r *Runner) Enqueue(job Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return ErrStopped
	}

	select {
	case r.queue <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Shutdown stops accepting jobs and waits for queued ones to drain. When ctx
// expires first, remaining jobs are canceled.
func (r *Runner) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return nil
	}
	r.stopped = true
	close(r.queue)
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		if r.cancel != nil {
			r.cancel()
		}
		<-done
		return ctx.Err()
	}
}
