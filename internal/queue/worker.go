package queue

import (
	"context"
	"log"
	"time"

	"github.com/mbaxter/adforge/internal/types"
)

// dequeueTimeout bounds each blocking poll so the worker can observe
// context cancellation.
const dequeueTimeout = 5 * time.Second

// Runner executes one generation job.
type Runner interface {
	Generate(ctx context.Context, req types.GenerateRequest) types.GenerateResponse
}

// Worker consumes jobs from a queue and records their results.
type Worker struct {
	queue  *Queue
	runner Runner
}

// NewWorker creates a worker draining q into runner.
func NewWorker(q *Queue, runner Runner) *Worker {
	return &Worker{queue: q, runner: runner}
}

// Run consumes jobs until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	log.Printf("worker: started")
	for {
		if err := ctx.Err(); err != nil {
			log.Printf("worker: stopping: %v", err)
			return err
		}

		job, ok, err := w.queue.Dequeue(ctx, dequeueTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Printf("worker: dequeue failed: %v", err)
			continue
		}
		if !ok {
			continue
		}
		w.Process(ctx, job)
	}
}

// Process runs one job and stores its result. Result-store failures are
// logged; the job itself is not retried.
func (w *Worker) Process(ctx context.Context, job Job) {
	if err := w.queue.setResult(ctx, Result{ID: job.ID, Status: StatusStarted}); err != nil {
		log.Printf("worker: job %s status update failed: %v", job.ID, err)
	}

	resp := w.runner.Generate(ctx, job.Request)

	status := StatusFinished
	if !resp.Success {
		status = StatusFailed
	}
	if err := w.queue.setResult(ctx, Result{ID: job.ID, Status: status, Response: &resp}); err != nil {
		log.Printf("worker: job %s result store failed: %v", job.ID, err)
	}
	log.Printf("worker: job %s %s", job.ID, status)
}
