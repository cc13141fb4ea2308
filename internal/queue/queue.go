// Package queue provides a Redis-backed job queue for ad-generation runs.
// Jobs are pushed onto a list and consumed by workers; results are stored
// under per-job keys with a TTL so callers can poll for completion.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mbaxter/adforge/internal/types"
)

const (
	jobList         = "adforge:jobs"
	resultKeyPrefix = "adforge:result:"
)

// DefaultResultTTL is how long job results stay available for polling.
const DefaultResultTTL = time.Hour

// ErrJobNotFound reports an unknown or expired job ID.
var ErrJobNotFound = errors.New("job not found")

// JobStatus is the lifecycle state of a queued job.
type JobStatus string

// Job statuses.
const (
	StatusQueued   JobStatus = "queued"
	StatusStarted  JobStatus = "started"
	StatusFinished JobStatus = "finished"
	StatusFailed   JobStatus = "failed"
)

// Job is the envelope pushed onto the queue.
type Job struct {
	ID         string                `json:"id"`
	EnqueuedAt time.Time             `json:"enqueued_at"`
	Request    types.GenerateRequest `json:"request"`
}

// Result is the pollable state of a job.
type Result struct {
	ID       string                  `json:"id"`
	Status   JobStatus               `json:"status"`
	Response *types.GenerateResponse `json:"response,omitempty"`
}

// Queue produces and consumes generation jobs over Redis.
type Queue struct {
	client    *redis.Client
	resultTTL time.Duration
}

// New creates a queue on client. A non-positive resultTTL falls back to
// DefaultResultTTL.
func New(client *redis.Client, resultTTL time.Duration) *Queue {
	if resultTTL <= 0 {
		resultTTL = DefaultResultTTL
	}
	return &Queue{client: client, resultTTL: resultTTL}
}

// Enqueue pushes a job for req and returns its ID. The job is immediately
// visible to Status as queued.
func (q *Queue) Enqueue(ctx context.Context, req types.GenerateRequest) (string, error) {
	job := Job{
		ID:         uuid.NewString(),
		EnqueuedAt: time.Now().UTC(),
		Request:    req,
	}
	payload, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("failed to encode job: %w", err)
	}

	if err := q.setResult(ctx, Result{ID: job.ID, Status: StatusQueued}); err != nil {
		return "", err
	}
	if err := q.client.RPush(ctx, jobList, payload).Err(); err != nil {
		return "", fmt.Errorf("failed to enqueue job: %w", err)
	}
	return job.ID, nil
}

// Status returns the current result for a job ID. Unknown and expired jobs
// return ErrJobNotFound.
func (q *Queue) Status(ctx context.Context, id string) (Result, error) {
	raw, err := q.client.Get(ctx, resultKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return Result{}, ErrJobNotFound
	}
	if err != nil {
		return Result{}, fmt.Errorf("failed to read job status: %w", err)
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return Result{}, fmt.Errorf("job result corrupt: %w", err)
	}
	return result, nil
}

// Dequeue blocks up to timeout for the next job. A quiet queue returns
// ok false with no error.
func (q *Queue) Dequeue(ctx context.Context, timeout time.Duration) (Job, bool, error) {
	entries, err := q.client.BLPop(ctx, timeout, jobList).Result()
	if errors.Is(err, redis.Nil) {
		return Job{}, false, nil
	}
	if err != nil {
		return Job{}, false, fmt.Errorf("failed to dequeue job: %w", err)
	}
	if len(entries) != 2 {
		return Job{}, false, fmt.Errorf("unexpected BLPOP reply length %d", len(entries))
	}

	var job Job
	if err := json.Unmarshal([]byte(entries[1]), &job); err != nil {
		return Job{}, false, fmt.Errorf("job payload corrupt: %w", err)
	}
	return job, true, nil
}

func (q *Queue) setResult(ctx context.Context, result Result) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode job result: %w", err)
	}
	if err := q.client.Set(ctx, resultKeyPrefix+result.ID, payload, q.resultTTL).Err(); err != nil {
		return fmt.Errorf("failed to store job result: %w", err)
	}
	return nil
}
