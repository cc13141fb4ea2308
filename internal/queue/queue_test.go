package queue

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbaxter/adforge/internal/types"
)

func newTestQueue(t *testing.T) (*Queue, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(client, time.Hour), mr
}

func testRequest() types.GenerateRequest {
	return types.GenerateRequest{
		OurBrand:       "Corner Bakery",
		CompetitorName: "Big Bread Co",
		NumVariations:  2,
	}
}

type fakeRunner struct {
	resp types.GenerateResponse
	seen []types.GenerateRequest
}

func (r *fakeRunner) Generate(_ context.Context, req types.GenerateRequest) types.GenerateResponse {
	r.seen = append(r.seen, req)
	return r.resp
}

func TestQueue_EnqueueAndStatus(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	id, err := q.Enqueue(ctx, testRequest())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	result, err := q.Status(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, StatusQueued, result.Status)
	assert.Nil(t, result.Response)
}

func TestQueue_StatusUnknownJob(t *testing.T) {
	q, _ := newTestQueue(t)

	_, err := q.Status(context.Background(), "no-such-job")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestQueue_ResultExpiry(t *testing.T) {
	q, mr := newTestQueue(t)
	ctx := context.Background()

	id, err := q.Enqueue(ctx, testRequest())
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = q.Status(ctx, id)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestQueue_DequeueRoundTrip(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	id, err := q.Enqueue(ctx, testRequest())
	require.NoError(t, err)

	job, ok, err := q.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, id, job.ID)
	assert.Equal(t, "Corner Bakery", job.Request.OurBrand)
	assert.Equal(t, 2, job.Request.NumVariations)
}

func TestWorker_ProcessSuccess(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	runner := &fakeRunner{resp: types.GenerateResponse{
		Success: true,
		Ads:     []types.GeneratedVariant{{Headline: "Fresh Bread Daily"}},
		Count:   1,
	}}
	w := NewWorker(q, runner)

	id, err := q.Enqueue(ctx, testRequest())
	require.NoError(t, err)

	job, ok, err := q.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	w.Process(ctx, job)

	result, err := q.Status(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, StatusFinished, result.Status)
	require.NotNil(t, result.Response)
	assert.Equal(t, "Fresh Bread Daily", result.Response.Ads[0].Headline)
	require.Len(t, runner.seen, 1)
}

func TestWorker_ProcessFailure(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	runner := &fakeRunner{resp: types.GenerateResponse{Error: "context analysis failed"}}
	w := NewWorker(q, runner)

	id, err := q.Enqueue(ctx, testRequest())
	require.NoError(t, err)

	job, _, err := q.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	w.Process(ctx, job)

	result, err := q.Status(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, result.Status)
	require.NotNil(t, result.Response)
	assert.Equal(t, "context analysis failed", result.Response.Error)
}
