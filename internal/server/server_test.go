package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbaxter/adforge/internal/analysis"
	"github.com/mbaxter/adforge/internal/orchestrator"
	"github.com/mbaxter/adforge/internal/queue"
	"github.com/mbaxter/adforge/internal/types"
)

type fakeRunner struct {
	resp types.GenerateResponse
	seen []types.GenerateRequest
}

func (r *fakeRunner) Generate(_ context.Context, req types.GenerateRequest) types.GenerateResponse {
	r.seen = append(r.seen, req)
	return r.resp
}

func successResponse() types.GenerateResponse {
	return types.GenerateResponse{
		Success: true,
		Ads:     []types.GeneratedVariant{{Headline: "Fresh Bread Daily", Hashtags: []string{"#bakery"}}},
		Count:   1,
	}
}

const validPayload = `{"our_brand": "Corner Bakery", "competitor_name": "Big Bread Co", "num_variations": 1}`

func newSyncServer(runner *fakeRunner) *Server {
	return New(Config{}, runner, nil)
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req.RemoteAddr = "203.0.113.9:1234"
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleGenerate_Sync(t *testing.T) {
	runner := &fakeRunner{resp: successResponse()}
	s := newSyncServer(runner)
	defer s.rateLimiter.Stop()

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(validPayload))
	rec := serve(s, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Ads, 1)
	assert.Equal(t, "Fresh Bread Daily", resp.Ads[0].Headline)

	require.Len(t, runner.seen, 1)
	assert.Equal(t, "Corner Bakery", runner.seen[0].OurBrand)
}

func TestHandleGenerate_SchemaRejection(t *testing.T) {
	runner := &fakeRunner{resp: successResponse()}
	s := newSyncServer(runner)
	defer s.rateLimiter.Stop()

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"our_brand": "A"}`))
	rec := serve(s, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "competitor_name")
	assert.Empty(t, runner.seen, "invalid payloads never reach the runner")
}

func TestHandleGenerate_FailureStatus(t *testing.T) {
	runner := &fakeRunner{resp: types.GenerateResponse{Error: "context analysis failed"}}
	s := newSyncServer(runner)
	defer s.rateLimiter.Stop()

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(validPayload))
	rec := serve(s, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "context analysis failed")
}

func TestHandleGenerate_Queued(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	jobs := queue.New(client, time.Hour)

	runner := &fakeRunner{resp: successResponse()}
	s := New(Config{}, runner, jobs)
	defer s.rateLimiter.Stop()

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(validPayload))
	rec := serve(s, req)

	require.Equal(t, http.StatusAccepted, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body["job_id"])
	assert.Equal(t, "queued", body["status"])
	assert.Empty(t, runner.seen, "queued requests run in the worker, not the handler")

	statusReq := httptest.NewRequest(http.MethodGet, "/api/jobs/"+body["job_id"], nil)
	statusRec := serve(s, statusReq)
	require.Equal(t, http.StatusOK, statusRec.Code)

	var result queue.Result
	require.NoError(t, json.Unmarshal(statusRec.Body.Bytes(), &result))
	assert.Equal(t, queue.StatusQueued, result.Status)
}

func TestHandleGenerate_QueueDownFallsBackToSync(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	jobs := queue.New(client, time.Hour)
	mr.Close()

	runner := &fakeRunner{resp: successResponse()}
	s := New(Config{}, runner, jobs)
	defer s.rateLimiter.Stop()

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(validPayload))
	rec := serve(s, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, runner.seen, 1)
	assert.Contains(t, rec.Body.String(), "Fresh Bread Daily")
}

func TestHandleJobStatus_NotFound(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	jobs := queue.New(client, time.Hour)

	s := New(Config{}, &fakeRunner{}, jobs)
	defer s.rateLimiter.Stop()

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/missing", nil)
	rec := serve(s, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleJobStatus_NoQueue(t *testing.T) {
	s := newSyncServer(&fakeRunner{})
	defer s.rateLimiter.Stop()

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/any", nil)
	rec := serve(s, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "job queue not configured")
}

func TestHandleHealth(t *testing.T) {
	s := newSyncServer(&fakeRunner{})
	defer s.rateLimiter.Stop()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := serve(s, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
	assert.NotContains(t, rec.Body.String(), "stats")
}

type statsRunner struct {
	fakeRunner
	stats orchestrator.Stats
}

func (r *statsRunner) Statistics() orchestrator.Stats { return r.stats }

func TestHandleHealth_IncludesRunnerStats(t *testing.T) {
	runner := &statsRunner{stats: orchestrator.Stats{Analysis: analysis.Stats{TotalProcessed: 4, Successful: 4}}}
	s := New(Config{}, runner, nil)
	defer s.rateLimiter.Stop()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := serve(s, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"stats"`)
	assert.Contains(t, rec.Body.String(), `"total_processed":4`)
}
