package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/mbaxter/adforge/internal/queue"
	"github.com/mbaxter/adforge/internal/schemas"
	"github.com/mbaxter/adforge/internal/types"
)

// maxRequestBody bounds generation request payloads.
const maxRequestBody = 64 * 1024

// handleGenerate accepts a generation request. With a job queue configured
// the request is enqueued and a job ID returned; otherwise, or when the
// queue is unreachable, generation runs in the request and the full
// response is returned.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := schemas.ValidateGenerateRequest(body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var req types.GenerateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if s.jobs != nil {
		id, err := s.jobs.Enqueue(r.Context(), req)
		if err == nil {
			s.jsonResponse(w, http.StatusAccepted, map[string]string{
				"job_id": id,
				"status": string(queue.StatusQueued),
			})
			return
		}
		log.Printf("enqueue failed, running job synchronously: %v", err)
	}

	resp := s.runner.Generate(r.Context(), req)
	if !resp.Success {
		s.jsonResponse(w, http.StatusUnprocessableEntity, resp)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleJobStatus reports the state of a queued job.
func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	if s.jobs == nil {
		s.errorResponse(w, http.StatusNotFound, "job queue not configured")
		return
	}

	id := r.PathValue("id")
	result, err := s.jobs.Status(r.Context(), id)
	if err != nil {
		if errors.Is(err, queue.ErrJobNotFound) {
			s.errorResponse(w, http.StatusNotFound, "job not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "failed to read job status")
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}
