package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"tldr/internal/domain"
	"tldr/internal/pipeline"
)

const (
	MsgFetchFailed     = "Failed to fetch URL. Try another link."
	MsgNoContent       = "Couldn't extract readable content from this website. Please copy the text manually from the site and paste it here."
	MsgInvalidInput    = "Please provide text or a URL to summarize."
	MsgBodyTooLarge    = "Request body is too large."
	MsgSummarizeFailed = "Failed to summarize content. Try again later."
	MsgTimedOut        = "Request timed out."
)

type summaryResponse struct {
	Summary string `json:"summary"`
}

type errorResponse struct {
	Error         string `json:"error"`
	SuggestManual bool   `json:"suggestManual,omitempty"`
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)

	var req domain.SummarizeRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.writeJSON(ctx, w, http.StatusRequestEntityTooLarge, errorResponse{Error: MsgBodyTooLarge})
			return
		}

		s.log.InfoContext(ctx, "Rejected malformed request body",
			"error", err)
		s.writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: MsgInvalidInput})
		return
	}

	summary, err := s.pipeline.Run(ctx, req)
	if err != nil {
		s.writePipelineError(ctx, w, err)
		return
	}

	s.writeJSON(ctx, w, http.StatusOK, summaryResponse{Summary: summary.Text})
}

var errTrailingData = errors.New("unexpected data after request object")

// decodeRequest reads exactly one JSON value from body.
func decodeRequest(body io.Reader, req *domain.SummarizeRequest) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(req); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		return fmt.Errorf("decode request: %w", err)
	}

	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// writePipelineError maps a pipeline failure to its public response. The
// underlying error is only logged.
func (s *Server) writePipelineError(ctx context.Context, w http.ResponseWriter, err error) {
	kind := pipeline.KindOf(err)

	switch kind {
	case pipeline.KindInvalidInput:
		s.log.InfoContext(ctx, "Rejected empty input",
			"error", err)
		s.writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: MsgInvalidInput})
	case pipeline.KindFetch:
		s.log.WarnContext(ctx, "Failed to fetch URL",
			"error", err)
		s.writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: MsgFetchFailed})
	case pipeline.KindNoContent:
		s.log.WarnContext(ctx, "Failed to extract content",
			"error", err)
		s.writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: MsgNoContent, SuggestManual: true})
	default:
		s.log.ErrorContext(ctx, "Failed to summarize content",
			"error", err,
			"kind", kind.String())
		s.writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Error: MsgSummarizeFailed})
	}
}

func (s *Server) writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil && !errors.Is(err, http.ErrHandlerTimeout) {
		s.log.ErrorContext(ctx, "Failed to write response",
			"error", err,
			"status", status)
	}
}
