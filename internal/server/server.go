// Package server exposes the engine over HTTP. The single endpoint is
// POST /solve with a sudoku request body; each request runs on the worker
// pool with its own engine state.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gitrdm/gridlogic/internal/parallel"
	"github.com/gitrdm/gridlogic/pkg/sudoku"
)

// Server handles solve requests.
type Server struct {
	logger zerolog.Logger
	pool   *parallel.Pool
}

// New creates a server with its own worker pool. A non-positive worker
// count defaults to the number of CPU cores.
func New(logger zerolog.Logger, workers int) *Server {
	return &Server{
		logger: logger,
		pool:   parallel.NewPool(workers),
	}
}

// Close shuts the worker pool down.
func (s *Server) Close() { s.pool.Shutdown() }

// Handler returns the HTTP routing for the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/solve", s.handleSolve)
	return mux
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req sudoku.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Warn().Err(err).Msg("malformed solve request")
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}

	var resp sudoku.Response
	var solveErr error
	if err := s.pool.Run(r.Context(), func() {
		resp, solveErr = sudoku.Solve(req)
	}); err != nil {
		s.logger.Warn().Err(err).Msg("solve request cancelled")
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	if solveErr != nil {
		s.logger.Warn().Err(solveErr).Msg("invalid solve request")
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}

	s.logger.Info().
		Str("result", resp.Result).
		Int64("duration_ms", resp.DurationMS).
		Int("clues", len(req.Clues.Locals)).
		Msg("solved request")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error().Err(err).Msg("writing response")
	}
}
