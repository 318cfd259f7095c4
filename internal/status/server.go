// Package status exposes a running batch over HTTP: the latest aggregated
// snapshot as JSON, a health probe, and the prometheus metrics endpoint.
package status

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/winfrac-dev/winfrac/pkg/domain"
)

// Server holds the latest snapshot of a batch for serving. It is fed one
// snapshot at a time through Observe and is safe for concurrent use.
type Server struct {
	state    func() string
	gatherer prometheus.Gatherer

	mu   sync.RWMutex
	last *domain.Snapshot
}

// New creates a status server. stateFn reports the batch lifecycle state;
// gatherer backs the /metrics endpoint and may be nil to disable it.
func New(stateFn func() string, gatherer prometheus.Gatherer) *Server {
	return &Server{state: stateFn, gatherer: gatherer}
}

// Observe records a snapshot as the latest.
func (s *Server) Observe(snap domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = &snap
}

type progressResponse struct {
	State    string    `json:"state"`
	Won      uint64    `json:"won"`
	Total    uint64    `json:"total"`
	Estimate float64   `json:"estimate"`
	SolverMS float64   `json:"solver_ms"`
	At       time.Time `json:"at,omitempty"`
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/progress", func(w http.ResponseWriter, req *http.Request) {
		resp := progressResponse{State: s.state()}
		s.mu.RLock()
		if s.last != nil {
			resp.Won = s.last.Won
			resp.Total = s.last.Total
			resp.Estimate = s.last.Estimate()
			resp.SolverMS = float64(s.last.SolverTime.Microseconds()) / 1000
			resp.At = s.last.At
		}
		s.mu.RUnlock()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})

	if s.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
