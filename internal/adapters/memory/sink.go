// Package memory implements an in-memory result sink, used by tests and by
// runs that discard their log.
package memory

import (
	"context"
	"sync"

	"github.com/winfrac-dev/winfrac/pkg/domain"
	"github.com/winfrac-dev/winfrac/pkg/ports"
)

// Sink records snapshot lines in memory.
type Sink struct {
	mu    sync.Mutex
	lines []string

	snapshots []domain.Snapshot
	final     *domain.Aggregate
}

var _ ports.ResultSink = (*Sink)(nil)

// New creates an empty in-memory sink.
func New() *Sink { return &Sink{} }

// Append records one snapshot.
func (s *Sink) Append(ctx context.Context, snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, snap.String())
	s.snapshots = append(s.snapshots, snap)
	return nil
}

// Final records the closing aggregate.
func (s *Sink) Final(ctx context.Context, a domain.Aggregate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, a.String())
	s.final = &a
	return nil
}

// Close is a no-op.
func (s *Sink) Close() error { return nil }

// Lines returns the recorded log lines in order.
func (s *Sink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

// Snapshots returns the recorded snapshots in order.
func (s *Sink) Snapshots() []domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Snapshot(nil), s.snapshots...)
}

// FinalAggregate returns the closing aggregate, or nil before Final.
func (s *Sink) FinalAggregate() *domain.Aggregate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.final
}
