// Package file implements the result sink on the local filesystem: an
// append-only text log, one aggregated snapshot per line, closed by a final
// "won/total" line.
package file

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/winfrac-dev/winfrac/pkg/domain"
	"github.com/winfrac-dev/winfrac/pkg/ports"
)

// Sink appends snapshots to a single log file. The aggregation driver is its
// only writer, so no locking is needed here.
type Sink struct {
	f *os.File
	w *bufio.Writer
}

var _ ports.ResultSink = (*Sink)(nil)

// New opens (or creates) the log at path in append mode, so an interrupted
// batch's snapshots survive and a rerun continues the same log.
func New(path string) (*Sink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open result log: %w", err)
	}
	return &Sink{f: f, w: bufio.NewWriter(f)}, nil
}

// Append writes one snapshot line and flushes it to disk, so the line is
// durable even if the process is interrupted right after.
func (s *Sink) Append(ctx context.Context, snap domain.Snapshot) error {
	if _, err := fmt.Fprintln(s.w, snap.String()); err != nil {
		return fmt.Errorf("append snapshot: %w", err)
	}
	return s.flush()
}

// Final writes the closing "won/total" line.
func (s *Sink) Final(ctx context.Context, a domain.Aggregate) error {
	if _, err := fmt.Fprintln(s.w, a.String()); err != nil {
		return fmt.Errorf("append final line: %w", err)
	}
	return s.flush()
}

func (s *Sink) flush() error {
	if err := s.w.Flush(); err != nil {
		return err
	}
	return s.f.Sync()
}

// Close flushes and closes the log file.
func (s *Sink) Close() error {
	if err := s.w.Flush(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}
