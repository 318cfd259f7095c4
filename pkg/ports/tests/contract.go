// Package tests carries reusable contract suites for ports implementations.
package tests

import (
	"context"
	"testing"
	"time"

	"github.com/winfrac-dev/winfrac/pkg/domain"
	"github.com/winfrac-dev/winfrac/pkg/ports"
)

// ResultSinkContract verifies that a sink accepts a snapshot stream followed
// by a final aggregate, and that Close is idempotent enough to call once.
// readBack, when non-nil, must return the logical lines the sink recorded so
// the suite can assert ordering and content.
func ResultSinkContract(t *testing.T, sink ports.ResultSink, readBack func() ([]string, error)) {
	t.Helper()
	ctx := context.Background()

	snaps := []domain.Snapshot{
		{Aggregate: domain.Aggregate{Won: 3, Total: 10, SolverTime: 1500 * time.Microsecond}},
		{Aggregate: domain.Aggregate{Won: 7, Total: 20, SolverTime: 3 * time.Millisecond}},
	}

	t.Run("Append", func(t *testing.T) {
		for _, s := range snaps {
			if err := sink.Append(ctx, s); err != nil {
				t.Fatalf("Append failed: %v", err)
			}
		}
	})

	t.Run("Final", func(t *testing.T) {
		if err := sink.Final(ctx, domain.Aggregate{Won: 9, Total: 25}); err != nil {
			t.Fatalf("Final failed: %v", err)
		}
	})

	t.Run("Close", func(t *testing.T) {
		if err := sink.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	})

	if readBack == nil {
		return
	}

	t.Run("ReadBack", func(t *testing.T) {
		lines, err := readBack()
		if err != nil {
			t.Fatalf("readBack failed: %v", err)
		}
		want := []string{"3/10; 1.500", "7/20; 3.000", "9/25"}
		if len(lines) != len(want) {
			t.Fatalf("expected %d lines, got %d: %v", len(want), len(lines), lines)
		}
		for i, w := range want {
			if lines[i] != w {
				t.Errorf("line %d: got %q, want %q", i, lines[i], w)
			}
		}
	})
}
