package ports

import (
	"context"

	"github.com/winfrac-dev/winfrac/pkg/domain"
)

// ResultSink is the durable, append-only log of aggregated snapshots. The
// aggregation driver is its single writer; workers never touch it.
type ResultSink interface {
	// Append records one periodic snapshot.
	Append(ctx context.Context, s domain.Snapshot) error

	// Final records the closing "won/total" line when the batch is done.
	Final(ctx context.Context, a domain.Aggregate) error

	// Close releases the sink. Appends after Close are undefined.
	Close() error
}
