package ports

import (
	"context"

	"github.com/winfrac-dev/winfrac/pkg/domain"
)

// AssignmentSource produces the universe of candidate ownership assignments
// for a batch, either exhaustively or by sampling.
type AssignmentSource interface {
	// Total is the number of assignments the source will yield.
	Total() uint64

	// Assignments returns a channel over the assignments. The channel is
	// closed after the last one, or early when ctx is canceled. Each
	// assignment is yielded exactly once.
	Assignments(ctx context.Context) <-chan domain.Assignment
}
