package ports

import (
	"context"

	"github.com/winfrac-dev/winfrac/pkg/domain"
)

// Solver decides one fixed-assignment game. Implementations materialize the
// specialized instance, invoke whatever decision procedure they wrap, and
// fold every per-trial failure into the returned Trial (Outcome 0, Err set):
// Solve never fails in a way that should abort a batch.
type Solver interface {
	Solve(ctx context.Context, base *domain.Graph, a domain.Assignment) domain.Trial
}
