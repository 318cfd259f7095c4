package domain

import (
	"fmt"
	"math"
	"time"
)

// Aggregate is the running summary of a batch: how many trials the analyzed
// player won, how many trials completed, and the cumulative wall-clock time
// spent inside the external solver. It only ever grows.
type Aggregate struct {
	Won        uint64
	Total      uint64
	SolverTime time.Duration
}

// Add folds one trial outcome (1 = win, 0 = loss) into the aggregate.
func (a *Aggregate) Add(outcome int, elapsed time.Duration) {
	if outcome != 0 {
		a.Won++
	}
	a.Total++
	a.SolverTime += elapsed
}

// Merge folds another partial aggregate into this one. Merge is associative
// and commutative, so partial aggregates from any number of workers combine
// to the same final counts regardless of arrival order.
func (a *Aggregate) Merge(other Aggregate) {
	a.Won += other.Won
	a.Total += other.Total
	a.SolverTime += other.SolverTime
}

// Estimate returns the point estimate Won/Total of the winning probability
// under uniformly random ownership assignment. Zero trials estimate to 0.
func (a Aggregate) Estimate() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Won) / float64(a.Total)
}

// HoeffdingHalfWidth returns sqrt(ln(2/delta) / (2*Total)): the half-width of
// the (1-delta)-confidence interval around Estimate. It depends only on the
// trial count, not on which assignments were sampled.
func (a Aggregate) HoeffdingHalfWidth(delta float64) float64 {
	if a.Total == 0 || delta <= 0 || delta >= 1 {
		return math.NaN()
	}
	return math.Sqrt(math.Log(2/delta) / (2 * float64(a.Total)))
}

// String renders the final-line log form "won/total".
func (a Aggregate) String() string {
	return fmt.Sprintf("%d/%d", a.Won, a.Total)
}

// Snapshot is one periodic observation of a running batch, appended to the
// result sink and published on the progress channel.
type Snapshot struct {
	Aggregate
	At time.Time
}

// String renders the snapshot log line "won/total; solver_ms".
func (s Snapshot) String() string {
	return fmt.Sprintf("%d/%d; %.3f", s.Won, s.Total, float64(s.SolverTime.Microseconds())/1000)
}
