// Package batch orchestrates one enumeration run: a fixed pool of workers
// drains the assignment source through the solver, and a single aggregator
// folds the verdicts, emits periodic snapshots, and computes the final
// estimate. Trial order across workers is unspecified; only the final
// totals matter.
package batch

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/winfrac-dev/winfrac/internal/logging"
	"github.com/winfrac-dev/winfrac/pkg/domain"
	"github.com/winfrac-dev/winfrac/pkg/ports"
)

// State is the lifecycle of a batch.
type State int32

const (
	StateInit State = iota
	StateRunning
	StateDone
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// DefaultInterval is the snapshot cadence in completed trials. Snapshots are
// a liveness feature, not a correctness requirement.
const DefaultInterval = 1000

// Batch drives one enumeration run to completion.
type Batch struct {
	base   *domain.Graph
	source ports.AssignmentSource
	solver ports.Solver
	sink   ports.ResultSink

	workers  int
	interval uint64
	logger   *slog.Logger
	metrics  *Metrics

	state    atomic.Int32
	progress chan domain.Snapshot
}

// Option configures a Batch.
type Option func(*Batch)

// WithWorkers sets the worker pool size. Values below 1 keep the default
// (available hardware parallelism).
func WithWorkers(n int) Option {
	return func(b *Batch) {
		if n >= 1 {
			b.workers = n
		}
	}
}

// WithInterval sets the snapshot cadence in completed trials.
func WithInterval(n uint64) Option {
	return func(b *Batch) {
		if n >= 1 {
			b.interval = n
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Batch) { b.logger = logger }
}

// WithMetrics attaches prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(b *Batch) { b.metrics = m }
}

// New wires a batch over its collaborators.
func New(base *domain.Graph, source ports.AssignmentSource, solver ports.Solver, sink ports.ResultSink, opts ...Option) *Batch {
	b := &Batch{
		base:     base,
		source:   source,
		solver:   solver,
		sink:     sink,
		workers:  runtime.NumCPU(),
		interval: DefaultInterval,
		logger:   logging.NewNop(),
		progress: make(chan domain.Snapshot, 16),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// State returns the batch lifecycle state.
func (b *Batch) State() State { return State(b.state.Load()) }

// Progress returns the snapshot channel. It receives every periodic snapshot
// plus the final one (best effort: a slow reader misses intermediate
// snapshots rather than stalling the batch) and is closed when the batch is
// done.
func (b *Batch) Progress() <-chan domain.Snapshot { return b.progress }

// Run executes the batch and returns the final aggregate. Per-trial failures
// are folded in as losses; the only errors Run itself returns are context
// cancellation and a failing final sink write. The aggregate accumulated so
// far is returned either way.
func (b *Batch) Run(ctx context.Context) (domain.Aggregate, error) {
	b.state.Store(int32(StateRunning))
	defer b.state.Store(int32(StateDone))
	defer close(b.progress)

	assignments := b.source.Assignments(ctx)
	results := make(chan domain.Trial, b.workers)

	var wg sync.WaitGroup
	for i := 0; i < b.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for a := range assignments {
				if b.metrics != nil {
					b.metrics.InFlight.Inc()
				}
				trial := b.solver.Solve(ctx, b.base, a)
				if b.metrics != nil {
					b.metrics.InFlight.Dec()
				}
				select {
				case results <- trial:
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	b.logger.Info("batch started",
		"trials", b.source.Total(),
		"workers", b.workers,
		"vertices", b.base.VertexCount(),
		"kind", string(b.base.Kind()),
	)

	var agg domain.Aggregate
	started := time.Now()
	for trial := range results {
		agg.Add(trial.Outcome, trial.Elapsed)
		b.observe(trial)

		if agg.Total%b.interval == 0 {
			b.snapshot(ctx, agg)
		}
	}

	if err := ctx.Err(); err != nil {
		b.logger.Warn("batch interrupted", "aggregate", agg.String())
		return agg, err
	}

	if agg.Total%b.interval != 0 {
		b.snapshot(ctx, agg)
	}
	if err := b.sink.Final(ctx, agg); err != nil {
		return agg, err
	}

	b.logger.Info("batch done",
		"aggregate", agg.String(),
		"estimate", agg.Estimate(),
		"solver_time", agg.SolverTime,
		"elapsed", time.Since(started),
	)
	return agg, nil
}

func (b *Batch) observe(trial domain.Trial) {
	if b.metrics != nil {
		b.metrics.ObserveTrial(trial)
	}
	if trial.Err != nil {
		b.logger.Debug("trial recovered as loss", "assignment", string(trial.Assignment), "err", trial.Err)
	}
}

// snapshot emits one aggregated snapshot to the sink and the progress
// channel. Sink append failures are logged, not fatal: losing a periodic
// line must not abort the batch.
func (b *Batch) snapshot(ctx context.Context, agg domain.Aggregate) {
	snap := domain.Snapshot{Aggregate: agg, At: time.Now()}
	if err := b.sink.Append(ctx, snap); err != nil {
		b.logger.Warn("snapshot append failed", "err", err)
	}
	select {
	case b.progress <- snap:
	default:
	}
}
