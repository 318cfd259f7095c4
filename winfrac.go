package winfrac

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/winfrac-dev/winfrac/internal/adapters/memory"
	"github.com/winfrac-dev/winfrac/internal/batch"
	"github.com/winfrac-dev/winfrac/internal/enumerate"
	"github.com/winfrac-dev/winfrac/internal/feasibility"
	"github.com/winfrac-dev/winfrac/internal/gameio"
	"github.com/winfrac-dev/winfrac/internal/logging"
	"github.com/winfrac-dev/winfrac/internal/solver"
	"github.com/winfrac-dev/winfrac/pkg/domain"
	"github.com/winfrac-dev/winfrac/pkg/ports"
)

// Estimator is the high-level entry point of the winfrac library. It owns one
// base graph and estimates, over the ownership assignments of its vertices,
// the fraction won by player 0 from vertex 0.
type Estimator struct {
	graph    *domain.Graph
	registry solver.Registry
	solver   ports.Solver
	sink     ports.ResultSink
	logger   *slog.Logger
	metrics  *batch.Metrics
	feas     feasibility.Options
	workers  int
	interval uint64
	scratch  string
	keep     bool
	force    bool

	onSnapshot func(domain.Snapshot)

	cur atomic.Pointer[batch.Batch]
}

// Option defines a functional option for configuring the Estimator.
type Option func(*Estimator)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Estimator) { e.logger = logger }
}

// WithRegistry overrides the solver registry used to build dispatchers.
func WithRegistry(reg solver.Registry) Option {
	return func(e *Estimator) { e.registry = reg }
}

// WithSolver injects a custom Solver, bypassing the external-process
// dispatcher entirely.
func WithSolver(s ports.Solver) Option {
	return func(e *Estimator) { e.solver = s }
}

// WithSink directs snapshots and the final tally to the given sink. The
// default keeps them in memory.
func WithSink(sink ports.ResultSink) Option {
	return func(e *Estimator) { e.sink = sink }
}

// WithMetrics registers per-trial Prometheus metrics.
func WithMetrics(m *batch.Metrics) Option {
	return func(e *Estimator) { e.metrics = m }
}

// WithWorkers sets the number of concurrent solver workers.
func WithWorkers(n int) Option {
	return func(e *Estimator) { e.workers = n }
}

// WithSnapshotInterval sets the snapshot cadence in completed trials.
func WithSnapshotInterval(n uint64) Option {
	return func(e *Estimator) { e.interval = n }
}

// WithScratchDir places per-trial instance files under dir instead of a
// fresh temp directory created for the run.
func WithScratchDir(dir string) Option {
	return func(e *Estimator) { e.scratch = dir }
}

// WithKeepScratch leaves instance files on disk after their trial.
func WithKeepScratch(keep bool) Option {
	return func(e *Estimator) { e.keep = keep }
}

// WithEnergyLimit sets the cumulative-energy ceiling of the feasibility
// searches.
func WithEnergyLimit(limit int) Option {
	return func(e *Estimator) { e.feas.EnergyLimit = limit }
}

// WithForce skips the feasibility gate and enumerates unconditionally.
func WithForce(force bool) Option {
	return func(e *Estimator) { e.force = force }
}

// WithProgressFunc calls fn for every snapshot a run emits. fn runs on its
// own goroutine and must not block for long: slow consumers drop snapshots.
func WithProgressFunc(fn func(domain.Snapshot)) Option {
	return func(e *Estimator) { e.onSnapshot = fn }
}

// New wraps an already loaded graph.
func New(g *domain.Graph, opts ...Option) *Estimator {
	e := &Estimator{
		graph:    g,
		registry: solver.DefaultRegistry(),
		logger:   logging.NewNop(),
		feas:     feasibility.DefaultOptions(),
		interval: batch.DefaultInterval,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load reads a game description from path and wraps it. The format follows
// the kind: JSON for energy games, digraph for parity and reachability.
func Load(path string, kind domain.Kind, opts ...Option) (*Estimator, error) {
	g, err := gameio.Load(path, kind)
	if err != nil {
		return nil, err
	}
	return New(g, opts...), nil
}

// Graph returns the base graph.
func (e *Estimator) Graph() *domain.Graph { return e.graph }

// Check runs the feasibility analysis without enumerating anything.
func (e *Estimator) Check() feasibility.Report {
	return feasibility.Evaluate(e.graph, e.feas)
}

// State reports the lifecycle of the most recent run for status serving.
func (e *Estimator) State() string {
	if b := e.cur.Load(); b != nil {
		return b.State().String()
	}
	return batch.StateInit.String()
}

// Progress returns the snapshot channel of the most recent run, or nil when
// no run has started. It is closed when the run finishes.
func (e *Estimator) Progress() <-chan domain.Snapshot {
	if b := e.cur.Load(); b != nil {
		return b.Progress()
	}
	return nil
}

// Exhaustive enumerates every assignment of the graph in lexicographic order
// and returns the exact tally.
func (e *Estimator) Exhaustive(ctx context.Context) (domain.Aggregate, error) {
	source, err := enumerate.NewExhaustive(e.graph.VertexCount())
	if err != nil {
		return domain.Aggregate{}, err
	}
	return e.Run(ctx, source)
}

// Sample draws count distinct assignments with the given seed and returns
// the sampled tally.
func (e *Estimator) Sample(ctx context.Context, count uint64, seed int64) (domain.Aggregate, error) {
	source, err := enumerate.NewSampled(e.graph.VertexCount(), count, seed)
	if err != nil {
		return domain.Aggregate{}, err
	}
	return e.Run(ctx, source)
}

// Run gates the graph, then drains the source through the solver and
// aggregates outcomes. A refused gate returns ErrInfeasible with the reason.
func (e *Estimator) Run(ctx context.Context, source ports.AssignmentSource) (domain.Aggregate, error) {
	if !e.force {
		if report := e.Check(); !report.Proceed {
			return domain.Aggregate{}, fmt.Errorf("%w: %s", domain.ErrInfeasible, report.Reason)
		}
	}

	solv := e.solver
	if solv == nil {
		entry, ok := e.registry[e.graph.Kind()]
		if !ok {
			return domain.Aggregate{}, fmt.Errorf("%w: no solver registered for %s games", domain.ErrParameter, e.graph.Kind())
		}
		scratch := e.scratch
		if scratch == "" {
			dir, err := os.MkdirTemp("", "winfrac-*")
			if err != nil {
				return domain.Aggregate{}, fmt.Errorf("create scratch dir: %w", err)
			}
			if !e.keep {
				defer os.RemoveAll(dir)
			}
			scratch = dir
		}
		d, err := solver.NewDispatcher(entry, scratch,
			solver.WithLogger(e.logger), solver.WithKeepScratch(e.keep))
		if err != nil {
			return domain.Aggregate{}, err
		}
		solv = d
	}

	sink := e.sink
	if sink == nil {
		sink = memory.New()
	}

	batchOpts := []batch.Option{
		batch.WithInterval(e.interval),
		batch.WithLogger(e.logger),
	}
	if e.workers > 0 {
		batchOpts = append(batchOpts, batch.WithWorkers(e.workers))
	}
	if e.metrics != nil {
		batchOpts = append(batchOpts, batch.WithMetrics(e.metrics))
	}

	b := batch.New(e.graph, source, solv, sink, batchOpts...)
	e.cur.Store(b)
	if e.onSnapshot != nil {
		go func() {
			for snap := range b.Progress() {
				e.onSnapshot(snap)
			}
		}()
	}
	return b.Run(ctx)
}
