package solver

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/winfrac-dev/winfrac/internal/gameio"
	"github.com/winfrac-dev/winfrac/internal/logging"
	"github.com/winfrac-dev/winfrac/pkg/domain"
	"github.com/winfrac-dev/winfrac/pkg/ports"
)

// Dispatcher implements ports.Solver by running the configured external
// solver binary once per trial. Each trial writes its own uniquely named
// instance file, so concurrent dispatchers share nothing but the read-only
// base graph.
type Dispatcher struct {
	entry      Entry
	decoder    Decoder
	scratchDir string
	keep       bool
	logger     *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

// WithKeepScratch leaves instance files on disk after their trial, for
// debugging. The default removes them to bound disk usage on large batches.
func WithKeepScratch(keep bool) Option {
	return func(d *Dispatcher) { d.keep = keep }
}

// NewDispatcher builds a dispatcher for one solver entry writing instances
// under scratchDir.
func NewDispatcher(entry Entry, scratchDir string, opts ...Option) (*Dispatcher, error) {
	decoder, err := entry.BuildDecoder()
	if err != nil {
		return nil, err
	}
	d := &Dispatcher{
		entry:      entry,
		decoder:    decoder,
		scratchDir: scratchDir,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

var _ ports.Solver = (*Dispatcher)(nil)

// Solve materializes the instance, runs the solver, and decodes its verdict.
// Wall-clock time is measured around the process invocation only; the
// serialization cost is excluded. Every failure mode yields outcome 0 with
// the error attached, never a batch abort.
func (d *Dispatcher) Solve(ctx context.Context, base *domain.Graph, a domain.Assignment) domain.Trial {
	trial := domain.Trial{Assignment: a}

	path, err := gameio.WriteInstance(d.scratchDir, base, a)
	if err != nil {
		trial.Err = err
		return trial
	}
	if !d.keep {
		defer os.Remove(path)
	}

	command, args := d.entry.CommandLine(path)
	cmd := exec.CommandContext(ctx, command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()
	trial.Elapsed = time.Since(start)
	trial.Raw = stdout.String()

	if runErr != nil {
		trial.Err = &ProcessError{Command: command, Stderr: stderr.String(), Err: runErr}
		d.logger.Debug("solver process failed", "assignment", string(a), "err", trial.Err)
		return trial
	}

	verdict := d.decoder.Decode(trial.Raw)
	switch verdict.Status {
	case domain.Decided:
		trial.Outcome = verdict.Outcome
	case domain.Undecided:
		d.logger.Debug("solver left the start vertex undecided", "assignment", string(a))
	case domain.ParseFailure:
		trial.Err = &ParseError{Raw: trial.Raw}
		d.logger.Debug("unparsable solver output", "assignment", string(a), "err", trial.Err)
	}
	return trial
}
