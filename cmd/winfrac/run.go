package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/winfrac-dev/winfrac"
	"github.com/winfrac-dev/winfrac/internal/adapters/file"
	redisSink "github.com/winfrac-dev/winfrac/internal/adapters/redis"
	"github.com/winfrac-dev/winfrac/internal/batch"
	"github.com/winfrac-dev/winfrac/internal/feasibility"
	"github.com/winfrac-dev/winfrac/internal/solver"
	"github.com/winfrac-dev/winfrac/internal/status"
	"github.com/winfrac-dev/winfrac/pkg/domain"
	"github.com/winfrac-dev/winfrac/pkg/ports"
)

var runCmd = &cobra.Command{
	Use:   "run <input>",
	Short: "Enumerate or sample assignments and aggregate solver verdicts",
	Long: `Loads a game, checks that its outcome can depend on ownership at all, and
then drives one batch: every trial specializes the game to one assignment,
runs the configured solver on it, and feeds the verdict into the running
tally. Sampling is the default; --exhaustive walks all 2^n assignments.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Uint64P("samples", "N", 100000, "Number of random assignments to sample")
	runCmd.Flags().Bool("exhaustive", false, "Enumerate every assignment instead of sampling")
	runCmd.Flags().Int64("seed", 42, "Random seed for sampling")
	runCmd.Flags().IntP("workers", "w", runtime.NumCPU(), "Number of parallel solver workers")
	runCmd.Flags().Uint64("interval", batch.DefaultInterval, "Trials between progress snapshots")
	runCmd.Flags().Int("energy-limit", feasibility.DefaultEnergyLimit, "Energy ceiling for the feasibility searches")
	runCmd.Flags().Bool("force", false, "Skip the feasibility gate")
	runCmd.Flags().String("scratch", "", "Directory for per-trial instance files (default: a temp dir)")
	runCmd.Flags().Bool("keep-scratch", false, "Keep instance files after their trial")
	runCmd.Flags().String("solvers", "", "Solver registry YAML overlaying the built-in defaults")
	runCmd.Flags().String("log", "", "Append snapshots and the final tally to this file")
	runCmd.Flags().String("redis", "", "Publish snapshots to this Redis address instead of a file")
	runCmd.Flags().String("status-addr", "", "Serve /progress, /healthz and /metrics on this address")
}

func runBatch(cmd *cobra.Command, args []string) error {
	kind, err := gameKind(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd)

	exhaustive, _ := cmd.Flags().GetBool("exhaustive")
	if exhaustive && cmd.Flags().Changed("samples") {
		return fmt.Errorf("%w: --samples and --exhaustive are mutually exclusive", domain.ErrParameter)
	}

	registryPath, _ := cmd.Flags().GetString("solvers")
	registry, err := solver.LoadRegistry(registryPath)
	if err != nil {
		return err
	}

	scratch, _ := cmd.Flags().GetString("scratch")
	keepScratch, _ := cmd.Flags().GetBool("keep-scratch")
	if scratch == "" {
		scratch, err = os.MkdirTemp("", "winfrac-*")
		if err != nil {
			return fmt.Errorf("create scratch dir: %w", err)
		}
		if !keepScratch {
			defer os.RemoveAll(scratch)
		}
	} else if err := os.MkdirAll(scratch, 0o755); err != nil {
		return fmt.Errorf("create scratch dir: %w", err)
	}

	sink, err := buildSink(cmd)
	if err != nil {
		return err
	}
	if sink != nil {
		defer sink.Close()
	}

	workers, _ := cmd.Flags().GetInt("workers")
	interval, _ := cmd.Flags().GetUint64("interval")
	energyLimit, _ := cmd.Flags().GetInt("energy-limit")
	force, _ := cmd.Flags().GetBool("force")

	opts := []winfrac.Option{
		winfrac.WithLogger(logger),
		winfrac.WithRegistry(registry),
		winfrac.WithWorkers(workers),
		winfrac.WithSnapshotInterval(interval),
		winfrac.WithScratchDir(scratch),
		winfrac.WithKeepScratch(keepScratch),
		winfrac.WithEnergyLimit(energyLimit),
		winfrac.WithForce(force),
	}
	if sink != nil {
		opts = append(opts, winfrac.WithSink(sink))
	}

	var estRef atomic.Pointer[winfrac.Estimator]
	if addr, _ := cmd.Flags().GetString("status-addr"); addr != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, winfrac.WithMetrics(batch.NewMetrics(reg)))

		srv := status.New(func() string {
			if e := estRef.Load(); e != nil {
				return e.State()
			}
			return batch.StateInit.String()
		}, reg)
		opts = append(opts, winfrac.WithProgressFunc(srv.Observe))

		go func() {
			logger.Info("status endpoint listening", "addr", addr)
			if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
				logger.Error("status endpoint failed", "err", err)
			}
		}()
	}

	est, err := winfrac.Load(args[0], kind, opts...)
	if err != nil {
		return err
	}
	estRef.Store(est)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	n := est.Graph().VertexCount()
	var agg domain.Aggregate
	if exhaustive {
		fmt.Printf("%d vertices detected. Enumerating all %d assignments using %d workers...\n",
			n, uint64(1)<<uint(n), workers)
		agg, err = est.Exhaustive(ctx)
	} else {
		samples, _ := cmd.Flags().GetUint64("samples")
		seed, _ := cmd.Flags().GetInt64("seed")
		fmt.Printf("Using random seed: %d\n", seed)
		fmt.Printf("%d vertices detected. Sampling %d / %d assignments using %d workers...\n",
			n, samples, uint64(1)<<uint(n), workers)
		agg, err = est.Sample(ctx, samples, seed)
	}
	if err != nil {
		if errors.Is(err, domain.ErrInfeasible) {
			fmt.Printf("Refusing to enumerate: %v\n", err)
			return err
		}
		if ctx.Err() != nil && agg.Total > 0 {
			fmt.Printf("Interrupted after %d trials: %s\n", agg.Total, agg)
		}
		return err
	}

	fmt.Printf("\nFinished %d trials\n", agg.Total)
	fmt.Printf("Total aggregated value: %s\n", agg)
	fmt.Printf("Total solver time (wall-clock): %.3f ms\n", agg.SolverTime.Seconds()*1000)
	if !exhaustive {
		fmt.Printf("Estimate: %.4f +/- %.4f (95%% confidence)\n", agg.Estimate(), agg.HoeffdingHalfWidth(0.05))
	} else {
		fmt.Printf("Exact fraction: %.4f\n", agg.Estimate())
	}
	return nil
}

// buildSink wires the result sink selected by flags, or nil for the default
// in-memory one.
func buildSink(cmd *cobra.Command) (ports.ResultSink, error) {
	if addr, _ := cmd.Flags().GetString("redis"); addr != "" {
		return redisSink.New(addr), nil
	}
	if path, _ := cmd.Flags().GetString("log"); path != "" {
		return file.New(path)
	}
	return nil, nil
}
