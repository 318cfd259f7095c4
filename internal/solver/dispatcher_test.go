package solver_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winfrac-dev/winfrac/internal/solver"
	"github.com/winfrac-dev/winfrac/pkg/domain"
)

func energyBase(t *testing.T) *domain.Graph {
	t.Helper()
	g, err := domain.NewGraph(domain.KindEnergy, []domain.Vertex{{ID: 0}, {ID: 1}})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 0, -1))
	return g
}

// echoEntry fakes a solver by echoing a canned transcript. The instance path
// is appended after the transcript and ignored by the decoder.
func echoEntry(transcript string) solver.Entry {
	return solver.Entry{Command: "echo", Args: []string{transcript}, Decoder: "region"}
}

func TestDispatcher_Solve(t *testing.T) {
	ctx := context.Background()
	base := energyBase(t)

	t.Run("WinVerdict", func(t *testing.T) {
		scratch := t.TempDir()
		d, err := solver.NewDispatcher(echoEntry("The winning region is: {0: 3, 1: -1}"), scratch)
		require.NoError(t, err)

		trial := d.Solve(ctx, base, domain.Assignment("01"))
		assert.NoError(t, trial.Err)
		assert.Equal(t, 1, trial.Outcome)
		assert.Equal(t, domain.Assignment("01"), trial.Assignment)
		assert.Positive(t, trial.Elapsed)
		assert.Contains(t, trial.Raw, "winning region")
	})

	t.Run("LossVerdict", func(t *testing.T) {
		d, err := solver.NewDispatcher(echoEntry("The winning region is: {0: -1}"), t.TempDir())
		require.NoError(t, err)

		trial := d.Solve(ctx, base, domain.Assignment("10"))
		assert.NoError(t, trial.Err)
		assert.Zero(t, trial.Outcome)
	})

	t.Run("ProcessFailureIsRecovered", func(t *testing.T) {
		entry := solver.Entry{Command: "false", Decoder: "region"}
		d, err := solver.NewDispatcher(entry, t.TempDir())
		require.NoError(t, err)

		trial := d.Solve(ctx, base, domain.Assignment("00"))
		assert.Zero(t, trial.Outcome)

		var perr *solver.ProcessError
		assert.ErrorAs(t, trial.Err, &perr)
	})

	t.Run("UnparsableOutputIsRecovered", func(t *testing.T) {
		d, err := solver.NewDispatcher(echoEntry("segmentation fault"), t.TempDir())
		require.NoError(t, err)

		trial := d.Solve(ctx, base, domain.Assignment("11"))
		assert.Zero(t, trial.Outcome)

		var perr *solver.ParseError
		assert.ErrorAs(t, trial.Err, &perr)
	})

	t.Run("ScratchFileRemoved", func(t *testing.T) {
		scratch := t.TempDir()
		d, err := solver.NewDispatcher(echoEntry("The winning region is: {0: 0}"), scratch)
		require.NoError(t, err)

		d.Solve(ctx, base, domain.Assignment("01"))
		entries, err := os.ReadDir(scratch)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("KeepScratchLeavesInstance", func(t *testing.T) {
		scratch := t.TempDir()
		d, err := solver.NewDispatcher(echoEntry("The winning region is: {0: 0}"), scratch, solver.WithKeepScratch(true))
		require.NoError(t, err)

		d.Solve(ctx, base, domain.Assignment("01"))
		entries, err := os.ReadDir(scratch)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "game_01.json", entries[0].Name())
	})
}
