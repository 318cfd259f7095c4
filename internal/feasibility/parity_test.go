package feasibility_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winfrac-dev/winfrac/internal/feasibility"
	"github.com/winfrac-dev/winfrac/pkg/domain"
)

func parityGraph(t *testing.T, kind domain.Kind, priorities []int, edges [][2]int) *domain.Graph {
	t.Helper()
	vertices := make([]domain.Vertex, len(priorities))
	for i, p := range priorities {
		vertices[i] = domain.Vertex{ID: i, Priority: p}
	}
	g, err := domain.NewGraph(kind, vertices)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], 0))
	}
	return g
}

func TestParityLasso(t *testing.T) {
	opts := feasibility.DefaultOptions()

	t.Run("SingleEvenCycle", func(t *testing.T) {
		g := parityGraph(t, domain.KindParity, []int{1, 2}, [][2]int{{0, 1}, {1, 0}})
		assert.True(t, feasibility.EvenLasso(g, opts))
		assert.False(t, feasibility.OddLasso(g, opts))
	})

	t.Run("BothParitiesReachable", func(t *testing.T) {
		// Odd self-loop on v0 and an even cycle through v1.
		g := parityGraph(t, domain.KindParity, []int{1, 2}, [][2]int{{0, 0}, {0, 1}, {1, 0}})
		assert.True(t, feasibility.EvenLasso(g, opts))
		assert.True(t, feasibility.OddLasso(g, opts))
	})

	t.Run("MaxPriorityDecides", func(t *testing.T) {
		// The cycle contains priorities 1 and 4; the max (4) is even even
		// though an odd priority sits on the cycle.
		g := parityGraph(t, domain.KindParity, []int{1, 4}, [][2]int{{0, 1}, {1, 0}})
		assert.True(t, feasibility.EvenLasso(g, opts))
		assert.False(t, feasibility.OddLasso(g, opts))
	})

	t.Run("NoCycleReachable", func(t *testing.T) {
		g := parityGraph(t, domain.KindParity, []int{0, 1}, [][2]int{{0, 1}})
		assert.False(t, feasibility.EvenLasso(g, opts))
		assert.False(t, feasibility.OddLasso(g, opts))
	})
}

func TestPriority0Region(t *testing.T) {
	opts := feasibility.DefaultOptions()

	t.Run("IsolatedPriority0Start", func(t *testing.T) {
		g := parityGraph(t, domain.KindReach, []int{0}, nil)
		assert.True(t, feasibility.Priority0Region(g, opts))
	})

	t.Run("AllReachablePriority0", func(t *testing.T) {
		g := parityGraph(t, domain.KindReach, []int{0, 0, 5}, [][2]int{{0, 1}, {1, 0}})
		// v2 has priority 5 but is unreachable from v0.
		assert.True(t, feasibility.Priority0Region(g, opts))
	})

	t.Run("ReachableNonzeroPriority", func(t *testing.T) {
		g := parityGraph(t, domain.KindReach, []int{0, 3}, [][2]int{{0, 1}})
		assert.False(t, feasibility.Priority0Region(g, opts))
	})

	t.Run("StartItselfNonzero", func(t *testing.T) {
		g := parityGraph(t, domain.KindReach, []int{2}, nil)
		assert.False(t, feasibility.Priority0Region(g, opts))
	})
}

func TestPriority0Lasso(t *testing.T) {
	opts := feasibility.DefaultOptions()

	t.Run("Priority0Cycle", func(t *testing.T) {
		g := parityGraph(t, domain.KindReach, []int{0, 0, 1}, [][2]int{{0, 1}, {1, 0}, {1, 2}})
		assert.True(t, feasibility.Priority0Lasso(g, opts))
	})

	t.Run("OnlyCycleTaintedByNonzero", func(t *testing.T) {
		g := parityGraph(t, domain.KindReach, []int{0, 1}, [][2]int{{0, 1}, {1, 0}})
		assert.False(t, feasibility.Priority0Lasso(g, opts))
	})

	t.Run("StartNonzero", func(t *testing.T) {
		g := parityGraph(t, domain.KindReach, []int{1}, [][2]int{{0, 0}})
		assert.False(t, feasibility.Priority0Lasso(g, opts))
	})
}

func TestEvaluate_ParityGate(t *testing.T) {
	t.Run("BothParitiesProceed", func(t *testing.T) {
		g := parityGraph(t, domain.KindParity, []int{1, 2}, [][2]int{{0, 0}, {0, 1}, {1, 0}})
		r := feasibility.Evaluate(g, feasibility.DefaultOptions())
		assert.True(t, r.Proceed)
	})

	t.Run("OneParitySkips", func(t *testing.T) {
		g := parityGraph(t, domain.KindParity, []int{1, 2}, [][2]int{{0, 1}, {1, 0}})
		r := feasibility.Evaluate(g, feasibility.DefaultOptions())
		assert.False(t, r.Proceed)
		assert.NotEmpty(t, r.Reason)
	})
}

func TestEvaluate_ReachGate(t *testing.T) {
	t.Run("Priority0OnlyRegionRefuses", func(t *testing.T) {
		// Nothing reachable from v0 but v0 itself, priority 0: trivially
		// decided, the driver must not enumerate.
		g := parityGraph(t, domain.KindReach, []int{0}, [][2]int{{0, 0}})
		r := feasibility.Evaluate(g, feasibility.DefaultOptions())
		assert.False(t, r.Proceed)
		assert.NotEmpty(t, r.Reason)
	})

	t.Run("SensitiveGraphProceeds", func(t *testing.T) {
		g := parityGraph(t, domain.KindReach, []int{0, 0, 2}, [][2]int{{0, 1}, {1, 0}, {0, 2}, {2, 2}})
		r := feasibility.Evaluate(g, feasibility.DefaultOptions())
		assert.True(t, r.Proceed)
	})

	t.Run("NoLassoRefuses", func(t *testing.T) {
		g := parityGraph(t, domain.KindReach, []int{0, 1}, [][2]int{{0, 1}, {1, 0}})
		r := feasibility.Evaluate(g, feasibility.DefaultOptions())
		assert.False(t, r.Proceed)
	})
}
