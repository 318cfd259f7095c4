// Package testutils holds small game fixtures shared across test packages.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/winfrac-dev/winfrac/internal/gameio"
	"github.com/winfrac-dev/winfrac/pkg/domain"
)

// FeasibleEnergyGraph builds the smallest energy game that passes the
// feasibility gate: a nonnegative self-loop at v0 plus a strictly negative
// escape path.
func FeasibleEnergyGraph(t *testing.T) *domain.Graph {
	t.Helper()

	g, err := domain.NewGraph(domain.KindEnergy, []domain.Vertex{
		{ID: 0, Owner: 0},
		{ID: 1, Owner: 1},
	})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 0, 1))
	require.NoError(t, g.AddEdge(0, 1, -1))
	require.NoError(t, g.AddEdge(1, 1, -1))
	return g
}

// WriteGame serializes g into dir under name and returns the path.
func WriteGame(t *testing.T, dir, name string, g *domain.Graph) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	if g.Kind() == domain.KindEnergy {
		require.NoError(t, gameio.EncodeEnergy(f, g))
	} else {
		require.NoError(t, gameio.EncodeDigraph(f, g))
	}
	return path
}
