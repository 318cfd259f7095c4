package generate_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winfrac-dev/winfrac/internal/gameio"
	"github.com/winfrac-dev/winfrac/internal/generate"
	"github.com/winfrac-dev/winfrac/pkg/domain"
)

func TestGraph_Bounds(t *testing.T) {
	p := generate.Params{Vertices: 8, MinOutDegree: 2, MaxOutDegree: 4, MaxWeight: 3, MaxPriority: 5}
	rng := rand.New(rand.NewSource(7))

	g, err := generate.Graph(domain.KindEnergy, p, rng)
	require.NoError(t, err)
	assert.Equal(t, 8, g.VertexCount())

	for u := 0; u < g.VertexCount(); u++ {
		succ := g.Successors(u)
		assert.GreaterOrEqual(t, len(succ), 2)
		assert.LessOrEqual(t, len(succ), 4)
		seen := map[int]bool{}
		for _, v := range succ {
			assert.False(t, seen[v], "duplicate edge from v%d", u)
			seen[v] = true
			eff := g.Effect(u, v)
			assert.GreaterOrEqual(t, eff, -3)
			assert.LessOrEqual(t, eff, 3)
		}
		owner := g.Vertex(u).Owner
		assert.Contains(t, []int{0, 1}, owner)
	}
}

func TestGraph_ParityPriorities(t *testing.T) {
	p := generate.Params{Vertices: 6, MinOutDegree: 1, MaxOutDegree: 3, MaxPriority: 4}
	rng := rand.New(rand.NewSource(11))

	g, err := generate.Graph(domain.KindParity, p, rng)
	require.NoError(t, err)
	for _, v := range g.Vertices() {
		assert.GreaterOrEqual(t, v.Priority, 0)
		assert.LessOrEqual(t, v.Priority, 4)
	}
}

func TestGraph_ParameterErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cases := map[string]generate.Params{
		"ZeroVertices":      {Vertices: 0, MinOutDegree: 1},
		"ZeroMinOutDegree":  {Vertices: 4, MinOutDegree: 0, MaxOutDegree: 2},
		"InvertedDegrees":   {Vertices: 4, MinOutDegree: 3, MaxOutDegree: 2},
		"DegreeOverVertices": {Vertices: 4, MinOutDegree: 1, MaxOutDegree: 5},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := generate.Graph(domain.KindEnergy, p, rng)
			assert.ErrorIs(t, err, domain.ErrParameter)
		})
	}

	_, err := generate.Graph(domain.Kind("mean-payoff"), generate.DefaultParams(), rng)
	assert.ErrorIs(t, err, domain.ErrParameter)
}

func TestWriteBatch_Deterministic(t *testing.T) {
	p := generate.Params{Vertices: 5, MinOutDegree: 1, MaxOutDegree: 3, MaxWeight: 2}

	dirA := t.TempDir()
	dirB := t.TempDir()
	pathsA, err := generate.WriteBatch(dirA, domain.KindEnergy, 3, p, 42, nil)
	require.NoError(t, err)
	pathsB, err := generate.WriteBatch(dirB, domain.KindEnergy, 3, p, 42, nil)
	require.NoError(t, err)
	require.Len(t, pathsA, 3)

	for i := range pathsA {
		a, err := os.ReadFile(pathsA[i])
		require.NoError(t, err)
		b, err := os.ReadFile(pathsB[i])
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b))
	}
}

func TestWriteBatch_LoadsBack(t *testing.T) {
	dir := t.TempDir()
	p := generate.Params{Vertices: 4, MinOutDegree: 1, MaxOutDegree: 2, MaxPriority: 3}

	paths, err := generate.WriteBatch(dir, domain.KindParity, 2, p, 9, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "parity_game_1.dot"), paths[0])

	g, err := gameio.Load(paths[1], domain.KindParity)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
}

func TestWriteBatch_CountError(t *testing.T) {
	_, err := generate.WriteBatch(t.TempDir(), domain.KindEnergy, 0, generate.DefaultParams(), 1, nil)
	assert.ErrorIs(t, err, domain.ErrParameter)
}
