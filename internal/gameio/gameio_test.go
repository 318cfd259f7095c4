package gameio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winfrac-dev/winfrac/internal/gameio"
	"github.com/winfrac-dev/winfrac/pkg/domain"
)

const energyDoc = `{
  "nodes": [
    {"id": 0, "owner": 0},
    {"id": 1, "owner": 1},
    {"id": 2, "owner": 0}
  ],
  "edges": [
    {"source": 0, "target": 1, "effect": -1},
    {"source": 1, "target": 2, "effect": 2},
    {"source": 2, "target": 0}
  ]
}`

const parityDoc = `digraph ParityGame {
  v0 [name="v0", player=0, priority=2];
  v1 [name="v1", player=1, priority=1];
  v0 -> v1 [label="edge_0_1"];
  v1 -> v0 [label="edge_1_0"];
  v1 -> v1 [label="edge_1_1"];
}
`

func TestDecodeEnergy(t *testing.T) {
	g, err := gameio.DecodeEnergy(strings.NewReader(energyDoc))
	require.NoError(t, err)

	assert.Equal(t, domain.KindEnergy, g.Kind())
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, []int{1}, g.Successors(0))
	assert.Equal(t, -1, g.Effect(0, 1))
	assert.Equal(t, 2, g.Effect(1, 2))
	// Omitted effect is 0, and the edge still exists.
	assert.Equal(t, 0, g.Effect(2, 0))
	assert.Equal(t, []int{0}, g.Successors(2))
	assert.Equal(t, 1, g.Vertex(1).Owner)
}

func TestDecodeEnergy_Malformed(t *testing.T) {
	cases := map[string]string{
		"NotJSON":       `digraph {}`,
		"NoNodes":       `{"nodes": [], "edges": []}`,
		"DanglingEdge":  `{"nodes": [{"id":0,"owner":0}], "edges": [{"source":0,"target":9}]}`,
		"BadOwner":      `{"nodes": [{"id":0,"owner":7}], "edges": []}`,
		"SparseIDs":     `{"nodes": [{"id":0,"owner":0},{"id":2,"owner":0}], "edges": []}`,
		"DuplicatePair": `{"nodes": [{"id":0,"owner":0}], "edges": [{"source":0,"target":0},{"source":0,"target":0}]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := gameio.DecodeEnergy(strings.NewReader(doc))
			assert.ErrorIs(t, err, domain.ErrMalformedInput)
		})
	}
}

func TestDecodeDigraph(t *testing.T) {
	g, err := gameio.DecodeDigraph(strings.NewReader(parityDoc), domain.KindParity)
	require.NoError(t, err)

	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 2, g.Vertex(0).Priority)
	assert.Equal(t, 1, g.Vertex(1).Owner)
	assert.Equal(t, []int{0, 1}, g.Successors(1))
}

func TestDecodeDigraph_Malformed(t *testing.T) {
	t.Run("BadVertexDeclaration", func(t *testing.T) {
		doc := "v0 [name=\"v0\", player=zero, priority=0];\n"
		_, err := gameio.DecodeDigraph(strings.NewReader(doc), domain.KindParity)
		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})

	t.Run("EdgeToUndeclaredVertex", func(t *testing.T) {
		doc := "v0 [name=\"v0\", player=0, priority=0];\nv0 -> v9;\n"
		_, err := gameio.DecodeDigraph(strings.NewReader(doc), domain.KindParity)
		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := gameio.DecodeDigraph(strings.NewReader("digraph G {\n}\n"), domain.KindParity)
		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})
}

func TestRoundTrip(t *testing.T) {
	t.Run("Energy", func(t *testing.T) {
		g, err := gameio.DecodeEnergy(strings.NewReader(energyDoc))
		require.NoError(t, err)

		var sb strings.Builder
		require.NoError(t, gameio.EncodeEnergy(&sb, g))

		back, err := gameio.DecodeEnergy(strings.NewReader(sb.String()))
		require.NoError(t, err)
		assert.Equal(t, g.VertexCount(), back.VertexCount())
		assert.Equal(t, g.Effect(0, 1), back.Effect(0, 1))
		assert.Equal(t, g.Successors(2), back.Successors(2))
	})

	t.Run("Digraph", func(t *testing.T) {
		g, err := gameio.DecodeDigraph(strings.NewReader(parityDoc), domain.KindReach)
		require.NoError(t, err)

		var sb strings.Builder
		require.NoError(t, gameio.EncodeDigraph(&sb, g))

		back, err := gameio.DecodeDigraph(strings.NewReader(sb.String()), domain.KindReach)
		require.NoError(t, err)
		assert.Equal(t, g.Vertex(0).Priority, back.Vertex(0).Priority)
		assert.Equal(t, g.Successors(1), back.Successors(1))
	})
}

func TestWriteInstance(t *testing.T) {
	g, err := gameio.DecodeDigraph(strings.NewReader(parityDoc), domain.KindParity)
	require.NoError(t, err)

	dir := t.TempDir()
	path, err := gameio.WriteInstance(dir, g, domain.Assignment("10"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "game_10.dot"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	inst, err := gameio.DecodeDigraph(strings.NewReader(string(data)), domain.KindParity)
	require.NoError(t, err)
	assert.Equal(t, 1, inst.Vertex(0).Owner)
	assert.Equal(t, 0, inst.Vertex(1).Owner)

	// The canonical graph keeps its original owners.
	assert.Equal(t, 0, g.Vertex(0).Owner)
	assert.Equal(t, 1, g.Vertex(1).Owner)
}
