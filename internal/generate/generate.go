// Package generate produces random game instances for benchmarking and
// fixtures. Energy games are written as JSON, parity and reachability games
// as digraph files.
package generate

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/winfrac-dev/winfrac/internal/gameio"
	"github.com/winfrac-dev/winfrac/pkg/domain"
)

// Params bounds the shape of generated games. A zero MaxOutDegree means
// Vertices-1.
type Params struct {
	Vertices     int
	MinOutDegree int
	MaxOutDegree int
	MaxWeight    int // energy edge effects drawn from [-MaxWeight, MaxWeight]
	MaxPriority  int // parity and reach priorities drawn from [0, MaxPriority]
}

// DefaultParams mirrors the defaults of the batch generators.
func DefaultParams() Params {
	return Params{
		Vertices:     10,
		MinOutDegree: 1,
		MaxWeight:    5,
		MaxPriority:  5,
	}
}

func (p Params) normalized() (Params, error) {
	if p.Vertices < 1 {
		return p, fmt.Errorf("%w: vertices must be at least 1", domain.ErrParameter)
	}
	if p.MaxOutDegree == 0 {
		p.MaxOutDegree = p.Vertices - 1
		if p.MaxOutDegree < 1 {
			p.MaxOutDegree = 1
		}
	}
	if p.MinOutDegree < 1 {
		return p, fmt.Errorf("%w: min out-degree must be at least 1", domain.ErrParameter)
	}
	if p.MaxOutDegree < p.MinOutDegree {
		return p, fmt.Errorf("%w: max out-degree must be at least min out-degree", domain.ErrParameter)
	}
	if p.MaxOutDegree > p.Vertices {
		return p, fmt.Errorf("%w: max out-degree must be at most %d", domain.ErrParameter, p.Vertices)
	}
	return p, nil
}

// Graph draws one random game of the given kind from rng. Owners are
// uniform over both players; every vertex gets an out-degree in the
// configured range with distinct targets.
func Graph(kind domain.Kind, p Params, rng *rand.Rand) (*domain.Graph, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown game kind %q", domain.ErrParameter, kind)
	}
	p, err := p.normalized()
	if err != nil {
		return nil, err
	}

	vertices := make([]domain.Vertex, p.Vertices)
	for i := range vertices {
		vertices[i] = domain.Vertex{ID: i, Owner: rng.Intn(2)}
		if kind != domain.KindEnergy {
			vertices[i].Priority = rng.Intn(p.MaxPriority + 1)
		}
	}
	g, err := domain.NewGraph(kind, vertices)
	if err != nil {
		return nil, err
	}

	targets := make([]int, p.Vertices)
	for i := range targets {
		targets[i] = i
	}
	for u := 0; u < p.Vertices; u++ {
		degree := p.MinOutDegree + rng.Intn(p.MaxOutDegree-p.MinOutDegree+1)
		rng.Shuffle(len(targets), func(a, b int) {
			targets[a], targets[b] = targets[b], targets[a]
		})
		for _, v := range targets[:degree] {
			effect := 0
			if kind == domain.KindEnergy {
				effect = rng.Intn(2*p.MaxWeight+1) - p.MaxWeight
			}
			if err := g.AddEdge(u, v, effect); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// FileName returns the name of the i-th generated game (1-based on disk).
func FileName(kind domain.Kind, i int) string {
	return fmt.Sprintf("%s_game_%d%s", kind, i+1, gameio.Ext(kind))
}

// WriteBatch generates count games under dir, creating it if needed, and
// returns the written paths. The same seed yields the same batch.
func WriteBatch(dir string, kind domain.Kind, count int, p Params, seed int64, logger *slog.Logger) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: count must be at least 1", domain.ErrParameter)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	paths := make([]string, 0, count)
	for i := 0; i < count; i++ {
		g, err := Graph(kind, p, rng)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, FileName(kind, i))
		if err := writeGame(path, g); err != nil {
			return nil, err
		}
		if logger != nil {
			logger.Debug("generated game", "path", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeGame(path string, g *domain.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create game file: %w", err)
	}

	if g.Kind() == domain.KindEnergy {
		err = gameio.EncodeEnergy(f, g)
	} else {
		err = gameio.EncodeDigraph(f, g)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
