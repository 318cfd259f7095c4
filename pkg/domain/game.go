package domain

import "fmt"

// Kind identifies the objective of a game graph.
type Kind string

const (
	// KindEnergy marks games whose payoff lives on edges (integer effects).
	KindEnergy Kind = "energy"
	// KindParity marks games whose payoff is a per-vertex integer priority.
	KindParity Kind = "parity"
	// KindReach marks reachability games, encoded like parity games but
	// gated and solved differently.
	KindReach Kind = "reach"
)

// Valid reports whether k is one of the known game kinds.
func (k Kind) Valid() bool {
	return k == KindEnergy || k == KindParity || k == KindReach
}

// Vertex is one position of a game graph. IDs are dense integers starting at
// zero; the analysis start vertex is always vertex 0.
type Vertex struct {
	ID       int
	Owner    int // 0 or 1: which player picks the outgoing edge
	Priority int // parity/reach games only; zero for energy games
}

// Name returns the textual vertex name used by the line-oriented game
// formats ("v0", "v1", ...).
func (v Vertex) Name() string { return fmt.Sprintf("v%d", v.ID) }

// edgeKey identifies an ordered vertex pair.
type edgeKey struct{ from, to int }

// Graph is an immutable-after-load game graph. Trials never mutate it; they
// work on clones specialized via Apply.
type Graph struct {
	kind     Kind
	vertices []Vertex
	succ     [][]int
	effects  map[edgeKey]int
}

// NewGraph creates a graph of the given kind over the given vertices.
// Vertex IDs must be dense and match their slice position.
func NewGraph(kind Kind, vertices []Vertex) (*Graph, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown game kind %q", ErrMalformedInput, kind)
	}
	for i, v := range vertices {
		if v.ID != i {
			return nil, fmt.Errorf("%w: vertex id %d at position %d (ids must be dense)", ErrMalformedInput, v.ID, i)
		}
	}
	return &Graph{
		kind:     kind,
		vertices: append([]Vertex(nil), vertices...),
		succ:     make([][]int, len(vertices)),
		effects:  make(map[edgeKey]int),
	}, nil
}

// AddEdge declares a directed edge from u to v with the given effect. At most
// one edge may exist per ordered pair; the effect is meaningful for energy
// games only and stored as zero when omitted by the loader.
func (g *Graph) AddEdge(u, v, effect int) error {
	if u < 0 || u >= len(g.vertices) || v < 0 || v >= len(g.vertices) {
		return fmt.Errorf("%w: edge (%d,%d) references a missing vertex", ErrMalformedInput, u, v)
	}
	key := edgeKey{u, v}
	if _, ok := g.effects[key]; ok {
		return fmt.Errorf("%w: (%d,%d)", ErrDuplicateEdge, u, v)
	}
	g.effects[key] = effect
	g.succ[u] = append(g.succ[u], v)
	return nil
}

// Kind returns the game kind.
func (g *Graph) Kind() Kind { return g.kind }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Vertex returns the vertex with the given id.
func (g *Graph) Vertex(id int) Vertex { return g.vertices[id] }

// Vertices returns the vertex set in id order. The returned slice is shared;
// callers must not mutate it.
func (g *Graph) Vertices() []Vertex { return g.vertices }

// Successors returns the targets of all outgoing edges of v. A dead end
// yields an empty slice. The returned slice is shared; callers must not
// mutate it.
func (g *Graph) Successors(v int) []int { return g.succ[v] }

// Effect returns the effect of the edge (u,v). Absence of an explicit effect
// means effect 0, not "no edge": only Successors defines adjacency.
func (g *Graph) Effect(u, v int) int { return g.effects[edgeKey{u, v}] }

// Clone returns an independent deep copy of the graph.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		kind:     g.kind,
		vertices: append([]Vertex(nil), g.vertices...),
		succ:     make([][]int, len(g.succ)),
		effects:  make(map[edgeKey]int, len(g.effects)),
	}
	for i, s := range g.succ {
		c.succ[i] = append([]int(nil), s...)
	}
	for k, w := range g.effects {
		c.effects[k] = w
	}
	return c
}

// Apply returns a clone of the graph with vertex owners overwritten per the
// assignment bits. The receiver is never touched.
func (g *Graph) Apply(a Assignment) (*Graph, error) {
	if len(a) != len(g.vertices) {
		return nil, fmt.Errorf("%w: assignment length %d for %d vertices", ErrParameter, len(a), len(g.vertices))
	}
	c := g.Clone()
	for i := range c.vertices {
		bit, err := a.Bit(i)
		if err != nil {
			return nil, err
		}
		c.vertices[i].Owner = bit
	}
	return c, nil
}
