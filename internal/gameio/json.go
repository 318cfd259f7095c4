package gameio

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/winfrac-dev/winfrac/pkg/domain"
)

// jsonGame mirrors the energy solver's input document.
type jsonGame struct {
	Nodes []jsonNode `json:"nodes"`
	Edges []jsonEdge `json:"edges"`
}

type jsonNode struct {
	ID    int `json:"id"`
	Owner int `json:"owner"`
}

type jsonEdge struct {
	Source int  `json:"source"`
	Target int  `json:"target"`
	Effect *int `json:"effect,omitempty"`
}

// DecodeEnergy parses a JSON energy game. A missing "effect" means effect 0;
// adjacency is defined by the edge list alone.
func DecodeEnergy(r io.Reader) (*domain.Graph, error) {
	var doc jsonGame
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}
	if len(doc.Nodes) == 0 {
		return nil, fmt.Errorf("%w: no nodes", domain.ErrMalformedInput)
	}

	nodes := append([]jsonNode(nil), doc.Nodes...)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	vertices := make([]domain.Vertex, len(nodes))
	for i, n := range nodes {
		if n.Owner != 0 && n.Owner != 1 {
			return nil, fmt.Errorf("%w: node %d owner %d", domain.ErrMalformedInput, n.ID, n.Owner)
		}
		vertices[i] = domain.Vertex{ID: n.ID, Owner: n.Owner}
	}

	g, err := domain.NewGraph(domain.KindEnergy, vertices)
	if err != nil {
		return nil, err
	}
	for _, e := range doc.Edges {
		effect := 0
		if e.Effect != nil {
			effect = *e.Effect
		}
		if err := g.AddEdge(e.Source, e.Target, effect); err != nil {
			return nil, fmt.Errorf("%w: edge (%d,%d): %v", domain.ErrMalformedInput, e.Source, e.Target, err)
		}
	}
	return g, nil
}

// EncodeEnergy writes g in the JSON energy form, owners included.
func EncodeEnergy(w io.Writer, g *domain.Graph) error {
	doc := jsonGame{
		Nodes: make([]jsonNode, 0, g.VertexCount()),
		Edges: make([]jsonEdge, 0),
	}
	for _, v := range g.Vertices() {
		doc.Nodes = append(doc.Nodes, jsonNode{ID: v.ID, Owner: v.Owner})
	}
	for _, v := range g.Vertices() {
		for _, to := range g.Successors(v.ID) {
			effect := g.Effect(v.ID, to)
			doc.Edges = append(doc.Edges, jsonEdge{Source: v.ID, Target: to, Effect: &effect})
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
