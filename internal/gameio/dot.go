package gameio

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/winfrac-dev/winfrac/pkg/domain"
)

var (
	dotVertexPattern = regexp.MustCompile(`^v(\d+)\s+\[name="[^"]*",\s*player=(\d+),\s*priority=(\d+)\];?$`)
	dotEdgePattern   = regexp.MustCompile(`^v(\d+)\s*->\s*v(\d+)`)
)

// DecodeDigraph parses the line-oriented digraph form used by the parity and
// reachability solvers: vertex declarations carrying name, player, and
// priority, followed by directed edge declarations. Lines that are neither
// (the digraph header and the closing brace) are ignored; a vertex-looking
// line that fails to parse is a malformed record.
func DecodeDigraph(r io.Reader, kind domain.Kind) (*domain.Graph, error) {
	type rawVertex struct {
		id       int
		owner    int
		priority int
	}
	var rawVertices []rawVertex
	var rawEdges [][2]int

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if m := dotVertexPattern.FindStringSubmatch(line); m != nil {
			id, _ := strconv.Atoi(m[1])
			owner, _ := strconv.Atoi(m[2])
			priority, _ := strconv.Atoi(m[3])
			if owner != 0 && owner != 1 {
				return nil, fmt.Errorf("%w: vertex v%d player %d", domain.ErrMalformedInput, id, owner)
			}
			rawVertices = append(rawVertices, rawVertex{id: id, owner: owner, priority: priority})
			continue
		}
		if m := dotEdgePattern.FindStringSubmatch(line); m != nil {
			from, _ := strconv.Atoi(m[1])
			to, _ := strconv.Atoi(m[2])
			rawEdges = append(rawEdges, [2]int{from, to})
			continue
		}
		if strings.HasPrefix(line, "v") && strings.Contains(line, "[") {
			return nil, fmt.Errorf("%w: unparsable vertex declaration %q", domain.ErrMalformedInput, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}
	if len(rawVertices) == 0 {
		return nil, fmt.Errorf("%w: no vertex declarations", domain.ErrMalformedInput)
	}

	sort.Slice(rawVertices, func(i, j int) bool { return rawVertices[i].id < rawVertices[j].id })
	vertices := make([]domain.Vertex, len(rawVertices))
	for i, rv := range rawVertices {
		vertices[i] = domain.Vertex{ID: rv.id, Owner: rv.owner, Priority: rv.priority}
	}

	g, err := domain.NewGraph(kind, vertices)
	if err != nil {
		return nil, err
	}
	for _, e := range rawEdges {
		if err := g.AddEdge(e[0], e[1], 0); err != nil {
			return nil, fmt.Errorf("%w: edge (v%d,v%d): %v", domain.ErrMalformedInput, e[0], e[1], err)
		}
	}
	return g, nil
}

// EncodeDigraph writes g in the line-oriented digraph form, owners included.
func EncodeDigraph(w io.Writer, g *domain.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	for _, v := range g.Vertices() {
		fmt.Fprintf(bw, "  %s [name=%q, player=%d, priority=%d];\n", v.Name(), v.Name(), v.Owner, v.Priority)
	}
	for _, v := range g.Vertices() {
		for _, to := range g.Successors(v.ID) {
			fmt.Fprintf(bw, "  v%d -> v%d [label=\"edge_%d_%d\"];\n", v.ID, to, v.ID, to)
		}
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
