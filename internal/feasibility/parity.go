package feasibility

import "github.com/winfrac-dev/winfrac/pkg/domain"

type pathFrame struct {
	vertex int
	path   []int // walk from start, excluding vertex
}

// ParityLasso reports whether some lasso from the start vertex closes a cycle
// whose maximum vertex priority has the requested parity (0 = even, 1 = odd).
// A path stops extending the moment it revisits a vertex on its own prefix,
// so every explored walk is a simple path plus one closing edge; graphs are
// finite, hence the search terminates.
func ParityLasso(g *domain.Graph, parity int, opts Options) bool {
	if g.VertexCount() == 0 || opts.Start >= g.VertexCount() {
		return false
	}

	stack := []pathFrame{{vertex: opts.Start}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if idx := indexOf(f.path, f.vertex); idx >= 0 {
			maxPriority := g.Vertex(f.vertex).Priority
			for _, v := range f.path[idx:] {
				if p := g.Vertex(v).Priority; p > maxPriority {
					maxPriority = p
				}
			}
			if maxPriority%2 == parity {
				return true
			}
			continue
		}

		path := make([]int, len(f.path)+1)
		copy(path, f.path)
		path[len(f.path)] = f.vertex
		for _, nb := range g.Successors(f.vertex) {
			stack = append(stack, pathFrame{vertex: nb, path: path})
		}
	}
	return false
}

// EvenLasso is ParityLasso with even cycle parity.
func EvenLasso(g *domain.Graph, opts Options) bool { return ParityLasso(g, 0, opts) }

// OddLasso is ParityLasso with odd cycle parity.
func OddLasso(g *domain.Graph, opts Options) bool { return ParityLasso(g, 1, opts) }

// Priority0Region reports whether the start vertex and every vertex reachable
// from it carry priority 0. Plain breadth-first reachability.
func Priority0Region(g *domain.Graph, opts Options) bool {
	if g.VertexCount() == 0 || opts.Start >= g.VertexCount() {
		return false
	}

	visited := make([]bool, g.VertexCount())
	queue := []int{opts.Start}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if visited[v] {
			continue
		}
		visited[v] = true

		if g.Vertex(v).Priority != 0 {
			return false
		}
		for _, nb := range g.Successors(v) {
			if !visited[nb] {
				queue = append(queue, nb)
			}
		}
	}
	return true
}

// Priority0Lasso reports whether a lasso from the start vertex exists whose
// prefix and cycle consist entirely of priority-0 vertices.
func Priority0Lasso(g *domain.Graph, opts Options) bool {
	if g.VertexCount() == 0 || opts.Start >= g.VertexCount() {
		return false
	}
	if g.Vertex(opts.Start).Priority != 0 {
		return false
	}

	stack := []pathFrame{{vertex: opts.Start}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if g.Vertex(f.vertex).Priority != 0 {
			continue
		}
		if indexOf(f.path, f.vertex) >= 0 {
			// Everything on the path was already checked for priority 0.
			return true
		}

		path := make([]int, len(f.path)+1)
		copy(path, f.path)
		path[len(f.path)] = f.vertex
		for _, nb := range g.Successors(f.vertex) {
			stack = append(stack, pathFrame{vertex: nb, path: path})
		}
	}
	return false
}
