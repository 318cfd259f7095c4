package feasibility

import "github.com/winfrac-dev/winfrac/pkg/domain"

// energyState dedupes exploration by (vertex, cumulative energy). Bounding
// energy by the ceiling makes the state space finite, which is what
// guarantees termination.
type energyState struct {
	vertex int
	energy int
}

type lassoFrame struct {
	vertex int
	path   []int // walk from start up to and including vertex
	energy int
}

// NonnegativeLasso reports whether some path from the start vertex closes a
// cycle on which every prefix sum of edge effects stays nonnegative and the
// total cycle sum is >= 0. The nonnegativity invariant covers the whole
// walk: states with negative energy are never pushed, so the prefix leading
// into the cycle obeys the same rule as the cycle itself. The result is
// existential; successor order is not canonical.
func NonnegativeLasso(g *domain.Graph, opts Options) bool {
	if g.VertexCount() == 0 || opts.Start >= g.VertexCount() {
		return false
	}

	stack := []lassoFrame{{vertex: opts.Start, path: []int{opts.Start}, energy: 0}}
	visited := make(map[energyState]bool)

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.energy < 0 {
			continue
		}

		if idx := indexOf(f.path[:len(f.path)-1], f.vertex); idx >= 0 {
			// The revisited segment is a cycle; re-walk just the cycle,
			// re-summing effects.
			cycle := f.path[idx:]
			sum := 0
			valid := true
			for i := 0; i+1 < len(cycle); i++ {
				sum += g.Effect(cycle[i], cycle[i+1])
				if sum < 0 {
					valid = false
					break
				}
			}
			if valid && sum >= 0 {
				return true
			}
			continue
		}

		for _, nb := range g.Successors(f.vertex) {
			next := f.energy + g.Effect(f.vertex, nb)
			state := energyState{vertex: nb, energy: next}
			if next >= 0 && next <= opts.EnergyLimit && !visited[state] {
				visited[state] = true
				path := make([]int, len(f.path)+1)
				copy(path, f.path)
				path[len(f.path)] = nb
				stack = append(stack, lassoFrame{vertex: nb, path: path, energy: next})
			}
		}
	}
	return false
}

// NegativeEnergyPath reports whether any single transition reachable from the
// start vertex would drive cumulative energy below zero. No cycle is
// required; the search accepts the instant such a transition is found.
func NegativeEnergyPath(g *domain.Graph, opts Options) bool {
	if g.VertexCount() == 0 || opts.Start >= g.VertexCount() {
		return false
	}

	stack := []energyState{{vertex: opts.Start, energy: 0}}
	visited := make(map[energyState]bool)

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[s] {
			continue
		}
		visited[s] = true

		for _, nb := range g.Successors(s.vertex) {
			next := s.energy + g.Effect(s.vertex, nb)
			if next < 0 {
				return true
			}
			if next <= opts.EnergyLimit {
				stack = append(stack, energyState{vertex: nb, energy: next})
			}
		}
	}
	return false
}

func indexOf(path []int, v int) int {
	for i, p := range path {
		if p == v {
			return i
		}
	}
	return -1
}
