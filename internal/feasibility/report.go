package feasibility

import "github.com/winfrac-dev/winfrac/pkg/domain"

// Check is one named feasibility answer.
type Check struct {
	Name   string
	Result bool
}

// Report collects the feasibility answers for one graph together with the
// gate decision: whether the graph is genuinely sensitive to ownership
// assignment, so that enumeration can produce a non-trivial estimate.
type Report struct {
	Kind    domain.Kind
	Checks  []Check
	Proceed bool
	Reason  string
}

// Evaluate runs the checks for the graph's kind and derives the gate.
//
// Energy games enumerate only when a nonnegative-energy lasso exists AND a
// negative-energy path exists: otherwise the graph is trivially un-winnable
// or trivially safe. Parity games enumerate only when lassos of both cycle
// parities exist. Reachability games enumerate only when the region around
// v0 is not priority-0-only AND a full priority-0 lasso exists.
func Evaluate(g *domain.Graph, opts Options) Report {
	r := Report{Kind: g.Kind()}

	switch g.Kind() {
	case domain.KindEnergy:
		lasso := NonnegativeLasso(g, opts)
		negative := NegativeEnergyPath(g, opts)
		r.Checks = []Check{
			{Name: "nonnegative-energy lasso from v0", Result: lasso},
			{Name: "negative-energy path from v0", Result: negative},
		}
		r.Proceed = lasso && negative
		switch {
		case !lasso:
			r.Reason = "no path from v0 sustains nonnegative energy; every assignment loses"
		case !negative:
			r.Reason = "no path from v0 can go negative; every assignment wins"
		}

	case domain.KindParity:
		even := EvenLasso(g, opts)
		odd := OddLasso(g, opts)
		r.Checks = []Check{
			{Name: "lasso with highest cycle priority even", Result: even},
			{Name: "lasso with highest cycle priority odd", Result: odd},
		}
		r.Proceed = even && odd
		switch {
		case !even:
			r.Reason = "v0 cannot reach a cycle with even highest priority"
		case !odd:
			r.Reason = "all cycles reachable from v0 have even highest priority"
		}

	case domain.KindReach:
		region := Priority0Region(g, opts)
		lasso := Priority0Lasso(g, opts)
		r.Checks = []Check{
			{Name: "v0 reaches only priority-0 vertices", Result: region},
			{Name: "priority-0-only lasso from v0", Result: lasso},
		}
		r.Proceed = !region && lasso
		switch {
		case region:
			r.Reason = "everything reachable from v0 has priority 0; the outcome is fixed"
		case !lasso:
			r.Reason = "v0 has no priority-0-only lasso"
		}
	}
	return r
}
