// Package feasibility implements the bounded graph searches that gate the
// enumeration step. All procedures start from the distinguished vertex v0,
// use explicit iterative stacks (no recursion), and answer existential
// yes/no questions about the raw graph before any ownership assignment is
// considered.
//
// The energy searches explore (vertex, energy) states capped by an energy
// ceiling. The ceiling is a pragmatic incompleteness bound, not a
// proof-theoretic one: a lasso whose intermediate energy exceeds the ceiling
// is never found. It is exposed through Options so small fixtures can pick a
// value large enough to make the search exhaustive.
package feasibility
