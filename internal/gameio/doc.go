// Package gameio reads and writes game graph descriptions in the two forms
// the external solvers understand: a structured JSON node/edge document for
// energy games, and a line-oriented digraph text for parity and reachability
// games. It also materializes per-trial instance files with owners rewritten
// from an assignment.
package gameio
