// Package domain holds the core types of winfrac: game graphs, ownership
// assignments, trial verdicts, and the running aggregate that summarizes a
// batch. It has no dependencies on the drivers or adapters; everything here
// is plain data plus the invariants the rest of the system relies on.
package domain
