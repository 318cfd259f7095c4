// Package solver dispatches one trial to the external decision procedure: it
// materializes the specialized instance file, invokes the configured solver
// binary as an isolated process, and decodes its stdout into a typed verdict.
// Per-trial failures (non-zero exit, unparsable output) are folded into the
// trial as a loss and never surfaced as fatal errors, because one failed
// trial must not abort the batch.
package solver
