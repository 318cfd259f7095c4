// Package ports defines the interfaces between the batch driver and its
// collaborators: the external solver, the assignment sources, and the result
// sinks. Adapters live under internal/ and pkg/; the driver depends only on
// these interfaces.
package ports
