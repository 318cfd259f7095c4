package domain

import "errors"

// ErrMalformedInput is returned when a game description references a missing
// vertex or carries an attribute that cannot be parsed. It is fatal: nothing
// is enumerated after it.
var ErrMalformedInput = errors.New("malformed game description")

// ErrParameter is returned for invalid enumeration or sampling parameters,
// e.g. a sample count that equals or exceeds the assignment space. It is
// fatal and raised before any trial is dispatched.
var ErrParameter = errors.New("invalid parameter")

// ErrDuplicateEdge is returned when a description declares two edges for the
// same ordered vertex pair. Wrapped into ErrMalformedInput by the loaders.
var ErrDuplicateEdge = errors.New("duplicate edge")

// ErrInfeasible is returned when the feasibility gate refuses a graph before
// enumeration. The wrapping error carries the human-readable reason.
var ErrInfeasible = errors.New("graph fails feasibility gate")
