package domain

import "time"

// VerdictStatus tags the result of decoding one solver transcript.
type VerdictStatus int

const (
	// Decided means the transcript named a winner for the start vertex.
	Decided VerdictStatus = iota
	// Undecided means the transcript was well-formed but did not cover the
	// start vertex (e.g. the solver gave up on it).
	Undecided
	// ParseFailure means the transcript matched neither accepted convention.
	ParseFailure
)

// Verdict is the typed decoding of a solver transcript. Outcome is only
// meaningful when Status == Decided.
type Verdict struct {
	Status  VerdictStatus
	Outcome int // 1 = the analyzed player wins the start vertex
}

// Win and Loss are the two decided verdicts.
var (
	Win  = Verdict{Status: Decided, Outcome: 1}
	Loss = Verdict{Status: Decided, Outcome: 0}
)

// Trial is the outcome of dispatching one assignment to the solver. A failed
// solver run is still a Trial (Outcome 0, Err set): per-trial failures are
// isolated and never abort a batch.
type Trial struct {
	Assignment Assignment
	Outcome    int
	Elapsed    time.Duration // solver wall-clock only, excludes serialization
	Raw        string        // raw solver stdout, kept for logging
	Err        error         // nil on a clean run
}
