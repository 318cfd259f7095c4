package solver

import "fmt"

// ProcessError records a solver process that exited non-zero. It is carried
// on the trial for logging and never propagated as fatal.
type ProcessError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("solver process %s failed: %v (stderr: %s)", e.Command, e.Err, e.Stderr)
}

func (e *ProcessError) Unwrap() error { return e.Err }

// ParseError records solver output that matched neither accepted verdict
// convention. Like ProcessError, it is recovered locally as a loss.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("solver output matched no verdict convention: %.120q", e.Raw)
}
