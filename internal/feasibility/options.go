package feasibility

// DefaultEnergyLimit caps cumulative energy during the energy searches.
const DefaultEnergyLimit = 1000

// Options parameterizes the search procedures.
type Options struct {
	// Start is the distinguished analysis vertex.
	Start int

	// EnergyLimit is the cumulative-energy ceiling for the energy searches.
	// Paths whose energy exceeds it are abandoned, so the lasso check is
	// incomplete above the ceiling.
	EnergyLimit int
}

// DefaultOptions starts at vertex 0 with the default energy ceiling.
func DefaultOptions() Options {
	return Options{Start: 0, EnergyLimit: DefaultEnergyLimit}
}
