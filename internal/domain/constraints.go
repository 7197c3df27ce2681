package domain

// Optional knobs recognized by the optimization core.
//
// StartLocation pins the first stop to a place id (defaults to the first
// place when empty). ReturnToStart closes the tour into a cycle.
// EndLocation and MaxDistance are accepted and validated for referential
// integrity, but not enforced by the solvers.
type Constraints struct {
	StartLocation string
	ReturnToStart bool
	EndLocation   string
	MaxDistance   float64
}

// DefaultConstraints returns the constraints applied when a caller
// supplies none: open start at index 0, closed tour.
func DefaultConstraints() Constraints {
	return Constraints{ReturnToStart: true}
}
