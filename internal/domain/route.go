package domain

import "time"

// Represents a single leg of an optimized route between two places.
type RouteSegment struct {
	FromID   string
	ToID     string
	Distance float64
	Duration time.Duration
}

// Represents the optimized visiting order produced by a solver.
// A Route is the output of one solve call and describes the ordered
// sequence of place ids (including a trailing repeat of the start id
// when the tour is closed), along with aggregate distance metrics.
// It is immutable planning data and contains no side effects.
type Route struct {
	ID              string
	PlacesOrder     []string
	TotalDistance   float64
	TotalTime       time.Duration
	Algorithm       string
	Segments        []RouteSegment
	CreatedAt       time.Time
	ComputationTime time.Duration
}

// Wraps a Route with optimization metadata reported to callers.
type OptimizationResult struct {
	Route      *Route
	Iterations int
	// Improvement is the estimated percentage saved against a random
	// visiting order, nil when the route is too short to compare.
	Improvement *float64
}
