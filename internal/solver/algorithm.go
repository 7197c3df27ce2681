package solver

import (
	"errors"
	"fmt"

	"tsp-route-service/internal/domain"
)

var (
	// ErrInvalidInput marks precondition violations on solver input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownAlgorithm marks a registry lookup of an unregistered name.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Contract every route solver implements.
//
// Solve is a pure function of its inputs (aside from internal randomness):
// it visits every place exactly once, plus the start again when the
// constraints close the tour. Whether the result is deterministic is
// algorithm-specific.
type Algorithm interface {
	Name() string
	Description() string
	Solve(places []domain.Place, matrix domain.DistanceMatrix, constraints domain.Constraints) (*domain.Route, error)
}

// validateInput enforces the shared solver precondition.
func validateInput(places []domain.Place) error {
	if len(places) < 2 {
		return fmt.Errorf("solve: need at least 2 places, got %d: %w", len(places), ErrInvalidInput)
	}
	return nil
}

// startIndex resolves the pinned first stop from the constraints.
// An unset start location defaults to index 0; one that names no known
// place is rejected rather than silently remapped.
func startIndex(places []domain.Place, constraints domain.Constraints) (int, error) {
	if constraints.StartLocation == "" {
		return 0, nil
	}

	idx := domain.PlaceIndex(places, constraints.StartLocation)
	if idx < 0 {
		return 0, fmt.Errorf("solve: start location %q not in place list: %w", constraints.StartLocation, ErrInvalidInput)
	}
	return idx, nil
}
