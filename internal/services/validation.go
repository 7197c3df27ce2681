package services

import (
	"fmt"
	"strings"

	"tsp-route-service/internal/domain"
	"tsp-route-service/internal/solver"
)

const (
	defaultMinPlaces = 2
	defaultMaxPlaces = 100
)

// ValidationService checks optimization requests before the solvers run.
// The solvers re-check only the minimum place-count precondition; every
// other input problem is reported here, all failures at once.
type ValidationService struct {
	MinPlaces int
	MaxPlaces int
}

func NewValidationService() *ValidationService {
	return &ValidationService{MinPlaces: defaultMinPlaces, MaxPlaces: defaultMaxPlaces}
}

// ValidatePlaces checks place count bounds, duplicate ids, required
// fields and coordinate ranges. All problems are accumulated into a
// single error wrapping solver.ErrInvalidInput.
func (v *ValidationService) ValidatePlaces(places []domain.Place) error {
	var problems []string

	if len(places) < v.MinPlaces {
		problems = append(problems, fmt.Sprintf("minimum %d places required, got %d", v.MinPlaces, len(places)))
	}
	if len(places) > v.MaxPlaces {
		problems = append(problems, fmt.Sprintf("maximum %d places allowed, got %d", v.MaxPlaces, len(places)))
	}

	seen := make(map[string]struct{}, len(places))
	for i, place := range places {
		if strings.TrimSpace(place.ID) == "" {
			problems = append(problems, fmt.Sprintf("place %d: id is required", i))
		} else if _, dup := seen[place.ID]; dup {
			problems = append(problems, fmt.Sprintf("place %d: duplicate id %q", i, place.ID))
		} else {
			seen[place.ID] = struct{}{}
		}

		if strings.TrimSpace(place.Name) == "" {
			problems = append(problems, fmt.Sprintf("place %d: name is required", i))
		}

		c := place.Coordinates
		if c.Lat < -90 || c.Lat > 90 {
			problems = append(problems, fmt.Sprintf("place %d: invalid latitude %v", i, c.Lat))
		}
		if c.Lon < -180 || c.Lon > 180 {
			problems = append(problems, fmt.Sprintf("place %d: invalid longitude %v", i, c.Lon))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("validate places: %s: %w", strings.Join(problems, "; "), solver.ErrInvalidInput)
	}
	return nil
}

// ValidateAlgorithm checks that the name resolves in the registry.
func (v *ValidationService) ValidateAlgorithm(registry *solver.Registry, name string) error {
	if _, err := registry.Create(name); err != nil {
		return fmt.Errorf("validate algorithm: %w", err)
	}
	return nil
}

// ValidateConstraints checks referential integrity of the constraint
// fields. max_distance must be positive when set; it is not enforced by
// the solvers.
func (v *ValidationService) ValidateConstraints(constraints domain.Constraints, places []domain.Place) error {
	var problems []string

	if constraints.StartLocation != "" && domain.PlaceIndex(places, constraints.StartLocation) < 0 {
		problems = append(problems, fmt.Sprintf("start location %q not found in places", constraints.StartLocation))
	}
	if constraints.EndLocation != "" && domain.PlaceIndex(places, constraints.EndLocation) < 0 {
		problems = append(problems, fmt.Sprintf("end location %q not found in places", constraints.EndLocation))
	}
	if constraints.MaxDistance < 0 {
		problems = append(problems, "max_distance must be a positive number")
	}

	if len(problems) > 0 {
		return fmt.Errorf("validate constraints: %s: %w", strings.Join(problems, "; "), solver.ErrInvalidInput)
	}
	return nil
}
