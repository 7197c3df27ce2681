package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tsp-route-service/internal/domain"
	"tsp-route-service/internal/platform/obs"
	"tsp-route-service/internal/ports"
	"tsp-route-service/internal/solver"
)

// Assumed average travel speed for segment duration estimates, in km/h.
const averageSpeedKmh = 50

// RouteService orchestrates one route optimization: validate the request,
// build the distance matrix, resolve the solver, solve, then enrich the
// route with segments and metadata. Handlers stay unaware of concrete
// providers and solvers.
type RouteService struct {
	Provider  ports.MatrixProvider
	Registry  *solver.Registry
	Validator *ValidationService
}

func NewRouteService(provider ports.MatrixProvider, registry *solver.Registry, validator *ValidationService) *RouteService {
	return &RouteService{Provider: provider, Registry: registry, Validator: validator}
}

func (s *RouteService) CalculateRoute(
	ctx context.Context,
	places []domain.Place,
	algorithmName string,
	constraints domain.Constraints,
) (_ *domain.OptimizationResult, err error) {
	defer obs.Time(ctx, "route.calculate")(&err)

	if err := s.Validator.ValidatePlaces(places); err != nil {
		return nil, fmt.Errorf("calculate route: %w", err)
	}
	if err := s.Validator.ValidateAlgorithm(s.Registry, algorithmName); err != nil {
		return nil, fmt.Errorf("calculate route: %w", err)
	}
	if err := s.Validator.ValidateConstraints(constraints, places); err != nil {
		return nil, fmt.Errorf("calculate route: %w", err)
	}

	started := time.Now()

	matrix, err := s.Provider.Matrix(ctx, places)
	if err != nil {
		return nil, fmt.Errorf("calculate route: build distance matrix: %w", err)
	}

	algorithm, err := s.Registry.Create(algorithmName)
	if err != nil {
		return nil, fmt.Errorf("calculate route: %w", err)
	}

	route, err := algorithm.Solve(places, matrix, constraints)
	if err != nil {
		return nil, fmt.Errorf("calculate route: solve with %q: %w", algorithmName, err)
	}

	enhanceRoute(route, places, matrix, time.Since(started))

	iterations := 1
	if genetic, ok := algorithm.(*solver.Genetic); ok {
		iterations = genetic.Generations()
	}

	return &domain.OptimizationResult{
		Route:       route,
		Iterations:  iterations,
		Improvement: improvementEstimate(matrix, route),
	}, nil
}

// Algorithms returns the registered solver names.
func (s *RouteService) Algorithms() []string {
	return s.Registry.Names()
}

// AlgorithmInfo returns identity metadata for one registered solver.
func (s *RouteService) AlgorithmInfo(name string) (string, string, error) {
	return s.Registry.Info(name)
}

// enhanceRoute attaches an id, per-leg segments with fixed-speed duration
// estimates, and timing metadata to a solved route.
func enhanceRoute(route *domain.Route, places []domain.Place, matrix domain.DistanceMatrix, computation time.Duration) {
	index := make(map[string]int, len(places))
	for i, p := range places {
		index[p.ID] = i
	}

	segments := make([]domain.RouteSegment, 0, len(route.PlacesOrder))
	var totalTime time.Duration

	for i := 0; i < len(route.PlacesOrder)-1; i++ {
		fromID := route.PlacesOrder[i]
		toID := route.PlacesOrder[i+1]

		distance := matrix[index[fromID]][index[toID]]
		duration := time.Duration(distance / averageSpeedKmh * float64(time.Hour))

		segments = append(segments, domain.RouteSegment{
			FromID:   fromID,
			ToID:     toID,
			Distance: distance,
			Duration: duration,
		})
		totalTime += duration
	}

	route.ID = uuid.NewString()
	route.Segments = segments
	route.TotalTime = totalTime
	route.CreatedAt = time.Now()
	route.ComputationTime = computation
}

// improvementEstimate approximates the percentage saved against a random
// visiting order, using the mean matrix distance times n-1 as the
// baseline. Negative improvements are clamped to zero; routes with fewer
// than 3 stops report nil.
func improvementEstimate(matrix domain.DistanceMatrix, route *domain.Route) *float64 {
	if len(route.PlacesOrder) < 3 {
		return nil
	}

	n := matrix.Len()
	total := 0.0
	for _, row := range matrix {
		for _, d := range row {
			total += d
		}
	}

	baseline := total / float64(n*n) * float64(n-1)
	if baseline <= 0 {
		return nil
	}

	improvement := (baseline - route.TotalDistance) / baseline * 100
	if improvement < 0 {
		improvement = 0
	}
	return &improvement
}
