package solver

import (
	"math"

	"tsp-route-service/internal/domain"
)

// Solve the TSP with a greedy nearest-neighbor heuristic.
//
// The algorithm minimizes immediate travel distance at each step.
// It does not attempt global optimization; the design prioritizes
// determinism and simplicity over optimality. O(n²) time, O(n) space.
type NearestNeighbor struct{}

func NewNearestNeighbor() *NearestNeighbor { return &NearestNeighbor{} }

func (nn *NearestNeighbor) Name() string { return "nearest_neighbor" }

func (nn *NearestNeighbor) Description() string {
	return "Greedy nearest neighbor heuristic"
}

func (nn *NearestNeighbor) Solve(
	places []domain.Place,
	matrix domain.DistanceMatrix,
	constraints domain.Constraints,
) (*domain.Route, error) {
	if err := validateInput(places); err != nil {
		return nil, err
	}

	start, err := startIndex(places, constraints)
	if err != nil {
		return nil, err
	}

	n := len(places)
	visited := make([]bool, n)
	order := make([]int, 0, n+1)

	order = append(order, start)
	visited[start] = true

	current := start
	totalDistance := 0.0

	for len(order) < n {
		nearest := -1
		minDistance := math.Inf(1)

		// Ascending-index scan with strict less-than: the lowest index
		// wins ties, which keeps the route deterministic.
		for candidate := 0; candidate < n; candidate++ {
			if visited[candidate] {
				continue
			}
			if d := matrix[current][candidate]; d < minDistance {
				minDistance = d
				nearest = candidate
			}
		}

		totalDistance += minDistance
		order = append(order, nearest)
		visited[nearest] = true
		current = nearest
	}

	// Close the tour back to the start when requested.
	if constraints.ReturnToStart {
		totalDistance += matrix[current][start]
		order = append(order, start)
	}

	placesOrder := make([]string, len(order))
	for i, idx := range order {
		placesOrder[i] = places[idx].ID
	}

	return &domain.Route{
		PlacesOrder:   placesOrder,
		TotalDistance: totalDistance,
		Algorithm:     nn.Name(),
	}, nil
}
