package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"tsp-route-service/internal/adapters/geo"
	"tsp-route-service/internal/domain"
	"tsp-route-service/internal/solver"
)

func newTestService() *RouteService {
	pairs := []geo.StaticPair{
		{From: "hub", To: "a", Km: 10},
		{From: "hub", To: "b", Km: 20},
		{From: "a", To: "b", Km: 8},
	}

	return NewRouteService(
		geo.NewStaticProvider(pairs),
		solver.DefaultRegistry(solver.GeneticConfig{PopulationSize: 20, Generations: 10}),
		NewValidationService(),
	)
}

func testPlaces() []domain.Place {
	return []domain.Place{
		{ID: "hub", Name: "Hub"},
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
	}
}

func TestCalculateRouteNearestNeighbor(t *testing.T) {
	service := newTestService()

	result, err := service.CalculateRoute(context.Background(), testPlaces(), "nearest_neighbor", domain.DefaultConstraints())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	route := result.Route
	if route.ID == "" {
		t.Error("route id not assigned")
	}

	wantOrder := []string{"hub", "a", "b", "hub"}
	if len(route.PlacesOrder) != len(wantOrder) {
		t.Fatalf("order = %v, want %v", route.PlacesOrder, wantOrder)
	}
	for i, id := range wantOrder {
		if route.PlacesOrder[i] != id {
			t.Fatalf("order = %v, want %v", route.PlacesOrder, wantOrder)
		}
	}

	// hub->a (10) + a->b (8) + b->hub (20)
	if route.TotalDistance != 38 {
		t.Errorf("distance = %v, want 38", route.TotalDistance)
	}

	if len(route.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(route.Segments))
	}
	if route.Segments[0].FromID != "hub" || route.Segments[0].ToID != "a" {
		t.Errorf("first segment = %+v", route.Segments[0])
	}
	if route.Segments[0].Distance != 10 {
		t.Errorf("first segment distance = %v, want 10", route.Segments[0].Distance)
	}

	// 10 km at 50 km/h is 12 minutes.
	if route.Segments[0].Duration != 12*time.Minute {
		t.Errorf("first segment duration = %v, want 12m", route.Segments[0].Duration)
	}

	if result.Iterations != 1 {
		t.Errorf("iterations = %d, want 1", result.Iterations)
	}
	if result.Improvement == nil {
		t.Error("expected improvement estimate")
	}
	if route.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
}

func TestCalculateRouteGeneticReportsGenerations(t *testing.T) {
	service := newTestService()

	result, err := service.CalculateRoute(context.Background(), testPlaces(), "genetic", domain.DefaultConstraints())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Iterations != 10 {
		t.Errorf("iterations = %d, want configured generation count 10", result.Iterations)
	}
	if len(result.Route.PlacesOrder) != 4 {
		t.Errorf("order length = %d, want 4", len(result.Route.PlacesOrder))
	}
}

func TestCalculateRouteUnknownAlgorithm(t *testing.T) {
	service := newTestService()

	_, err := service.CalculateRoute(context.Background(), testPlaces(), "brute_force", domain.DefaultConstraints())
	if !errors.Is(err, solver.ErrUnknownAlgorithm) {
		t.Fatalf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestCalculateRouteValidationFailure(t *testing.T) {
	service := newTestService()

	places := []domain.Place{{ID: "solo", Name: "Solo"}}
	_, err := service.CalculateRoute(context.Background(), places, "nearest_neighbor", domain.DefaultConstraints())
	if !errors.Is(err, solver.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCalculateRouteConstraintReferenceFailure(t *testing.T) {
	service := newTestService()

	constraints := domain.Constraints{StartLocation: "nowhere", ReturnToStart: true}
	_, err := service.CalculateRoute(context.Background(), testPlaces(), "nearest_neighbor", constraints)
	if !errors.Is(err, solver.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
