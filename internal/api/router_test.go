package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tsp-route-service/internal/adapters/geo"
	"tsp-route-service/internal/api/dto"
	"tsp-route-service/internal/services"
	"tsp-route-service/internal/solver"
)

func newTestRouter() http.Handler {
	service := services.NewRouteService(
		geo.NewHaversineProvider(),
		solver.DefaultRegistry(solver.GeneticConfig{PopulationSize: 20, Generations: 10}),
		services.NewValidationService(),
	)
	return NewRouter(service)
}

const calculateBody = `{
	"places": [
		{"id": "nyc", "name": "New York", "latitude": 40.7128, "longitude": -74.0060},
		{"id": "bos", "name": "Boston", "latitude": 42.3601, "longitude": -71.0589},
		{"id": "phl", "name": "Philadelphia", "latitude": 39.9526, "longitude": -75.1652}
	],
	"algorithm": "nearest_neighbor"
}`

func TestCalculateRouteEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/calculate-route", strings.NewReader(calculateBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.RouteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if !res.Success {
		t.Fatalf("success = false, error = %q", res.Error)
	}
	if res.Route == nil {
		t.Fatal("route missing")
	}

	wantOrder := []string{"nyc", "phl", "bos", "nyc"}
	if len(res.Route.PlacesOrder) != len(wantOrder) {
		t.Fatalf("order = %v, want %v", res.Route.PlacesOrder, wantOrder)
	}
	for i, id := range wantOrder {
		if res.Route.PlacesOrder[i] != id {
			t.Fatalf("order = %v, want %v", res.Route.PlacesOrder, wantOrder)
		}
	}

	// Analytic closed-tour distance for these three cities.
	want := 871.4
	if res.Route.TotalDistanceKm < want*0.995 || res.Route.TotalDistanceKm > want*1.005 {
		t.Errorf("total distance = %v, want ≈%v", res.Route.TotalDistanceKm, want)
	}

	if res.Route.AlgorithmUsed != "nearest_neighbor" {
		t.Errorf("algorithm = %q", res.Route.AlgorithmUsed)
	}
	if len(res.Route.Segments) != 3 {
		t.Errorf("segments = %d, want 3", len(res.Route.Segments))
	}
	if res.Metadata == nil || res.Metadata.Iterations != 1 {
		t.Errorf("metadata = %+v", res.Metadata)
	}
}

func TestCalculateRouteUnknownAlgorithm(t *testing.T) {
	router := newTestRouter()

	body := strings.Replace(calculateBody, "nearest_neighbor", "brute_force", 1)
	req := httptest.NewRequest(http.MethodPost, "/calculate-route", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "nearest_neighbor") {
		t.Errorf("error should list available algorithms, got %s", rec.Body.String())
	}
}

func TestCalculateRouteRejectsUnknownFields(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/calculate-route", strings.NewReader(`{"bogus": true}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCalculateRouteMethodNotAllowed(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/calculate-route", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestAlgorithmsEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/algorithms", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var res dto.AlgorithmsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(res.Algorithms) != 2 {
		t.Fatalf("algorithms = %+v, want 2 entries", res.Algorithms)
	}
	if res.Algorithms[0].Name != "genetic" || res.Algorithms[1].Name != "nearest_neighbor" {
		t.Errorf("unexpected names: %+v", res.Algorithms)
	}
}

func TestAlgorithmInfoEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/algorithms/genetic", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var res dto.AlgorithmInfoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !res.Success || res.Algorithm == nil || res.Algorithm.Name != "genetic" {
		t.Errorf("unexpected response: %+v", res)
	}
}

func TestAlgorithmInfoUnknown(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/algorithms/brute_force", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var res dto.AlgorithmInfoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Success || res.Error == "" {
		t.Errorf("unexpected response: %+v", res)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var res dto.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Status != "healthy" {
		t.Errorf("status = %q", res.Status)
	}
	if len(res.AlgorithmsAvailable) != 2 {
		t.Errorf("algorithms = %v", res.AlgorithmsAvailable)
	}
}
