package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"tsp-route-service/internal/api/dto"
	"tsp-route-service/internal/domain"
	"tsp-route-service/internal/platform/metrics"
	"tsp-route-service/internal/services"
	"tsp-route-service/internal/solver"
)

type RouteHandler struct {
	Service *services.RouteService
}

// Calculate runs one route optimization for the submitted places.
// It coordinates request decoding, the optimization service, and
// response shaping; all validation beyond JSON shape lives in the service.
func (h *RouteHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	places := make([]domain.Place, 0, len(req.Places))
	for _, p := range req.Places {
		places = append(places, domain.Place{
			ID:   p.ID,
			Name: p.Name,
			Coordinates: domain.Coordinates{
				Lat: p.Latitude,
				Lon: p.Longitude,
			},
			Address:  p.Address,
			Metadata: p.Metadata,
		})
	}

	constraints := domain.DefaultConstraints()
	if req.Constraints != nil {
		constraints.StartLocation = req.Constraints.StartLocation
		constraints.EndLocation = req.Constraints.EndLocation
		constraints.MaxDistance = req.Constraints.MaxDistance
		if req.Constraints.ReturnToStart != nil {
			constraints.ReturnToStart = *req.Constraints.ReturnToStart
		}
	}

	result, err := h.Service.CalculateRoute(r.Context(), places, req.Algorithm, constraints)
	if err != nil {
		metrics.Optimizations.WithLabelValues(req.Algorithm, "error").Inc()

		if errors.Is(err, solver.ErrInvalidInput) || errors.Is(err, solver.ErrUnknownAlgorithm) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}

		log.Printf("calculate route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.Optimizations.WithLabelValues(req.Algorithm, "ok").Inc()
	metrics.SolveDuration.WithLabelValues(req.Algorithm).Observe(result.Route.ComputationTime.Seconds())

	writeJSON(w, r, http.StatusOK, dto.RouteResponse{
		Success: true,
		Route:   routeBody(result.Route),
		Metadata: &dto.RouteMetadata{
			ComputationTimeMs:     result.Route.ComputationTime.Milliseconds(),
			ImprovementPercentage: result.Improvement,
			Iterations:            result.Iterations,
		},
	})
}

func routeBody(route *domain.Route) *dto.RouteBody {
	segments := make([]dto.RouteSegmentResponse, 0, len(route.Segments))
	for _, s := range route.Segments {
		segments = append(segments, dto.RouteSegmentResponse{
			FromPlaceID:     s.FromID,
			ToPlaceID:       s.ToID,
			DistanceKm:      s.Distance,
			DurationSeconds: int(s.Duration / time.Second),
		})
	}

	return &dto.RouteBody{
		ID:               route.ID,
		PlacesOrder:      route.PlacesOrder,
		TotalDistanceKm:  route.TotalDistance,
		TotalTimeSeconds: int(route.TotalTime / time.Second),
		AlgorithmUsed:    route.Algorithm,
		Segments:         segments,
		CreatedAt:        route.CreatedAt,
	}
}
