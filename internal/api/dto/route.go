package dto

import "time"

type PlaceRequest struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Address   string            `json:"address,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

type ConstraintsRequest struct {
	StartLocation string `json:"start_location"`
	// ReturnToStart defaults to true when omitted.
	ReturnToStart *bool   `json:"return_to_start"`
	EndLocation   string  `json:"end_location"`
	MaxDistance   float64 `json:"max_distance"`
}

type RouteRequest struct {
	Places      []PlaceRequest      `json:"places"`
	Algorithm   string              `json:"algorithm"`
	Constraints *ConstraintsRequest `json:"constraints"`
}

type RouteSegmentResponse struct {
	FromPlaceID     string  `json:"from_place_id"`
	ToPlaceID       string  `json:"to_place_id"`
	DistanceKm      float64 `json:"distance_km"`
	DurationSeconds int     `json:"duration_seconds"`
}

type RouteBody struct {
	ID               string                 `json:"id"`
	PlacesOrder      []string               `json:"places_order"`
	TotalDistanceKm  float64                `json:"total_distance_km"`
	TotalTimeSeconds int                    `json:"total_time_seconds"`
	AlgorithmUsed    string                 `json:"algorithm_used"`
	Segments         []RouteSegmentResponse `json:"segments"`
	CreatedAt        time.Time              `json:"created_at"`
}

type RouteMetadata struct {
	ComputationTimeMs     int64    `json:"computation_time_ms"`
	ImprovementPercentage *float64 `json:"improvement_percentage"`
	Iterations            int      `json:"iterations"`
}

type RouteResponse struct {
	Success  bool           `json:"success"`
	Route    *RouteBody     `json:"route,omitempty"`
	Metadata *RouteMetadata `json:"metadata,omitempty"`
	Error    string         `json:"error,omitempty"`
}
