package geo

import (
	"context"
	"errors"
	"fmt"
	"math"

	"tsp-route-service/internal/domain"
)

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371

// ErrInvalidCoordinates marks coordinates outside the WGS84 ranges.
// The validation service rejects these upstream; the builder re-checks
// because a bad matrix would silently corrupt every downstream solve.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// HaversineProvider builds symmetric all-pairs great-circle distance
// matrices from place coordinates. It is the default MatrixProvider;
// road-network providers can replace it behind the same port.
type HaversineProvider struct{}

func NewHaversineProvider() *HaversineProvider { return &HaversineProvider{} }

// Matrix computes the n×n great-circle distance matrix in kilometers.
// Each unordered pair is computed once and mirrored; the diagonal stays
// zero.
func (p *HaversineProvider) Matrix(ctx context.Context, places []domain.Place) (domain.DistanceMatrix, error) {
	for i, place := range places {
		if !place.Coordinates.Valid() {
			return nil, fmt.Errorf(
				"build matrix: place %d (%q) has coordinates (%v, %v): %w",
				i, place.ID, place.Coordinates.Lat, place.Coordinates.Lon, ErrInvalidCoordinates,
			)
		}
	}

	matrix := domain.NewDistanceMatrix(len(places))
	for i := range places {
		for j := i + 1; j < len(places); j++ {
			d := Haversine(places[i].Coordinates, places[j].Coordinates)
			matrix[i][j] = d
			matrix[j][i] = d
		}
	}

	return matrix, nil
}

// Haversine returns the great-circle distance between two coordinates
// in kilometers.
func Haversine(a, b domain.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(h))

	return earthRadiusKm * c
}
