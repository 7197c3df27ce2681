package geo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"tsp-route-service/internal/domain"
)

func eastCoastPlaces() []domain.Place {
	return []domain.Place{
		{ID: "nyc", Coordinates: domain.Coordinates{Lat: 40.7128, Lon: -74.0060}},
		{ID: "bos", Coordinates: domain.Coordinates{Lat: 42.3601, Lon: -71.0589}},
		{ID: "phl", Coordinates: domain.Coordinates{Lat: 39.9526, Lon: -75.1652}},
	}
}

func TestHaversineKnownDistances(t *testing.T) {
	places := eastCoastPlaces()

	// Great-circle references, kilometers.
	require.InEpsilon(t, 306.1, Haversine(places[0].Coordinates, places[1].Coordinates), 0.005)
	require.InEpsilon(t, 129.6, Haversine(places[0].Coordinates, places[2].Coordinates), 0.005)
	require.InEpsilon(t, 435.7, Haversine(places[1].Coordinates, places[2].Coordinates), 0.005)
}

func TestHaversineMatrixSymmetricZeroDiagonal(t *testing.T) {
	provider := NewHaversineProvider()

	matrix, err := provider.Matrix(context.Background(), eastCoastPlaces())
	require.NoError(t, err)
	require.Equal(t, 3, matrix.Len())

	for i := range matrix {
		require.Zero(t, matrix[i][i])
		for j := range matrix {
			require.InDelta(t, matrix[i][j], matrix[j][i], 1e-6)
			if i != j {
				require.Positive(t, matrix[i][j])
			}
		}
	}
}

func TestHaversineRejectsInvalidCoordinates(t *testing.T) {
	provider := NewHaversineProvider()

	places := []domain.Place{
		{ID: "ok", Coordinates: domain.Coordinates{Lat: 0, Lon: 0}},
		{ID: "bad", Coordinates: domain.Coordinates{Lat: 91, Lon: 0}},
	}

	_, err := provider.Matrix(context.Background(), places)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidCoordinates))
	require.Contains(t, err.Error(), "bad")
}

func TestHaversineZeroForIdenticalPoints(t *testing.T) {
	c := domain.Coordinates{Lat: 51.5074, Lon: -0.1278}
	require.Zero(t, Haversine(c, c))
}
