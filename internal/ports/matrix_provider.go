package ports

import (
	"context"

	"tsp-route-service/internal/domain"
)

// Port: a boundary for producing all-pairs distance matrices.
//
// The default implementation computes great-circle distances; road-network
// providers can be plugged in behind the same contract. Implementations must
// return a matrix whose indices align 1:1 with the given place list.
type MatrixProvider interface {
	// Build the n×n distance matrix for the given places.
	Matrix(ctx context.Context, places []domain.Place) (domain.DistanceMatrix, error)
}
