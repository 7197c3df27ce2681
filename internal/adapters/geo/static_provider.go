package geo

import (
	"context"
	"fmt"

	"tsp-route-service/internal/domain"
)

type StaticPair struct {
	From, To string
	Km       float64
}

// StaticProvider serves matrices from a fixed table of pair distances.
// Pairs are stored symmetrically; the diagonal is implicit. Used by tests
// and offline runs where geometry is irrelevant.
type StaticProvider struct {
	m map[string]float64
}

func NewStaticProvider(pairs []StaticPair) *StaticProvider {
	m := make(map[string]float64, 2*len(pairs))
	for _, p := range pairs {
		m[p.From+"|"+p.To] = p.Km
		m[p.To+"|"+p.From] = p.Km
	}
	return &StaticProvider{m: m}
}

func (p *StaticProvider) Matrix(ctx context.Context, places []domain.Place) (domain.DistanceMatrix, error) {
	matrix := domain.NewDistanceMatrix(len(places))
	for i := range places {
		for j := range places {
			if i == j {
				continue
			}
			d, ok := p.m[places[i].ID+"|"+places[j].ID]
			if !ok {
				return nil, fmt.Errorf("static matrix: missing pair %q -> %q", places[i].ID, places[j].ID)
			}
			matrix[i][j] = d
		}
	}
	return matrix, nil
}
