package solver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"tsp-route-service/internal/domain"
)

func TestRegistryCreatesRegisteredSolvers(t *testing.T) {
	registry := DefaultRegistry(GeneticConfig{})

	nn, err := registry.Create("nearest_neighbor")
	require.NoError(t, err)
	require.Equal(t, "nearest_neighbor", nn.Name())

	genetic, err := registry.Create("genetic")
	require.NoError(t, err)
	require.Equal(t, "genetic", genetic.Name())
}

func TestRegistryUnknownAlgorithm(t *testing.T) {
	registry := DefaultRegistry(GeneticConfig{})

	_, err := registry.Create("simulated_annealing")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownAlgorithm))
	require.Contains(t, err.Error(), "nearest_neighbor")
	require.Contains(t, err.Error(), "genetic")
}

func TestRegistryNamesSorted(t *testing.T) {
	registry := DefaultRegistry(GeneticConfig{})
	require.Equal(t, []string{"genetic", "nearest_neighbor"}, registry.Names())
}

func TestRegistryInfo(t *testing.T) {
	registry := DefaultRegistry(GeneticConfig{PopulationSize: 10, Generations: 20})

	name, description, err := registry.Info("genetic")
	require.NoError(t, err)
	require.Equal(t, "genetic", name)
	require.Contains(t, description, "population size 10")
	require.Contains(t, description, "20 generations")

	_, _, err = registry.Info("missing")
	require.True(t, errors.Is(err, ErrUnknownAlgorithm))
}

type stubAlgorithm struct{}

func (stubAlgorithm) Name() string        { return "stub" }
func (stubAlgorithm) Description() string { return "stub solver" }
func (stubAlgorithm) Solve([]domain.Place, domain.DistanceMatrix, domain.Constraints) (*domain.Route, error) {
	return &domain.Route{Algorithm: "stub"}, nil
}

func TestRegistryRegisterCustomSolver(t *testing.T) {
	registry := NewRegistry()
	registry.Register("stub", func() Algorithm { return stubAlgorithm{} })

	algorithm, err := registry.Create("stub")
	require.NoError(t, err)
	require.Equal(t, "stub", algorithm.Name())
	require.Equal(t, []string{"stub"}, registry.Names())
}
