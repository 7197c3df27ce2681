package solver

import (
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"

	"tsp-route-service/internal/domain"
)

const (
	defaultPopulationSize = 100
	defaultGenerations    = 500
	defaultMutationRate   = 0.02
	defaultEliteCount     = 20

	tournamentSize = 3
)

// Tuning knobs for the genetic solver. Zero values fall back to the
// defaults above. Rand is the single source of randomness for population
// initialization, selection, crossover and mutation; a nil Rand is seeded
// from the wall clock, so tests inject a fixed seed for reproducibility.
type GeneticConfig struct {
	PopulationSize int
	Generations    int
	MutationRate   float64
	EliteCount     int
	Rand           *rand.Rand
}

// Solve the TSP with a population-based genetic metaheuristic.
//
// Individuals are permutations of place indices pinned at the start index.
// Each generation carries the fittest individuals over unchanged, then
// fills the remainder with children produced by tournament selection,
// order crossover and swap mutation.
type Genetic struct {
	populationSize int
	generations    int
	mutationRate   float64
	eliteCount     int
	rng            *rand.Rand
}

func NewGenetic(cfg GeneticConfig) *Genetic {
	g := &Genetic{
		populationSize: cfg.PopulationSize,
		generations:    cfg.Generations,
		mutationRate:   cfg.MutationRate,
		eliteCount:     cfg.EliteCount,
		rng:            cfg.Rand,
	}

	if g.populationSize <= 0 {
		g.populationSize = defaultPopulationSize
	}
	if g.generations <= 0 {
		g.generations = defaultGenerations
	}
	if g.mutationRate <= 0 {
		g.mutationRate = defaultMutationRate
	}
	if g.eliteCount <= 0 {
		g.eliteCount = defaultEliteCount
	}
	if g.eliteCount > g.populationSize {
		g.eliteCount = g.populationSize
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return g
}

func (g *Genetic) Name() string { return "genetic" }

func (g *Genetic) Description() string {
	return fmt.Sprintf("Genetic algorithm with population size %d, %d generations", g.populationSize, g.generations)
}

// Generations returns the configured generation count.
func (g *Genetic) Generations() int { return g.generations }

func (g *Genetic) Solve(
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

	population := g.initialPopulation(len(places), start)

	for gen := 0; gen < g.generations; gen++ {
		fitness := g.evaluate(population, matrix)
		population = g.nextGeneration(population, fitness, start)
	}

	fitness := g.evaluate(population, matrix)
	best := population[bestIndex(fitness)]

	// The reported total honors the caller's open/closed choice even
	// though ranking always used the closed-loop distance.
	totalDistance := routeDistance(best, matrix, constraints.ReturnToStart)

	order := best
	if constraints.ReturnToStart && order[len(order)-1] != start {
		order = append(append([]int(nil), order...), start)
	}

	placesOrder := make([]string, len(order))
	for i, idx := range order {
		placesOrder[i] = places[idx].ID
	}

	return &domain.Route{
		PlacesOrder:   placesOrder,
		TotalDistance: totalDistance,
		Algorithm:     g.Name(),
	}, nil
}

// initialPopulation builds uniformly random permutations of the non-start
// indices, each prefixed by the pinned start index.
func (g *Genetic) initialPopulation(n, start int) [][]int {
	rest := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != start {
			rest = append(rest, i)
		}
	}

	population := make([][]int, g.populationSize)
	for p := range population {
		individual := make([]int, 0, n)
		individual = append(individual, start)
		individual = append(individual, rest...)

		tail := individual[1:]
		g.rng.Shuffle(len(tail), func(i, j int) {
			tail[i], tail[j] = tail[j], tail[i]
		})

		population[p] = individual
	}

	return population
}

// evaluate computes the fitness of every individual in the population.
//
// Fitness is 1/(closedLoopDistance+1): strictly positive and monotonically
// decreasing in distance. Ranking always uses the closed-loop distance so
// the ordering is independent of the caller's return_to_start flag.
//
// The pass is embarrassingly parallel (read-only matrix, per-index writes)
// and is chunked across a bounded set of goroutines. It completes before
// any ranking or selection for the next generation begins.
func (g *Genetic) evaluate(population [][]int, matrix domain.DistanceMatrix) []float64 {
	fitness := make([]float64, len(population))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(population) {
		workers = len(population)
	}

	if workers <= 1 {
		for i, individual := range population {
			fitness[i] = 1 / (routeDistance(individual, matrix, true) + 1)
		}
		return fitness
	}

	var wg sync.WaitGroup
	chunk := (len(population) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(population) {
			break
		}
		hi := lo + chunk
		if hi > len(population) {
			hi = len(population)
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fitness[i] = 1 / (routeDistance(population[i], matrix, true) + 1)
			}
		}(lo, hi)
	}

	wg.Wait()
	return fitness
}

// nextGeneration applies elitism, then fills the remainder with mutated
// crossover children of tournament-selected parents.
func (g *Genetic) nextGeneration(population [][]int, fitness []float64, start int) [][]int {
	ranked := make([]int, len(population))
	for i := range ranked {
		ranked[i] = i
	}
	// Stable sort keeps the lower index first among equal fitness.
	sort.SliceStable(ranked, func(a, b int) bool {
		return fitness[ranked[a]] > fitness[ranked[b]]
	})

	next := make([][]int, 0, g.populationSize+1)

	elites := g.eliteCount
	if elites > len(ranked) {
		elites = len(ranked)
	}
	for _, idx := range ranked[:elites] {
		next = append(next, append([]int(nil), population[idx]...))
	}

	for len(next) < g.populationSize {
		parent1 := g.tournament(population, fitness)
		parent2 := g.tournament(population, fitness)

		child1, child2 := g.orderCrossover(parent1, parent2, start)

		if g.rng.Float64() < g.mutationRate {
			g.swapMutate(child1)
		}
		if g.rng.Float64() < g.mutationRate {
			g.swapMutate(child2)
		}

		next = append(next, child1, child2)
	}

	// A pair of children may overshoot the target size.
	return next[:g.populationSize]
}

// tournament samples individuals without replacement and returns the
// fittest of the sample.
func (g *Genetic) tournament(population [][]int, fitness []float64) []int {
	size := tournamentSize
	if size > len(population) {
		size = len(population)
	}

	sample := g.rng.Perm(len(population))[:size]

	best := sample[0]
	for _, idx := range sample[1:] {
		if fitness[idx] > fitness[best] {
			best = idx
		}
	}

	return population[best]
}

// orderCrossover performs classic OX on the non-start cities of both
// parents and re-prepends the pinned start index to each child.
func (g *Genetic) orderCrossover(parent1, parent2 []int, start int) ([]int, []int) {
	cities1 := parent1[1:]
	cities2 := parent2[1:]

	// No crossover is possible with fewer than two movable cities.
	if len(cities1) < 2 {
		return append([]int(nil), parent1...), append([]int(nil), parent2...)
	}

	cuts := g.rng.Perm(len(cities1))[:2]
	lo, hi := cuts[0], cuts[1]
	if lo > hi {
		lo, hi = hi, lo
	}

	child1 := oxChild(cities1, cities2, lo, hi)
	child2 := oxChild(cities2, cities1, lo, hi)

	return append([]int{start}, child1...), append([]int{start}, child2...)
}

// oxChild copies keeper's [lo:hi) window, then fills the remaining
// positions in order with filler's cities, skipping those already present.
func oxChild(keeper, filler []int, lo, hi int) []int {
	n := len(keeper)
	child := make([]int, n)
	for i := range child {
		child[i] = -1
	}

	used := make(map[int]bool, hi-lo)
	for i := lo; i < hi; i++ {
		child[i] = keeper[i]
		used[keeper[i]] = true
	}

	fillerIdx := 0
	for i := 0; i < n; i++ {
		if child[i] != -1 {
			continue
		}
		for used[filler[fillerIdx]] {
			fillerIdx++
		}
		child[i] = filler[fillerIdx]
		used[filler[fillerIdx]] = true
	}

	return child
}

// swapMutate exchanges two distinct non-start positions in place.
func (g *Genetic) swapMutate(individual []int) {
	cities := individual[1:]
	if len(cities) < 2 {
		return
	}

	idx := g.rng.Perm(len(cities))[:2]
	cities[idx[0]], cities[idx[1]] = cities[idx[1]], cities[idx[0]]
}

// routeDistance sums the distances along a permutation, optionally adding
// the closing leg back to the first position.
func routeDistance(route []int, matrix domain.DistanceMatrix, closed bool) float64 {
	total := 0.0
	for i := 0; i < len(route)-1; i++ {
		total += matrix[route[i]][route[i+1]]
	}
	if closed && len(route) > 1 {
		total += matrix[route[len(route)-1]][route[0]]
	}
	return total
}

// bestIndex returns the index of the maximum fitness, keeping the first
// of tied maxima.
func bestIndex(fitness []float64) int {
	best := 0
	for i, f := range fitness {
		if f > fitness[best] {
			best = i
		}
	}
	return best
}
