package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"tsp-route-service/internal/adapters/geo"
	"tsp-route-service/internal/domain"
	"tsp-route-service/internal/services"
	"tsp-route-service/internal/solver"
)

type placeFile struct {
	Places []struct {
		ID        string  `json:"id"`
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"places"`
}

// Offline route optimization: reads a places JSON file, solves, prints
// the visiting order and total distance. Useful for tuning solver
// parameters without running the HTTP server.
func main() {
	var (
		input     = flag.String("input", "places.json", "path to a JSON file with a places array")
		algorithm = flag.String("algorithm", "nearest_neighbor", "solver to use")
		start     = flag.String("start", "", "place id to pin as the first stop")
		open      = flag.Bool("open", false, "leave the tour open instead of returning to the start")
		seed      = flag.Int64("seed", 0, "random seed for the genetic solver (0 = time-seeded)")
	)
	flag.Parse()

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatal(err)
	}

	var file placeFile
	if err := json.Unmarshal(data, &file); err != nil {
		log.Fatalf("parse %s: %v", *input, err)
	}

	places := make([]domain.Place, 0, len(file.Places))
	for _, p := range file.Places {
		places = append(places, domain.Place{
			ID:          p.ID,
			Name:        p.Name,
			Coordinates: domain.Coordinates{Lat: p.Latitude, Lon: p.Longitude},
		})
	}

	cfg := solver.GeneticConfig{}
	if *seed != 0 {
		cfg.Rand = rand.New(rand.NewSource(*seed))
	}

	service := services.NewRouteService(
		geo.NewHaversineProvider(),
		solver.DefaultRegistry(cfg),
		services.NewValidationService(),
	)

	constraints := domain.Constraints{
		StartLocation: *start,
		ReturnToStart: !*open,
	}

	result, err := service.CalculateRoute(context.Background(), places, *algorithm, constraints)
	if err != nil {
		log.Fatal(err)
	}

	route := result.Route
	fmt.Printf("algorithm: %s\n", route.Algorithm)
	fmt.Printf("order:     %s\n", strings.Join(route.PlacesOrder, " -> "))
	fmt.Printf("distance:  %.2f km\n", route.TotalDistance)
	fmt.Printf("est. time: %s\n", route.TotalTime)
	if result.Improvement != nil {
		fmt.Printf("improvement vs random: %.1f%%\n", *result.Improvement)
	}
}
