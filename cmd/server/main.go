package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"tsp-route-service/internal/adapters/geo"
	"tsp-route-service/internal/api"
	"tsp-route-service/internal/config"
	"tsp-route-service/internal/platform/metrics"
	"tsp-route-service/internal/ports"
	"tsp-route-service/internal/services"
	"tsp-route-service/internal/solver"
)

// main is the application composition root.
// It wires concrete adapters (haversine, optional Redis cache) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	metrics.RegisterDefault()

	var provider ports.MatrixProvider = geo.NewHaversineProvider()

	// A configured Redis address enables matrix memoization; without it
	// every request recomputes the haversine matrix.
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		provider = geo.NewCachedMatrixProvider(provider, client, cfg.MatrixCacheTTL)
		log.Printf("Matrix cache enabled addr=%s ttl=%s", cfg.RedisAddr, cfg.MatrixCacheTTL)
	}

	registry := solver.DefaultRegistry(solver.GeneticConfig{
		PopulationSize: cfg.Solver.PopulationSize,
		Generations:    cfg.Solver.Generations,
		MutationRate:   cfg.Solver.MutationRate,
		EliteCount:     cfg.Solver.EliteCount,
	})

	validator := services.NewValidationService()
	validator.MaxPlaces = cfg.MaxPlaces

	service := services.NewRouteService(provider, registry, validator)
	router := api.NewRouter(service)

	// Write timeout leaves room for large genetic runs.
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
