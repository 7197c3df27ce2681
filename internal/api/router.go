package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tsp-route-service/internal/api/handlers"
	"tsp-route-service/internal/platform/metrics"
	"tsp-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(service *services.RouteService) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{Service: service}
	algorithmHandler := &handlers.AlgorithmHandler{Service: service}

	mux.HandleFunc("/calculate-route", routeHandler.Calculate)
	mux.HandleFunc("/algorithms", algorithmHandler.List)
	mux.HandleFunc("/algorithms/", algorithmHandler.Info)
	mux.HandleFunc("/health", algorithmHandler.Health)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return loggingMiddleware(mux)
}
