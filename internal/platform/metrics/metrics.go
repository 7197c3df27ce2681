package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the API
	Registry = prometheus.NewRegistry()
	// HTTPRequests counts requests by method, path, and status
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// Optimizations counts route optimizations by algorithm and outcome
	Optimizations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "route_optimizations_total", Help: "Route optimizations by algorithm and status."},
		[]string{"algorithm", "status"},
	)
	// SolveDuration tracks end-to-end optimization latencies in seconds
	SolveDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "route_solve_duration_seconds", Help: "Route optimization duration in seconds.", Buckets: []float64{.01, .05, .1, .5, 1, 5, 15, 60}},
		[]string{"algorithm"},
	)
)

// RegisterDefault registers collectors to the default registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(Optimizations)
		Registry.MustRegister(SolveDuration)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once
