package handlers

import (
	"net/http"
	"strings"
	"time"

	"tsp-route-service/internal/api/dto"
	"tsp-route-service/internal/services"
)

type AlgorithmHandler struct {
	Service *services.RouteService
}

// List returns identity metadata for every registered solver.
func (h *AlgorithmHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	names := h.Service.Algorithms()
	res := dto.AlgorithmsResponse{Algorithms: make([]dto.AlgorithmInfo, 0, len(names))}

	for _, name := range names {
		n, description, err := h.Service.AlgorithmInfo(name)
		if err != nil {
			continue
		}
		res.Algorithms = append(res.Algorithms, dto.AlgorithmInfo{Name: n, Description: description})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Info returns metadata for one solver, addressed as /algorithms/{name}.
func (h *AlgorithmHandler) Info(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/algorithms/")
	if name == "" || strings.Contains(name, "/") {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}

	n, description, err := h.Service.AlgorithmInfo(name)
	if err != nil {
		writeJSON(w, r, http.StatusNotFound, dto.AlgorithmInfoResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	writeJSON(w, r, http.StatusOK, dto.AlgorithmInfoResponse{
		Success:   true,
		Algorithm: &dto.AlgorithmInfo{Name: n, Description: description},
	})
}

// Health provides a liveness check that also reports solver availability.
func (h *AlgorithmHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.HealthResponse{
		Status:              "healthy",
		Timestamp:           time.Now().UTC().Format(time.RFC3339),
		AlgorithmsAvailable: h.Service.Algorithms(),
	})
}
