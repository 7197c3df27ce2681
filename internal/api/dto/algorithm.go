package dto

type AlgorithmInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type AlgorithmsResponse struct {
	Algorithms []AlgorithmInfo `json:"algorithms"`
}

type AlgorithmInfoResponse struct {
	Success   bool           `json:"success"`
	Algorithm *AlgorithmInfo `json:"algorithm,omitempty"`
	Error     string         `json:"error,omitempty"`
}

type HealthResponse struct {
	Status              string   `json:"status"`
	Timestamp           string   `json:"timestamp"`
	AlgorithmsAvailable []string `json:"algorithms_available"`
}
