package models

// PredictionResponse is the success body of both prediction endpoints.
type PredictionResponse struct {
	Prediction float64 `json:"prediction"`
}

// ErrorResponse is the failure body of both prediction endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ModelStatus describes one predictor slot for the readiness probe.
type ModelStatus struct {
	State string `json:"state"`
	Name  string `json:"name,omitempty"`
	Path  string `json:"path,omitempty"`
	Error string `json:"error,omitempty"`
}
