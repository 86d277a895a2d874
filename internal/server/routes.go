package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"heartcheck/internal/handlers"
	"heartcheck/internal/metrics"
	"heartcheck/internal/prediction"
	"heartcheck/internal/predictor"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(store *predictor.Store) {
	svc := prediction.NewService(store, s.Logger)

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(s.Cfg)
	predictionHandler := handlers.NewPredictionHandler(svc)
	probeHandler := handlers.NewProbeHandler(store)

	// Pages
	s.App.Get("/", pageHandler.Index)
	s.App.Get("/bmi", pageHandler.BMI)
	s.App.Get("/cholesterol", pageHandler.Cholesterol)

	// Prediction API
	s.App.Post("/predict", predictionHandler.Heart)
	s.App.Post("/predict_cholesterol", predictionHandler.Cholesterol)

	// Probes
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)

	if s.Cfg.MetricsEnabled {
		reg := metrics.NewRegistry(store)
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}
}
