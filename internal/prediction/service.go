// Package prediction dispatches requests to a loaded model and falls back
// to closed-form formulas when the model is absent or fails.
package prediction

import (
	"context"
	"errors"
	"log/slog"

	"heartcheck/internal/features"
	"heartcheck/internal/logging"
	"heartcheck/internal/metrics"
	"heartcheck/internal/models"
	"heartcheck/internal/predictor"
)

// Source tells which path produced a prediction.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// Endpoint labels.
const (
	EndpointHeart       = "heart"
	EndpointCholesterol = "cholesterol"
)

// Outcome is a served prediction.
type Outcome struct {
	Value  float64
	Source Source
}

// Service serves both calculators from a read-only model store.
type Service struct {
	store  *predictor.Store
	logger *slog.Logger
}

// NewService creates a prediction service.
func NewService(store *predictor.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// Heart returns the heart disease risk percentage for r, in [0,100].
func (s *Service) Heart(ctx context.Context, r models.HeartRecord) Outcome {
	inf := Infer(s.store.Heart.Predictor, features.Heart(r), HeartBounds)
	if !inf.Fallback {
		return s.served(ctx, EndpointHeart, Outcome{Value: inf.Value, Source: SourceModel})
	}

	s.logFallback(ctx, EndpointHeart, inf.Reason)
	return s.served(ctx, EndpointHeart, Outcome{Value: FallbackHeart(r), Source: SourceFallback})
}

// Cholesterol returns the predicted cholesterol level for r, in [120,300].
func (s *Service) Cholesterol(ctx context.Context, r models.CholesterolRecord) Outcome {
	inf := Infer(s.store.Cholesterol.Predictor, features.Cholesterol(r), CholesterolBounds)
	if !inf.Fallback {
		return s.served(ctx, EndpointCholesterol, Outcome{Value: inf.Value, Source: SourceModel})
	}

	s.logFallback(ctx, EndpointCholesterol, inf.Reason)
	return s.served(ctx, EndpointCholesterol, Outcome{Value: FallbackCholesterol(r), Source: SourceFallback})
}

func (s *Service) logFallback(ctx context.Context, endpoint string, reason error) {
	logger := logging.FromContext(ctx, s.logger)
	if errors.Is(reason, ErrModelUnavailable) {
		logger.WarnContext(ctx, "model not available, using fallback prediction", "endpoint", endpoint)
		return
	}
	metrics.RecordInferenceFailure(endpoint)
	logger.ErrorContext(ctx, "model inference failed, using fallback prediction", "endpoint", endpoint, "error", reason)
}

func (s *Service) served(ctx context.Context, endpoint string, o Outcome) Outcome {
	metrics.RecordPrediction(endpoint, string(o.Source))
	logging.FromContext(ctx, s.logger).DebugContext(ctx, "prediction served", "endpoint", endpoint, "source", o.Source, "prediction", o.Value)
	return o
}
