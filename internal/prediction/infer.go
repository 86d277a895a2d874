package prediction

import (
	"errors"
	"fmt"
	"math"

	"heartcheck/internal/predictor"
)

var (
	// ErrModelUnavailable means the slot has no loaded predictor.
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrInferenceFailure means the predictor failed while scoring.
	ErrInferenceFailure = errors.New("inference failure")
)

// Bounds is a closed range predictions are clamped to.
type Bounds struct {
	Min, Max float64
}

var (
	HeartBounds       = Bounds{Min: 0, Max: 100}
	CholesterolBounds = Bounds{Min: 120, Max: 300}
)

// Clamp saturates v at the bounds.
func (b Bounds) Clamp(v float64) float64 {
	return max(b.Min, min(b.Max, v))
}

// Inference is the outcome of asking a predictor for a value: either a
// clamped Value, or Fallback with the Reason the formula must be used.
type Inference struct {
	Value    float64
	Fallback bool
	Reason   error
}

// Infer runs p on features and clamps the result. A nil predictor, an
// error, a panic or a non-finite score all yield a fallback Inference.
func Infer(p predictor.Predictor, features []float64, b Bounds) (inf Inference) {
	if p == nil {
		return Inference{Fallback: true, Reason: ErrModelUnavailable}
	}

	defer func() {
		if r := recover(); r != nil {
			inf = Inference{Fallback: true, Reason: fmt.Errorf("%w: panic: %v", ErrInferenceFailure, r)}
		}
	}()

	v, err := p.Predict(features)
	if err != nil {
		return Inference{Fallback: true, Reason: fmt.Errorf("%w: %w", ErrInferenceFailure, err)}
	}
	if math.IsNaN(v) {
		return Inference{Fallback: true, Reason: fmt.Errorf("%w: model returned NaN", ErrInferenceFailure)}
	}

	return Inference{Value: b.Clamp(v)}
}
