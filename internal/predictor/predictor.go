// Package predictor holds the trained models behind the prediction endpoints
// and the store that loads them at startup.
package predictor

// Predictor scores a feature vector laid out in its trained column order.
type Predictor interface {
	Predict(features []float64) (float64, error)
}

// Func adapts a plain function to the Predictor interface.
type Func func(features []float64) (float64, error)

// Predict calls f.
func (f Func) Predict(features []float64) (float64, error) {
	return f(features)
}
