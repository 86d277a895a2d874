package predictor

import (
	"errors"
	"fmt"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Model kinds understood by LinearModel.
const (
	KindLinear   = "linear"
	KindLogistic = "logistic"
)

var (
	ErrFeatureMismatch = errors.New("feature layout mismatch")
	ErrUnknownKind     = errors.New("unknown model kind")
)

// LinearModel is a serialized linear or logistic regression.
// JSON artifacts decode as well, since JSON is a subset of YAML.
type LinearModel struct {
	Name         string    `yaml:"name"`
	Kind         string    `yaml:"kind"`
	Features     []string  `yaml:"features"`
	Coefficients []float64 `yaml:"coefficients"`
	Intercept    float64   `yaml:"intercept"`
	Scale        float64   `yaml:"scale,omitempty"` // logistic output multiplier
}

// LoadLinearModel reads an artifact from path and checks it against the
// expected feature order.
func LoadLinearModel(path string, expected []string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var m LinearModel
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode model artifact: %w", err)
	}

	if err := m.validate(expected); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *LinearModel) validate(expected []string) error {
	if m.Kind == "" {
		m.Kind = KindLinear
	}
	if m.Kind != KindLinear && m.Kind != KindLogistic {
		return fmt.Errorf("%w: %q", ErrUnknownKind, m.Kind)
	}
	if !slices.Equal(m.Features, expected) {
		return fmt.Errorf("%w: artifact has %v, want %v", ErrFeatureMismatch, m.Features, expected)
	}
	if len(m.Coefficients) != len(m.Features) {
		return fmt.Errorf("%w: %d coefficients for %d features", ErrFeatureMismatch, len(m.Coefficients), len(m.Features))
	}
	if m.Scale == 0 {
		m.Scale = 1
	}
	return nil
}

// Predict returns the model score for features.
func (m *LinearModel) Predict(features []float64) (float64, error) {
	if len(features) != len(m.Coefficients) {
		return 0, fmt.Errorf("%w: got %d features, want %d", ErrFeatureMismatch, len(features), len(m.Coefficients))
	}

	z := m.Intercept
	for i, x := range features {
		z += m.Coefficients[i] * x
	}

	if m.Kind == KindLogistic {
		return m.Scale / (1 + math.Exp(-z)), nil
	}
	return z, nil
}
