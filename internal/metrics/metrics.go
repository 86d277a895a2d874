package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"heartcheck/internal/predictor"
)

var (
	modelLoadedDesc = prometheus.NewDesc(
		"heartcheck_model_loaded",
		"Whether a predictor slot holds a loaded model (1) or is absent (0)",
		[]string{"slot"},
		nil,
	)

	predictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "heartcheck_predictions_total",
			Help: "Total predictions served by endpoint and source",
		},
		[]string{"endpoint", "source"},
	)

	inferenceFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "heartcheck_inference_failures_total",
			Help: "Total model inference failures recovered by the fallback formula",
		},
		[]string{"endpoint"},
	)
)

// ModelCollector is a custom Prometheus collector that reports the state of
// each predictor slot on every scrape.
type ModelCollector struct {
	store *predictor.Store
}

// Describe sends the metric descriptor to the channel.
func (c *ModelCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- modelLoadedDesc
}

// Collect emits one gauge per slot.
func (c *ModelCollector) Collect(ch chan<- prometheus.Metric) {
	for _, slot := range c.store.Slots() {
		var v float64
		if slot.State == predictor.Loaded {
			v = 1
		}
		ch <- prometheus.MustNewConstMetric(modelLoadedDesc, prometheus.GaugeValue, v, slot.Name)
	}
}

// NewRegistry returns a registry reporting the slots of store alongside the
// process-wide prediction counters and the Go runtime collectors.
func NewRegistry(store *predictor.Store) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		&ModelCollector{store: store},
		predictionsTotal,
		inferenceFailuresTotal,
	)
	return reg
}

// RecordPrediction counts a served prediction.
func RecordPrediction(endpoint, source string) {
	predictionsTotal.WithLabelValues(endpoint, source).Inc()
}

// RecordInferenceFailure counts a model failure that fell back to the formula.
func RecordInferenceFailure(endpoint string) {
	inferenceFailuresTotal.WithLabelValues(endpoint).Inc()
}
