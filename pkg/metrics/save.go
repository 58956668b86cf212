package metrics

import "github.com/prometheus/client_golang/prometheus"

// SaveMetrics counts order save attempts on the desk.
type SaveMetrics struct {
	outcomes *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewSaveMetrics registers the save metrics on the provided registerer.
func NewSaveMetrics(reg prometheus.Registerer) *SaveMetrics {
	if reg == nil {
		return &SaveMetrics{}
	}
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_save_total",
		Help: "Order save attempts by outcome.",
	}, []string{"outcome"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_save_subresource_failures_total",
		Help: "Sub-resources that could not be saved together with their order.",
	}, []string{"resource"})
	reg.MustRegister(outcomes, failures)
	return &SaveMetrics{outcomes: outcomes, failures: failures}
}

// RecordSave counts one save with its outcome and the sub-resources that failed.
func (m *SaveMetrics) RecordSave(outcome string, failed []string) {
	if m == nil || m.outcomes == nil {
		return
	}
	m.outcomes.WithLabelValues(normalizeLabel(outcome)).Inc()
	for _, r := range failed {
		m.failures.WithLabelValues(normalizeLabel(r)).Inc()
	}
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
