package metrics

import "github.com/prometheus/client_golang/prometheus"

// ItemMetrics holds Prometheus metrics for the item store.
type ItemMetrics struct {
	ItemsAdded  prometheus.Counter
	ItemsStored prometheus.Gauge
	AddDuration prometheus.Histogram
}

// NewItemMetrics creates and registers item metrics on the given registry.
func NewItemMetrics(reg prometheus.Registerer) *ItemMetrics {
	m := &ItemMetrics{
		ItemsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "items",
			Name:      "added_total",
			Help:      "Total number of items added.",
		}),
		ItemsStored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "items",
			Name:      "stored",
			Help:      "Number of items currently held in the store.",
		}),
		AddDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "items",
			Name:      "add_duration_seconds",
			Help:      "Duration of item store adds in seconds, including lock wait.",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}

	reg.MustRegister(m.ItemsAdded, m.ItemsStored, m.AddDuration)
	return m
}
