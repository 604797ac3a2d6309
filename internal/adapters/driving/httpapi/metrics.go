package httpapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
)

const namespace = "ecourts"

// Metrics holds the API's prometheus collectors on a private registry.
type Metrics struct {
	registry   *prometheus.Registry
	retrievals *prometheus.CounterVec
	tasks      *prometheus.GaugeVec
}

// NewMetrics registers the collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		retrievals: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retrievals_total",
			Help:      "Completed retrievals by operation and path (live or fallback).",
		}, []string{"operation", "path"}),
		tasks: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tasks",
			Help:      "Tasks currently held by the executor, by status.",
		}, []string{"status"}),
	}
}

// ObserveRetrieval counts one finished retrieval.
func (m *Metrics) ObserveRetrieval(op domain.OperationKind, path string) {
	m.retrievals.WithLabelValues(string(op), path).Inc()
}

func (m *Metrics) setTaskCounts(counts map[domain.TaskStatus]int) {
	for status, n := range counts {
		m.tasks.WithLabelValues(string(status)).Set(float64(n))
	}
}

func (m *Metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
