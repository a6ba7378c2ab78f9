// Package metrics exposes Prometheus instruments for chart activity.
package metrics

import (
	"net/http"

	"github.com/aretw0/teamtree/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns a private registry so tests and embedders never collide on
// the global default registerer.
type Recorder struct {
	registry *prometheus.Registry
	outcomes *prometheus.CounterVec
	nodes    *prometheus.GaugeVec
}

// New creates a Recorder with all instruments registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "teamtree_insert_outcomes_total",
				Help: "Total number of insertions by outcome",
			},
			[]string{"outcome"},
		),
		nodes: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "teamtree_chart_nodes",
				Help: "Number of employees in each chart",
			},
			[]string{"chart"},
		),
	}
	r.registry.MustRegister(r.outcomes, r.nodes)
	return r
}

// ObserveInsert counts one insertion outcome.
func (r *Recorder) ObserveInsert(out domain.Outcome) {
	r.outcomes.WithLabelValues(string(out.Kind)).Inc()
}

// SetNodes records the current size of a chart.
func (r *Recorder) SetNodes(chartID string, n int) {
	r.nodes.WithLabelValues(chartID).Set(float64(n))
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
