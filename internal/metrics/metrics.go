// Package metrics defines the Prometheus collectors of the generator.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics groups the collectors. Each instance owns its registry so tests can
// create as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	Items       *prometheus.CounterVec
	BotsCreated prometheus.Counter
	Runs        *prometheus.CounterVec
	LLMRequest  *prometheus.HistogramVec
}

// New creates the collectors on a fresh registry together with the Go and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Items: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "botcontent_items_total",
				Help: "Generation iterations by content kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		BotsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "botcontent_bots_created_total",
			Help: "Synthetic identities created by the pool manager",
		}),
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "botcontent_runs_total",
				Help: "Invocations by outcome",
			},
			[]string{"outcome"},
		),
		LLMRequest: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "botcontent_llm_request_seconds",
				Help:    "Completion request duration in seconds",
				Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"provider", "outcome"},
		),
	}

	m.registry.MustRegister(
		m.Items,
		m.BotsCreated,
		m.Runs,
		m.LLMRequest,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Outcome maps a success flag to a label value.
func Outcome(ok bool) string {
	if ok {
		return OutcomeSuccess
	}
	return OutcomeFailure
}
