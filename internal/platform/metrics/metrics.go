// Package metrics holds the Prometheus collectors for the API process
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector. A nil *Metrics is a valid no-op
type Metrics struct {
	reg prometheus.Gatherer

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	BiasRiskTotal   *prometheus.CounterVec
	RAGDocuments    prometheus.Gauge
	Projects        prometheus.Gauge
}

// New creates and registers all collectors on reg.
// Pass a fresh prometheus.NewRegistry() in tests to avoid duplicate registration
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		reg: reg,
		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "genailab_http_requests_total",
			Help: "Total number of HTTP requests by route template, method and status",
		}, []string{"route", "method", "status"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "genailab_http_request_duration_seconds",
			Help:    "HTTP request latency by route template",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"route"}),
		BiasRiskTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "genailab_bias_risk_total",
			Help: "Bias detections by resulting risk level",
		}, []string{"level"}),
		RAGDocuments: f.NewGauge(prometheus.GaugeOpts{
			Name: "genailab_rag_documents",
			Help: "Documents in the current search collection",
		}),
		Projects: f.NewGauge(prometheus.GaugeOpts{
			Name: "genailab_projects",
			Help: "Projects in the registry",
		}),
	}
}

// ObserveRequest records one finished request
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveBiasRisk counts a bias detection at level
func (m *Metrics) ObserveBiasRisk(level string) {
	if m == nil {
		return
	}
	m.BiasRiskTotal.WithLabelValues(level).Inc()
}

// SetRAGDocuments sets the collection size gauge
func (m *Metrics) SetRAGDocuments(n int) {
	if m == nil {
		return
	}
	m.RAGDocuments.Set(float64(n))
}

// SetProjects sets the registry size gauge
func (m *Metrics) SetProjects(n int) {
	if m == nil {
		return
	}
	m.Projects.Set(float64(n))
}

// Handler serves the exposition format for the registry this Metrics was built on
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
