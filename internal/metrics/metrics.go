package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/weiawesome/meson/internal/generator"
	"github.com/weiawesome/meson/pkg/meson"
)

const namespace = "meson"

// Transport label values.
const (
	TransportGRPC = "grpc"
	TransportHTTP = "http"
)

// Metrics holds the service collectors on a private registry. A nil
// *Metrics records nothing.
type Metrics struct {
	registry      *prometheus.Registry
	generated     *prometheus.CounterVec
	parseFailures *prometheus.CounterVec
}

// New registers the service collectors for gen.
func New(gen *meson.Generator) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ids_generated_total",
			Help:      "Identifiers issued, by transport.",
		}, []string{"transport"}),
		parseFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parse_failures_total",
			Help:      "Identifiers rejected by parse or validate, by transport and reason.",
		}, []string{"transport", "reason"}),
	}

	info := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "generator_info",
		Help:        "Generator fingerprint stamped into every identifier.",
		ConstLabels: prometheus.Labels{"fingerprint": gen.FingerprintHex()},
	})
	info.Set(1)

	reg.MustRegister(
		m.generated,
		m.parseFailures,
		info,
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sequence_reseeds_total",
			Help:      "Times the sequence counter was reseeded.",
		}, func() float64 { return float64(gen.Reseeds()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sequence_current",
			Help:      "Current value of the sequence counter.",
		}, func() float64 { return float64(gen.CurrentSequence()) }),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveGenerated counts n identifiers issued over transport.
func (m *Metrics) ObserveGenerated(transport string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.generated.WithLabelValues(transport).Add(float64(n))
}

// ObserveParseFailure counts an identifier rejected with err.
func (m *Metrics) ObserveParseFailure(transport string, err error) {
	if m == nil || err == nil {
		return
	}
	m.parseFailures.WithLabelValues(transport, generator.Reason(err)).Inc()
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
