package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	PayloadsBuilt  prometheus.Counter
	BuildFailures  *prometheus.CounterVec
	ImagesRendered *prometheus.CounterVec
	RenderDuration prometheus.Histogram
}

// New registers the metrics with the default Prometheus registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the metrics with reg; tests pass a fresh registry
// to avoid duplicate registration.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PayloadsBuilt: factory.NewCounter(prometheus.CounterOpts{
			Name: "epcqr_payloads_built_total",
			Help: "Total number of EPC payloads built successfully",
		}),
		BuildFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "epcqr_build_failures_total",
			Help: "Total number of rejected payment records by validation failure kind",
		}, []string{"kind"}),
		ImagesRendered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "epcqr_images_rendered_total",
			Help: "Total number of QR images rendered by format",
		}, []string{"format"}),
		RenderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "epcqr_render_duration_seconds",
			Help:    "Duration of QR image rendering",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

func (m *Metrics) IncPayloadBuilt() {
	m.PayloadsBuilt.Inc()
}

func (m *Metrics) IncBuildFailure(kind string) {
	m.BuildFailures.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveRender(format string, start time.Time) {
	m.ImagesRendered.WithLabelValues(format).Inc()
	m.RenderDuration.Observe(time.Since(start).Seconds())
}
