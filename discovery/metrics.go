package discovery

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for discovery runs. A nil *Metrics
// is valid and records nothing
type Metrics struct {
	envelopesEmitted *prometheus.CounterVec
	errorsReported   *prometheus.CounterVec
	moduleDuration   *prometheus.HistogramVec
	scansCompleted   prometheus.Counter
}

// NewMetrics creates the collectors and registers them with the supplied
// registerer
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		envelopesEmitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "harvester",
				Name:      "envelopes_emitted_total",
				Help:      "Total number of resource envelopes handed to the emitter",
			},
			[]string{"service"},
		),
		errorsReported: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "harvester",
				Name:      "discovery_errors_total",
				Help:      "Total number of discovery failures reported",
			},
			[]string{"resource_type", "category"},
		),
		moduleDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "harvester",
				Name:      "module_duration_seconds",
				Help:      "Time taken by a discovery module to complete",
				Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
			},
			[]string{"service"},
		),
		scansCompleted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "harvester",
				Name:      "scans_completed_total",
				Help:      "Total number of completed scans",
			},
		),
	}

	for _, c := range []prometheus.Collector{m.envelopesEmitted, m.errorsReported, m.moduleDuration, m.scansCompleted} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observeEmit(service string) {
	if m == nil {
		return
	}
	m.envelopesEmitted.WithLabelValues(service).Inc()
}

func (m *Metrics) observeError(resourceType string, category ErrorCategory) {
	if m == nil {
		return
	}
	m.errorsReported.WithLabelValues(resourceType, string(category)).Inc()
}

func (m *Metrics) observeModule(service string, d time.Duration) {
	if m == nil {
		return
	}
	m.moduleDuration.WithLabelValues(service).Observe(d.Seconds())
}

func (m *Metrics) observeScan() {
	if m == nil {
		return
	}
	m.scansCompleted.Inc()
}
