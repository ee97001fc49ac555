package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "sitenav"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	buildDuration  prom.Histogram
	buildOutcome   *prom.CounterVec
	violations     *prom.CounterVec
	sidebarEntries prom.Gauge
}

// NewPrometheusRecorder constructs the metrics and registers them on reg.
// A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Duration of loading and validating the site navigation",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"outcome"}),
		violations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "violations_total",
			Help:      "Violations reported by kind",
		}, []string{"kind"}),
		sidebarEntries: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "sidebar_entries",
			Help:      "Leaf entries in the currently served sidebar",
		}),
	}
	reg.MustRegister(pr.buildDuration, pr.buildOutcome, pr.violations, pr.sidebarEntries)
	return pr
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome Outcome) {
	if p == nil {
		return
	}
	p.buildOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) AddViolations(kind string, n int) {
	if p == nil || n <= 0 {
		return
	}
	p.violations.WithLabelValues(kind).Add(float64(n))
}

func (p *PrometheusRecorder) SetSidebarEntries(n int) {
	if p == nil {
		return
	}
	p.sidebarEntries.Set(float64(n))
}
