package batch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/winfrac-dev/winfrac/pkg/domain"
)

// Metrics instruments a batch for prometheus scraping.
type Metrics struct {
	Trials         *prometheus.CounterVec
	Failures       prometheus.Counter
	SolverDuration prometheus.Histogram
	InFlight       prometheus.Gauge
}

// NewMetrics creates and registers the batch metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Trials: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "winfrac_trials_total",
				Help: "Completed trials by outcome",
			},
			[]string{"outcome"},
		),
		Failures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "winfrac_trial_failures_total",
			Help: "Trials recovered as losses after a solver process or parse failure",
		}),
		SolverDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "winfrac_solver_duration_seconds",
			Help:    "Wall-clock duration of external solver invocations",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
		}),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "winfrac_trials_in_flight",
			Help: "Trials currently waiting on the external solver",
		}),
	}
	reg.MustRegister(m.Trials, m.Failures, m.SolverDuration, m.InFlight)
	return m
}

// ObserveTrial records one completed trial.
func (m *Metrics) ObserveTrial(trial domain.Trial) {
	outcome := "loss"
	if trial.Outcome != 0 {
		outcome = "win"
	}
	m.Trials.WithLabelValues(outcome).Inc()
	if trial.Err != nil {
		m.Failures.Inc()
	}
	m.SolverDuration.Observe(trial.Elapsed.Seconds())
}
