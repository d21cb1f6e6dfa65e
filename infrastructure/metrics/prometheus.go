// Package metrics provides Prometheus metrics for monitoring.
package metrics

import (
	"time"

	"theta-oracle-keeper/domain/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics and implements the
// MetricsRecorder interface.
type Metrics struct {
	updatesTotal     *prometheus.CounterVec
	updateDuration   prometheus.Histogram
	lastOracleValue  *prometheus.GaugeVec
	schedulerRunning prometheus.Gauge
}

// NewMetrics creates and registers all keeper metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		updatesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "oracle_keeper_updates_total",
				Help: "Total number of oracle update attempts by outcome",
			},
			[]string{"oracle", "result"},
		),
		updateDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "oracle_keeper_update_duration_seconds",
				Help:    "Duration of oracle update attempts",
				Buckets: prometheus.DefBuckets,
			},
		),
		lastOracleValue: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "oracle_keeper_last_value",
				Help: "Last value written on-chain per oracle, in decimal units",
			},
			[]string{"oracle"},
		),
		schedulerRunning: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "oracle_keeper_scheduler_running",
				Help: "Whether the update scheduler loop is running",
			},
		),
	}
}

// RecordUpdateAttempt records the outcome of one update attempt.
func (m *Metrics) RecordUpdateAttempt(oracleID string, result string, duration time.Duration) {
	m.updatesTotal.WithLabelValues(oracleID, result).Inc()
	m.updateDuration.Observe(duration.Seconds())
}

// RecordOracleValue records the last value written for an oracle.
func (m *Metrics) RecordOracleValue(oracleID string, value float64) {
	m.lastOracleValue.WithLabelValues(oracleID).Set(value)
}

// SetSchedulerRunning flags whether the scheduler loop is active.
func (m *Metrics) SetSchedulerRunning(running bool) {
	if running {
		m.schedulerRunning.Set(1)
	} else {
		m.schedulerRunning.Set(0)
	}
}

// nopRecorder discards all metrics.
type nopRecorder struct{}

// NewNop returns a recorder that discards all metrics, for tests and
// metric-less deployments.
func NewNop() interfaces.MetricsRecorder {
	return nopRecorder{}
}

func (nopRecorder) RecordUpdateAttempt(string, string, time.Duration) {}
func (nopRecorder) RecordOracleValue(string, float64)                 {}
func (nopRecorder) SetSchedulerRunning(bool)                          {}
