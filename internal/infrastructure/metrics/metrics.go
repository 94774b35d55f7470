package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SyncMetrics instruments the sync engine: one counter for operation
// outcomes and one histogram for remote request latency.
type SyncMetrics struct {
	opsTotal       *prometheus.CounterVec
	remoteDuration *prometheus.HistogramVec
}

// NewSyncMetrics creates and registers the sync metric set.
func NewSyncMetrics(reg prometheus.Registerer) *SyncMetrics {
	m := &SyncMetrics{
		opsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "atelier",
			Subsystem: "sync",
			Name:      "operations_total",
			Help:      "Sync engine operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		remoteDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "atelier",
			Subsystem: "sync",
			Name:      "remote_request_duration_seconds",
			Help:      "Latency of catalog API requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	reg.MustRegister(m.opsTotal, m.remoteDuration)
	return m
}

// IncOp counts one operation outcome. Safe on a nil receiver so callers
// without metrics wired don't have to branch.
func (m *SyncMetrics) IncOp(operation, outcome string) {
	if m == nil {
		return
	}
	m.opsTotal.WithLabelValues(operation, outcome).Inc()
}

// ObserveRemote records the latency of one catalog API request.
func (m *SyncMetrics) ObserveRemote(operation string, d time.Duration) {
	if m == nil {
		return
	}
	m.remoteDuration.WithLabelValues(operation).Observe(d.Seconds())
}
