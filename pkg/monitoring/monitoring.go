// Package monitoring provides ReplicationMonitor implementations. Monitor
// failures never affect protocol flow; the Prometheus variant only counts.
package monitoring

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shrtyk/raft-replicator/api"
)

var (
	_ api.ReplicationMonitor = (*Prometheus)(nil)
	_ api.ReplicationMonitor = (*Nop)(nil)
)

// Prometheus exposes replication protocol metrics.
type Prometheus struct {
	started   prometheus.Counter
	attempts  prometheus.Counter
	succeeded prometheus.Counter
	failed    prometheus.Counter
	inFlight  prometheus.Gauge
	duration  prometheus.Histogram
}

func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Prometheus{
		started: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "raftreplicator",
			Subsystem: "replication",
			Name:      "started_total",
			Help:      "Replication calls started.",
		}),
		attempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "raftreplicator",
			Subsystem: "replication",
			Name:      "attempts_total",
			Help:      "Send attempts, including retries after timeouts and leader switches.",
		}),
		succeeded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "raftreplicator",
			Subsystem: "replication",
			Name:      "succeeded_total",
			Help:      "Replication calls that completed successfully.",
		}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "raftreplicator",
			Subsystem: "replication",
			Name:      "failed_total",
			Help:      "Replication calls that surfaced a fatal error.",
		}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "raftreplicator",
			Subsystem: "replication",
			Name:      "in_flight",
			Help:      "Replication calls currently running.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "raftreplicator",
			Subsystem: "replication",
			Name:      "duration_seconds",
			Help:      "Replication call duration from start to completion.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	for _, c := range []prometheus.Collector{m.started, m.attempts, m.succeeded, m.failed, m.inFlight, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register replication metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Prometheus) StartReplication() {
	m.started.Inc()
	m.inFlight.Inc()
}

func (m *Prometheus) ReplicationAttempt() {
	m.attempts.Inc()
}

func (m *Prometheus) SuccessfulReplication(took time.Duration) {
	m.succeeded.Inc()
	m.inFlight.Dec()
	m.duration.Observe(took.Seconds())
}

func (m *Prometheus) FailedReplication(_ error, took time.Duration) {
	m.failed.Inc()
	m.inFlight.Dec()
	m.duration.Observe(took.Seconds())
}

// Nop discards all events.
type Nop struct{}

func NewNop() Nop { return Nop{} }

func (Nop) StartReplication()                      {}
func (Nop) ReplicationAttempt()                    {}
func (Nop) SuccessfulReplication(time.Duration)    {}
func (Nop) FailedReplication(error, time.Duration) {}
