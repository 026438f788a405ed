package monitoring

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMonitor(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPrometheus(reg)
	require.NoError(t, err)

	m.StartReplication()
	m.StartReplication()
	m.ReplicationAttempt()
	m.ReplicationAttempt()
	m.ReplicationAttempt()
	m.SuccessfulReplication(12 * time.Millisecond)
	m.FailedReplication(errors.New("boom"), 34*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.started))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.attempts))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.succeeded))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.failed))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.inFlight))

	hist := findHistogram(t, reg, "raftreplicator_replication_duration_seconds")
	assert.Equal(t, uint64(2), hist.GetSampleCount())
	assert.InDelta(t, 0.046, hist.GetSampleSum(), 1e-9)
}

func findHistogram(t *testing.T, reg *prometheus.Registry, name string) *dto.Histogram {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			require.Len(t, mf.GetMetric(), 1)
			return mf.GetMetric()[0].GetHistogram()
		}
	}
	t.Fatalf("histogram %q not registered", name)
	return nil
}

func TestPrometheusMonitorDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheus(reg)
	require.NoError(t, err)

	_, err = NewPrometheus(reg)
	require.Error(t, err)
}
