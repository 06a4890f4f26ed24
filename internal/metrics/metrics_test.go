package metrics_test

import (
	"testing"

	"github.com/UnknownOlympus/ems-console/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	m := metrics.NewMetrics(reg)
	m.Requests.WithLabelValues("list", "success").Inc()
	m.Conflicts.WithLabelValues("email").Inc()

	assert.InDelta(t, 1, testutil.ToFloat64(m.Requests.WithLabelValues("list", "success")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.ImportRows.WithLabelValues("failure")), 0)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNewMetrics_DuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_ = metrics.NewMetrics(reg)

	assert.Panics(t, func() {
		_ = metrics.NewMetrics(reg)
	})
}
