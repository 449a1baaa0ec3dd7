package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledMetricsAreInert(t *testing.T) {
	m, err := New(Config{Enabled: false})
	require.NoError(t, err)

	// Не должно паниковать и ничего не регистрирует.
	m.IncEventsSent("trigger", "accepted")
	m.RecordSendTime("trigger", time.Second)
	assert.NoError(t, m.Stop())
}

func TestEventMetrics(t *testing.T) {
	// Port 0 — HTTP-сервер не запускается. ServiceName уникален, чтобы не
	// конфликтовать с default registry в других тестах.
	m, err := New(Config{
		Enabled:     true,
		ServiceName: "metricstest",
	})
	require.NoError(t, err)
	defer m.Stop()

	m.IncEventsSent("trigger", "accepted")
	m.IncEventsSent("trigger", "accepted")
	m.IncEventsSent("change", "http_error")
	m.RecordSendTime("trigger", 150*time.Millisecond)

	assert.Equal(t, float64(2),
		testutil.ToFloat64(m.eventsSentTotal.WithLabelValues("trigger", "accepted")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.eventsSentTotal.WithLabelValues("change", "http_error")))
	assert.Equal(t, float64(0),
		testutil.ToFloat64(m.eventsSentTotal.WithLabelValues("resolve", "accepted")))

	count := testutil.CollectAndCount(m.sendDuration)
	assert.Equal(t, 1, count)
}
