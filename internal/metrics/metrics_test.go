package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveFetch("ECB", "ok", 120*time.Millisecond)
	m.ObserveFetch("ECB", "ok", 80*time.Millisecond)
	m.ObserveQuery("ECB", "hit")
	m.SetStored("ECB", 42)
	m.IncConversions()

	require.Equal(t, float64(2), testutil.ToFloat64(m.SourceFetchesTotal.WithLabelValues("ECB", "ok")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.RateQueriesTotal.WithLabelValues("ECB", "hit")))
	require.Equal(t, float64(42), testutil.ToFloat64(m.StoredRecords.WithLabelValues("ECB")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.ConversionsTotal))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.ObserveFetch("IMF", "error", time.Second)
		m.ObserveQuery("IMF", "miss")
		m.SetStored("IMF", 1)
		m.IncConversions()
	})
}
