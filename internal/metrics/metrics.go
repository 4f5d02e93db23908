package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	SourceFetchesTotal  *prometheus.CounterVec
	SourceFetchDuration *prometheus.HistogramVec
	RateQueriesTotal    *prometheus.CounterVec
	StoredRecords       *prometheus.GaugeVec
	ConversionsTotal    prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SourceFetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exrates_source_fetches_total",
				Help: "Total number of upstream rate source fetches",
			},
			[]string{"provider", "outcome"},
		),

		SourceFetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "exrates_source_fetch_duration_seconds",
				Help:    "Upstream rate source fetch duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),

		RateQueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exrates_rate_queries_total",
				Help: "Total number of rate queries",
			},
			[]string{"provider", "outcome"},
		),

		StoredRecords: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "exrates_stored_records",
				Help: "Number of rate records held in memory",
			},
			[]string{"provider"},
		),

		ConversionsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "exrates_conversions_total",
				Help: "Total number of currency conversion requests",
			},
		),
	}
}

// ObserveFetch records one upstream fetch. A nil receiver is a no-op.
func (m *Metrics) ObserveFetch(provider, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.SourceFetchesTotal.WithLabelValues(provider, outcome).Inc()
	m.SourceFetchDuration.WithLabelValues(provider).Observe(took.Seconds())
}

func (m *Metrics) ObserveQuery(provider, outcome string) {
	if m == nil {
		return
	}
	m.RateQueriesTotal.WithLabelValues(provider, outcome).Inc()
}

func (m *Metrics) SetStored(provider string, n int) {
	if m == nil {
		return
	}
	m.StoredRecords.WithLabelValues(provider).Set(float64(n))
}

func (m *Metrics) IncConversions() {
	if m == nil {
		return
	}
	m.ConversionsTotal.Inc()
}
