package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Bet results used as metric labels.
const (
	ResultWon          = "won"
	ResultLost         = "lost"
	ResultInsufficient = "insufficient_funds"
	ResultInvalid      = "invalid"
	ResultError        = "error"
)

// BetMetrics records business metrics of bet placement.
type BetMetrics struct {
	total    *prometheus.CounterVec
	points   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewBetMetrics registers bet collectors on reg.
// knownUsers is sampled on scrape to export the number of ledger entries.
func NewBetMetrics(reg prometheus.Registerer, knownUsers func() int) *BetMetrics {
	factory := promauto.With(reg)
	m := &BetMetrics{
		total: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bets_total",
				Help: "Total bets by result",
			},
			[]string{"result"},
		),
		points: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bet_points_total",
				Help: "Points staked and paid out by accepted bets",
			},
			[]string{"kind"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bet_duration_seconds",
				Help:    "Bet placement duration",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"result"},
		),
	}
	if knownUsers != nil {
		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "ledger_users",
			Help: "Users holding a balance entry",
		}, func() float64 { return float64(knownUsers()) })
	}
	return m
}

// Record stores the outcome of one bet call.
func (m *BetMetrics) Record(result string, stake, reward int64, started time.Time) {
	m.total.WithLabelValues(result).Inc()
	m.duration.WithLabelValues(result).Observe(time.Since(started).Seconds())

	switch result {
	case ResultWon:
		m.points.WithLabelValues("staked").Add(float64(stake))
		m.points.WithLabelValues("paid").Add(float64(reward))
	case ResultLost:
		m.points.WithLabelValues("staked").Add(float64(stake))
	}
}
