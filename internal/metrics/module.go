package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/polkiloo/gambling/internal/domain/repository"
)

// Module provides the metrics registry and collectors.
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		func(r *prometheus.Registry) prometheus.Registerer { return r },
		func(r *prometheus.Registry) prometheus.Gatherer { return r },
		newBetMetrics,
		NewHTTPMetrics,
	),
)

func newBetMetrics(reg prometheus.Registerer, ledger repository.BalanceLedger) *BetMetrics {
	return NewBetMetrics(reg, ledger.Len)
}
