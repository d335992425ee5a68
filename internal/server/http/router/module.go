package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/polkiloo/gambling/internal/app"
	"github.com/polkiloo/gambling/internal/config"
	"github.com/polkiloo/gambling/internal/metrics"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(newRouter)

type routerParams struct {
	fx.In

	Facade      *app.BettingFacade
	Logger      *slog.Logger
	Config      *config.Config
	Gatherer    prometheus.Gatherer
	HTTPMetrics *metrics.HTTPMetrics
}

func newRouter(p routerParams) *gin.Engine {
	return Setup(p.Facade, p.Logger, Options{
		Development:  p.Config.IsDevelopment(),
		CookieSecure: p.Config.CookieSecure,
		SessionTTL:   p.Config.SessionTTL,
		Gatherer:     p.Gatherer,
		HTTPMetrics:  p.HTTPMetrics,
	})
}
