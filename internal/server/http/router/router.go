package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polkiloo/gambling/internal/metrics"
	"github.com/polkiloo/gambling/internal/server/http/handlers"
	"github.com/polkiloo/gambling/internal/server/http/middleware"
)

// Options tunes router behaviour.
type Options struct {
	Development  bool
	CookieSecure bool
	SessionTTL   time.Duration
	Gatherer     prometheus.Gatherer
	HTTPMetrics  *metrics.HTTPMetrics
}

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.BettingFacade, logger *slog.Logger, opts Options) *gin.Engine {
	if !opts.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	if opts.HTTPMetrics != nil {
		engine.Use(middleware.HTTPMetrics(opts.HTTPMetrics))
	}
	engine.Use(middleware.Recovery(logger, opts.Development))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	engine.GET("/healthz", handlers.Health)
	if opts.Gatherer != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	betHandler := handlers.NewBetHandler(facade)
	identified := engine.Group("")
	identified.Use(middleware.Identify(facade, middleware.CookieOptions{
		TTL:    opts.SessionTTL,
		Secure: opts.CookieSecure,
	}))
	identified.POST("/", betHandler.Place)

	api := identified.Group("/api")
	api.POST("/bet", betHandler.Place)
	api.GET("/balance", betHandler.Balance)

	return engine
}
