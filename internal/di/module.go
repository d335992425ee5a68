package di

import (
	"github.com/polkiloo/gambling/internal/app"
	"github.com/polkiloo/gambling/internal/config"
	"github.com/polkiloo/gambling/internal/logger"
	"github.com/polkiloo/gambling/internal/metrics"
	"github.com/polkiloo/gambling/internal/pkg/auth"
	"github.com/polkiloo/gambling/internal/pkg/random"
	"github.com/polkiloo/gambling/internal/server/http/router"
	"github.com/polkiloo/gambling/internal/storage/memory"
	"github.com/polkiloo/gambling/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		random.Module,
		memory.Module,
		usecase.Module,
		metrics.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
