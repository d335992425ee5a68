package auth

import (
	"go.uber.org/fx"

	"github.com/polkiloo/gambling/internal/config"
)

// Module provides the session token strategy via fx.
var Module = fx.Provide(newTokenStrategy)

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) (Strategy, error) {
	key, err := DeriveKey(p.Config.AuthSecret)
	if err != nil {
		return nil, err
	}
	return NewHMACStrategy(key, Options{TTL: p.Config.SessionTTL}), nil
}
