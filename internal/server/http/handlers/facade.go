package handlers

import (
	"context"

	"github.com/polkiloo/gambling/internal/domain/model"
)

// IdentityFacade resolves and mints player sessions.
type IdentityFacade interface {
	NewSession(ctx context.Context) (userID, token string, err error)
	ParseToken(token string) (string, error)
}

// BetFacade encapsulates bet operations exposed via HTTP.
type BetFacade interface {
	PlaceBet(ctx context.Context, userID string, points int64, number int) (*model.BetOutcome, error)
	Balance(ctx context.Context, userID string) (int64, error)
}

// BettingFacade aggregates the full set of operations used across handlers.
type BettingFacade interface {
	IdentityFacade
	BetFacade
}
