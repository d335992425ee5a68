package test

import (
	"context"

	"github.com/polkiloo/gambling/internal/domain/model"
	pkgAuth "github.com/polkiloo/gambling/internal/pkg/auth"
)

// IdentityFacadeStub provides controllable behaviour for session resolution.
type IdentityFacadeStub struct {
	NewSessionFn func(context.Context) (string, string, error)
	ParseFn      func(string) (string, error)
}

// NewSession delegates to provided function or returns a fixed session.
func (s IdentityFacadeStub) NewSession(ctx context.Context) (string, string, error) {
	if s.NewSessionFn != nil {
		return s.NewSessionFn(ctx)
	}
	return "new-user", "new-token", nil
}

// ParseToken resolves "user-<token>" for any non-empty token.
func (s IdentityFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return "user-" + token, nil
}

// BetFacadeStub simulates bet placement and balance lookups.
type BetFacadeStub struct {
	PlaceBetFn func(context.Context, string, int64, int) (*model.BetOutcome, error)
	BalanceFn  func(context.Context, string) (int64, error)
}

// PlaceBet executes configured handler or reports an accepted zero-reward bet.
func (s BetFacadeStub) PlaceBet(ctx context.Context, userID string, points int64, number int) (*model.BetOutcome, error) {
	if s.PlaceBetFn != nil {
		return s.PlaceBetFn(ctx, userID, points, number)
	}
	return &model.BetOutcome{CurrentBalance: model.StartingBalance, UserHadEnoughCredit: true}, nil
}

// Balance returns stored balance or the starting one.
func (s BetFacadeStub) Balance(ctx context.Context, userID string) (int64, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, userID)
	}
	return model.StartingBalance, nil
}

// BettingFacadeStub aggregates identity and bet stubs.
type BettingFacadeStub struct {
	IdentityFacadeStub
	BetFacadeStub
}
