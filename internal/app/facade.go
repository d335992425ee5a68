package app

import (
	"context"
	"errors"
	"time"

	domainErrors "github.com/polkiloo/gambling/internal/domain/errors"
	"github.com/polkiloo/gambling/internal/domain/model"
	"github.com/polkiloo/gambling/internal/metrics"
	"github.com/polkiloo/gambling/internal/usecase"
)

type BettingFacade struct {
	identity *usecase.IdentityUseCase
	bets     *usecase.BetUseCase
	metrics  *metrics.BetMetrics
}

func NewBettingFacade(identity *usecase.IdentityUseCase, bets *usecase.BetUseCase, m *metrics.BetMetrics) *BettingFacade {
	return &BettingFacade{identity: identity, bets: bets, metrics: m}
}

func (f *BettingFacade) NewSession(_ context.Context) (string, string, error) {
	return f.identity.NewSession()
}

func (f *BettingFacade) ParseToken(token string) (string, error) {
	return f.identity.ParseToken(token)
}

func (f *BettingFacade) PlaceBet(ctx context.Context, userID string, points int64, number int) (*model.BetOutcome, error) {
	started := time.Now()
	outcome, err := f.bets.Place(ctx, model.BetRequest{UserID: userID, Points: points, Number: number})
	if f.metrics != nil {
		f.metrics.Record(betResult(outcome, err), points, rewardOf(outcome), started)
	}
	return outcome, err
}

func (f *BettingFacade) Balance(ctx context.Context, userID string) (int64, error) {
	return f.bets.Balance(ctx, userID), nil
}

func betResult(outcome *model.BetOutcome, err error) string {
	switch {
	case errors.Is(err, domainErrors.ErrInsufficientBalance):
		return metrics.ResultInsufficient
	case errors.Is(err, domainErrors.ErrInvalidBet):
		return metrics.ResultInvalid
	case err != nil || outcome == nil:
		return metrics.ResultError
	case outcome.HasWon:
		return metrics.ResultWon
	default:
		return metrics.ResultLost
	}
}

func rewardOf(outcome *model.BetOutcome) int64 {
	if outcome == nil {
		return 0
	}
	return outcome.Reward
}
