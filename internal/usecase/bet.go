package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainErrors "github.com/polkiloo/gambling/internal/domain/errors"
	"github.com/polkiloo/gambling/internal/domain/model"
	"github.com/polkiloo/gambling/internal/domain/repository"
	"github.com/polkiloo/gambling/internal/pkg/random"
)

var errUnresolvedUser = errors.New("bet without resolved user")

// BetUseCase evaluates bets and applies them to the ledger.
type BetUseCase struct {
	ledger repository.BalanceLedger
	rng    random.Source
	logger *slog.Logger
}

// NewBetUseCase constructs BetUseCase.
func NewBetUseCase(ledger repository.BalanceLedger, rng random.Source, logger *slog.Logger) *BetUseCase {
	return &BetUseCase{ledger: ledger, rng: rng, logger: logger}
}

// Place validates the request, draws the winning number once and applies the result.
//
// A *domainErrors.ValidationError is returned before any number is drawn.
// ErrInsufficientBalance comes together with an outcome holding the unchanged balance.
func (uc *BetUseCase) Place(ctx context.Context, req model.BetRequest) (*model.BetOutcome, error) {
	if err := domainErrors.NewValidationError(ValidateBet(req.Points, req.Number)); err != nil {
		return nil, err
	}
	if req.UserID == "" {
		return nil, errUnresolvedUser
	}

	drawn, err := uc.rng.Draw(model.MinNumber, model.MaxNumber)
	if err != nil {
		uc.logger.ErrorContext(ctx, "draw winning number failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("draw winning number: %w", err)
	}

	hasWon, reward := Evaluate(req.Points, req.Number, int(drawn))
	accepted, balance := uc.ledger.ConditionalAdjust(req.UserID, req.Points, reward, model.StartingBalance)

	outcome := &model.BetOutcome{
		HasWon:              hasWon,
		Reward:              reward,
		CurrentBalance:      balance,
		UserHadEnoughCredit: accepted,
	}
	if !accepted {
		uc.logger.DebugContext(ctx, "bet rejected",
			slog.String("user_id", req.UserID),
			slog.Int64("points", req.Points),
			slog.Int64("balance", balance),
		)
		return outcome, domainErrors.ErrInsufficientBalance
	}
	return outcome, nil
}

// Balance returns the user's current balance, StartingBalance if they never bet.
func (uc *BetUseCase) Balance(_ context.Context, userID string) int64 {
	balance, _ := uc.ledger.Balance(userID, model.StartingBalance)
	return balance
}

// KnownUsers reports how many users hold a ledger entry.
func (uc *BetUseCase) KnownUsers() int {
	return uc.ledger.Len()
}
