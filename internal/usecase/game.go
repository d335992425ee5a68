package usecase

import "github.com/polkiloo/gambling/internal/domain/model"

// Evaluate decides a bet against the drawn number.
// A win pays WinMultiplier times the stake, a loss costs the stake.
func Evaluate(stake int64, guess, drawn int) (hasWon bool, reward int64) {
	if guess == drawn {
		return true, stake * model.WinMultiplier
	}
	return false, -stake
}
