package model

import (
	"math"
	"strconv"
)

const (
	// StartingBalance is credited to a user the first time they bet.
	StartingBalance int64 = 10_000
	// WinMultiplier scales the stake into the reward of a winning bet.
	WinMultiplier int64 = 9
	// MaxStake is the largest stake whose winning reward fits in int64.
	MaxStake = math.MaxInt64 / WinMultiplier
	// MinNumber and MaxNumber bound both the guess and the drawn number, inclusive.
	MinNumber = 0
	MaxNumber = 9
)

// BetRequest describes a single bet placed by a resolved user.
type BetRequest struct {
	UserID string
	Points int64
	Number int
}

// BetOutcome is the result of evaluating and applying one bet.
// Reward is positive on a win and equals -Points on a loss.
type BetOutcome struct {
	HasWon              bool
	Reward              int64
	CurrentBalance      int64
	UserHadEnoughCredit bool
}

// Status returns textual bet status shown to players.
func (o BetOutcome) Status() BetStatus {
	if o.HasWon {
		return BetStatusWon
	}
	return BetStatusLost
}

// SignedReward renders the reward with an explicit sign, "+0" for a zero reward.
func (o BetOutcome) SignedReward() string {
	if o.Reward < 0 {
		return strconv.FormatInt(o.Reward, 10)
	}
	return "+" + strconv.FormatInt(o.Reward, 10)
}

// BetStatus describes whether a bet was won or lost.
type BetStatus string

const (
	BetStatusWon  BetStatus = "won"
	BetStatusLost BetStatus = "lost"
)
