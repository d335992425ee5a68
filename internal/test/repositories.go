package test

import (
	"sync"
)

// AdjustCall captures arguments passed to LedgerStub.ConditionalAdjust.
type AdjustCall struct {
	UserID          string
	Stake           int64
	Reward          int64
	StartingBalance int64
}

// LedgerStub stores balances in a plain map and records adjustments.
type LedgerStub struct {
	mu       sync.Mutex
	Balances map[string]int64
	Calls    []AdjustCall
}

// NewLedgerStub constructs stub ledger with initialized map.
func NewLedgerStub() *LedgerStub {
	return &LedgerStub{Balances: make(map[string]int64)}
}

// ConditionalAdjust applies stake and reward unless the stake is not covered.
func (s *LedgerStub) ConditionalAdjust(userID string, stake, reward, startingBalance int64) (bool, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Balances == nil {
		s.Balances = make(map[string]int64)
	}
	s.Calls = append(s.Calls, AdjustCall{UserID: userID, Stake: stake, Reward: reward, StartingBalance: startingBalance})

	prior, ok := s.Balances[userID]
	if !ok {
		prior = startingBalance
	}
	if prior-stake < 0 {
		return false, prior
	}
	s.Balances[userID] = prior + reward
	return true, prior + reward
}

// Balance returns stored balance or startingBalance for unknown users.
func (s *LedgerStub) Balance(userID string, startingBalance int64) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	balance, ok := s.Balances[userID]
	if !ok {
		return startingBalance, false
	}
	return balance, true
}

// Len reports the number of stored balances.
func (s *LedgerStub) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Balances)
}
