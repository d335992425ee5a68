package memory

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/polkiloo/gambling/internal/domain/repository"
)

var _ repository.BalanceLedger = (*Ledger)(nil)

// Ledger keeps user balances in process memory.
//
// Every mutation is a compare-and-swap on a single key, so concurrent bets of one
// user serialize while bets of different users never wait on each other.
type Ledger struct {
	balances sync.Map // user id -> int64
	size     atomic.Int64
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// ConditionalAdjust implements repository.BalanceLedger.
func (l *Ledger) ConditionalAdjust(userID string, stake, reward, startingBalance int64) (bool, int64) {
	for {
		current, exists := l.balances.Load(userID)
		prior := startingBalance
		if exists {
			prior = current.(int64)
		}

		if prior-stake < 0 || overflows(prior, reward) {
			return false, prior
		}
		next := prior + reward

		if !exists {
			if _, loaded := l.balances.LoadOrStore(userID, next); !loaded {
				l.size.Add(1)
				return true, next
			}
			continue
		}

		if l.balances.CompareAndSwap(userID, prior, next) {
			return true, next
		}
	}
}

// Balance implements repository.BalanceLedger.
func (l *Ledger) Balance(userID string, startingBalance int64) (int64, bool) {
	current, ok := l.balances.Load(userID)
	if !ok {
		return startingBalance, false
	}
	return current.(int64), true
}

// Len implements repository.BalanceLedger.
func (l *Ledger) Len() int {
	return int(l.size.Load())
}

func overflows(balance, delta int64) bool {
	if delta > 0 {
		return balance > math.MaxInt64-delta
	}
	return balance < math.MinInt64-delta
}
