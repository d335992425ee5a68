package repository

// BalanceLedger owns user balances and applies bets to them atomically per user.
type BalanceLedger interface {
	// ConditionalAdjust applies reward to the user's balance if the stake is affordable.
	// A user without an entry starts at startingBalance. A rejected adjustment leaves
	// the ledger untouched and returns the balance the user would have had.
	ConditionalAdjust(userID string, stake, reward, startingBalance int64) (accepted bool, balance int64)
	// Balance returns the current balance without creating an entry.
	Balance(userID string, startingBalance int64) (balance int64, known bool)
	// Len reports how many users have an entry.
	Len() int
}
