package dto

// BalanceResponse represents the current points of a player.
type BalanceResponse struct {
	Account int64 `json:"account"`
}
