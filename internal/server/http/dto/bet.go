package dto

// BetRequest describes bet payload.
type BetRequest struct {
	Points int64 `json:"points"`
	Number int   `json:"number"`
}

// BetResponse describes the result of an accepted bet.
type BetResponse struct {
	Account int64  `json:"account"`
	Status  string `json:"status"`
	Points  string `json:"points"`
}
