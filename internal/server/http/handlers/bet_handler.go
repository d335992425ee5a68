package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/gambling/internal/domain/errors"
	"github.com/polkiloo/gambling/internal/server/http/dto"
)

// BetHandler serves bet placement and balance lookups.
type BetHandler struct {
	facade BetFacade
}

// NewBetHandler constructs BetHandler.
func NewBetHandler(facade BetFacade) *BetHandler {
	return &BetHandler{facade: facade}
}

// Place handles POST / and POST /api/bet.
func (h *BetHandler) Place(c *gin.Context) {
	var req dto.BetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeProblem(c, http.StatusBadRequest, problemTypeValidation, titleMalformedBody)
		return
	}

	outcome, err := h.facade.PlaceBet(c.Request.Context(), CurrentUserID(c), req.Points, req.Number)
	if err != nil {
		var verr *domainErrors.ValidationError
		switch {
		case errors.As(err, &verr):
			writeValidationProblem(c, verr.Problems)
		case errors.Is(err, domainErrors.ErrInsufficientBalance):
			writeProblem(c, http.StatusPaymentRequired, problemTypePayment, titleInsufficientPoints)
		default:
			_ = c.Error(err)
			writeProblem(c, http.StatusInternalServerError, problemTypeInternal, titleInternal)
		}
		return
	}

	c.JSON(http.StatusOK, dto.BetResponse{
		Account: outcome.CurrentBalance,
		Status:  string(outcome.Status()),
		Points:  outcome.SignedReward(),
	})
}

// Balance handles GET /api/balance.
func (h *BetHandler) Balance(c *gin.Context) {
	balance, err := h.facade.Balance(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		_ = c.Error(err)
		writeProblem(c, http.StatusInternalServerError, problemTypeInternal, titleInternal)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Account: balance})
}
