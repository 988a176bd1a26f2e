package handlers

import (
	"errors"
	"net/http"

	"casino_webapp/internal/domain"
	"casino_webapp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RouletteRequest - одна ставка на один спин
type RouletteRequest struct {
	Bet      int64  `json:"bet" binding:"required,min=1"`
	BetType  string `json:"bet_type" binding:"required"`
	BetValue string `json:"bet_value"`
}

// RouletteSpin принимает ставку, крутит колесо и сразу рассчитывает
func (h *Handler) RouletteSpin(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req RouletteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if err := h.Games.ValidateBet(req.Bet); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// спин до списания: невалидная ставка не должна трогать баланс
	res, err := h.Roulette.Spin(req.BetType, req.BetValue, req.Bet)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	roundID := uuid.New().String()
	if _, err := h.Balance.PlaceBet(ctx, userID, req.Bet, domain.GameRoulette, roundID); err != nil {
		if errors.Is(err, service.ErrInsufficientFunds) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient balance"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}

	status := resultStatus(res.Won)
	balance, err := h.finishRound(ctx, userID, domain.GameRoulette, roundID, req.Bet, res.Payout, status, res.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}

	out := balanceFields(balance)
	out["result"] = res.Result
	out["color"] = res.Color
	out["won"] = res.Won
	out["bet"] = req.Bet
	out["payout"] = res.Payout
	out["message"] = res.Message
	c.JSON(http.StatusOK, out)
}

func resultStatus(won bool) string {
	if won {
		return "win"
	}
	return "lose"
}
