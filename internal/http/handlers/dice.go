package handlers

import (
	"errors"
	"net/http"

	"casino_webapp/internal/domain"
	"casino_webapp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DiceRequest - одна ставка на один бросок пары кубиков
type DiceRequest struct {
	Bet      int64  `json:"bet" binding:"required,min=1"`
	BetType  string `json:"bet_type" binding:"required"`
	BetValue string `json:"bet_value"`
}

// DiceRoll принимает ставку, бросает кубики и сразу рассчитывает
func (h *Handler) DiceRoll(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req DiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if err := h.Games.ValidateBet(req.Bet); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// бросок до списания: невалидная ставка не должна трогать баланс
	res, err := h.Dice.Roll(req.BetType, req.BetValue, req.Bet)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	roundID := uuid.New().String()
	if _, err := h.Balance.PlaceBet(ctx, userID, req.Bet, domain.GameDice, roundID); err != nil {
		if errors.Is(err, service.ErrInsufficientFunds) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient balance"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}

	status := resultStatus(res.Won)
	balance, err := h.finishRound(ctx, userID, domain.GameDice, roundID, req.Bet, res.Payout, status, res.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}

	out := balanceFields(balance)
	out["die1"] = res.Die1
	out["die2"] = res.Die2
	out["total"] = res.Total
	out["won"] = res.Won
	out["bet"] = req.Bet
	out["payout"] = res.Payout
	out["message"] = res.Message
	c.JSON(http.StatusOK, out)
}
