package handlers

import (
	"errors"
	"net/http"

	"casino_webapp/internal/domain"
	"casino_webapp/internal/game"
	"casino_webapp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PokerDealRequest начинает раунд видеопокера
type PokerDealRequest struct {
	Bet int64 `json:"bet" binding:"required,min=1"`
}

// PokerDrawRequest - индексы карт, которые игрок оставляет (0..4)
type PokerDrawRequest struct {
	Hold []int `json:"hold"`
}

// PokerDeal раздает пять карт и сохраняет раунд
func (h *Handler) PokerDeal(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req PokerDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if err := h.Games.ValidateBet(req.Bet); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if active, err := h.Rounds.Exists(ctx, domain.GamePoker, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "round store error"})
		return
	} else if active {
		c.JSON(http.StatusConflict, gin.H{"error": "round already in progress"})
		return
	}

	roundID := uuid.New().String()
	if _, err := h.Balance.PlaceBet(ctx, userID, req.Bet, domain.GamePoker, roundID); err != nil {
		if errors.Is(err, service.ErrInsufficientFunds) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient balance"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	h.Audit.LogGameStart(ctx, userID, domain.GamePoker, roundID, req.Bet)

	state := h.Poker.Deal()
	if err := h.Rounds.Save(ctx, domain.GamePoker, userID, roundID, req.Bet, state); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "round store error"})
		return
	}

	balance, _ := h.Balance.GetBalance(ctx, userID)
	out := balanceFields(balance)
	out["hand"] = state.Hand
	out["bet"] = req.Bet
	c.JSON(http.StatusOK, out)
}

// PokerDraw меняет не задержанные карты и рассчитывает раунд
func (h *Handler) PokerDraw(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req PokerDrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	var state game.PokerState
	roundID, bet, err := h.Rounds.Load(ctx, domain.GamePoker, userID, &state)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveRound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no active round"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "round store error"})
		return
	}

	res, err := h.Poker.Draw(&state, req.Hold, bet)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Rounds.Delete(ctx, domain.GamePoker, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "round store error"})
		return
	}

	balance, err := h.finishRound(ctx, userID, domain.GamePoker, roundID, bet, res.Payout, res.Status, res.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}

	out := balanceFields(balance)
	out["hand"] = res.Hand
	out["hand_type"] = res.HandType
	out["status"] = res.Status
	out["bet"] = bet
	out["payout"] = res.Payout
	out["message"] = res.Message
	c.JSON(http.StatusOK, out)
}

// PokerState возвращает активный раунд видеопокера
func (h *Handler) PokerState(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	ctx := c.Request.Context()
	var state game.PokerState
	_, bet, err := h.Rounds.Load(ctx, domain.GamePoker, userID, &state)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveRound) {
			c.JSON(http.StatusOK, gin.H{"active": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "round store error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"active": true,
		"bet":    bet,
		"hand":   state.Hand,
	})
}

// PokerPayoutTable возвращает таблицу выплат для фронтенда
func (h *Handler) PokerPayoutTable(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"payouts": game.PokerPayouts})
}
