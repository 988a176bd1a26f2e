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

// BlackjackDealRequest начинает раунд
type BlackjackDealRequest struct {
	Bet int64 `json:"bet" binding:"required,min=1"`
}

// BlackjackActionRequest - ход в активном раунде
type BlackjackActionRequest struct {
	Action string `json:"action" binding:"required,oneof=hit stand double"`
}

// BlackjackDeal раздает начальные руки. Закрытая карта дилера не
// покидает сервер до конца раунда.
func (h *Handler) BlackjackDeal(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req BlackjackDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if err := h.Games.ValidateBet(req.Bet); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if active, err := h.Rounds.Exists(ctx, domain.GameBlackjack, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "round store error"})
		return
	} else if active {
		c.JSON(http.StatusConflict, gin.H{"error": "round already in progress"})
		return
	}

	roundID := uuid.New().String()
	if _, err := h.Balance.PlaceBet(ctx, userID, req.Bet, domain.GameBlackjack, roundID); err != nil {
		if errors.Is(err, service.ErrInsufficientFunds) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient balance"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	h.Audit.LogGameStart(ctx, userID, domain.GameBlackjack, roundID, req.Bet)

	res, err := h.Blackjack.Play(req.Bet, game.ActionDeal, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "game error"})
		return
	}

	// натуральный блэкджек или пуш заканчивают раунд прямо на раздаче
	if res.State == nil {
		balance, err := h.finishRound(ctx, userID, domain.GameBlackjack, roundID, req.Bet, res.Payout, res.Status, res.Message)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		h.respondBlackjackFinal(c, res, req.Bet, balance)
		return
	}

	if err := h.Rounds.Save(ctx, domain.GameBlackjack, userID, roundID, req.Bet, res.State); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "round store error"})
		return
	}

	balance, _ := h.Balance.GetBalance(ctx, userID)
	out := balanceFields(balance)
	out["status"] = res.Status
	out["player_hand"] = res.PlayerHand
	out["player_value"] = res.PlayerValue
	out["dealer_visible"] = []game.Card{res.DealerHand[0]}
	out["message"] = res.Message
	c.JSON(http.StatusOK, out)
}

// BlackjackAction выполняет hit, stand или double в активном раунде
func (h *Handler) BlackjackAction(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req BlackjackActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	var state game.BlackjackState
	roundID, bet, err := h.Rounds.Load(ctx, domain.GameBlackjack, userID, &state)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveRound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no active round"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "round store error"})
		return
	}

	totalBet := bet
	if req.Action == game.ActionDouble {
		// удвоение требует второй ставки того же размера до хода
		if _, err := h.Balance.PlaceExtraBet(ctx, userID, bet, domain.GameBlackjack, roundID); err != nil {
			if errors.Is(err, service.ErrInsufficientFunds) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient balance to double"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		totalBet = bet * 2
	}

	res, err := h.Blackjack.Play(bet, req.Action, &state)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// hit мог не закончить раунд
	if res.State != nil {
		if err := h.Rounds.Save(ctx, domain.GameBlackjack, userID, roundID, bet, res.State); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "round store error"})
			return
		}
		balance, _ := h.Balance.GetBalance(ctx, userID)
		out := balanceFields(balance)
		out["status"] = res.Status
		out["player_hand"] = res.PlayerHand
		out["player_value"] = res.PlayerValue
		out["dealer_visible"] = []game.Card{res.DealerHand[0]}
		out["message"] = res.Message
		c.JSON(http.StatusOK, out)
		return
	}

	if err := h.Rounds.Delete(ctx, domain.GameBlackjack, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "round store error"})
		return
	}

	balance, err := h.finishRound(ctx, userID, domain.GameBlackjack, roundID, totalBet, res.Payout, res.Status, res.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	h.respondBlackjackFinal(c, res, totalBet, balance)
}

// BlackjackState возвращает активный раунд без закрытой карты дилера
func (h *Handler) BlackjackState(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	ctx := c.Request.Context()
	var state game.BlackjackState
	_, bet, err := h.Rounds.Load(ctx, domain.GameBlackjack, userID, &state)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveRound) {
			c.JSON(http.StatusOK, gin.H{"active": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "round store error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"active":         true,
		"bet":            bet,
		"player_hand":    state.PlayerHand,
		"player_value":   game.HandValue(state.PlayerHand),
		"dealer_visible": []game.Card{state.DealerHand[0]},
	})
}

func (h *Handler) respondBlackjackFinal(c *gin.Context, res *game.BlackjackResult, bet, balance int64) {
	out := balanceFields(balance)
	out["status"] = res.Status
	out["player_hand"] = res.PlayerHand
	out["player_value"] = res.PlayerValue
	out["dealer_hand"] = res.DealerHand
	out["dealer_value"] = res.DealerValue
	out["bet"] = bet
	out["payout"] = res.Payout
	out["message"] = res.Message
	c.JSON(http.StatusOK, out)
}
