package handlers

import (
	"errors"
	"net/http"

	"casino_webapp/internal/domain"
	"casino_webapp/internal/game"
	"casino_webapp/internal/service"

	"github.com/gin-gonic/gin"
)

// CoinRequestBody - просьба о пополнении с опциональным сообщением админу
type CoinRequestBody struct {
	Message string `json:"message" binding:"max=500"`
}

// RequestCoins создает запрос коинов. Доступно только банкротам.
func (h *Handler) RequestCoins(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req CoinRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	created, err := h.CoinRequests.Request(ctx, userID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotBankrupt):
			c.JSON(http.StatusBadRequest, gin.H{"error": "balance is not low enough"})
		case errors.Is(err, service.ErrRequestAlreadyOpen):
			c.JSON(http.StatusConflict, gin.H{"error": "request already pending"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		}
		return
	}

	if h.Notifier != nil {
		go h.Notifier.NotifyNewRequest(created)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      created.ID,
		"status":  created.Status,
		"message": "Request submitted. An admin will review it shortly.",
	})
}

// MyCoinRequests возвращает собственные запросы коинов пользователя
func (h *Handler) MyCoinRequests(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	limit := parseLimit(c.Query("limit"), 20, 100)
	reqs, err := h.CoinRequests.MyRequests(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": reqs})
}

// Education объясняет, как устроены шансы: казино всегда в плюсе
func (h *Handler) Education(c *gin.Context) {
	limits := h.Games.GetLimits()
	c.JSON(http.StatusOK, gin.H{
		"min_bet": limits.MinBet,
		"max_bet": limits.MaxBet,
		"title": "The house always wins",
		"text": "Every game here is deliberately tilted toward the house. " +
			"The listed edge is applied on top of the already unfavorable fair odds. " +
			"Play long enough and the expected value of any strategy is negative.",
		"edges": gin.H{
			string(domain.GameBlackjack):   float64(game.BlackjackEdge),
			string(domain.GamePoker):       float64(game.PokerEdge),
			string(domain.GameRoulette):    float64(game.RouletteEdge),
			string(domain.GameDice):        float64(game.DiceEdge),
			string(domain.GameMinesweeper): float64(game.MinesweeperEdge),
		},
	})
}
