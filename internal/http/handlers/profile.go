package handlers

import (
	"net/http"
	"strconv"

	"casino_webapp/internal/domain"

	"github.com/gin-gonic/gin"
)

// Профиль и игровая статистика текущего пользователя
func (h *Handler) Profile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.UserRepo.GetByID(ctx, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"coins":         user.Coins,
		"total_wagered": user.TotalWagered,
		"total_won":     user.TotalWon,
		"total_lost":    user.TotalLost,
		"net_profit":    user.NetProfit(),
		"games_played":  user.GamesPlayed,
		"is_bankrupt":   user.IsBankrupt(),
		"is_admin":      user.IsAdmin,
		"created_at":    user.CreatedAt,
	})
}

// История раундов текущего пользователя,
// опционально по одной игре (?game=blackjack&limit=50)
func (h *Handler) GameHistory(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	gameFilter := domain.GameType(c.Query("game"))
	if gameFilter != "" && !gameFilter.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown game"})
		return
	}

	limit := parseLimit(c.Query("limit"), 50, 200)

	ctx := c.Request.Context()
	history, err := h.Balance.GetGameHistory(ctx, userID, gameFilter, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

// Последние записи леджера текущего пользователя
func (h *Handler) Transactions(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	limit := parseLimit(c.Query("limit"), 100, 500)

	ctx := c.Request.Context()
	txs, err := h.Balance.GetTransactionHistory(ctx, userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}

func parseLimit(raw string, fallback, max int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 || n > max {
		return fallback
	}
	return n
}
