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

// MinesCreateRequest начинает раунд сапёра
type MinesCreateRequest struct {
	Bet      int64 `json:"bet" binding:"required,min=1"`
	GridSize int   `json:"grid_size" binding:"required,min=3,max=8"`
	NumMines int   `json:"num_mines" binding:"required,min=1,max=24"`
}

// MinesRevealRequest открывает одну плитку
type MinesRevealRequest struct {
	Tile *int `json:"tile" binding:"required"`
}

// MinesCreate раскладывает мины и сохраняет раунд. Позиции мин клиенту
// не отдаются до конца раунда.
func (h *Handler) MinesCreate(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req MinesCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if err := h.Games.ValidateBet(req.Bet); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// конфигурация поля проверяется до списания ставки
	state, err := h.Minesweeper.Create(req.GridSize, req.NumMines)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if active, aerr := h.Rounds.Exists(ctx, domain.GameMinesweeper, userID); aerr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "round store error"})
		return
	} else if active {
		c.JSON(http.StatusConflict, gin.H{"error": "round already in progress"})
		return
	}

	roundID := uuid.New().String()
	if _, err := h.Balance.PlaceBet(ctx, userID, req.Bet, domain.GameMinesweeper, roundID); err != nil {
		if errors.Is(err, service.ErrInsufficientFunds) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient balance"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	h.Audit.LogGameStart(ctx, userID, domain.GameMinesweeper, roundID, req.Bet)

	if err := h.Rounds.Save(ctx, domain.GameMinesweeper, userID, roundID, req.Bet, state); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "round store error"})
		return
	}

	balance, _ := h.Balance.GetBalance(ctx, userID)
	out := balanceFields(balance)
	out["grid_size"] = state.GridSize
	out["num_mines"] = state.NumMines
	out["revealed"] = state.Revealed
	out["multiplier"] = state.Multiplier
	out["bet"] = req.Bet
	c.JSON(http.StatusOK, out)
}

// MinesReveal открывает плитку в активном раунде
func (h *Handler) MinesReveal(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req MinesRevealRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Tile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tile is required"})
		return
	}

	ctx := c.Request.Context()
	var state game.MinesweeperState
	roundID, bet, err := h.Rounds.Load(ctx, domain.GameMinesweeper, userID, &state)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveRound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no active round"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "round store error"})
		return
	}

	res, err := h.Minesweeper.Reveal(&state, *req.Tile, bet)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if res.Status == game.StatusPlaying {
		if err := h.Rounds.Save(ctx, domain.GameMinesweeper, userID, roundID, bet, res.State); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "round store error"})
			return
		}
		balance, _ := h.Balance.GetBalance(ctx, userID)
		out := balanceFields(balance)
		out["status"] = res.Status
		out["revealed"] = res.Revealed
		out["multiplier"] = res.Multiplier
		out["message"] = res.Message
		c.JSON(http.StatusOK, out)
		return
	}

	if err := h.Rounds.Delete(ctx, domain.GameMinesweeper, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "round store error"})
		return
	}

	balance, err := h.finishRound(ctx, userID, domain.GameMinesweeper, roundID, bet, res.Payout, res.Status, res.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}

	out := balanceFields(balance)
	out["status"] = res.Status
	out["revealed"] = res.Revealed
	out["multiplier"] = res.Multiplier
	out["mine_positions"] = state.MinePositions
	out["payout"] = res.Payout
	out["message"] = res.Message
	if res.HitMine != nil {
		out["hit_mine"] = *res.HitMine
	}
	c.JSON(http.StatusOK, out)
}

// MinesCashout фиксирует выигрыш по текущему множителю
func (h *Handler) MinesCashout(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	ctx := c.Request.Context()
	var state game.MinesweeperState
	roundID, bet, err := h.Rounds.Load(ctx, domain.GameMinesweeper, userID, &state)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveRound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no active round"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "round store error"})
		return
	}

	res, err := h.Minesweeper.Cashout(&state, bet)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Rounds.Delete(ctx, domain.GameMinesweeper, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "round store error"})
		return
	}

	balance, err := h.finishRound(ctx, userID, domain.GameMinesweeper, roundID, bet, res.Payout, res.Status, res.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}

	out := balanceFields(balance)
	out["status"] = res.Status
	out["revealed"] = res.Revealed
	out["multiplier"] = res.Multiplier
	out["mine_positions"] = state.MinePositions
	out["payout"] = res.Payout
	out["message"] = res.Message
	c.JSON(http.StatusOK, out)
}

// MinesState возвращает активный раунд без позиций мин
func (h *Handler) MinesState(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	ctx := c.Request.Context()
	var state game.MinesweeperState
	_, bet, err := h.Rounds.Load(ctx, domain.GameMinesweeper, userID, &state)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveRound) {
			c.JSON(http.StatusOK, gin.H{"active": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "round store error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"active":     true,
		"bet":        bet,
		"grid_size":  state.GridSize,
		"num_mines":  state.NumMines,
		"revealed":   state.Revealed,
		"multiplier": state.Multiplier,
	})
}

// MinesInfo возвращает таблицы множителей для конфигураций поля
func (h *Handler) MinesInfo(c *gin.Context) {
	tables := make(map[int][]float64)
	for mines := game.MinesweeperMinMines; mines <= 10; mines++ {
		tables[mines] = game.MinesweeperMultiplierTable(5, mines)
	}

	c.JSON(http.StatusOK, gin.H{
		"min_grid":          game.MinesweeperMinGrid,
		"max_grid":          game.MinesweeperMaxGrid,
		"min_mines":         game.MinesweeperMinMines,
		"max_mines":         game.MinesweeperMaxMines,
		"multiplier_tables": tables,
	})
}
