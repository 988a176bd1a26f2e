package handlers

import (
	"context"

	"casino_webapp/internal/domain"
	"casino_webapp/internal/game"
	"casino_webapp/internal/metrics"
	"casino_webapp/internal/repository"
	"casino_webapp/internal/service"
	"casino_webapp/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RequestNotifier уведомляет админов о новых запросах коинов
// (реализуется телеграм-ботом)
type RequestNotifier interface {
	NotifyNewRequest(req *domain.CoinRequest)
}

// Handler объединяет зависимости всех HTTP эндпоинтов
type Handler struct {
	DB           *pgxpool.Pool
	UserRepo     *repository.UserRepository
	Auth         *service.AuthService
	Balance      *service.BalanceService
	Rounds       *service.RoundStore
	Games        *service.GameService
	Audit        *service.AuditService
	Admin        *service.AdminService
	CoinRequests *service.CoinRequestService
	Hub          *ws.Hub
	Notifier     RequestNotifier

	Blackjack   *game.BlackjackGame
	Poker       *game.PokerGame
	Roulette    *game.RouletteGame
	Dice        *game.DiceGame
	Minesweeper *game.MinesweeperGame
}

// NewHandler собирает хендлер со стандартными движками
func NewHandler(db *pgxpool.Pool, rounds *service.RoundStore, games *service.GameService, hub *ws.Hub) *Handler {
	return &Handler{
		DB:           db,
		UserRepo:     repository.NewUserRepository(db),
		Auth:         service.NewAuthService(db),
		Balance:      service.NewBalanceService(db),
		Rounds:       rounds,
		Games:        games,
		Audit:        service.NewAuditService(db),
		Admin:        service.NewAdminService(db),
		CoinRequests: service.NewCoinRequestService(db),
		Hub:          hub,

		Blackjack:   game.NewBlackjackGame(),
		Poker:       game.NewPokerGame(),
		Roulette:    game.NewRouletteGame(),
		Dice:        game.NewDiceGame(),
		Minesweeper: game.NewMinesweeperGame(),
	}
}

// getUserID достает id пользователя, положенный auth-мидлварью
func getUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// isAdmin сообщает, помечен ли запрос как админский
func isAdmin(c *gin.Context) bool {
	v, ok := c.Get("is_admin")
	if !ok {
		return false
	}
	admin, _ := v.(bool)
	return admin
}

// finishRound закрывает раунд: расчет, метрики, лента, аудит.
// Возвращает новый баланс.
func (h *Handler) finishRound(ctx context.Context, userID int64, gameType domain.GameType, roundID string, bet, payout int64, status, details string) (int64, error) {
	newBalance, err := h.Balance.Settle(ctx, userID, bet, payout, gameType, roundID, details)
	if err != nil {
		return 0, err
	}

	metrics.ObserveRound(string(gameType), status, bet, payout)

	if user, uerr := h.UserRepo.GetByID(ctx, userID); uerr == nil {
		h.Hub.BroadcastRound(gameType, user.Username, bet, payout)
	}

	h.Audit.LogGame(ctx, userID, gameType, roundID, bet, payout, map[string]interface{}{
		"status": status,
	})
	return newBalance, nil
}

// balanceFields - общий хвост ответа с балансом и флагом банкротства
func balanceFields(balance int64) gin.H {
	return gin.H{
		"coins":       balance,
		"is_bankrupt": balance < domain.BankruptcyLimit,
	}
}
