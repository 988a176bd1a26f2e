package service

import (
	"context"
	"time"

	"casino_webapp/internal/domain"
	"casino_webapp/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// предоставляет административную статистику и операции с запросами коинов
type AdminService struct {
	db              *pgxpool.Pool
	userRepo        *repository.UserRepository
	requestRepo     *repository.CoinRequestRepository
	transactionRepo *repository.TransactionRepository
	audit           *AuditService
}

// создает новый административный сервис
func NewAdminService(db *pgxpool.Pool) *AdminService {
	return &AdminService{
		db:              db,
		userRepo:        repository.NewUserRepository(db),
		requestRepo:     repository.NewCoinRequestRepository(db),
		transactionRepo: repository.NewTransactionRepository(db),
		audit:           NewAuditService(db),
	}
}

// представляет статистику платформы
type Stats struct {
	TotalUsers       int64 `json:"total_users"`
	ActiveUsersToday int64 `json:"active_users_today"`
	TotalGamesPlayed int64 `json:"total_games_played"`
	GamesToday       int64 `json:"games_today"`
	TotalCoins       int64 `json:"total_coins"`   // коины в обращении
	TotalWagered     int64 `json:"total_wagered"` // сумма ставок за все время
	WageredToday     int64 `json:"wagered_today"`
	HouseProfit      int64 `json:"house_profit"` // проигрыши минус выигрыши
	PendingRequests  int64 `json:"pending_requests"`
}

// возвращает статистику платформы
func (s *AdminService) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	today := time.Now().Truncate(24 * time.Hour)

	_ = s.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&stats.TotalUsers)

	_ = s.db.QueryRow(ctx, `
		SELECT COUNT(DISTINCT user_id) FROM game_history WHERE created_at >= $1
	`, today).Scan(&stats.ActiveUsersToday)

	_ = s.db.QueryRow(ctx, `SELECT COUNT(*) FROM game_history`).Scan(&stats.TotalGamesPlayed)

	_ = s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM game_history WHERE created_at >= $1
	`, today).Scan(&stats.GamesToday)

	_ = s.db.QueryRow(ctx, `SELECT COALESCE(SUM(coins), 0) FROM users`).Scan(&stats.TotalCoins)

	_ = s.db.QueryRow(ctx, `SELECT COALESCE(SUM(bet), 0) FROM game_history`).Scan(&stats.TotalWagered)

	_ = s.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(bet), 0) FROM game_history WHERE created_at >= $1
	`, today).Scan(&stats.WageredToday)

	_ = s.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_lost), 0) - COALESCE(SUM(total_won), 0) FROM users
	`).Scan(&stats.HouseProfit)

	_ = s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM coin_requests WHERE status = $1
	`, domain.CoinRequestPending).Scan(&stats.PendingRequests)

	return stats, nil
}

// возвращает необработанные запросы коинов
func (s *AdminService) GetPendingRequests(ctx context.Context, limit int) ([]*domain.CoinRequest, error) {
	return s.requestRepo.GetPending(ctx, limit)
}

// одобряет запрос и начисляет коины одной транзакцией
func (s *AdminService) ApproveRequest(ctx context.Context, requestID, adminID int64) (*domain.CoinRequest, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	req, err := s.requestRepo.ResolveWithTx(ctx, tx, requestID, adminID, domain.CoinRequestApproved)
	if err != nil {
		return nil, err
	}

	if err = s.userRepo.AddCoinsWithTx(ctx, tx, req.UserID, domain.CoinRequestGrant); err != nil {
		return nil, err
	}

	record := &domain.Transaction{
		UserID: req.UserID,
		Type:   domain.TxTypeGrant,
		Amount: domain.CoinRequestGrant,
	}
	if err = s.transactionRepo.CreateWithTx(ctx, tx, record); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.audit.LogAdminAction(ctx, adminID, domain.AuditActionAdminGrantCoins, req.UserID, map[string]interface{}{
		"request_id": req.ID,
		"amount":     domain.CoinRequestGrant,
	})
	return req, nil
}

// отклоняет запрос без начисления
func (s *AdminService) DenyRequest(ctx context.Context, requestID, adminID int64) (*domain.CoinRequest, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	req, err := s.requestRepo.ResolveWithTx(ctx, tx, requestID, adminID, domain.CoinRequestDenied)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.audit.LogAdminAction(ctx, adminID, domain.AuditActionAdminDenyCoins, req.UserID, map[string]interface{}{
		"request_id": req.ID,
	})
	return req, nil
}
