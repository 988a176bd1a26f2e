package service

import (
	"context"

	"casino_webapp/internal/domain"
	"casino_webapp/internal/logger"
	"casino_webapp/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// обрабатывает логирование аудита
type AuditService struct {
	repo *repository.AuditRepository
}

// создает новый сервис аудита
func NewAuditService(db *pgxpool.Pool) *AuditService {
	return &AuditService{
		repo: repository.NewAuditRepository(db),
	}
}

// создает новую запись в журнале аудита
func (s *AuditService) Log(ctx context.Context, userID int64, action, category string, details map[string]interface{}) {
	log := &domain.AuditLog{
		UserID:   userID,
		Action:   action,
		Category: category,
		Details:  details,
	}

	if err := s.repo.Create(ctx, log); err != nil {
		logger.Error("не удалось создать запись аудита", "error", err, "action", action, "user_id", userID)
	}
}

// создает запись аудита с информацией о запросе (ip, user-agent)
func (s *AuditService) LogWithRequest(ctx context.Context, userID int64, action, category, ip, userAgent string, details map[string]interface{}) {
	log := &domain.AuditLog{
		UserID:    userID,
		Action:    action,
		Category:  category,
		Details:   details,
		IP:        ip,
		UserAgent: userAgent,
	}

	if err := s.repo.Create(ctx, log); err != nil {
		logger.Error("не удалось создать запись аудита", "error", err, "action", action, "user_id", userID)
	}
}

// логирует завершенный раунд игры
func (s *AuditService) LogGame(ctx context.Context, userID int64, game domain.GameType, roundID string, bet, payout int64, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["game"] = string(game)
	details["round_id"] = roundID
	details["bet"] = bet
	details["payout"] = payout
	details["win"] = payout > 0

	s.Log(ctx, userID, domain.AuditActionGameEnd, domain.AuditCategoryGame, details)
}

// логирует начало раунда
func (s *AuditService) LogGameStart(ctx context.Context, userID int64, game domain.GameType, roundID string, bet int64) {
	details := map[string]interface{}{
		"game":     string(game),
		"round_id": roundID,
		"bet":      bet,
	}

	s.Log(ctx, userID, domain.AuditActionGameStart, domain.AuditCategoryGame, details)
}

// логирует регистрацию пользователя
func (s *AuditService) LogRegister(ctx context.Context, userID int64, ip, userAgent string) {
	s.LogWithRequest(ctx, userID, domain.AuditActionRegister, domain.AuditCategoryAuth, ip, userAgent, nil)
}

// логирует вход пользователя
func (s *AuditService) LogLogin(ctx context.Context, userID int64, ip, userAgent string) {
	s.LogWithRequest(ctx, userID, domain.AuditActionLogin, domain.AuditCategoryAuth, ip, userAgent, nil)
}

// логирует запрос коинов от банкрота
func (s *AuditService) LogCoinRequest(ctx context.Context, userID, requestID int64) {
	details := map[string]interface{}{
		"request_id": requestID,
	}

	s.Log(ctx, userID, domain.AuditActionCoinRequest, domain.AuditCategoryBalance, details)
}

// логирует действие администратора
func (s *AuditService) LogAdminAction(ctx context.Context, adminID int64, action string, targetUserID int64, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["admin_id"] = adminID
	details["target_user_id"] = targetUserID

	s.Log(ctx, targetUserID, action, domain.AuditCategoryAdmin, details)
}

// возвращает записи аудита для пользователя
func (s *AuditService) GetUserAuditLogs(ctx context.Context, userID int64, limit int) ([]*domain.AuditLog, error) {
	return s.repo.GetByUserID(ctx, userID, limit)
}

// возвращает последние записи аудита
func (s *AuditService) GetRecentLogs(ctx context.Context, limit int) ([]*domain.AuditLog, error) {
	return s.repo.GetRecent(ctx, limit)
}

// возвращает записи аудита по категории
func (s *AuditService) GetLogsByCategory(ctx context.Context, category string, limit int) ([]*domain.AuditLog, error) {
	return s.repo.GetByCategory(ctx, category, limit)
}
