package service

import (
	"context"
	"errors"

	"casino_webapp/internal/domain"
	"casino_webapp/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotBankrupt        = errors.New("баланс еще позволяет играть")
	ErrRequestAlreadyOpen = errors.New("запрос коинов уже на рассмотрении")
)

// обрабатывает запросы коинов со стороны игрока
type CoinRequestService struct {
	userRepo    *repository.UserRepository
	requestRepo *repository.CoinRequestRepository
	audit       *AuditService
}

// создает новый сервис запросов коинов
func NewCoinRequestService(db *pgxpool.Pool) *CoinRequestService {
	return &CoinRequestService{
		userRepo:    repository.NewUserRepository(db),
		requestRepo: repository.NewCoinRequestRepository(db),
		audit:       NewAuditService(db),
	}
}

// создает запрос коинов. Доступно только банкротам и только если нет
// другого необработанного запроса.
func (s *CoinRequestService) Request(ctx context.Context, userID int64, message string) (*domain.CoinRequest, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !user.IsBankrupt() {
		return nil, ErrNotBankrupt
	}

	pending, err := s.requestRepo.HasPending(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrRequestAlreadyOpen
	}

	req, err := s.requestRepo.Create(ctx, userID, message)
	if err != nil {
		return nil, err
	}
	req.Username = user.Username

	s.audit.LogCoinRequest(ctx, userID, req.ID)
	return req, nil
}

// возвращает собственные запросы пользователя, включая обработанные
func (s *CoinRequestService) MyRequests(ctx context.Context, userID int64, limit int) ([]*domain.CoinRequest, error) {
	return s.requestRepo.GetByUserID(ctx, userID, limit)
}
