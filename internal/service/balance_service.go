package service

import (
	"context"
	"errors"

	"casino_webapp/internal/domain"
	"casino_webapp/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInsufficientFunds = errors.New("недостаточно средств")
	ErrUserNotFound      = errors.New("пользователь не найден")
	ErrInvalidAmount     = errors.New("неверная сумма")
)

// обрабатывает все операции с балансом: ставки, расчеты раундов,
// админские начисления. Каждая операция атомарна и оставляет след в леджере.
type BalanceService struct {
	db              *pgxpool.Pool
	userRepo        *repository.UserRepository
	transactionRepo *repository.TransactionRepository
	historyRepo     *repository.HistoryRepository
}

// создает новый сервис баланса
func NewBalanceService(db *pgxpool.Pool) *BalanceService {
	return &BalanceService{
		db:              db,
		userRepo:        repository.NewUserRepository(db),
		transactionRepo: repository.NewTransactionRepository(db),
		historyRepo:     repository.NewHistoryRepository(db),
	}
}

// возвращает текущий баланс пользователя
func (s *BalanceService) GetBalance(ctx context.Context, userID int64) (int64, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return u.Coins, nil
}

// списывает ставку в начале раунда: блокирует строку пользователя,
// проверяет средства, обновляет статистику и пишет дебет в леджер
func (s *BalanceService) PlaceBet(ctx context.Context, userID, bet int64, game domain.GameType, roundID string) (newBalance int64, err error) {
	if bet <= 0 {
		return 0, ErrInvalidAmount
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	u, err := s.userRepo.GetByIDForUpdate(ctx, tx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	if u.Coins < bet {
		return 0, ErrInsufficientFunds
	}

	u.Coins -= bet
	u.TotalWagered += bet
	u.GamesPlayed++
	if err = s.userRepo.UpdateBalanceWithTx(ctx, tx, u); err != nil {
		return 0, err
	}

	record := &domain.Transaction{
		UserID:  userID,
		Type:    domain.TxTypeBet,
		Amount:  -bet,
		Game:    string(game),
		RoundID: roundID,
	}
	if err = s.transactionRepo.CreateWithTx(ctx, tx, record); err != nil {
		return 0, err
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, err
	}
	return u.Coins, nil
}

// списывает дополнительную ставку в середине раунда (удвоение в блэкджеке).
// Статистика ставок растет, но счетчик сыгранных игр не трогается.
func (s *BalanceService) PlaceExtraBet(ctx context.Context, userID, bet int64, game domain.GameType, roundID string) (newBalance int64, err error) {
	if bet <= 0 {
		return 0, ErrInvalidAmount
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	u, err := s.userRepo.GetByIDForUpdate(ctx, tx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	if u.Coins < bet {
		return 0, ErrInsufficientFunds
	}

	u.Coins -= bet
	u.TotalWagered += bet
	if err = s.userRepo.UpdateBalanceWithTx(ctx, tx, u); err != nil {
		return 0, err
	}

	record := &domain.Transaction{
		UserID:  userID,
		Type:    domain.TxTypeBet,
		Amount:  -bet,
		Game:    string(game),
		RoundID: roundID,
	}
	if err = s.transactionRepo.CreateWithTx(ctx, tx, record); err != nil {
		return 0, err
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, err
	}
	return u.Coins, nil
}

// рассчитывает завершенный раунд. Ставка уже списана в PlaceBet, поэтому
// при payout >= 0 пользователю возвращается ставка плюс выигрыш, при
// отрицательном payout деньги уже у казино. История раунда пишется в той
// же транзакции.
func (s *BalanceService) Settle(ctx context.Context, userID, bet, payout int64, game domain.GameType, roundID, details string) (newBalance int64, err error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	u, err := s.userRepo.GetByIDForUpdate(ctx, tx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}

	if payout >= 0 {
		credit := bet + payout
		u.Coins += credit
		if payout > 0 {
			u.TotalWon += payout
		}
		record := &domain.Transaction{
			UserID:  userID,
			Type:    domain.TxTypePayout,
			Amount:  credit,
			Game:    string(game),
			RoundID: roundID,
		}
		if err = s.transactionRepo.CreateWithTx(ctx, tx, record); err != nil {
			return 0, err
		}
	} else {
		u.TotalLost += -payout
	}

	if err = s.userRepo.UpdateBalanceWithTx(ctx, tx, u); err != nil {
		return 0, err
	}

	history := &domain.GameHistory{
		UserID:  userID,
		Game:    game,
		RoundID: roundID,
		Bet:     bet,
		Payout:  payout,
		Won:     payout > 0,
		Details: details,
	}
	if err = s.historyRepo.CreateWithTx(ctx, tx, history); err != nil {
		return 0, err
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, err
	}
	return u.Coins, nil
}

// начисляет коины вне игрового цикла (одобренный запрос, стартовый бонус)
func (s *BalanceService) Grant(ctx context.Context, userID, amount int64, txType string) (newBalance int64, err error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	u, err := s.userRepo.GetByIDForUpdate(ctx, tx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}

	u.Coins += amount
	if err = s.userRepo.UpdateBalanceWithTx(ctx, tx, u); err != nil {
		return 0, err
	}

	record := &domain.Transaction{
		UserID: userID,
		Type:   txType,
		Amount: amount,
	}
	if err = s.transactionRepo.CreateWithTx(ctx, tx, record); err != nil {
		return 0, err
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, err
	}
	return u.Coins, nil
}

// возвращает историю транзакций пользователя
func (s *BalanceService) GetTransactionHistory(ctx context.Context, userID int64, limit int) ([]*domain.Transaction, error) {
	return s.transactionRepo.GetByUserID(ctx, userID, limit)
}

// возвращает историю сыгранных раундов
func (s *BalanceService) GetGameHistory(ctx context.Context, userID int64, game domain.GameType, limit int) ([]*domain.GameHistory, error) {
	return s.historyRepo.GetByUserID(ctx, userID, game, limit)
}
