package repository

import (
	"context"
	"strconv"

	"casino_webapp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// отвечает за историю сыгранных раундов
type HistoryRepository struct {
	db *pgxpool.Pool
}

// создает новый репозиторий истории игр
func NewHistoryRepository(db *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// создает запись истории внутри транзакции расчета раунда
func (r *HistoryRepository) CreateWithTx(ctx context.Context, tx pgx.Tx, h *domain.GameHistory) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO game_history (user_id, game, round_id, bet, payout, won, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, h.UserID, h.Game, h.RoundID, h.Bet, h.Payout, h.Won, h.Details)
	return err
}

// возвращает последние раунды пользователя, опционально по одной игре
func (r *HistoryRepository) GetByUserID(ctx context.Context, userID int64, game domain.GameType, limit int) ([]*domain.GameHistory, error) {
	query := `
		SELECT id, user_id, game, round_id, bet, payout, won, details, created_at
		FROM game_history
		WHERE user_id = $1
	`
	args := []interface{}{userID}
	if game != "" {
		query += ` AND game = $2`
		args = append(args, game)
	}
	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)+1)
	args = append(args, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hist []*domain.GameHistory
	for rows.Next() {
		var h domain.GameHistory
		if err := rows.Scan(&h.ID, &h.UserID, &h.Game, &h.RoundID, &h.Bet, &h.Payout, &h.Won, &h.Details, &h.CreatedAt); err != nil {
			return nil, err
		}
		hist = append(hist, &h)
	}
	return hist, rows.Err()
}

// агрегированная статистика по играм для профиля
func (r *HistoryRepository) GetStatsByGame(ctx context.Context, userID int64) (map[domain.GameType]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT game, COUNT(*)
		FROM game_history
		WHERE user_id = $1
		GROUP BY game
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make(map[domain.GameType]int64)
	for rows.Next() {
		var game domain.GameType
		var count int64
		if err := rows.Scan(&game, &count); err != nil {
			return nil, err
		}
		stats[game] = count
	}
	return stats, rows.Err()
}
