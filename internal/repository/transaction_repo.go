package repository

import (
	"context"

	"casino_webapp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// отвечает за операции с леджером транзакций
type TransactionRepository struct {
	db *pgxpool.Pool
}

// создает новый репозиторий транзакций
func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// создает запись в леджере
func (r *TransactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO transactions (user_id, type, amount, game, round_id)
		VALUES ($1, $2, $3, $4, $5)
	`, t.UserID, t.Type, t.Amount, t.Game, t.RoundID)
	return err
}

// создает запись в леджере внутри транзакции: строка появляется
// атомарно с изменением баланса
func (r *TransactionRepository) CreateWithTx(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO transactions (user_id, type, amount, game, round_id)
		VALUES ($1, $2, $3, $4, $5)
	`, t.UserID, t.Type, t.Amount, t.Game, t.RoundID)
	return err
}

// возвращает последние записи леджера пользователя
func (r *TransactionRepository) GetByUserID(ctx context.Context, userID int64, limit int) ([]*domain.Transaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, type, amount, game, round_id, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []*domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Game, &t.RoundID, &t.CreatedAt); err != nil {
			return nil, err
		}
		txs = append(txs, &t)
	}
	return txs, rows.Err()
}
