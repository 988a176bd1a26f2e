package repository

import (
	"context"
	"errors"

	"casino_webapp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrRequestNotFound = errors.New("запрос коинов не найден")
	ErrRequestResolved = errors.New("запрос коинов уже обработан")
)

// отвечает за запросы коинов от банкротов
type CoinRequestRepository struct {
	db *pgxpool.Pool
}

// создает новый репозиторий запросов коинов
func NewCoinRequestRepository(db *pgxpool.Pool) *CoinRequestRepository {
	return &CoinRequestRepository{db: db}
}

// создает новый запрос в статусе pending
func (r *CoinRequestRepository) Create(ctx context.Context, userID int64, message string) (*domain.CoinRequest, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO coin_requests (user_id, message)
		VALUES ($1, $2)
		RETURNING id, user_id, message, status, resolved_by, resolved_at, created_at
	`, userID, message)

	var req domain.CoinRequest
	err := row.Scan(&req.ID, &req.UserID, &req.Message, &req.Status, &req.ResolvedBy, &req.ResolvedAt, &req.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// сообщает, есть ли у пользователя необработанный запрос
func (r *CoinRequestRepository) HasPending(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM coin_requests WHERE user_id = $1 AND status = $2)
	`, userID, domain.CoinRequestPending).Scan(&exists)
	return exists, err
}

// возвращает запросы пользователя, новые первыми
func (r *CoinRequestRepository) GetByUserID(ctx context.Context, userID int64, limit int) ([]*domain.CoinRequest, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, message, status, resolved_by, resolved_at, created_at
		FROM coin_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []*domain.CoinRequest
	for rows.Next() {
		var req domain.CoinRequest
		if err := rows.Scan(&req.ID, &req.UserID, &req.Message, &req.Status, &req.ResolvedBy, &req.ResolvedAt, &req.CreatedAt); err != nil {
			return nil, err
		}
		reqs = append(reqs, &req)
	}
	return reqs, rows.Err()
}

// возвращает необработанные запросы, старые первыми
func (r *CoinRequestRepository) GetPending(ctx context.Context, limit int) ([]*domain.CoinRequest, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.user_id, u.username, r.message, r.status, r.resolved_by, r.resolved_at, r.created_at
		FROM coin_requests r
		JOIN users u ON u.id = r.user_id
		WHERE r.status = $1
		ORDER BY r.created_at ASC
		LIMIT $2
	`, domain.CoinRequestPending, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []*domain.CoinRequest
	for rows.Next() {
		var req domain.CoinRequest
		if err := rows.Scan(&req.ID, &req.UserID, &req.Username, &req.Message, &req.Status, &req.ResolvedBy, &req.ResolvedAt, &req.CreatedAt); err != nil {
			return nil, err
		}
		reqs = append(reqs, &req)
	}
	return reqs, rows.Err()
}

// переводит pending-запрос в конечный статус внутри транзакции.
// Блокировка строки не дает двум админам обработать один запрос.
func (r *CoinRequestRepository) ResolveWithTx(ctx context.Context, tx pgx.Tx, id, adminID int64, status string) (*domain.CoinRequest, error) {
	row := tx.QueryRow(ctx, `
		SELECT id, user_id, message, status, resolved_by, resolved_at, created_at
		FROM coin_requests WHERE id = $1 FOR UPDATE
	`, id)

	var req domain.CoinRequest
	err := row.Scan(&req.ID, &req.UserID, &req.Message, &req.Status, &req.ResolvedBy, &req.ResolvedAt, &req.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	if req.Status != domain.CoinRequestPending {
		return nil, ErrRequestResolved
	}

	_, err = tx.Exec(ctx, `
		UPDATE coin_requests
		SET status = $2, resolved_by = $3, resolved_at = NOW()
		WHERE id = $1
	`, id, status, adminID)
	if err != nil {
		return nil, err
	}
	req.Status = status
	req.ResolvedBy = &adminID
	return &req, nil
}
