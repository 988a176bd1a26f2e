package repository

import (
	"context"
	"errors"

	"casino_webapp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUserNotFound = errors.New("пользователь не найден")

// отвечает за операции с базой данных для пользователей
type UserRepository struct {
	db *pgxpool.Pool
}

// создает новый репозиторий пользователей
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, password_hash, coins, total_wagered, total_won, total_lost, games_played, is_admin, created_at`

// создает пользователя со стартовым балансом
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (username, password_hash, coins)
		VALUES ($1, $2, $3)
		RETURNING `+userColumns, username, passwordHash, domain.StartingCoins)
	return scanUser(row)
}

// возвращает пользователя по id
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// возвращает пользователя по имени
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

// возвращает пользователя внутри транзакции с блокировкой строки.
// Вся математика баланса обязана идти через этот метод.
func (r *UserRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.User, error) {
	row := tx.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
	return scanUser(row)
}

// записывает баланс и игровую статистику внутри транзакции
func (r *UserRepository) UpdateBalanceWithTx(ctx context.Context, tx pgx.Tx, u *domain.User) error {
	_, err := tx.Exec(ctx, `
		UPDATE users
		SET coins = $2, total_wagered = $3, total_won = $4, total_lost = $5, games_played = $6
		WHERE id = $1
	`, u.ID, u.Coins, u.TotalWagered, u.TotalWon, u.TotalLost, u.GamesPlayed)
	return err
}

// начисляет коины вне игрового цикла (одобренный запрос коинов)
func (r *UserRepository) AddCoinsWithTx(ctx context.Context, tx pgx.Tx, userID, amount int64) error {
	_, err := tx.Exec(ctx, `UPDATE users SET coins = coins + $2 WHERE id = $1`, userID, amount)
	return err
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Coins,
		&u.TotalWagered, &u.TotalWon, &u.TotalLost, &u.GamesPlayed,
		&u.IsAdmin, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
