package domain

import "time"

// Transaction - строка леджера. Amount подписанный: дебет ставки
// отрицательный, кредит выплаты положительный.
type Transaction struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Type      string    `db:"type" json:"type"`
	Amount    int64     `db:"amount" json:"amount"`
	Game      string    `db:"game" json:"game,omitempty"`
	RoundID   string    `db:"round_id" json:"round_id,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Типы транзакций
const (
	TxTypeBet     = "bet"
	TxTypePayout  = "payout"
	TxTypeGrant   = "grant"   // начисление от админа по запросу коинов
	TxTypeInitial = "initial" // стартовый баланс при регистрации
)
