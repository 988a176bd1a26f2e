package domain

import "time"

// Логирование важных действий
type AuditLog struct {
	ID        int64                  `db:"id" json:"id"`
	UserID    int64                  `db:"user_id" json:"user_id"`
	Action    string                 `db:"action" json:"action"`
	Category  string                 `db:"category" json:"category"`
	Details   map[string]interface{} `db:"details" json:"details"`
	IP        string                 `db:"ip" json:"ip,omitempty"`
	UserAgent string                 `db:"user_agent" json:"user_agent,omitempty"`
	CreatedAt time.Time              `db:"created_at" json:"created_at"`
}

// Категории совершенных действий
const (
	AuditCategoryAuth    = "auth"
	AuditCategoryGame    = "game"
	AuditCategoryBalance = "balance"
	AuditCategoryAdmin   = "admin"
)

const (
	// Авторизация
	AuditActionRegister = "register"
	AuditActionLogin    = "login"

	// Игры
	AuditActionGameStart = "game_start"
	AuditActionGameEnd   = "game_end"
	AuditActionGameBet   = "game_bet"

	// Баланс
	AuditActionBalanceCredit = "balance_credit"
	AuditActionBalanceDebit  = "balance_debit"
	AuditActionCoinRequest   = "coin_request"

	// Действия админов
	AuditActionAdminGrantCoins = "admin_grant_coins"
	AuditActionAdminDenyCoins  = "admin_deny_coins"
)
