package domain

import "time"

// Статусы запроса коинов
const (
	CoinRequestPending  = "pending"
	CoinRequestApproved = "approved"
	CoinRequestDenied   = "denied"
)

// Сколько коинов выдается по одобренному запросу
const CoinRequestGrant = 500

// CoinRequest - просьба банкрота о пополнении. Решение принимает админ
// через телеграм-бота или админский эндпоинт.
type CoinRequest struct {
	ID         int64      `db:"id" json:"id"`
	UserID     int64      `db:"user_id" json:"user_id"`
	Username   string     `db:"username" json:"username"`
	Message    string     `db:"message" json:"message,omitempty"`
	Status     string     `db:"status" json:"status"`
	ResolvedBy *int64     `db:"resolved_by" json:"resolved_by,omitempty"`
	ResolvedAt *time.Time `db:"resolved_at" json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}
