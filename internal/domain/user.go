package domain

import "time"

type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Coins        int64     `db:"coins" json:"coins"`
	TotalWagered int64     `db:"total_wagered" json:"total_wagered"`
	TotalWon     int64     `db:"total_won" json:"total_won"`
	TotalLost    int64     `db:"total_lost" json:"total_lost"`
	GamesPlayed  int64     `db:"games_played" json:"games_played"`
	IsAdmin      bool      `db:"is_admin" json:"is_admin"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Стартовый баланс и лимиты ставок
const (
	StartingCoins   = 1000
	BankruptcyLimit = 10 // меньше этого - банкрот, пора просить коины
	DefaultMinBet   = 1
	DefaultMaxBet   = 500
)

// IsBankrupt - банкротом считается игрок, которому не хватает даже на
// минимальную осмысленную ставку
func (u *User) IsBankrupt() bool {
	return u.Coins < BankruptcyLimit
}

// NetProfit - суммарный результат игрока за все время
func (u *User) NetProfit() int64 {
	return u.TotalWon - u.TotalLost
}
