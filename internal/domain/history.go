package domain

import "time"

// Игры казино
type GameType string

const (
	GameBlackjack   GameType = "blackjack"
	GamePoker       GameType = "poker"
	GameRoulette    GameType = "roulette"
	GameDice        GameType = "dice"
	GameMinesweeper GameType = "minesweeper"
)

// AllGames перечисляет поддерживаемые игры в стабильном порядке
var AllGames = []GameType{GameBlackjack, GamePoker, GameRoulette, GameDice, GameMinesweeper}

func (g GameType) Valid() bool {
	for _, known := range AllGames {
		if g == known {
			return true
		}
	}
	return false
}

// GameHistory - завершенный раунд в истории игрока. Payout подписанный:
// чистый результат раунда без учета возврата ставки.
type GameHistory struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Game      GameType  `db:"game" json:"game"`
	RoundID   string    `db:"round_id" json:"round_id"`
	Bet       int64     `db:"bet" json:"bet"`
	Payout    int64     `db:"payout" json:"payout"`
	Won       bool      `db:"won" json:"won"`
	Details   string    `db:"details" json:"details,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
