package service

import "errors"

var (
	ErrBetTooLow  = errors.New("ставка ниже минимальной")
	ErrBetTooHigh = errors.New("ставка превышает максимальную")
	ErrInvalidBet = errors.New("неверная сумма ставки")
)

// содержит конфигурацию лимитов ставок
type GameLimits struct {
	MinBet int64
	MaxBet int64
}

// проверяет ставки против настроенных лимитов; общий для всех игр
type GameService struct {
	limits GameLimits
}

// создает игровой сервис с заданными лимитами
func NewGameService(minBet, maxBet int64) *GameService {
	return &GameService{limits: GameLimits{MinBet: minBet, MaxBet: maxBet}}
}

// проверяет, находится ли ставка в разрешенных пределах
func (s *GameService) ValidateBet(bet int64) error {
	if bet <= 0 {
		return ErrInvalidBet
	}
	if bet < s.limits.MinBet {
		return ErrBetTooLow
	}
	if bet > s.limits.MaxBet {
		return ErrBetTooHigh
	}
	return nil
}

// возвращает текущие лимиты ставок
func (s *GameService) GetLimits() GameLimits {
	return s.limits
}
