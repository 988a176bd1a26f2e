package game

import (
	"fmt"
	"strconv"
)

// RouletteEdge - дополнительное смещение рулетки (6%) поверх естественного
// преимущества американского колеса (~5.26%)
const RouletteEdge HouseEdge = 0.06

// Американское колесо: 38 лунок - 0, 00 и 1..36.
// Лунки кодируются как int, pocketDoubleZero обозначает "00".
const pocketDoubleZero = 37

// Типы ставок рулетки
const (
	RouletteBetNumber  = "number"
	RouletteBetColor   = "color"
	RouletteBetOddEven = "odd_even"
	RouletteBetHighLow = "high_low"
	RouletteBetDozen   = "dozen"
	RouletteBetColumn  = "column"
)

// Стандартные красные и черные номера американской разметки
var (
	rouletteRed = map[int]bool{
		1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
		14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
		25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
	}
	rouletteBlack = map[int]bool{
		2: true, 4: true, 6: true, 8: true, 10: true, 11: true,
		13: true, 15: true, 17: true, 20: true, 22: true, 24: true,
		26: true, 28: true, 29: true, 31: true, 33: true, 35: true,
	}
)

// RouletteResult - итог одного вращения
type RouletteResult struct {
	Result   string `json:"result"` // "0", "00", "1".."36"
	Color    string `json:"color"`
	Won      bool   `json:"won"`
	Payout   int64  `json:"payout"`
	BetType  string `json:"bet_type"`
	BetValue string `json:"bet_value"`
	Message  string `json:"message"`
}

// RouletteGame реализует американскую рулетку со смещением в пользу казино
type RouletteGame struct {
	Edge HouseEdge
}

// NewRouletteGame создает движок рулетки со стандартным смещением
func NewRouletteGame() *RouletteGame {
	return &RouletteGame{Edge: RouletteEdge}
}

// PocketLabel возвращает текстовое обозначение лунки
func PocketLabel(p int) string {
	if p == pocketDoubleZero {
		return "00"
	}
	return strconv.Itoa(p)
}

// pocketColor классифицирует лунку: 0 и 00 зеленые
func pocketColor(p int) string {
	switch {
	case rouletteRed[p]:
		return "red"
	case rouletteBlack[p]:
		return "black"
	default:
		return "green"
	}
}

// Spin вращает колесо: с вероятностью edge результат выбирается равномерно
// из проигрышного для данной ставки множества, иначе равномерно из всех 38
func (g *RouletteGame) Spin(betType, betValue string, betAmount int64) (*RouletteResult, error) {
	if err := validateRouletteBet(betType, betValue); err != nil {
		return nil, err
	}

	// лунки нумеруются 0..37, поэтому проигрышное множество - это сразу
	// множество выгодных казино индексов
	pocket := g.Edge.PickIndex(38, losingPockets(betType, betValue))

	won, multiplier := rouletteCheckWin(betType, betValue, pocket)
	payout := -betAmount
	verdict := "You lose."
	if won {
		payout = betAmount * multiplier
		verdict = "You win!"
	}

	color := pocketColor(pocket)
	return &RouletteResult{
		Result:   PocketLabel(pocket),
		Color:    color,
		Won:      won,
		Payout:   payout,
		BetType:  betType,
		BetValue: betValue,
		Message:  fmt.Sprintf("Ball landed on %s (%s). %s", PocketLabel(pocket), color, verdict),
	}, nil
}

// validateRouletteBet проверяет область значения для каждого типа ставки
func validateRouletteBet(betType, betValue string) error {
	switch betType {
	case RouletteBetNumber:
		n, err := strconv.Atoi(betValue)
		if err != nil || n < 1 || n > 36 {
			return fmt.Errorf("%w: number %q", ErrInvalidBetValue, betValue)
		}
	case RouletteBetColor:
		if betValue != "red" && betValue != "black" {
			return fmt.Errorf("%w: color %q", ErrInvalidBetValue, betValue)
		}
	case RouletteBetOddEven:
		if betValue != "odd" && betValue != "even" {
			return fmt.Errorf("%w: odd_even %q", ErrInvalidBetValue, betValue)
		}
	case RouletteBetHighLow:
		if betValue != "high" && betValue != "low" {
			return fmt.Errorf("%w: high_low %q", ErrInvalidBetValue, betValue)
		}
	case RouletteBetDozen, RouletteBetColumn:
		n, err := strconv.Atoi(betValue)
		if err != nil || n < 1 || n > 3 {
			return fmt.Errorf("%w: %s %q", ErrInvalidBetValue, betType, betValue)
		}
	default:
		return fmt.Errorf("%w: bet type %q", ErrInvalidBetValue, betType)
	}
	return nil
}

// losingPockets возвращает лунки, проигрышные для данной ставки.
// 0 и 00 входят в любое проигрышное множество.
func losingPockets(betType, betValue string) []int {
	var losing []int
	for p := 0; p <= pocketDoubleZero; p++ {
		if won, _ := rouletteCheckWin(betType, betValue, p); !won {
			losing = append(losing, p)
		}
	}
	return losing
}

// rouletteCheckWin определяет исход ставки и множитель выплаты
func rouletteCheckWin(betType, betValue string, pocket int) (bool, int64) {
	// зеро и дабл-зеро проигрывают любую ставку
	if pocket == 0 || pocket == pocketDoubleZero {
		return false, 0
	}

	switch betType {
	case RouletteBetNumber:
		n, _ := strconv.Atoi(betValue)
		return pocket == n, 35
	case RouletteBetColor:
		if betValue == "red" {
			return rouletteRed[pocket], 1
		}
		return rouletteBlack[pocket], 1
	case RouletteBetOddEven:
		if betValue == "odd" {
			return pocket%2 == 1, 1
		}
		return pocket%2 == 0, 1
	case RouletteBetHighLow:
		if betValue == "high" {
			return pocket >= 19 && pocket <= 36, 1
		}
		return pocket >= 1 && pocket <= 18, 1
	case RouletteBetDozen:
		n, _ := strconv.Atoi(betValue)
		return pocket >= (n-1)*12+1 && pocket <= n*12, 2
	case RouletteBetColumn:
		n, _ := strconv.Atoi(betValue)
		return pocket%3 == n%3, 2
	}
	return false, 0
}
