package game

import (
	"fmt"
	"strconv"
)

// DiceEdge - смещение игры в кости (7%)
const DiceEdge HouseEdge = 0.07

// Типы ставок на сумму двух кубиков
const (
	DiceBetExact   = "exact"
	DiceBetOver    = "over"
	DiceBetUnder   = "under"
	DiceBetOddEven = "odd_even"
	DiceBetSeven   = "seven"
)

// diceExactPayouts - множители точной суммы, приближенные к честным шансам
var diceExactPayouts = map[int]int64{
	2: 35, 3: 17, 4: 11, 5: 8, 6: 6, 7: 5, 8: 6, 9: 8, 10: 11, 11: 17, 12: 35,
}

// DiceResult - итог одного броска
type DiceResult struct {
	Die1     int    `json:"die1"`
	Die2     int    `json:"die2"`
	Total    int    `json:"total"`
	Won      bool   `json:"won"`
	Payout   int64  `json:"payout"`
	BetType  string `json:"bet_type"`
	BetValue string `json:"bet_value"`
	Message  string `json:"message"`
}

// DiceGame реализует бросок двух кубиков со смещением в пользу казино
type DiceGame struct {
	Edge HouseEdge
}

// NewDiceGame создает движок костей со стандартным смещением
func NewDiceGame() *DiceGame {
	return &DiceGame{Edge: DiceEdge}
}

// rollDie бросает один честный кубик (1-6)
func rollDie() int {
	return int(secureRandInt(6)) + 1
}

// Roll бросает два кубика. Если честный бросок выигрывает, с вероятностью
// edge выполняется до 3 перебросов в поисках проигрышной суммы; последний
// бросок засчитывается в любом случае.
func (g *DiceGame) Roll(betType, betValue string, betAmount int64) (*DiceResult, error) {
	if err := validateDiceBet(betType, betValue); err != nil {
		return nil, err
	}

	die1, die2 := rollDie(), rollDie()
	total := die1 + die2

	if diceCheckWin(betType, betValue, total) && g.Edge.Triggered() {
		for i := 0; i < 3; i++ {
			die1, die2 = rollDie(), rollDie()
			total = die1 + die2
			if !diceCheckWin(betType, betValue, total) {
				break
			}
		}
	}

	won := diceCheckWin(betType, betValue, total)
	payout := -betAmount
	verdict := "You lose."
	if won {
		payout = betAmount * dicePayout(betType, betValue)
		verdict = "You win!"
	}

	return &DiceResult{
		Die1:     die1,
		Die2:     die2,
		Total:    total,
		Won:      won,
		Payout:   payout,
		BetType:  betType,
		BetValue: betValue,
		Message:  fmt.Sprintf("Rolled %d + %d = %d. %s", die1, die2, total, verdict),
	}, nil
}

// validateDiceBet проверяет область значения для каждого типа ставки
func validateDiceBet(betType, betValue string) error {
	switch betType {
	case DiceBetExact:
		n, err := strconv.Atoi(betValue)
		if err != nil || n < 2 || n > 12 {
			return fmt.Errorf("%w: exact %q", ErrInvalidBetValue, betValue)
		}
	case DiceBetOver, DiceBetUnder:
		n, err := strconv.Atoi(betValue)
		if err != nil || n < 2 || n > 12 {
			return fmt.Errorf("%w: %s %q", ErrInvalidBetValue, betType, betValue)
		}
	case DiceBetOddEven:
		if betValue != "odd" && betValue != "even" {
			return fmt.Errorf("%w: odd_even %q", ErrInvalidBetValue, betValue)
		}
	case DiceBetSeven:
		// значение не используется
	default:
		return fmt.Errorf("%w: bet type %q", ErrInvalidBetValue, betType)
	}
	return nil
}

// diceCheckWin определяет, выигрывает ли сумма для данной ставки
func diceCheckWin(betType, betValue string, total int) bool {
	switch betType {
	case DiceBetExact:
		n, _ := strconv.Atoi(betValue)
		return total == n
	case DiceBetOver:
		n, _ := strconv.Atoi(betValue)
		return total > n
	case DiceBetUnder:
		n, _ := strconv.Atoi(betValue)
		return total < n
	case DiceBetOddEven:
		return (total%2 == 1) == (betValue == "odd")
	case DiceBetSeven:
		return total == 7
	}
	return false
}

// dicePayout возвращает множитель выигрышной ставки
func dicePayout(betType, betValue string) int64 {
	switch betType {
	case DiceBetExact:
		n, _ := strconv.Atoi(betValue)
		if m, ok := diceExactPayouts[n]; ok {
			return m
		}
		return 5
	case DiceBetSeven:
		return 4
	default:
		return 1
	}
}
