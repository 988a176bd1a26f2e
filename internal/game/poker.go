package game

import (
	"fmt"
	"sort"
	"strings"
)

// PokerEdge - смещение видеопокера (8%)
const PokerEdge HouseEdge = 0.08

// Типы покерных комбинаций в порядке убывания старшинства
const (
	HandRoyalFlush    = "royal_flush"
	HandStraightFlush = "straight_flush"
	HandFourOfAKind   = "four_of_a_kind"
	HandFullHouse     = "full_house"
	HandFlush         = "flush"
	HandStraight      = "straight"
	HandThreeOfAKind  = "three_of_a_kind"
	HandTwoPair       = "two_pair"
	HandJacksOrBetter = "jacks_or_better"
	HandNothing       = "nothing"
)

// PokerPayouts - множители выплат "Jacks or Better"
var PokerPayouts = map[string]int64{
	HandRoyalFlush:    250,
	HandStraightFlush: 50,
	HandFourOfAKind:   25,
	HandFullHouse:     9,
	HandFlush:         6,
	HandStraight:      4,
	HandThreeOfAKind:  3,
	HandTwoPair:       2,
	HandJacksOrBetter: 1,
	HandNothing:       0,
}

// PokerState - состояние между раздачей и обменом
type PokerState struct {
	Hand []Card `json:"hand"`
	Deck []Card `json:"deck"`
}

// PokerResult - итог обмена
type PokerResult struct {
	Hand       []Card `json:"hand"`
	HandType   string `json:"hand_type"`
	Status     string `json:"status"`
	Multiplier int64  `json:"multiplier"`
	Payout     int64  `json:"payout"`
	Message    string `json:"message"`
}

// PokerGame реализует видеопокер со смещением в пользу казино
type PokerGame struct {
	Edge HouseEdge
}

// NewPokerGame создает движок видеопокера со стандартным смещением
func NewPokerGame() *PokerGame {
	return &PokerGame{Edge: PokerEdge}
}

// Deal раздает начальные 5 карт из перемешанной колоды
func (g *PokerGame) Deal() *PokerState {
	deck := NewDeck()
	ShuffleDeck(deck)

	hand := make([]Card, 0, 5)
	for i := 0; i < 5; i++ {
		hand = append(hand, popCard(&deck))
	}
	return &PokerState{Hand: hand, Deck: deck}
}

// validatePokerState проверяет целостность руки и колоды
func validatePokerState(s *PokerState) error {
	if len(s.Hand) != 5 {
		return ErrMalformedState
	}
	seen := make(map[Card]bool, 52)
	for _, group := range [][]Card{s.Hand, s.Deck} {
		for _, c := range group {
			if seen[c] {
				return ErrMalformedState
			}
			seen[c] = true
		}
	}
	if len(seen) != 52 {
		return ErrMalformedState
	}
	return nil
}

// Draw заменяет незадержанные карты и оценивает итоговую руку.
// С вероятностью edge замена подбирается так, чтобы не совпасть ни с одним
// рангом текущей руки ("безопасный промах" для казино).
func (g *PokerGame) Draw(state *PokerState, holdIndices []int, bet int64) (*PokerResult, error) {
	if err := validatePokerState(state); err != nil {
		return nil, err
	}
	held := make(map[int]bool, len(holdIndices))
	for _, i := range holdIndices {
		if i < 0 || i > 4 {
			return nil, fmt.Errorf("%w: hold index %d", ErrInvalidBetValue, i)
		}
		held[i] = true
	}

	for i := 0; i < 5; i++ {
		if held[i] {
			continue
		}
		if g.Edge.Triggered() {
			handRanks := make(map[string]bool, 5)
			for _, h := range state.Hand {
				handRanks[h.Rank] = true
			}
			miss := cardIndexes(state.Deck, func(c Card) bool {
				return !handRanks[c.Rank]
			})
			if len(miss) > 0 {
				state.Hand[i] = removeCard(&state.Deck, pickFrom(miss))
				continue
			}
		}
		state.Hand[i] = popCard(&state.Deck)
	}

	handType, multiplier := EvaluateHand(state.Hand)
	payout := bet * multiplier
	status := StatusWin
	verdict := "You win!"
	if multiplier == 0 {
		payout = -bet
		status = StatusLose
		verdict = "No winning hand."
	}

	return &PokerResult{
		Hand:       state.Hand,
		HandType:   handType,
		Status:     status,
		Multiplier: multiplier,
		Payout:     payout,
		Message:    fmt.Sprintf("%s! %s", handTypeTitle(handType), verdict),
	}, nil
}

// handTypeTitle превращает snake_case тип руки в заголовок для сообщения
func handTypeTitle(handType string) string {
	words := strings.Split(handType, "_")
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// EvaluateHand определяет комбинацию из 5 карт и её множитель выплаты.
// Первое совпадение сверху вниз: royal flush ... jacks or better, nothing.
func EvaluateHand(hand []Card) (string, int64) {
	ranks := make([]int, 0, 5)
	rankCounts := make(map[int]int, 5)
	suits := make(map[string]bool, 4)
	for _, c := range hand {
		r := rankOrder[c.Rank]
		ranks = append(ranks, r)
		rankCounts[r]++
		suits[c.Suit] = true
	}
	sort.Ints(ranks)

	isFlush := len(suits) == 1
	isStraight := isConsecutive(ranks) || isAceLowStraight(ranks)

	counts := make([]int, 0, 5)
	for _, n := range rankCounts {
		counts = append(counts, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	switch {
	case isFlush && isRoyal(ranks):
		return HandRoyalFlush, PokerPayouts[HandRoyalFlush]
	case isFlush && isStraight:
		return HandStraightFlush, PokerPayouts[HandStraightFlush]
	case counts[0] == 4:
		return HandFourOfAKind, PokerPayouts[HandFourOfAKind]
	case counts[0] == 3 && counts[1] == 2:
		return HandFullHouse, PokerPayouts[HandFullHouse]
	case isFlush:
		return HandFlush, PokerPayouts[HandFlush]
	case isStraight:
		return HandStraight, PokerPayouts[HandStraight]
	case counts[0] == 3:
		return HandThreeOfAKind, PokerPayouts[HandThreeOfAKind]
	case counts[0] == 2 && counts[1] == 2:
		return HandTwoPair, PokerPayouts[HandTwoPair]
	case counts[0] == 2:
		// пара засчитывается только от валетов и старше (J=9 ... A=12)
		for r, n := range rankCounts {
			if n == 2 && r >= rankOrder["J"] {
				return HandJacksOrBetter, PokerPayouts[HandJacksOrBetter]
			}
		}
	}
	return HandNothing, 0
}

// isConsecutive - 5 подряд идущих рангов (вход отсортирован)
func isConsecutive(ranks []int) bool {
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[0]+i {
			return false
		}
	}
	return true
}

// isAceLowStraight - стрит от туза: A-2-3-4-5
func isAceLowStraight(ranks []int) bool {
	want := []int{0, 1, 2, 3, 12}
	for i, r := range ranks {
		if r != want[i] {
			return false
		}
	}
	return true
}

// isRoyal - ранги 10-J-Q-K-A (вход отсортирован)
func isRoyal(ranks []int) bool {
	want := []int{8, 9, 10, 11, 12}
	for i, r := range ranks {
		if r != want[i] {
			return false
		}
	}
	return true
}
