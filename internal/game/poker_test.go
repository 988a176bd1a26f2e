package game

import "testing"

func hand(cards ...string) []Card {
	// формат "Ah" = туз червей, "10s" = десятка пик
	suitMap := map[byte]string{'h': "hearts", 'd': "diamonds", 'c': "clubs", 's': "spades"}
	out := make([]Card, 0, len(cards))
	for _, s := range cards {
		rank := s[:len(s)-1]
		suit := suitMap[s[len(s)-1]]
		out = append(out, Card{Rank: rank, Suit: suit})
	}
	return out
}

func TestEvaluateHand_Rankings(t *testing.T) {
	cases := []struct {
		name  string
		cards []string
		want  string
	}{
		{"роял-флеш", []string{"10h", "Jh", "Qh", "Kh", "Ah"}, HandRoyalFlush},
		{"стрит-флеш", []string{"5c", "6c", "7c", "8c", "9c"}, HandStraightFlush},
		{"стрит-флеш от туза", []string{"Ad", "2d", "3d", "4d", "5d"}, HandStraightFlush},
		{"каре", []string{"9h", "9d", "9c", "9s", "2h"}, HandFourOfAKind},
		{"фулл-хаус", []string{"2c", "2d", "2h", "5s", "5c"}, HandFullHouse},
		{"флеш", []string{"2h", "5h", "9h", "Jh", "Kh"}, HandFlush},
		{"стрит", []string{"5c", "6d", "7h", "8s", "9c"}, HandStraight},
		{"стрит от туза", []string{"Ac", "2d", "3h", "4s", "5c"}, HandStraight},
		{"тройка", []string{"7h", "7d", "7c", "2s", "9h"}, HandThreeOfAKind},
		{"две пары", []string{"4h", "4d", "9c", "9s", "Kh"}, HandTwoPair},
		{"пара валетов", []string{"Jh", "Jd", "2c", "5s", "9h"}, HandJacksOrBetter},
		{"пара тузов", []string{"Ah", "Ad", "2c", "5s", "9h"}, HandJacksOrBetter},
		{"пара десяток не считается", []string{"10h", "10d", "2c", "5s", "9h"}, HandNothing},
		{"старшая карта", []string{"2h", "5d", "9c", "Js", "Kh"}, HandNothing},
	}
	for _, tc := range cases {
		got, mult := EvaluateHand(hand(tc.cards...))
		if got != tc.want {
			t.Errorf("%s: получено %s, ожидалось %s", tc.name, got, tc.want)
		}
		if mult != PokerPayouts[tc.want] {
			t.Errorf("%s: множитель %d не совпадает с таблицей", tc.name, mult)
		}
	}
}

func TestPokerDeal_FiveCardsDeckIntact(t *testing.T) {
	g := NewPokerGame()
	state := g.Deal()
	if len(state.Hand) != 5 || len(state.Deck) != 47 {
		t.Fatalf("раздача: рука %d, колода %d", len(state.Hand), len(state.Deck))
	}
	if err := validatePokerState(state); err != nil {
		t.Fatalf("состояние после раздачи невалидно: %v", err)
	}
}

func TestPokerDraw_HoldAllKeepsHand(t *testing.T) {
	g := NewPokerGame()
	state := g.Deal()
	before := append([]Card{}, state.Hand...)

	res, err := g.Draw(state, []int{0, 1, 2, 3, 4}, 10)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	for i, c := range res.Hand {
		if c != before[i] {
			t.Fatalf("задержанная карта %d изменилась: %v -> %v", i, before[i], c)
		}
	}
}

func TestPokerDraw_ReplacesAndStaysConsistent(t *testing.T) {
	g := &PokerGame{Edge: 0}
	state := g.Deal()
	discarded := append([]Card{}, state.Hand...)

	res, err := g.Draw(state, nil, 10)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if len(res.Hand) != 5 {
		t.Fatalf("в руке %d карт", len(res.Hand))
	}
	// сброшенные карты выходят из игры: рука + колода = 47 уникальных карт
	seen := make(map[Card]bool)
	for _, c := range append(append([]Card{}, res.Hand...), state.Deck...) {
		if seen[c] {
			t.Fatalf("дубликат карты %v после обмена", c)
		}
		seen[c] = true
	}
	if len(seen) != 47 {
		t.Fatalf("всего карт %d, ожидалось 47", len(seen))
	}
	for _, c := range discarded {
		if seen[c] {
			t.Fatalf("сброшенная карта %v вернулась в игру", c)
		}
	}
}

func TestPokerDrawBiased_ReplacementMissesHandRanks(t *testing.T) {
	// с Edge=1 замена всегда подбирается мимо рангов текущей руки
	g := &PokerGame{Edge: 1}
	for i := 0; i < 300; i++ {
		state := g.Deal()
		before := append([]Card{}, state.Hand...)

		res, err := g.Draw(state, []int{0, 1, 2, 3}, 10)
		if err != nil {
			t.Fatalf("draw: %v", err)
		}
		for _, c := range before {
			if res.Hand[4].Rank == c.Rank {
				t.Fatalf("замена %v совпала по рангу с рукой %v", res.Hand[4], before)
			}
		}
	}
}

func TestPokerDraw_PayoutSign(t *testing.T) {
	g := &PokerGame{Edge: 0}
	state := &PokerState{Hand: hand("10h", "Jh", "Qh", "Kh", "Ah")}
	for _, c := range NewDeck() {
		if !containsCard(state.Hand, c) {
			state.Deck = append(state.Deck, c)
		}
	}

	res, err := g.Draw(state, []int{0, 1, 2, 3, 4}, 4)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if res.HandType != HandRoyalFlush || res.Payout != 4*250 || res.Status != StatusWin {
		t.Fatalf("роял-флеш: %s payout=%d status=%s", res.HandType, res.Payout, res.Status)
	}
}

func TestPokerDraw_InvalidHoldIndex(t *testing.T) {
	g := NewPokerGame()
	state := g.Deal()
	if _, err := g.Draw(state, []int{5}, 10); err == nil {
		t.Fatal("ожидалась ошибка для hold-индекса вне 0..4")
	}
}

func TestPokerDraw_MalformedState(t *testing.T) {
	g := NewPokerGame()
	state := g.Deal()
	state.Hand[0] = state.Hand[1] // дубликат
	if _, err := g.Draw(state, nil, 10); err == nil {
		t.Fatal("ожидалась ошибка для повреждённого состояния")
	}
}
