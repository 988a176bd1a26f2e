package game

import "testing"

// buildState собирает валидное состояние: указанные руки, остальная колода
func buildState(t *testing.T, player, dealer []Card, topCards ...Card) *BlackjackState {
	t.Helper()
	inHands := make(map[Card]bool)
	for _, c := range append(append([]Card{}, player...), dealer...) {
		inHands[c] = true
	}
	for _, c := range topCards {
		if inHands[c] {
			t.Fatalf("карта %v и в руке, и на верху колоды", c)
		}
	}
	var deck []Card
	for _, c := range NewDeck() {
		skip := inHands[c]
		for _, top := range topCards {
			if c == top {
				skip = true
			}
		}
		if !skip {
			deck = append(deck, c)
		}
	}
	// верхние карты кладутся в конец: popCard снимает последнюю
	for i := len(topCards) - 1; i >= 0; i-- {
		deck = append(deck, topCards[i])
	}
	return &BlackjackState{Deck: deck, PlayerHand: player, DealerHand: dealer}
}

func fairBlackjack() *BlackjackGame {
	return &BlackjackGame{Edge: 0}
}

func TestBlackjackDeal_DeckIntegrity(t *testing.T) {
	g := NewBlackjackGame()
	for i := 0; i < 50; i++ {
		res, err := g.Play(100, ActionDeal, nil)
		if err != nil {
			t.Fatalf("deal: %v", err)
		}
		total := len(res.PlayerHand) + len(res.DealerHand)
		if res.State != nil {
			total += len(res.State.Deck)
			if err := validateBlackjackState(res.State); err != nil {
				t.Fatalf("состояние после раздачи невалидно: %v", err)
			}
		} else {
			// терминальный исход на раздаче (блэкджек или пуш)
			total += 52 - total
		}
		if len(res.PlayerHand) != 2 || len(res.DealerHand) != 2 {
			t.Fatalf("раздано %d/%d карт", len(res.PlayerHand), len(res.DealerHand))
		}
	}
}

func TestBlackjackStand_DealerBusts(t *testing.T) {
	g := fairBlackjack()
	state := buildState(t,
		[]Card{{Rank: "K", Suit: "hearts"}, {Rank: "9", Suit: "hearts"}},
		[]Card{{Rank: "10", Suit: "clubs"}, {Rank: "6", Suit: "clubs"}},
		Card{Rank: "K", Suit: "spades"}, // дилер: 16 -> 26, перебор
	)
	res, err := g.Play(100, ActionStand, state)
	if err != nil {
		t.Fatalf("stand: %v", err)
	}
	if res.Status != StatusWin || res.Payout != 100 {
		t.Fatalf("ожидался win +100, получено %s %d", res.Status, res.Payout)
	}
}

func TestBlackjackStand_DealerWinsAndPush(t *testing.T) {
	g := fairBlackjack()

	// дилер 20 против игрока 19
	state := buildState(t,
		[]Card{{Rank: "K", Suit: "hearts"}, {Rank: "9", Suit: "hearts"}},
		[]Card{{Rank: "K", Suit: "clubs"}, {Rank: "Q", Suit: "clubs"}},
	)
	res, err := g.Play(50, ActionStand, state)
	if err != nil {
		t.Fatalf("stand: %v", err)
	}
	if res.Status != StatusLose || res.Payout != -50 {
		t.Fatalf("ожидался lose -50, получено %s %d", res.Status, res.Payout)
	}

	// по 20 у обоих - пуш
	state = buildState(t,
		[]Card{{Rank: "K", Suit: "hearts"}, {Rank: "Q", Suit: "hearts"}},
		[]Card{{Rank: "K", Suit: "clubs"}, {Rank: "Q", Suit: "clubs"}},
	)
	res, err = g.Play(50, ActionStand, state)
	if err != nil {
		t.Fatalf("stand: %v", err)
	}
	if res.Status != StatusPush || res.Payout != 0 {
		t.Fatalf("ожидался push 0, получено %s %d", res.Status, res.Payout)
	}
}

func TestBlackjackHit_BustAndAutoStand(t *testing.T) {
	g := fairBlackjack()

	// 16 + K = перебор
	state := buildState(t,
		[]Card{{Rank: "K", Suit: "hearts"}, {Rank: "6", Suit: "hearts"}},
		[]Card{{Rank: "K", Suit: "clubs"}, {Rank: "9", Suit: "clubs"}},
		Card{Rank: "K", Suit: "spades"},
	)
	res, err := g.Play(100, ActionHit, state)
	if err != nil {
		t.Fatalf("hit: %v", err)
	}
	if res.Status != StatusBust || res.Payout != -100 {
		t.Fatalf("ожидался bust -100, получено %s %d", res.Status, res.Payout)
	}

	// 16 + 5 = 21: автоматический stand, дилер остается на 19, игрок выигрывает
	state = buildState(t,
		[]Card{{Rank: "K", Suit: "hearts"}, {Rank: "6", Suit: "hearts"}},
		[]Card{{Rank: "K", Suit: "clubs"}, {Rank: "9", Suit: "clubs"}},
		Card{Rank: "5", Suit: "spades"},
	)
	res, err = g.Play(100, ActionHit, state)
	if err != nil {
		t.Fatalf("hit: %v", err)
	}
	if res.Status != StatusWin || res.PlayerValue != 21 || res.Payout != 100 {
		t.Fatalf("ожидался win на 21, получено %s %d (payout %d)", res.Status, res.PlayerValue, res.Payout)
	}
}

func TestBlackjackDouble_WinAndBustPayTwice(t *testing.T) {
	g := fairBlackjack()

	// 11 + 10 = 21 против 19 у дилера: выигрыш удвоенной ставки
	state := buildState(t,
		[]Card{{Rank: "5", Suit: "hearts"}, {Rank: "6", Suit: "hearts"}},
		[]Card{{Rank: "K", Suit: "clubs"}, {Rank: "9", Suit: "clubs"}},
		Card{Rank: "10", Suit: "spades"},
	)
	res, err := g.Play(100, ActionDouble, state)
	if err != nil {
		t.Fatalf("double: %v", err)
	}
	if res.Status != StatusWin || res.Payout != 200 {
		t.Fatalf("ожидался win +200, получено %s %d", res.Status, res.Payout)
	}

	// 16 + K = перебор на удвоенной ставке
	state = buildState(t,
		[]Card{{Rank: "K", Suit: "hearts"}, {Rank: "6", Suit: "hearts"}},
		[]Card{{Rank: "K", Suit: "clubs"}, {Rank: "9", Suit: "clubs"}},
		Card{Rank: "K", Suit: "spades"},
	)
	res, err = g.Play(100, ActionDouble, state)
	if err != nil {
		t.Fatalf("double: %v", err)
	}
	if res.Status != StatusBust || res.Payout != -200 {
		t.Fatalf("ожидался bust -200, получено %s %d", res.Status, res.Payout)
	}
}

func TestBlackjackHit_DeckIntegrityThroughRound(t *testing.T) {
	g := fairBlackjack()
	state := buildState(t,
		[]Card{{Rank: "2", Suit: "hearts"}, {Rank: "3", Suit: "hearts"}},
		[]Card{{Rank: "K", Suit: "clubs"}, {Rank: "9", Suit: "clubs"}},
	)
	res, err := g.Play(10, ActionHit, state)
	if err != nil {
		t.Fatalf("hit: %v", err)
	}
	if res.State != nil {
		if err := validateBlackjackState(res.State); err != nil {
			t.Fatalf("состояние после hit невалидно: %v", err)
		}
	}
}

func TestBlackjack_InvalidActionAndState(t *testing.T) {
	g := NewBlackjackGame()

	if _, err := g.Play(10, "split", nil); err == nil {
		t.Fatal("ожидалась ошибка для неизвестного действия")
	}
	if _, err := g.Play(10, ActionHit, nil); err == nil {
		t.Fatal("ожидалась ошибка для hit без состояния")
	}

	// дубликат карты между рукой и колодой
	state := buildState(t,
		[]Card{{Rank: "K", Suit: "hearts"}, {Rank: "6", Suit: "hearts"}},
		[]Card{{Rank: "K", Suit: "clubs"}, {Rank: "9", Suit: "clubs"}},
	)
	state.Deck[0] = Card{Rank: "K", Suit: "hearts"}
	if _, err := g.Play(10, ActionStand, state); err == nil {
		t.Fatal("ожидалась ошибка для повреждённого состояния")
	}
}

func TestBlackjackBiasedDeal_DealerGetsHighCards(t *testing.T) {
	// edge=1 и полная колода: дилер всегда получает старшие, игрок младшие
	g := &BlackjackGame{Edge: 1}
	deck := NewDeck()
	ShuffleDeck(deck)
	player, dealer := g.dealBiased(&deck)
	for _, c := range dealer {
		if !isHighCard(c) {
			t.Fatalf("дилеру досталась не старшая карта %v", c)
		}
	}
	for _, c := range player {
		if !isLowCard(c) {
			t.Fatalf("игроку досталась не младшая карта %v", c)
		}
	}
	if len(deck) != 48 {
		t.Fatalf("после раздачи в колоде %d карт", len(deck))
	}
}
