package game

import "fmt"

// Статусы раунда блэкджека
const (
	StatusPlaying   = "playing"
	StatusWin       = "win"
	StatusLose      = "lose"
	StatusPush      = "push"
	StatusBust      = "bust"
	StatusBlackjack = "blackjack"
)

// Действия игрока
const (
	ActionDeal   = "deal"
	ActionHit    = "hit"
	ActionStand  = "stand"
	ActionDouble = "double"
)

// BlackjackEdge - смещение блэкджека (7%)
const BlackjackEdge HouseEdge = 0.07

// BlackjackState - полное состояние раунда между ходами. Хранится только на
// сервере; клиент видит урезанное представление без скрытой карты дилера.
type BlackjackState struct {
	Deck       []Card `json:"deck"`
	PlayerHand []Card `json:"player_hand"`
	DealerHand []Card `json:"dealer_hand"`
}

// BlackjackResult - исход одного вызова движка
type BlackjackResult struct {
	Status      string          `json:"status"`
	PlayerHand  []Card          `json:"player_hand"`
	DealerHand  []Card          `json:"dealer_hand"`
	PlayerValue int             `json:"player_value"`
	DealerValue int             `json:"dealer_value"`
	Payout      int64           `json:"payout"`
	Message     string          `json:"message"`
	State       *BlackjackState `json:"-"` // следующее состояние, только при playing
}

// BlackjackGame реализует блэкджек со смещением в пользу казино.
// Движок не хранит состояния между вызовами: всё состояние раунда передаётся
// и возвращается явно, поэтому он реентерабелен.
type BlackjackGame struct {
	Edge HouseEdge
}

// NewBlackjackGame создает движок блэкджека со стандартным смещением
func NewBlackjackGame() *BlackjackGame {
	return &BlackjackGame{Edge: BlackjackEdge}
}

// isHighCard - карты, выгодные дилеру при подтасованной раздаче
func isHighCard(c Card) bool {
	switch c.Rank {
	case "10", "J", "Q", "K", "A":
		return true
	}
	return false
}

// isLowCard - карты, невыгодные игроку при подтасованной раздаче
func isLowCard(c Card) bool {
	switch c.Rank {
	case "2", "3", "4", "5", "6":
		return true
	}
	return false
}

// Play выполняет один ход раунда. Для deal состояние не требуется, для
// hit/stand/double передается состояние, возвращенное предыдущим вызовом.
func (g *BlackjackGame) Play(bet int64, action string, state *BlackjackState) (*BlackjackResult, error) {
	switch action {
	case ActionDeal:
		return g.deal(bet), nil
	case ActionHit, ActionStand, ActionDouble:
		if state == nil {
			return nil, ErrInvalidAction
		}
		if err := validateBlackjackState(state); err != nil {
			return nil, err
		}
		switch action {
		case ActionHit:
			return g.hit(bet, state), nil
		case ActionStand:
			return g.stand(bet, state), nil
		default:
			return g.double(bet, state), nil
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidAction, action)
	}
}

// validateBlackjackState проверяет целостность колоды и рук: объединение
// должно давать ровно 52 уникальные карты
func validateBlackjackState(s *BlackjackState) error {
	if len(s.PlayerHand) < 2 || len(s.DealerHand) != 2 {
		return ErrMalformedState
	}
	seen := make(map[Card]bool, 52)
	total := 0
	for _, group := range [][]Card{s.Deck, s.PlayerHand, s.DealerHand} {
		for _, c := range group {
			if seen[c] {
				return ErrMalformedState
			}
			if rankOrder[c.Rank] == 0 && c.Rank != "2" {
				return ErrMalformedState
			}
			seen[c] = true
			total++
		}
	}
	if total != 52 {
		return ErrMalformedState
	}
	return nil
}

// deal раздает начальные руки, иногда подтасовывая раздачу в пользу дилера
func (g *BlackjackGame) deal(bet int64) *BlackjackResult {
	deck := NewDeck()
	ShuffleDeck(deck)

	playerHand, dealerHand := g.dealBiased(&deck)

	playerValue := HandValue(playerHand)
	dealerValue := HandValue(dealerHand)

	// натуральное 21 решает раунд немедленно
	if playerValue == 21 {
		if dealerValue == 21 {
			return &BlackjackResult{
				Status:      StatusPush,
				PlayerHand:  playerHand,
				DealerHand:  dealerHand,
				PlayerValue: playerValue,
				DealerValue: dealerValue,
				Payout:      0,
				Message:     "Both have blackjack! Push.",
			}
		}
		return &BlackjackResult{
			Status:      StatusBlackjack,
			PlayerHand:  playerHand,
			DealerHand:  dealerHand,
			PlayerValue: playerValue,
			DealerValue: dealerValue,
			Payout:      bet * 3 / 2,
			Message:     "Blackjack! You win 3:2!",
		}
	}

	return &BlackjackResult{
		Status:      StatusPlaying,
		PlayerHand:  playerHand,
		DealerHand:  dealerHand,
		PlayerValue: playerValue,
		DealerValue: dealerValue,
		Message:     "Your turn. Hit or Stand?",
		State: &BlackjackState{
			Deck:       deck,
			PlayerHand: playerHand,
			DealerHand: dealerHand,
		},
	}
}

// dealBiased: с вероятностью edge дилер получает две старшие карты, а игрок
// две младшие; если подходящих карт не хватает - обычная раздача
func (g *BlackjackGame) dealBiased(deck *[]Card) (player, dealer []Card) {
	if g.Edge.Triggered() {
		good := cardIndexes(*deck, isHighCard)
		bad := cardIndexes(*deck, isLowCard)
		if len(good) >= 2 && len(bad) >= 2 {
			dealer = append(dealer, removeCard(deck, good[0]))
			good = cardIndexes(*deck, isHighCard)
			dealer = append(dealer, removeCard(deck, good[0]))
			bad = cardIndexes(*deck, isLowCard)
			player = append(player, removeCard(deck, bad[0]))
			bad = cardIndexes(*deck, isLowCard)
			player = append(player, removeCard(deck, bad[0]))
			return player, dealer
		}
	}

	player = []Card{popCard(deck), popCard(deck)}
	dealer = []Card{popCard(deck), popCard(deck)}
	return player, dealer
}

// drawForPlayer берет карту для игрока: с вероятностью edge при сумме >=12
// ищет в колоде карту, которая приведет к перебору
func (g *BlackjackGame) drawForPlayer(state *BlackjackState) {
	if g.Edge.Triggered() {
		playerValue := HandValue(state.PlayerHand)
		bust := cardIndexes(state.Deck, func(c Card) bool {
			return CardValue(c, 0)+playerValue > 21
		})
		if len(bust) > 0 && playerValue >= 12 {
			card := removeCard(&state.Deck, pickFrom(bust))
			state.PlayerHand = append(state.PlayerHand, card)
			return
		}
	}
	state.PlayerHand = append(state.PlayerHand, popCard(&state.Deck))
}

// hit добавляет игроку карту; ровно 21 автоматически переходит в stand
func (g *BlackjackGame) hit(bet int64, state *BlackjackState) *BlackjackResult {
	g.drawForPlayer(state)

	playerValue := HandValue(state.PlayerHand)
	if playerValue > 21 {
		return &BlackjackResult{
			Status:      StatusBust,
			PlayerHand:  state.PlayerHand,
			DealerHand:  state.DealerHand,
			PlayerValue: playerValue,
			DealerValue: HandValue(state.DealerHand),
			Payout:      -bet,
			Message:     "Bust! You lose.",
		}
	}

	if playerValue == 21 {
		// автоматический stand на 21
		return g.stand(bet, state)
	}

	return &BlackjackResult{
		Status:      StatusPlaying,
		PlayerHand:  state.PlayerHand,
		DealerHand:  state.DealerHand,
		PlayerValue: playerValue,
		DealerValue: HandValue(state.DealerHand),
		Message:     "Your turn. Hit or Stand?",
		State:       state,
	}
}

// playDealer добирает руку дилера до 17, иногда подбирая "идеальную" карту
func (g *BlackjackGame) playDealer(state *BlackjackState) {
	for HandValue(state.DealerHand) < 17 {
		dealerValue := HandValue(state.DealerHand)
		if g.Edge.Triggered() && dealerValue >= 12 {
			needed := 21 - dealerValue
			perfect := cardIndexes(state.Deck, func(c Card) bool {
				v := CardValue(c, 0)
				return v >= needed-3 && v <= needed
			})
			if len(perfect) > 0 {
				card := removeCard(&state.Deck, pickFrom(perfect))
				state.DealerHand = append(state.DealerHand, card)
				continue
			}
		}
		state.DealerHand = append(state.DealerHand, popCard(&state.Deck))
	}
}

// stand разыгрывает руку дилера и сравнивает результаты
func (g *BlackjackGame) stand(bet int64, state *BlackjackState) *BlackjackResult {
	playerValue := HandValue(state.PlayerHand)
	g.playDealer(state)
	dealerValue := HandValue(state.DealerHand)

	res := &BlackjackResult{
		PlayerHand:  state.PlayerHand,
		DealerHand:  state.DealerHand,
		PlayerValue: playerValue,
		DealerValue: dealerValue,
	}

	switch {
	case dealerValue > 21:
		res.Status = StatusWin
		res.Payout = bet
		res.Message = "Dealer busts! You win!"
	case dealerValue > playerValue:
		res.Status = StatusLose
		res.Payout = -bet
		res.Message = "Dealer wins."
	case playerValue > dealerValue:
		res.Status = StatusWin
		res.Payout = bet
		res.Message = "You win!"
	default:
		res.Status = StatusPush
		res.Payout = 0
		res.Message = "Push. Bet returned."
	}
	return res
}

// double удваивает ставку, берет ровно одну карту и принудительно делает stand
func (g *BlackjackGame) double(bet int64, state *BlackjackState) *BlackjackResult {
	// ставка удваивается до добора
	bet *= 2

	g.drawForPlayer(state)

	playerValue := HandValue(state.PlayerHand)
	if playerValue > 21 {
		return &BlackjackResult{
			Status:      StatusBust,
			PlayerHand:  state.PlayerHand,
			DealerHand:  state.DealerHand,
			PlayerValue: playerValue,
			DealerValue: HandValue(state.DealerHand),
			Payout:      -bet,
			Message:     fmt.Sprintf("Bust with %d! You lose.", playerValue),
		}
	}

	g.playDealer(state)
	dealerValue := HandValue(state.DealerHand)

	res := &BlackjackResult{
		PlayerHand:  state.PlayerHand,
		DealerHand:  state.DealerHand,
		PlayerValue: playerValue,
		DealerValue: dealerValue,
	}

	switch {
	case dealerValue > 21:
		res.Status = StatusWin
		res.Payout = bet
		res.Message = fmt.Sprintf("Dealer busts! You win with %d!", playerValue)
	case dealerValue > playerValue:
		res.Status = StatusLose
		res.Payout = -bet
		res.Message = fmt.Sprintf("Dealer wins %d vs %d.", dealerValue, playerValue)
	case playerValue > dealerValue:
		res.Status = StatusWin
		res.Payout = bet
		res.Message = fmt.Sprintf("You win %d vs %d!", playerValue, dealerValue)
	default:
		res.Status = StatusPush
		res.Payout = 0
		res.Message = fmt.Sprintf("Push at %d. Bet returned.", playerValue)
	}
	return res
}
