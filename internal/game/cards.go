package game

// Card представляет игральную карту
type Card struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

// Масти и ранги стандартной колоды
var (
	Suits = []string{"hearts", "diamonds", "clubs", "spades"}
	Ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
)

// rankOrder - порядковый номер ранга (2=0 ... A=12), используется в покере
var rankOrder = map[string]int{}

func init() {
	for i, r := range Ranks {
		rankOrder[r] = i
	}
}

// NewDeck возвращает полную неперемешанную колоду из 52 карт
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}

// ShuffleDeck перемешивает колоду на месте (Фишер-Йетс, crypto/rand)
func ShuffleDeck(deck []Card) {
	for i := len(deck) - 1; i > 0; i-- {
		j := secureRandInt(int64(i + 1))
		deck[i], deck[j] = deck[j], deck[i]
	}
}

// CardValue возвращает стоимость карты в блэкджеке.
// Туз считается за 11, если currentTotal+11 не превышает 21, иначе за 1.
func CardValue(c Card, currentTotal int) int {
	switch c.Rank {
	case "J", "Q", "K":
		return 10
	case "A":
		if currentTotal+11 <= 21 {
			return 11
		}
		return 1
	case "10":
		return 10
	default:
		return int(c.Rank[0] - '0')
	}
}

// HandValue считает стоимость руки с мягкими тузами:
// сначала все не-тузы, затем каждый туз как 11, пока сумма не превышает 21
func HandValue(hand []Card) int {
	total := 0
	aces := 0
	for _, c := range hand {
		if c.Rank == "A" {
			aces++
		} else {
			total += CardValue(c, 0)
		}
	}
	for i := 0; i < aces; i++ {
		if total+11 <= 21 {
			total += 11
		} else {
			total++
		}
	}
	return total
}

// popCard снимает и возвращает верхнюю (последнюю) карту колоды
func popCard(deck *[]Card) Card {
	d := *deck
	c := d[len(d)-1]
	*deck = d[:len(d)-1]
	return c
}

// removeCard удаляет карту по индексу из собственной колоды и возвращает её.
// Колода никогда не разделяется между раундами, поэтому сдвиг на месте безопасен.
func removeCard(deck *[]Card, idx int) Card {
	d := *deck
	c := d[idx]
	*deck = append(d[:idx], d[idx+1:]...)
	return c
}

// cardIndexes возвращает индексы карт колоды, удовлетворяющих предикату
func cardIndexes(deck []Card, pred func(Card) bool) []int {
	var idx []int
	for i, c := range deck {
		if pred(c) {
			idx = append(idx, i)
		}
	}
	return idx
}

// containsCard сообщает, встречается ли карта в руке
func containsCard(hand []Card, c Card) bool {
	for _, h := range hand {
		if h == c {
			return true
		}
	}
	return false
}
