package game

import "testing"

func TestNewDeck_52UniqueCards(t *testing.T) {
	deck := NewDeck()
	if len(deck) != 52 {
		t.Fatalf("ожидалось 52 карты, получено %d", len(deck))
	}
	seen := make(map[Card]bool)
	for _, c := range deck {
		if seen[c] {
			t.Fatalf("дубликат карты %v в колоде", c)
		}
		seen[c] = true
	}
}

func TestShuffleDeck_PreservesCards(t *testing.T) {
	deck := NewDeck()
	ShuffleDeck(deck)
	if len(deck) != 52 {
		t.Fatalf("перемешивание изменило размер колоды: %d", len(deck))
	}
	seen := make(map[Card]bool)
	for _, c := range deck {
		if seen[c] {
			t.Fatalf("дубликат карты %v после перемешивания", c)
		}
		seen[c] = true
	}
}

func TestCardValue(t *testing.T) {
	cases := []struct {
		card  Card
		total int
		want  int
	}{
		{Card{Rank: "2", Suit: "hearts"}, 0, 2},
		{Card{Rank: "10", Suit: "hearts"}, 0, 10},
		{Card{Rank: "J", Suit: "clubs"}, 0, 10},
		{Card{Rank: "Q", Suit: "spades"}, 0, 10},
		{Card{Rank: "K", Suit: "diamonds"}, 0, 10},
		{Card{Rank: "A", Suit: "hearts"}, 0, 11},
		{Card{Rank: "A", Suit: "hearts"}, 10, 11},
		{Card{Rank: "A", Suit: "hearts"}, 11, 1},
	}
	for _, tc := range cases {
		if got := CardValue(tc.card, tc.total); got != tc.want {
			t.Errorf("CardValue(%v, %d) = %d, ожидалось %d", tc.card, tc.total, got, tc.want)
		}
	}
}

func TestHandValue_AceSoftening(t *testing.T) {
	ace := Card{Rank: "A", Suit: "hearts"}
	ace2 := Card{Rank: "A", Suit: "clubs"}
	nine := Card{Rank: "9", Suit: "spades"}

	if got := HandValue([]Card{ace, ace2}); got != 12 {
		t.Errorf("A+A = %d, ожидалось 12", got)
	}
	if got := HandValue([]Card{ace, nine}); got != 20 {
		t.Errorf("A+9 = %d, ожидалось 20", got)
	}
	if got := HandValue([]Card{ace, ace2, nine}); got != 21 {
		t.Errorf("A+A+9 = %d, ожидалось 21", got)
	}
	if got := HandValue([]Card{
		{Rank: "K", Suit: "hearts"}, {Rank: "Q", Suit: "hearts"}, ace,
	}); got != 21 {
		t.Errorf("K+Q+A = %d, ожидалось 21", got)
	}
}

func TestPopAndRemoveCard(t *testing.T) {
	deck := []Card{
		{Rank: "2", Suit: "hearts"},
		{Rank: "3", Suit: "hearts"},
		{Rank: "4", Suit: "hearts"},
	}
	c := popCard(&deck)
	if c.Rank != "4" || len(deck) != 2 {
		t.Fatalf("popCard вернул %v, осталось %d карт", c, len(deck))
	}
	c = removeCard(&deck, 0)
	if c.Rank != "2" || len(deck) != 1 || deck[0].Rank != "3" {
		t.Fatalf("removeCard вернул %v, колода %v", c, deck)
	}
}
