package game

import "testing"

func TestDiceCheckWin(t *testing.T) {
	cases := []struct {
		betType, betValue string
		total             int
		won               bool
	}{
		{DiceBetExact, "7", 7, true},
		{DiceBetExact, "7", 8, false},
		{DiceBetOver, "7", 8, true},
		{DiceBetOver, "7", 7, false},
		{DiceBetUnder, "7", 6, true},
		{DiceBetUnder, "7", 7, false},
		{DiceBetOddEven, "odd", 9, true},
		{DiceBetOddEven, "odd", 8, false},
		{DiceBetOddEven, "even", 8, true},
		{DiceBetSeven, "", 7, true},
		{DiceBetSeven, "", 6, false},
	}
	for _, tc := range cases {
		if got := diceCheckWin(tc.betType, tc.betValue, tc.total); got != tc.won {
			t.Errorf("%s/%s на %d: %v, ожидалось %v", tc.betType, tc.betValue, tc.total, got, tc.won)
		}
	}
}

func TestDiceExactPayoutTable(t *testing.T) {
	want := map[string]int64{
		"2": 35, "3": 17, "4": 11, "5": 8, "6": 6, "7": 5,
		"8": 6, "9": 8, "10": 11, "11": 17, "12": 35,
	}
	for v, m := range want {
		if got := dicePayout(DiceBetExact, v); got != m {
			t.Errorf("exact %s: множитель %d, ожидалось %d", v, got, m)
		}
	}
	if got := dicePayout(DiceBetSeven, ""); got != 4 {
		t.Errorf("seven: множитель %d, ожидалось 4", got)
	}
	if got := dicePayout(DiceBetOver, "7"); got != 1 {
		t.Errorf("over: множитель %d, ожидалось 1", got)
	}
}

func TestDiceRoll_DomainAndPayout(t *testing.T) {
	g := NewDiceGame()
	for i := 0; i < 500; i++ {
		res, err := g.Roll(DiceBetSeven, "", 10)
		if err != nil {
			t.Fatalf("roll: %v", err)
		}
		if res.Die1 < 1 || res.Die1 > 6 || res.Die2 < 1 || res.Die2 > 6 {
			t.Fatalf("кубики вне диапазона: %d, %d", res.Die1, res.Die2)
		}
		if res.Total != res.Die1+res.Die2 {
			t.Fatalf("сумма %d не равна %d+%d", res.Total, res.Die1, res.Die2)
		}
		if res.Won && res.Payout != 40 {
			t.Fatalf("seven платит 4:1, payout=%d", res.Payout)
		}
		if !res.Won && res.Payout != -10 {
			t.Fatalf("проигрыш должен стоить ставку, payout=%d", res.Payout)
		}
	}
}

func TestDiceRoll_InvalidBets(t *testing.T) {
	g := NewDiceGame()
	bad := [][2]string{
		{DiceBetExact, "1"}, {DiceBetExact, "13"}, {DiceBetExact, "x"},
		{DiceBetOddEven, "both"}, {"hazard", "7"},
	}
	for _, b := range bad {
		if _, err := g.Roll(b[0], b[1], 10); err == nil {
			t.Errorf("ожидалась ошибка для %s/%s", b[0], b[1])
		}
	}
}

func TestDiceRoll_EdgeLowersWinRate(t *testing.T) {
	// честная вероятность odd = 0.5; с перебросами она должна просесть
	g := NewDiceGame()
	wins := 0
	const n = 60000
	for i := 0; i < n; i++ {
		res, err := g.Roll(DiceBetOddEven, "odd", 1)
		if err != nil {
			t.Fatalf("roll: %v", err)
		}
		if res.Won {
			wins++
		}
	}
	rate := float64(wins) / n
	if rate > 0.492 {
		t.Fatalf("частота выигрыша %.4f не показывает смещения казино", rate)
	}
	if rate < 0.44 {
		t.Fatalf("частота выигрыша %.4f подозрительно низкая", rate)
	}
}
