package game

import "testing"

func TestRouletteCheckWin_Families(t *testing.T) {
	cases := []struct {
		betType, betValue string
		pocket            int
		won               bool
		mult              int64
	}{
		{RouletteBetColor, "red", 3, true, 1},
		{RouletteBetColor, "red", 2, false, 1},
		{RouletteBetColor, "black", 2, true, 1},
		{RouletteBetNumber, "17", 17, true, 35},
		{RouletteBetNumber, "17", 18, false, 35},
		{RouletteBetOddEven, "odd", 9, true, 1},
		{RouletteBetOddEven, "even", 9, false, 1},
		{RouletteBetHighLow, "high", 19, true, 1},
		{RouletteBetHighLow, "low", 19, false, 1},
		{RouletteBetHighLow, "low", 18, true, 1},
		{RouletteBetDozen, "1", 12, true, 2},
		{RouletteBetDozen, "2", 12, false, 2},
		{RouletteBetDozen, "3", 25, true, 2},
		{RouletteBetColumn, "1", 34, true, 2},
		{RouletteBetColumn, "3", 36, true, 2},
		{RouletteBetColumn, "2", 36, false, 2},
	}
	for _, tc := range cases {
		won, mult := rouletteCheckWin(tc.betType, tc.betValue, tc.pocket)
		if won != tc.won {
			t.Errorf("%s/%s на %d: won=%v, ожидалось %v", tc.betType, tc.betValue, tc.pocket, won, tc.won)
		}
		if won && mult != tc.mult {
			t.Errorf("%s/%s: множитель %d, ожидалось %d", tc.betType, tc.betValue, mult, tc.mult)
		}
	}
}

func TestRoulette_ZeroLosesEverything(t *testing.T) {
	bets := [][2]string{
		{RouletteBetNumber, "17"}, {RouletteBetColor, "red"}, {RouletteBetColor, "black"},
		{RouletteBetOddEven, "odd"}, {RouletteBetOddEven, "even"},
		{RouletteBetHighLow, "high"}, {RouletteBetHighLow, "low"},
		{RouletteBetDozen, "1"}, {RouletteBetColumn, "3"},
	}
	for _, b := range bets {
		for _, zero := range []int{0, pocketDoubleZero} {
			if won, _ := rouletteCheckWin(b[0], b[1], zero); won {
				t.Errorf("%s/%s выиграла на %s", b[0], b[1], PocketLabel(zero))
			}
		}
	}
}

func TestRouletteSpin_ResultInDomain(t *testing.T) {
	g := NewRouletteGame()
	for i := 0; i < 200; i++ {
		res, err := g.Spin(RouletteBetColor, "red", 10)
		if err != nil {
			t.Fatalf("spin: %v", err)
		}
		if res.Color != "red" && res.Color != "black" && res.Color != "green" {
			t.Fatalf("неизвестный цвет %q", res.Color)
		}
		if res.Won && res.Payout != 10 {
			t.Fatalf("выигрыш red должен платить 1:1, payout=%d", res.Payout)
		}
		if !res.Won && res.Payout != -10 {
			t.Fatalf("проигрыш должен стоить ставку, payout=%d", res.Payout)
		}
	}
}

func TestRouletteSpin_InvalidBets(t *testing.T) {
	g := NewRouletteGame()
	bad := [][2]string{
		{RouletteBetNumber, "0"}, {RouletteBetNumber, "37"}, {RouletteBetNumber, "x"},
		{RouletteBetColor, "green"}, {RouletteBetDozen, "4"}, {RouletteBetColumn, "0"},
		{"martingale", "1"},
	}
	for _, b := range bad {
		if _, err := g.Spin(b[0], b[1], 10); err == nil {
			t.Errorf("ожидалась ошибка для %s/%s", b[0], b[1])
		}
	}
}

func TestRouletteSpin_FullEdgeAlwaysLoses(t *testing.T) {
	// при полном смещении лунка всегда берется из проигрышного множества
	g := &RouletteGame{Edge: 1}
	for i := 0; i < 200; i++ {
		res, err := g.Spin(RouletteBetColor, "red", 10)
		if err != nil {
			t.Fatalf("spin: %v", err)
		}
		if res.Won {
			t.Fatalf("при полном смещении выпала выигрышная лунка %s", res.Result)
		}
	}
}

func TestRouletteSpin_EdgeLowersReturn(t *testing.T) {
	// эмпирическая частота выигрыша red со смещением должна быть заметно
	// ниже честной 18/38 (~0.4737): примерно (1-edge)*18/38 ~ 0.445
	g := NewRouletteGame()
	wins := 0
	const n = 60000
	for i := 0; i < n; i++ {
		res, err := g.Spin(RouletteBetColor, "red", 1)
		if err != nil {
			t.Fatalf("spin: %v", err)
		}
		if res.Won {
			wins++
		}
	}
	rate := float64(wins) / n
	if rate > 0.462 {
		t.Fatalf("частота выигрыша %.4f не показывает смещения казино", rate)
	}
	if rate < 0.42 {
		t.Fatalf("частота выигрыша %.4f подозрительно низкая", rate)
	}
}
