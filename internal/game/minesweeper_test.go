package game

import "testing"

// minesState собирает фиксированное поле 5x5 с минами в заданных позициях
func minesState(t *testing.T, mines ...int) *MinesweeperState {
	t.Helper()
	s := &MinesweeperState{
		GridSize:      5,
		NumMines:      len(mines),
		TotalTiles:    25,
		MinePositions: mines,
		Revealed:      []int{},
		Multiplier:    1.0,
	}
	if err := validateMinesweeperState(s); err != nil {
		t.Fatalf("тестовое состояние невалидно: %v", err)
	}
	return s
}

func fairMinesweeper() *MinesweeperGame {
	return &MinesweeperGame{Edge: 0}
}

func TestMinesweeperCreate_Invariants(t *testing.T) {
	g := NewMinesweeperGame()
	for i := 0; i < 50; i++ {
		s, err := g.Create(5, 5)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if len(s.MinePositions) != 5 || s.TotalTiles != 25 {
			t.Fatalf("мин %d, плиток %d", len(s.MinePositions), s.TotalTiles)
		}
		seen := make(map[int]bool)
		for _, m := range s.MinePositions {
			if m < 0 || m >= 25 || seen[m] {
				t.Fatalf("некорректная позиция мины %d", m)
			}
			seen[m] = true
		}
		if s.Multiplier != 1.0 || len(s.Revealed) != 0 {
			t.Fatalf("новый раунд должен начинаться с множителя 1.0 и пустых открытий")
		}
	}
}

func TestMinesweeperCreate_RejectsBadConfig(t *testing.T) {
	g := NewMinesweeperGame()
	bad := [][2]int{{2, 1}, {9, 1}, {3, 0}, {3, 9}, {5, 25}, {8, 64}}
	for _, c := range bad {
		if _, err := g.Create(c[0], c[1]); err == nil {
			t.Errorf("ожидалась ошибка для поля %dx%d с %d минами", c[0], c[0], c[1])
		}
	}
	// 24 мины на 5x5 допустимы: остается одна безопасная плитка
	if _, err := g.Create(5, 24); err != nil {
		t.Errorf("5x5 с 24 минами должно быть допустимо: %v", err)
	}
}

func TestMinesweeperReveal_SafeProgression(t *testing.T) {
	g := fairMinesweeper()
	s := minesState(t, 20, 21, 22)

	prev := 0.0
	for _, tile := range []int{0, 1, 2, 3} {
		res, err := g.Reveal(s, tile, 100)
		if err != nil {
			t.Fatalf("reveal %d: %v", tile, err)
		}
		if res.Status != StatusPlaying {
			t.Fatalf("плитка %d: статус %s", tile, res.Status)
		}
		if res.Multiplier <= prev {
			t.Fatalf("множитель %.2f не вырос после открытия %d (было %.2f)", res.Multiplier, tile, prev)
		}
		prev = res.Multiplier
		s = res.State
		// мины и открытия не пересекаются
		for _, r := range s.Revealed {
			if containsInt(s.MinePositions, r) {
				t.Fatalf("открытая плитка %d совпала с миной", r)
			}
		}
	}
}

func TestMinesweeperReveal_RepeatIsIdempotent(t *testing.T) {
	g := fairMinesweeper()
	s := minesState(t, 20)

	first, err := g.Reveal(s, 0, 100)
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	again, err := g.Reveal(first.State, 0, 100)
	if err != nil {
		t.Fatalf("повторный reveal: %v", err)
	}
	if again.Status != StatusPlaying || again.Multiplier != first.Multiplier ||
		len(again.Revealed) != len(first.Revealed) {
		t.Fatalf("повторное открытие изменило состояние: %+v", again)
	}
	if again.Message != "Tile already revealed!" {
		t.Fatalf("неожиданное сообщение %q", again.Message)
	}
}

func TestMinesweeperReveal_HitMineLosesBet(t *testing.T) {
	g := fairMinesweeper()
	s := minesState(t, 7)

	res, err := g.Reveal(s, 7, 100)
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if res.Status != StatusLose || res.Payout != -100 {
		t.Fatalf("подрыв: статус %s payout %d", res.Status, res.Payout)
	}
	if res.HitMine == nil || *res.HitMine != 7 {
		t.Fatalf("HitMine должен указывать на плитку 7: %v", res.HitMine)
	}
	if res.Multiplier != 0 {
		t.Fatalf("множитель после подрыва %.2f", res.Multiplier)
	}
}

func TestMinesweeperReveal_AllSafeWins(t *testing.T) {
	g := fairMinesweeper()
	s := minesState(t, 24) // единственная мина в последней плитке

	var last *MinesweeperResult
	for tile := 0; tile < 24; tile++ {
		res, err := g.Reveal(s, tile, 100)
		if err != nil {
			t.Fatalf("reveal %d: %v", tile, err)
		}
		last = res
		if tile < 23 {
			if res.Status != StatusPlaying {
				t.Fatalf("плитка %d: статус %s до конца поля", tile, res.Status)
			}
			s = res.State
		}
	}
	if last.Status != StatusWin {
		t.Fatalf("после открытия всех безопасных плиток статус %s", last.Status)
	}
	want := int64(float64(100)*last.Multiplier) - 100
	if last.Payout != want {
		t.Fatalf("payout %d, ожидалось %d при множителе %.2f", last.Payout, want, last.Multiplier)
	}
}

func TestMinesweeperCashout(t *testing.T) {
	g := fairMinesweeper()
	s := minesState(t, 20, 21)

	res, err := g.Reveal(s, 0, 100)
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	out, err := g.Cashout(res.State, 100)
	if err != nil {
		t.Fatalf("cashout: %v", err)
	}
	if out.Status != StatusCashout {
		t.Fatalf("статус %s", out.Status)
	}
	want := int64(float64(100)*res.Multiplier) - 100
	if out.Payout != want {
		t.Fatalf("payout %d, ожидалось %d", out.Payout, want)
	}
}

func TestMinesweeperRelocation_PullsMineUnderClick(t *testing.T) {
	// edge=1: после трёх открытий клик по безопасной плитке гарантированно
	// притягивает первую неоткрытую мину
	g := &MinesweeperGame{Edge: 1}
	s := minesState(t, 20, 21)
	s.Revealed = []int{0, 1, 2}

	res, err := g.Reveal(s, 5, 100)
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if res.Status != StatusLose {
		t.Fatalf("ожидался подрыв после переноса, статус %s", res.Status)
	}
	if !containsInt(s.MinePositions, 5) || containsInt(s.MinePositions, 20) {
		t.Fatalf("мина 20 должна была переехать на 5: %v", s.MinePositions)
	}
	if len(s.MinePositions) != 2 {
		t.Fatalf("число мин изменилось: %v", s.MinePositions)
	}
}

func TestMinesweeperRelocation_InactiveBeforeThreshold(t *testing.T) {
	g := &MinesweeperGame{Edge: 1}
	s := minesState(t, 20, 21)
	s.Revealed = []int{0, 1}

	res, err := g.Reveal(s, 5, 100)
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if res.Status != StatusPlaying {
		t.Fatalf("до порога перенос не должен срабатывать, статус %s", res.Status)
	}
}

func TestMinesweeperMultiplierTable(t *testing.T) {
	table := MinesweeperMultiplierTable(5, 5)
	if len(table) != 20 {
		t.Fatalf("в таблице %d строк, ожидалось 20", len(table))
	}
	prev := 0.0
	for i, m := range table {
		if m <= prev {
			t.Fatalf("множитель не растет на шаге %d: %.2f после %.2f", i+1, m, prev)
		}
		prev = m
	}
	// первый шаг: 1/(20/25) * (1-0.04) = 1.25*0.96 = 1.2
	if table[0] != 1.2 {
		t.Fatalf("множитель первого шага %.2f, ожидалось 1.20", table[0])
	}
}
