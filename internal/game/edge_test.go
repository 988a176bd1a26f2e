package game

import "testing"

func TestHouseEdge_Triggered(t *testing.T) {
	// нулевое смещение никогда не срабатывает, единичное - всегда
	for i := 0; i < 1000; i++ {
		if HouseEdge(0).Triggered() {
			t.Fatal("нулевое смещение сработало")
		}
		if !HouseEdge(1).Triggered() {
			t.Fatal("единичное смещение не сработало")
		}
	}
}

func TestPickIndex_EmptyFavoredFallsBack(t *testing.T) {
	e := HouseEdge(1)
	for i := 0; i < 100; i++ {
		got := e.PickIndex(5, nil)
		if got < 0 || got >= 5 {
			t.Fatalf("индекс %d вне диапазона [0,5)", got)
		}
	}
}

func TestPickIndex_FullEdgeAlwaysFavored(t *testing.T) {
	e := HouseEdge(1)
	favored := []int{2, 4}
	for i := 0; i < 200; i++ {
		got := e.PickIndex(10, favored)
		if got != 2 && got != 4 {
			t.Fatalf("при edge=1 получен индекс %d вне favored", got)
		}
	}
}

func TestPickIndex_ZeroEdgeIsUniform(t *testing.T) {
	e := HouseEdge(0)
	counts := make(map[int]int)
	for i := 0; i < 3800; i++ {
		counts[e.PickIndex(38, []int{0})]++
	}
	// каждый исход должен оставаться достижимым
	if len(counts) < 30 {
		t.Fatalf("слишком мало различных исходов: %d", len(counts))
	}
}

func TestPickIndex_MarginalProbabilityShift(t *testing.T) {
	// с edge=0.5 и favored из 1 исхода из 2 его частота должна быть
	// примерно 0.5 + 0.5*0.5 = 0.75
	e := HouseEdge(0.5)
	hits := 0
	const n = 20000
	for i := 0; i < n; i++ {
		if e.PickIndex(2, []int{0}) == 0 {
			hits++
		}
	}
	rate := float64(hits) / n
	if rate < 0.72 || rate > 0.78 {
		t.Fatalf("частота favored-исхода %.3f вне ожидаемого окна 0.75±0.03", rate)
	}
}
