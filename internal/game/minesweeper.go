package game

import (
	"fmt"
	"math"
)

// MinesweeperEdge - смещение сапёра (8%)
const MinesweeperEdge HouseEdge = 0.08

// Допустимые параметры поля
const (
	MinesweeperMinGrid  = 3
	MinesweeperMaxGrid  = 8
	MinesweeperMinMines = 1
	MinesweeperMaxMines = 24
)

// Статусы сапёра (playing/win/lose общие с блэкджеком)
const StatusCashout = "cashout"

// Минимум безопасных открытий, после которого включается перенос мин
const minesRelocateAfter = 3

// MinesweeperState - полное состояние раунда. Позиции мин никогда не
// покидают сервер, пока раунд активен.
type MinesweeperState struct {
	GridSize      int     `json:"grid_size"`
	NumMines      int     `json:"num_mines"`
	TotalTiles    int     `json:"total_tiles"`
	MinePositions []int   `json:"mine_positions"`
	Revealed      []int   `json:"revealed"`
	Multiplier    float64 `json:"multiplier"`
}

// MinesweeperResult - итог одного действия
type MinesweeperResult struct {
	Status     string            `json:"status"`
	Revealed   []int             `json:"revealed"`
	Multiplier float64           `json:"multiplier"`
	Payout     int64             `json:"payout"`
	HitMine    *int              `json:"hit_mine,omitempty"`
	Message    string            `json:"message"`
	State      *MinesweeperState `json:"-"` // следующее состояние, только при playing
}

// MinesweeperGame реализует казино-сапёр с прогрессивным множителем
type MinesweeperGame struct {
	Edge HouseEdge
}

// NewMinesweeperGame создает движок сапёра со стандартным смещением
func NewMinesweeperGame() *MinesweeperGame {
	return &MinesweeperGame{Edge: MinesweeperEdge}
}

// Create создает новый раунд: раскладывает numMines уникальных мин
// по полю gridSize x gridSize
func (g *MinesweeperGame) Create(gridSize, numMines int) (*MinesweeperState, error) {
	if gridSize < MinesweeperMinGrid || gridSize > MinesweeperMaxGrid {
		return nil, fmt.Errorf("%w: grid size %d", ErrInvalidBetValue, gridSize)
	}
	totalTiles := gridSize * gridSize
	if numMines < MinesweeperMinMines || numMines > MinesweeperMaxMines || numMines >= totalTiles {
		return nil, fmt.Errorf("%w: %d mines on %d tiles", ErrInvalidBetValue, numMines, totalTiles)
	}

	mines := make([]int, 0, numMines)
	used := make(map[int]bool, numMines)
	for len(mines) < numMines {
		pos := int(secureRandInt(int64(totalTiles)))
		if !used[pos] {
			used[pos] = true
			mines = append(mines, pos)
		}
	}

	return &MinesweeperState{
		GridSize:      gridSize,
		NumMines:      numMines,
		TotalTiles:    totalTiles,
		MinePositions: mines,
		Revealed:      []int{},
		Multiplier:    1.0,
	}, nil
}

// validateMinesweeperState проверяет инварианты поля
func validateMinesweeperState(s *MinesweeperState) error {
	if s.GridSize < MinesweeperMinGrid || s.GridSize > MinesweeperMaxGrid ||
		s.TotalTiles != s.GridSize*s.GridSize ||
		len(s.MinePositions) != s.NumMines {
		return ErrMalformedState
	}
	seen := make(map[int]bool, len(s.MinePositions))
	for _, m := range s.MinePositions {
		if m < 0 || m >= s.TotalTiles || seen[m] {
			return ErrMalformedState
		}
		seen[m] = true
	}
	return nil
}

// Reveal открывает плитку. Повторное открытие не ошибка: состояние
// возвращается без изменений с информационным сообщением.
func (g *MinesweeperGame) Reveal(state *MinesweeperState, tileIndex int, betAmount int64) (*MinesweeperResult, error) {
	if err := validateMinesweeperState(state); err != nil {
		return nil, err
	}
	if tileIndex < 0 || tileIndex >= state.TotalTiles {
		return nil, fmt.Errorf("%w: tile %d", ErrInvalidBetValue, tileIndex)
	}

	if containsInt(state.Revealed, tileIndex) {
		return &MinesweeperResult{
			Status:     StatusPlaying,
			Revealed:   state.Revealed,
			Multiplier: state.Multiplier,
			Message:    "Tile already revealed!",
			State:      state,
		}, nil
	}

	// после 3 успешных открытий клик по безопасной плитке может притянуть
	// мину: переносится первая ещё не открытая мина в порядке обхода
	if !containsInt(state.MinePositions, tileIndex) &&
		len(state.Revealed) >= minesRelocateAfter && g.Edge.Triggered() {
		for i, m := range state.MinePositions {
			if !containsInt(state.Revealed, m) {
				state.MinePositions = append(state.MinePositions[:i], state.MinePositions[i+1:]...)
				state.MinePositions = append(state.MinePositions, tileIndex)
				break
			}
		}
	}

	if containsInt(state.MinePositions, tileIndex) {
		state.Revealed = append(state.Revealed, tileIndex)
		state.Multiplier = 0
		hit := tileIndex
		return &MinesweeperResult{
			Status:     StatusLose,
			Revealed:   state.Revealed,
			Multiplier: 0,
			Payout:     -betAmount,
			HitMine:    &hit,
			Message:    "BOOM! You hit a mine!",
		}, nil
	}

	state.Revealed = append(state.Revealed, tileIndex)
	state.Multiplier = g.multiplier(len(state.Revealed), state.TotalTiles, state.NumMines)

	remainingSafe := state.TotalTiles - state.NumMines - len(state.Revealed)
	if remainingSafe == 0 {
		return &MinesweeperResult{
			Status:     StatusWin,
			Revealed:   state.Revealed,
			Multiplier: state.Multiplier,
			Payout:     int64(float64(betAmount)*state.Multiplier) - betAmount,
			Message:    fmt.Sprintf("All safe tiles revealed! Multiplier: %.2fx", state.Multiplier),
		}, nil
	}

	return &MinesweeperResult{
		Status:     StatusPlaying,
		Revealed:   state.Revealed,
		Multiplier: state.Multiplier,
		Message:    fmt.Sprintf("Safe! Multiplier: %.2fx", state.Multiplier),
		State:      state,
	}, nil
}

// Cashout фиксирует выигрыш по текущему множителю. Допустим только для
// активного раунда (наличие состояния гарантирует вызывающая сторона).
func (g *MinesweeperGame) Cashout(state *MinesweeperState, betAmount int64) (*MinesweeperResult, error) {
	if err := validateMinesweeperState(state); err != nil {
		return nil, err
	}

	payout := int64(float64(betAmount)*state.Multiplier) - betAmount
	return &MinesweeperResult{
		Status:     StatusCashout,
		Revealed:   state.Revealed,
		Multiplier: state.Multiplier,
		Payout:     payout,
		Message:    fmt.Sprintf("Cashed out at %.2fx! Won %d coins.", state.Multiplier, payout),
	}, nil
}

// multiplier - обратная величина кумулятивной гипергеометрической вероятности
// "все открытия до сих пор безопасны", уменьшенная на половину edge
func (g *MinesweeperGame) multiplier(revealed, total, mines int) float64 {
	if revealed == 0 {
		return 1.0
	}

	prob := 1.0
	for i := 0; i < revealed; i++ {
		safeRemaining := float64(total - mines - i)
		totalRemaining := float64(total - i)
		prob *= safeRemaining / totalRemaining
	}

	fair := 1.0
	if prob > 0 {
		fair = 1.0 / prob
	}
	m := fair * (1.0 - float64(g.Edge)*0.5)
	return math.Round(m*100) / 100
}

// MinesweeperMultiplierTable возвращает множители для каждого числа
// безопасных открытий при данной конфигурации поля
func MinesweeperMultiplierTable(gridSize, numMines int) []float64 {
	g := NewMinesweeperGame()
	total := gridSize * gridSize
	safe := total - numMines
	table := make([]float64, safe)
	for n := 1; n <= safe; n++ {
		table[n-1] = g.multiplier(n, total, numMines)
	}
	return table
}

// containsInt сообщает, встречается ли значение в срезе
func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
