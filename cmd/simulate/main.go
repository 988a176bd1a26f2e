package main

import (
	"flag"
	"fmt"
	"os"

	"casino_webapp/internal/game"

	"github.com/cheggaaa/pb/v3"
	"gonum.org/v1/gonum/stat"
)

// Оффлайн-аудит отдачи: прогоняет движки на простых стратегиях и
// печатает эмпирический RTP. Смещение должно быть видно на дистанции.

func main() {
	gameName := flag.String("game", "roulette", "blackjack|poker|roulette|dice|minesweeper")
	rounds := flag.Int("rounds", 100000, "число раундов")
	bet := flag.Int64("bet", 10, "ставка на раунд")
	flag.Parse()

	sim, ok := simulators[*gameName]
	if !ok {
		fmt.Fprintf(os.Stderr, "неизвестная игра %q\n", *gameName)
		os.Exit(1)
	}

	payouts := make([]float64, 0, *rounds)
	bar := pb.StartNew(*rounds)
	for i := 0; i < *rounds; i++ {
		payout, err := sim(*bet)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ошибка симуляции: %v\n", err)
			os.Exit(1)
		}
		payouts = append(payouts, float64(payout))
		bar.Increment()
	}
	bar.Finish()

	mean := stat.Mean(payouts, nil)
	sd := stat.StdDev(payouts, nil)
	rtp := 1.0 + mean/float64(*bet)

	fmt.Printf("игра: %s, раундов: %d, ставка: %d\n", *gameName, *rounds, *bet)
	fmt.Printf("средний результат раунда: %.4f (sd %.2f)\n", mean, sd)
	fmt.Printf("эмпирический RTP: %.4f\n", rtp)
}

var simulators = map[string]func(bet int64) (int64, error){
	"blackjack":   simulateBlackjack,
	"poker":       simulatePoker,
	"roulette":    simulateRoulette,
	"dice":        simulateDice,
	"minesweeper": simulateMinesweeper,
}

// дилерская стратегия за игрока: добор до 17
func simulateBlackjack(bet int64) (int64, error) {
	g := game.NewBlackjackGame()
	res, err := g.Play(bet, game.ActionDeal, nil)
	if err != nil {
		return 0, err
	}
	for res.State != nil {
		action := game.ActionStand
		if res.PlayerValue < 17 {
			action = game.ActionHit
		}
		res, err = g.Play(bet, action, res.State)
		if err != nil {
			return 0, err
		}
	}
	return res.Payout, nil
}

// наивная стратегия: держим все карты как раздали
func simulatePoker(bet int64) (int64, error) {
	g := game.NewPokerGame()
	state := g.Deal()
	res, err := g.Draw(state, []int{0, 1, 2, 3, 4}, bet)
	if err != nil {
		return 0, err
	}
	return res.Payout, nil
}

func simulateRoulette(bet int64) (int64, error) {
	g := game.NewRouletteGame()
	res, err := g.Spin(game.RouletteBetColor, "red", bet)
	if err != nil {
		return 0, err
	}
	return res.Payout, nil
}

func simulateDice(bet int64) (int64, error) {
	g := game.NewDiceGame()
	res, err := g.Roll(game.DiceBetOddEven, "odd", bet)
	if err != nil {
		return 0, err
	}
	return res.Payout, nil
}

// открываем пять плиток и забираем выигрыш
func simulateMinesweeper(bet int64) (int64, error) {
	g := game.NewMinesweeperGame()
	state, err := g.Create(5, 3)
	if err != nil {
		return 0, err
	}

	for tile := 0; len(state.Revealed) < 5; tile++ {
		res, err := g.Reveal(state, tile, bet)
		if err != nil {
			return 0, err
		}
		if res.Status == game.StatusLose {
			return res.Payout, nil
		}
		if res.Status == game.StatusWin {
			return res.Payout, nil
		}
		state = res.State
	}

	res, err := g.Cashout(state, bet)
	if err != nil {
		return 0, err
	}
	return res.Payout, nil
}
