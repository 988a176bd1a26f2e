package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Счетчики игрового цикла. Экспортируются через /metrics.
var (
	RoundsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "casino_rounds_total",
		Help: "Завершенные раунды по игре и исходу",
	}, []string{"game", "status"})

	WageredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "casino_wagered_coins_total",
		Help: "Сумма принятых ставок по игре",
	}, []string{"game"})

	PaidOutTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "casino_paid_out_coins_total",
		Help: "Сумма выплаченных выигрышей по игре",
	}, []string{"game"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "casino_http_requests_total",
		Help: "HTTP запросы по пути и коду ответа",
	}, []string{"path", "status"})
)

// ObserveRound обновляет счетчики после расчета раунда
func ObserveRound(game, status string, bet, payout int64) {
	RoundsTotal.WithLabelValues(game, status).Inc()
	WageredTotal.WithLabelValues(game).Add(float64(bet))
	if payout > 0 {
		PaidOutTotal.WithLabelValues(game).Add(float64(payout))
	}
}
