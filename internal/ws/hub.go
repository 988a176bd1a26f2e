package ws

import (
	"encoding/json"
	"sync"
	"time"

	"casino_webapp/internal/domain"
	"casino_webapp/internal/logger"
)

// RoundEvent - публичное событие завершенного раунда для ленты.
// Ник показывается как есть, суммы без баланса игрока.
type RoundEvent struct {
	Type     string          `json:"type"`
	Game     domain.GameType `json:"game"`
	Username string          `json:"username"`
	Bet      int64           `json:"bet"`
	Payout   int64           `json:"payout"`
	Won      bool            `json:"won"`
	At       time.Time       `json:"at"`
}

// Hub раздает события завершенных раундов всем подключенным клиентам
type Hub struct {
	clients map[*Client]bool
	mu      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]bool)}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.Send)
	}
	h.mu.Unlock()
}

// BroadcastRound публикует итог раунда. Медленные клиенты пропускают
// событие вместо того чтобы тормозить остальных.
func (h *Hub) BroadcastRound(game domain.GameType, username string, bet, payout int64) {
	event := RoundEvent{
		Type:     "round",
		Game:     game,
		Username: username,
		Bet:      bet,
		Payout:   payout,
		Won:      payout > 0,
		At:       time.Now(),
	}
	msg, err := json.Marshal(event)
	if err != nil {
		logger.Error("не удалось сериализовать событие ленты", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.Send <- msg:
		default:
		}
	}
}

// ClientCount возвращает число подключенных клиентов
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
