package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"casino_webapp/internal/domain"

	"github.com/redis/go-redis/v9"
)

var ErrNoActiveRound = errors.New("нет активного раунда")

// заброшенные раунды умирают сами по TTL, ставка при этом не возвращается
const roundTTL = time.Hour

// storedRound - конверт активного раунда: ставка плюс непрозрачное
// состояние движка. Позиции мин и закрытая карта дилера существуют
// только здесь, клиенту они не отдаются до конца раунда.
type storedRound struct {
	RoundID string          `json:"round_id"`
	Bet     int64           `json:"bet"`
	State   json.RawMessage `json:"state"`
}

// хранит состояние активных раундов в Redis: по одному раунду
// на пользователя и игру
type RoundStore struct {
	rdb *redis.Client
}

// создает новое хранилище раундов
func NewRoundStore(rdb *redis.Client) *RoundStore {
	return &RoundStore{rdb: rdb}
}

func roundKey(game domain.GameType, userID int64) string {
	return fmt.Sprintf("round:%s:%d", game, userID)
}

// Save сохраняет состояние раунда, перезаписывая предыдущее
func (s *RoundStore) Save(ctx context.Context, game domain.GameType, userID int64, roundID string, bet int64, state interface{}) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	envelope, err := json.Marshal(storedRound{RoundID: roundID, Bet: bet, State: raw})
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, roundKey(game, userID), envelope, roundTTL).Err()
}

// Load читает активный раунд и десериализует состояние движка в dst
func (s *RoundStore) Load(ctx context.Context, game domain.GameType, userID int64, dst interface{}) (roundID string, bet int64, err error) {
	data, err := s.rdb.Get(ctx, roundKey(game, userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return "", 0, ErrNoActiveRound
	}
	if err != nil {
		return "", 0, err
	}

	var envelope storedRound
	if err := json.Unmarshal(data, &envelope); err != nil {
		return "", 0, err
	}
	if err := json.Unmarshal(envelope.State, dst); err != nil {
		return "", 0, err
	}
	return envelope.RoundID, envelope.Bet, nil
}

// Exists сообщает, есть ли у пользователя активный раунд в данной игре
func (s *RoundStore) Exists(ctx context.Context, game domain.GameType, userID int64) (bool, error) {
	n, err := s.rdb.Exists(ctx, roundKey(game, userID)).Result()
	return n > 0, err
}

// Delete завершает раунд, удаляя его состояние
func (s *RoundStore) Delete(ctx context.Context, game domain.GameType, userID int64) error {
	return s.rdb.Del(ctx, roundKey(game, userID)).Err()
}
