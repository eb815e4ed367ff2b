package slot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/weekplan/internal/planner"
)

var _ planner.Slot = (*RedisSlot)(nil)

// RedisSlot keeps the session collection under a single redis key,
// same contract as FileSlot.
type RedisSlot struct {
	rdb *redis.Client
	key string
}

func NewRedisSlot(rdb *redis.Client, key string) (*RedisSlot, error) {
	if key == "" {
		return nil, errors.New("slot key cannot be empty")
	}
	return &RedisSlot{
		rdb: rdb,
		key: key,
	}, nil
}

func (rs *RedisSlot) Load(ctx context.Context) []planner.Session {
	slotJson, err := rs.rdb.Get(ctx, rs.key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Errorf("read sessions slot key [%s]: %s", rs.key, err)
		}
		return planner.DefaultWeek()
	}

	var sessions []planner.Session
	if err := json.Unmarshal([]byte(slotJson), &sessions); err != nil {
		log.Errorf("corrupt sessions slot key [%s], falling back to default week: %s", rs.key, err)
		return planner.DefaultWeek()
	}
	if len(sessions) == 0 {
		return planner.DefaultWeek()
	}

	return normalize(sessions)
}

func (rs *RedisSlot) Save(ctx context.Context, sessions []planner.Session) error {
	if len(sessions) == 0 {
		if err := rs.rdb.Del(ctx, rs.key).Err(); err != nil {
			return fmt.Errorf("clear sessions slot key: %w", err)
		}
		return nil
	}

	sessionsJson, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("marshal sessions: %w", err)
	}
	if err := rs.rdb.Set(ctx, rs.key, sessionsJson, 0).Err(); err != nil {
		return fmt.Errorf("write sessions slot key: %w", err)
	}

	log.Tracef("saved %d sessions to redis key [%s]", len(sessions), rs.key)
	return nil
}
