package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const stateTTL = 10 * time.Minute

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, sess Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.rdb.Set(ctx, "sess:"+sess.ID, raw, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (Session, bool, error) {
	raw, err := s.rdb.Get(ctx, "sess:"+id).Bytes()
	if err == redis.Nil {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, err
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return Session{}, false, fmt.Errorf("decode session: %w", err)
	}
	return sess, true, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, "sess:"+id).Err()
}

func (s *RedisStore) PutState(ctx context.Context, state string) error {
	ok, err := s.rdb.SetNX(ctx, "oauth:state:"+state, "1", stateTTL).Result()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("oauth state collision")
	}
	return nil
}

func (s *RedisStore) TakeState(ctx context.Context, state string) (bool, error) {
	n, err := s.rdb.Del(ctx, "oauth:state:"+state).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var _ Store = (*RedisStore)(nil)
