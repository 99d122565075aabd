package isr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const DefaultRedisTTL = 24 * time.Hour

// RedisStore shares entries between replicas. Entries are JSON encoded and expire after TTL
// so keys for deleted guides do not live forever.
type RedisStore[V any] struct {
	rdb    goredis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewRedisStore[V any](rdb goredis.UniversalClient, prefix string, ttl time.Duration) *RedisStore[V] {
	if ttl <= 0 {
		ttl = DefaultRedisTTL
	}
	prefix = strings.TrimRight(strings.TrimSpace(prefix), ":")
	if prefix == "" {
		prefix = "isr"
	}
	return &RedisStore[V]{rdb: rdb, prefix: prefix + ":", ttl: ttl}
}

func (s *RedisStore[V]) Load(ctx context.Context, key string) (Entry[V], bool, error) {
	raw, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return Entry[V]{}, false, nil
	}
	if err != nil {
		return Entry[V]{}, false, fmt.Errorf("redis get: %w", err)
	}
	var e Entry[V]
	if err := json.Unmarshal(raw, &e); err != nil {
		return Entry[V]{}, false, fmt.Errorf("decode entry %q: %w", key, err)
	}
	return e, true, nil
}

func (s *RedisStore[V]) Save(ctx context.Context, key string, e Entry[V]) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode entry %q: %w", key, err)
	}
	if err := s.rdb.Set(ctx, s.prefix+key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisStore[V]) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := s.rdb.Scan(ctx, 0, s.prefix+"*", 256).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), s.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}
	return keys, nil
}
