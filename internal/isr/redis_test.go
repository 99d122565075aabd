package isr

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

func testRedis(t *testing.T) goredis.UniversalClient {
	t.Helper()
	addr := strings.TrimSpace(os.Getenv("TEST_REDIS_ADDR"))
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	rdb := goredis.NewClient(&goredis.Options{Addr: addr, DialTimeout: 2 * time.Second})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

type bundle struct {
	Name  string   `json:"name"`
	Steps []string `json:"steps"`
}

func TestRedisStoreRoundTrip(t *testing.T) {
	rdb := testRedis(t)
	ctx := context.Background()
	prefix := "isrtest-" + uuid.NewString()
	s := NewRedisStore[bundle](rdb, prefix, time.Minute)

	if _, ok, err := s.Load(ctx, "guide:coffee:cotton"); err != nil || ok {
		t.Fatalf("empty Load: ok=%v err=%v", ok, err)
	}

	cachedAt := time.Now().UTC().Truncate(time.Millisecond)
	in := Entry[bundle]{Data: bundle{Name: "coffee/cotton", Steps: []string{"blot", "rinse"}}, CachedAt: cachedAt}
	if err := s.Save(ctx, "guide:coffee:cotton", in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, ok, err := s.Load(ctx, "guide:coffee:cotton")
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if out.Data.Name != in.Data.Name || len(out.Data.Steps) != 2 || !out.CachedAt.Equal(cachedAt) {
		t.Fatalf("round trip mismatch: %+v", out)
	}

	keys, err := s.Keys(ctx)
	if err != nil || len(keys) != 1 || keys[0] != "guide:coffee:cotton" {
		t.Fatalf("Keys: err=%v keys=%v", err, keys)
	}
	if ttl := rdb.TTL(ctx, prefix+":guide:coffee:cotton").Val(); ttl <= 0 || ttl > time.Minute {
		t.Fatalf("expected ttl within a minute, got %v", ttl)
	}
	_ = rdb.Del(ctx, prefix+":guide:coffee:cotton").Err()
}

func TestRedisStorePrefixHasOneSeparator(t *testing.T) {
	cases := map[string]string{
		"stainsolver:isr":    "stainsolver:isr:",
		"stainsolver:isr:":   "stainsolver:isr:",
		" stainsolver:isr::": "stainsolver:isr:",
		"":                   "isr:",
		":":                  "isr:",
	}
	for in, want := range cases {
		s := NewRedisStore[bundle](nil, in, time.Minute)
		if got := s.prefix + "guide:coffee:cotton"; got != want+"guide:coffee:cotton" {
			t.Fatalf("prefix %q: key=%q", in, got)
		}
	}
}
