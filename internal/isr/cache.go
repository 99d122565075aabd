package isr

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/stainsolver/stainsolver-backend/internal/platform/logger"
)

const (
	DefaultWindow            = 5 * time.Minute
	DefaultRevalidateTimeout = 10 * time.Second
)

// State reports how a read was served.
type State int

const (
	Miss State = iota
	Fresh
	Stale
)

// String returns the X-Cache header value for the state.
func (s State) String() string {
	switch s {
	case Fresh:
		return "HIT"
	case Stale:
		return "STALE"
	default:
		return "MISS"
	}
}

// Entry is what a Store keeps per key.
type Entry[V any] struct {
	Data     V         `json:"data"`
	CachedAt time.Time `json:"cachedAt"`
}

type Result[V any] struct {
	Data     V
	State    State
	CachedAt time.Time
	// Revalidate is set when the entry was past its window at read time.
	Revalidate bool
}

// Loader computes the value for a key. Errors are returned to the caller on a miss and
// logged on a background refresh; they are never stored.
type Loader[V any] func(ctx context.Context) (V, error)

type Store[V any] interface {
	Load(ctx context.Context, key string) (Entry[V], bool, error)
	Save(ctx context.Context, key string, e Entry[V]) error
	Keys(ctx context.Context) ([]string, error)
}

type Config struct {
	Window            time.Duration
	RevalidateTimeout time.Duration
	// BaseContext parents background refreshes. Cancel it to abandon them on shutdown.
	BaseContext context.Context
	// Now overrides the clock in tests.
	Now func() time.Time
	// OnRevalidate, when set, is called after every background refresh with its outcome.
	OnRevalidate func(key string, err error)
}

// Cache serves stored values while they are within Window and serves stale values while one
// background refresh per key recomputes them.
type Cache[V any] struct {
	store   Store[V]
	log     *logger.Logger
	window  time.Duration
	timeout time.Duration
	baseCtx context.Context
	now     func() time.Time
	notify  func(key string, err error)

	misses singleflight.Group

	mu       sync.Mutex
	inflight map[string]struct{}
	wg       sync.WaitGroup
}

func New[V any](store Store[V], baseLog *logger.Logger, cfg Config) *Cache[V] {
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.RevalidateTimeout <= 0 {
		cfg.RevalidateTimeout = DefaultRevalidateTimeout
	}
	if cfg.BaseContext == nil {
		cfg.BaseContext = context.Background()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.OnRevalidate == nil {
		cfg.OnRevalidate = func(string, error) {}
	}
	if baseLog == nil {
		baseLog = logger.Nop()
	}
	return &Cache[V]{
		store:    store,
		log:      baseLog.With("service", "ISRCache"),
		window:   cfg.Window,
		timeout:  cfg.RevalidateTimeout,
		baseCtx:  cfg.BaseContext,
		now:      cfg.Now,
		notify:   cfg.OnRevalidate,
		inflight: map[string]struct{}{},
	}
}

func (c *Cache[V]) Window() time.Duration { return c.window }

// GetOrLoad returns the cached value for key, loading it on a miss. A stale hit is returned
// immediately and schedules a refresh unless one is already running for key.
//
// Concurrent misses for the same key share one load. The load runs detached from the
// caller that started it, bounded by RevalidateTimeout, so one caller going away cannot
// fail the others; each caller stops waiting when its own ctx is done.
func (c *Cache[V]) GetOrLoad(ctx context.Context, key string, load Loader[V]) (Result[V], error) {
	if res, ok := c.Get(ctx, key); ok {
		if res.Revalidate {
			c.revalidate(key, load)
		}
		return res, nil
	}

	ch := c.misses.DoChan(key, func() (v interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				c.log.Error("cache load panicked", "key", key, "panic", r)
				err = fmt.Errorf("isr load %q: panic: %v", key, r)
			}
		}()

		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()

		data, err := load(lctx)
		if err != nil {
			return nil, err
		}
		e := Entry[V]{Data: data, CachedAt: c.now()}
		if err := c.store.Save(lctx, key, e); err != nil {
			c.log.Warn("cache save failed", "key", key, "error", err)
		}
		return e, nil
	})

	var zero Result[V]
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return zero, r.Err
		}
		e := r.Val.(Entry[V])
		return Result[V]{Data: e.Data, State: Miss, CachedAt: e.CachedAt}, nil
	}
}

// Get reads key without loading. Store failures read as a miss.
func (c *Cache[V]) Get(ctx context.Context, key string) (Result[V], bool) {
	e, ok, err := c.store.Load(ctx, key)
	if err != nil {
		c.log.Warn("cache load failed", "key", key, "error", err)
		return Result[V]{}, false
	}
	if !ok {
		return Result[V]{}, false
	}
	res := Result[V]{Data: e.Data, State: Fresh, CachedAt: e.CachedAt}
	if c.now().Sub(e.CachedAt) >= c.window {
		res.State = Stale
		res.Revalidate = true
	}
	return res, true
}

// Set stores v as a fresh entry.
func (c *Cache[V]) Set(ctx context.Context, key string, v V) error {
	if err := c.store.Save(ctx, key, Entry[V]{Data: v, CachedAt: c.now()}); err != nil {
		return fmt.Errorf("isr set %q: %w", key, err)
	}
	return nil
}

func (c *Cache[V]) Keys(ctx context.Context) ([]string, error) {
	return c.store.Keys(ctx)
}

// Wait blocks until every scheduled refresh has finished.
func (c *Cache[V]) Wait() {
	c.wg.Wait()
}

// revalidate starts a background refresh for key and reports whether one was scheduled.
func (c *Cache[V]) revalidate(key string, load Loader[V]) bool {
	c.mu.Lock()
	if _, busy := c.inflight[key]; busy {
		c.mu.Unlock()
		return false
	}
	c.inflight[key] = struct{}{}
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		defer func() {
			c.mu.Lock()
			delete(c.inflight, key)
			c.mu.Unlock()
		}()
		defer func() {
			if r := recover(); r != nil {
				c.log.Error("cache revalidation panicked", "key", key, "panic", r)
			}
		}()

		ctx, cancel := context.WithTimeout(c.baseCtx, c.timeout)
		defer cancel()

		data, err := load(ctx)
		if err != nil {
			c.log.Warn("cache revalidation failed; keeping stale entry", "key", key, "error", err)
			c.notify(key, err)
			return
		}
		if err := c.store.Save(ctx, key, Entry[V]{Data: data, CachedAt: c.now()}); err != nil {
			c.log.Warn("cache revalidation save failed", "key", key, "error", err)
			c.notify(key, err)
			return
		}
		c.log.Debug("cache revalidated", "key", key)
		c.notify(key, nil)
	}()
	return true
}
