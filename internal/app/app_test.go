package app

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stainsolver/stainsolver-backend/internal/isr"
	"github.com/stainsolver/stainsolver-backend/internal/platform/logger"
	"github.com/stainsolver/stainsolver-backend/internal/services"
)

// blockingPreload holds Preload open until its context is cancelled.
type blockingPreload struct {
	services.GuideService
	started  chan struct{}
	finished atomic.Bool
}

func (b *blockingPreload) Preload(ctx context.Context) (int, error) {
	close(b.started)
	<-ctx.Done()
	time.Sleep(20 * time.Millisecond)
	b.finished.Store(true)
	return 0, ctx.Err()
}

func TestCloseWaitsForPreload(t *testing.T) {
	baseCtx, cancel := context.WithCancel(context.Background())
	guides := &blockingPreload{started: make(chan struct{})}
	a := &App{
		Log:      logger.Nop(),
		Cfg:      Config{PreloadOnStart: true},
		Services: Services{Guide: guides},
		baseCtx:  baseCtx,
		cancel:   cancel,
	}

	a.Start()
	select {
	case <-guides.started:
	case <-time.After(2 * time.Second):
		t.Fatalf("preload never started")
	}

	done := make(chan struct{})
	go func() {
		a.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Close did not return after cancelling preload")
	}
	if !guides.finished.Load() {
		t.Fatalf("Close returned while preload was still running")
	}
}

func TestCloseCancelsCacheRefreshes(t *testing.T) {
	baseCtx, cancel := context.WithCancel(context.Background())
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cache := isr.New[services.GuideBundle](isr.NewMemoryStore[services.GuideBundle](4), nil, isr.Config{
		Window:            time.Minute,
		RevalidateTimeout: time.Hour,
		BaseContext:       baseCtx,
		Now:               func() time.Time { return now },
	})
	ctx := context.Background()
	if err := cache.Set(ctx, "k", services.GuideBundle{}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	now = now.Add(2 * time.Minute)

	var refreshErr atomic.Value
	started := make(chan struct{})
	_, err := cache.GetOrLoad(ctx, "k", func(ctx context.Context) (services.GuideBundle, error) {
		close(started)
		<-ctx.Done()
		refreshErr.Store(ctx.Err())
		return services.GuideBundle{}, ctx.Err()
	})
	if err != nil {
		t.Fatalf("stale read: %v", err)
	}
	<-started

	a := &App{Log: logger.Nop(), Services: Services{GuideCache: cache}, baseCtx: baseCtx, cancel: cancel}
	done := make(chan struct{})
	go func() {
		a.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Close blocked on a refresh it should have cancelled")
	}
	if got, _ := refreshErr.Load().(error); got != context.Canceled {
		t.Fatalf("refresh ctx err = %v, want context.Canceled", got)
	}
}
