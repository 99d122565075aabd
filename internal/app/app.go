package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/stainsolver/stainsolver-backend/internal/data/db"
	"github.com/stainsolver/stainsolver-backend/internal/http"
	"github.com/stainsolver/stainsolver-backend/internal/observability"
	"github.com/stainsolver/stainsolver-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      Config
	Repos    Repos
	Services Services
	Clients  Clients
	Metrics  *observability.Metrics
	Server   *http.Server

	dbService    *db.Service
	otelShutdown func(context.Context) error
	baseCtx      context.Context
	cancel       context.CancelFunc
	// background tracks the goroutines Start launches; Close waits for them.
	background sync.WaitGroup
}

// Bootstrap loads the environment and builds the logger and config shared by every command.
func Bootstrap() (*logger.Logger, Config, error) {
	if err := LoadEnvFile(); err != nil {
		return nil, Config{}, fmt.Errorf("load .env.local: %w", err)
	}
	cfg := LoadConfig()
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, Config{}, fmt.Errorf("init logger: %w", err)
	}
	return log, cfg, nil
}

// OpenDatabase connects and migrates the catalog tables.
func OpenDatabase(log *logger.Logger, cfg Config) (*db.Service, error) {
	svc, err := db.NewService(log, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := svc.AutoMigrateAll(); err != nil {
		_ = svc.Close()
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return svc, nil
}

func New(ctx context.Context) (*App, error) {
	log, cfg, err := Bootstrap()
	if err != nil {
		return nil, err
	}

	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfigFromEnv("stainsolver", cfg.Env, cfg.Version))
	metrics := observability.Init(log)

	dbService, err := OpenDatabase(log, cfg)
	if err != nil {
		log.Sync()
		return nil, err
	}
	theDB := dbService.DB()

	clients, err := wireClients(ctx, log, cfg)
	if err != nil {
		_ = dbService.Close()
		log.Sync()
		return nil, err
	}

	baseCtx, cancel := context.WithCancel(context.Background())

	reposet := NewRepos(theDB, log)
	serviceset := wireServices(baseCtx, log, cfg, reposet, clients, metrics)
	handlerset := wireHandlers(log, serviceset, metrics)
	middleware := wireMiddleware(log, cfg)
	server := wireServer(log, cfg, handlerset, middleware, metrics)

	return &App{
		Log:          log,
		DB:           theDB,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		Clients:      clients,
		Metrics:      metrics,
		Server:       server,
		dbService:    dbService,
		otelShutdown: otelShutdown,
		baseCtx:      baseCtx,
		cancel:       cancel,
	}, nil
}

// Start launches the background work: cache preloading and metric collectors. Everything it
// starts runs on the app's base context and stops on Close.
func (a *App) Start() {
	if a == nil || a.baseCtx == nil {
		return
	}
	ctx := a.baseCtx
	a.goBackground(func() { a.Metrics.CollectPostgres(ctx, a.Log, a.DB) })
	a.goBackground(func() { a.Metrics.CollectRedis(ctx, a.Log, a.Clients.Redis) })
	a.goBackground(func() { a.Metrics.Serve(ctx, a.Log, a.Cfg.MetricsAddr) })

	if !a.Cfg.PreloadOnStart {
		return
	}
	a.goBackground(func() {
		start := time.Now()
		n, err := a.Services.Guide.Preload(ctx)
		if err != nil {
			a.Log.Warn("Guide preload failed", "error", err)
			return
		}
		a.Log.Info("Guides preloaded", "count", n, "duration_ms", time.Since(start).Milliseconds())
	})
}

func (a *App) goBackground(fn func()) {
	a.background.Add(1)
	go func() {
		defer a.background.Done()
		fn()
	}()
}

// Run serves HTTP until ctx is done.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Server listening", "addr", a.Server.Addr())
	return a.Server.Run(ctx, a.Cfg.ShutdownTimeout)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	// Cancel first so preload and cache refreshes on the base context abort before storage closes.
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.background.Wait()
	if a.Services.GuideCache != nil {
		a.Services.GuideCache.Wait()
	}
	a.Clients.Close()
	if a.dbService != nil {
		if err := a.dbService.Close(); err != nil {
			a.Log.Warn("Database close failed", "error", err)
		}
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
