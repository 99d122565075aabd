package observability

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/stainsolver/stainsolver-backend/internal/platform/envutil"
	"github.com/stainsolver/stainsolver-backend/internal/platform/logger"
)

// Metrics is the process-wide metric registry. Every method is safe on a nil receiver so
// callers never need to check whether metrics are enabled.
type Metrics struct {
	apiRequests  *CounterVec
	apiLatency   *HistogramVec
	apiInflight  *Gauge
	apiErrors    *CounterVec
	crawlerHits  *CounterVec
	cacheLookups *CounterVec
	revalidation *CounterVec
	pgStats      *GaugeVec
	redisUp      *Gauge
	redisPing    *Gauge
}

var (
	initOnce sync.Once
	instance *Metrics
)

func Enabled() bool {
	return envutil.Bool("METRICS_ENABLED", false)
}

func Current() *Metrics {
	return instance
}

func scrapeInterval() time.Duration {
	d := envutil.Duration("METRICS_SCRAPE_INTERVAL_SECONDS", 10*time.Second)
	if d <= 0 {
		return 10 * time.Second
	}
	return d
}

// Init builds the shared registry when METRICS_ENABLED is set and returns nil otherwise.
func Init(log *logger.Logger) *Metrics {
	if !Enabled() {
		return nil
	}
	initOnce.Do(func() {
		instance = NewMetrics()
		if log != nil {
			log.Info("Observability metrics enabled")
		}
	})
	return instance
}

func NewMetrics() *Metrics {
	return &Metrics{
		apiRequests: NewCounterVec("ss_api_requests_total", "API requests by method/route/status.", []string{"method", "route", "status"}),
		apiLatency: NewHistogramVec(
			"ss_api_request_duration_seconds",
			"API request latency in seconds by method/route.",
			[]string{"method", "route"},
			[]float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		),
		apiInflight:  NewGauge("ss_api_inflight_requests", "In-flight API requests."),
		apiErrors:    NewCounterVec("ss_api_errors_total", "API responses with 5xx status by route.", []string{"route"}),
		crawlerHits:  NewCounterVec("ss_crawler_requests_total", "Requests from known crawlers by signature.", []string{"crawler"}),
		cacheLookups: NewCounterVec("ss_guide_cache_lookups_total", "Guide cache reads by state (HIT, STALE, MISS).", []string{"state"}),
		revalidation: NewCounterVec("ss_guide_cache_revalidations_total", "Background guide refreshes by outcome.", []string{"outcome"}),
		pgStats:      NewGaugeVec("ss_db_pool", "Database pool statistics.", []string{"stat"}),
		redisUp:      NewGauge("ss_redis_up", "1 when the cache redis answered the last ping."),
		redisPing:    NewGauge("ss_redis_ping_seconds", "Latency of the last redis ping."),
	}
}

// Serve exposes the registry on a dedicated listener and blocks until ctx is done and the
// listener has shut down. An empty addr returns immediately.
func (m *Metrics) Serve(ctx context.Context, log *logger.Logger, addr string) {
	if m == nil {
		return
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           http.HandlerFunc(m.WriteHTTP),
		ReadHeaderTimeout: 5 * time.Second,
	}
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = srv.Shutdown(shutdownCtx)
		cancel()
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		if log != nil {
			log.Error("metrics server failed", "error", err, "addr", addr)
		}
	}
	<-stopped
}

func (m *Metrics) WriteHTTP(w http.ResponseWriter, r *http.Request) {
	if m == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_ = m.WritePrometheus(w)
}

func (m *Metrics) WritePrometheus(w io.Writer) error {
	if m == nil {
		return nil
	}
	writers := []interface{ WritePrometheus(io.Writer) error }{
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
		m.apiErrors,
		m.crawlerHits,
		m.cacheLookups,
		m.revalidation,
		m.pgStats,
		m.redisUp,
		m.redisPing,
	}
	for _, mw := range writers {
		if err := mw.WritePrometheus(w); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) ObserveAPI(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	m.apiRequests.Inc(method, route, strconv.Itoa(status))
	m.apiLatency.Observe(dur.Seconds(), method, route)
	if status >= 500 {
		m.apiErrors.Inc(route)
	}
}

func (m *Metrics) APIInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Add(1)
}

func (m *Metrics) APIInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Add(-1)
}

func (m *Metrics) IncCrawler(signature string) {
	if m == nil || signature == "" {
		return
	}
	m.crawlerHits.Inc(signature)
}

func (m *Metrics) IncCacheLookup(state string) {
	if m == nil {
		return
	}
	m.cacheLookups.Inc(state)
}

func (m *Metrics) CacheLookups(state string) float64 {
	if m == nil {
		return 0
	}
	return m.cacheLookups.Value(state)
}

// ObserveRevalidation matches the isr revalidation hook signature.
func (m *Metrics) ObserveRevalidation(key string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "failed"
	}
	m.revalidation.Inc(outcome)
}

// CollectPostgres records connection pool stats on the scrape interval until ctx is done.
func (m *Metrics) CollectPostgres(ctx context.Context, log *logger.Logger, db *gorm.DB) {
	if m == nil || db == nil {
		return
	}
	ticker := time.NewTicker(scrapeInterval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sqlDB, err := db.DB()
			if err != nil {
				if log != nil {
					log.Warn("metrics: db stats unavailable", "error", err)
				}
				continue
			}
			stats := sqlDB.Stats()
			m.pgStats.Set(float64(stats.OpenConnections), "open_connections")
			m.pgStats.Set(float64(stats.InUse), "in_use")
			m.pgStats.Set(float64(stats.Idle), "idle")
			m.pgStats.Set(float64(stats.WaitCount), "wait_count")
			m.pgStats.Set(stats.WaitDuration.Seconds(), "wait_duration_seconds")
			m.pgStats.Set(float64(stats.MaxOpenConnections), "max_open_connections")
		}
	}
}

// CollectRedis pings the cache redis on the scrape interval until ctx is done. The client is
// shared and is not closed here.
func (m *Metrics) CollectRedis(ctx context.Context, log *logger.Logger, rdb goredis.UniversalClient) {
	if m == nil || rdb == nil {
		return
	}
	ticker := time.NewTicker(scrapeInterval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			start := time.Now()
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			err := rdb.Ping(pingCtx).Err()
			cancel()
			if err != nil {
				m.redisUp.Set(0)
				if log != nil {
					log.Warn("metrics: redis ping failed", "error", err)
				}
				continue
			}
			m.redisUp.Set(1)
			m.redisPing.Set(time.Since(start).Seconds())
		}
	}
}
