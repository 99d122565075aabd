package http

import (
	"bytes"
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/stainsolver/stainsolver-backend/internal/data/repos"
	"github.com/stainsolver/stainsolver-backend/internal/data/repos/testutil"
	types "github.com/stainsolver/stainsolver-backend/internal/domain"
	"github.com/stainsolver/stainsolver-backend/internal/domain/catalog"
	httpH "github.com/stainsolver/stainsolver-backend/internal/http/handlers"
	"github.com/stainsolver/stainsolver-backend/internal/isr"
	"github.com/stainsolver/stainsolver-backend/internal/observability"
	"github.com/stainsolver/stainsolver-backend/internal/platform/dbctx"
	"github.com/stainsolver/stainsolver-backend/internal/services"
)

// countingGuides counts pair lookups, which happen once per guide load.
type countingGuides struct {
	repos.GuideRepo
	loads atomic.Int32
}

func (c *countingGuides) GetByPair(dbc dbctx.Context, stainID, materialID uint) ([]*types.Guide, error) {
	c.loads.Add(1)
	return c.GuideRepo.GetByPair(dbc, stainID, materialID)
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type apiFixture struct {
	db      *gorm.DB
	router  *gin.Engine
	guides  *countingGuides
	cache   *isr.Cache[services.GuideBundle]
	clock   *clock
	metrics *observability.Metrics
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.DB(t)
	log := testutil.Logger(t)
	clk := &clock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	cache := isr.New[services.GuideBundle](isr.NewMemoryStore[services.GuideBundle](64), log, isr.Config{
		Window: 5 * time.Minute,
		Now:    clk.Now,
	})
	stains := repos.NewStainRepo(db, log)
	materials := repos.NewMaterialRepo(db, log)
	guides := &countingGuides{GuideRepo: repos.NewGuideRepo(db, log)}
	metrics := observability.NewMetrics()

	catalogSvc := services.NewCatalogService(log, stains, materials, time.Second)
	guideSvc := services.NewGuideService(log, stains, materials, guides, cache, services.GuideServiceConfig{StoreTimeout: time.Second})
	sitemapSvc := services.NewSitemapService(log, stains, materials, guides, "https://stainsolver.example", time.Second)

	router := NewRouter(RouterConfig{
		Log:             log,
		Metrics:         metrics,
		HealthHandler:   httpH.NewHealthHandler(),
		StainHandler:    httpH.NewStainHandler(log, catalogSvc),
		MaterialHandler: httpH.NewMaterialHandler(log, catalogSvc),
		GuideHandler:    httpH.NewGuideHandler(log, guideSvc, metrics),
		SitemapHandler:  httpH.NewSitemapHandler(sitemapSvc),
	})
	t.Cleanup(cache.Wait)
	return &apiFixture{db: db, router: router, guides: guides, cache: cache, clock: clk, metrics: metrics}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return out
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
		Entity  string `json:"entity"`
	} `json:"error"`
}

func (f *apiFixture) seedCoffeeCotton(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	coffee := testutil.SeedStain(t, ctx, f.db, "coffee", catalog.CategoryBeverage)
	cotton := testutil.SeedMaterial(t, ctx, f.db, "cotton", catalog.MaterialNatural)
	wool := testutil.SeedMaterial(t, ctx, f.db, "wool", catalog.MaterialNatural)
	testutil.SeedGuide(t, ctx, f.db, coffee.ID, cotton.ID, catalog.EffectivenessExcellent)
	testutil.SeedGuide(t, ctx, f.db, coffee.ID, wool.ID, catalog.EffectivenessGood)
}

func TestHealthcheck(t *testing.T) {
	f := newAPIFixture(t)
	rec := f.do(t, nethttp.MethodGet, "/healthcheck", nil)
	if rec.Code != nethttp.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthcheck: %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected a request id on every response")
	}
}

func TestGuideMissingReturns404WithoutCaching(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()
	testutil.SeedStain(t, ctx, f.db, "ink", catalog.CategoryInk)
	testutil.SeedMaterial(t, ctx, f.db, "silk", catalog.MaterialNatural)

	rec := f.do(t, nethttp.MethodGet, "/api/guides/ink/silk", nil)
	if rec.Code != nethttp.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	body := decode[errorBody](t, rec)
	if body.Error.Message != "Guide not found" || body.Error.Code != "guide_not_found" || body.Error.Entity != "guide" {
		t.Fatalf("unexpected error body: %+v", body.Error)
	}
	if rec.Header().Get("X-Cache") != "" {
		t.Fatalf("errors must not carry cache headers")
	}

	keys, err := f.cache.Keys(ctx)
	if err != nil || len(keys) != 0 {
		t.Fatalf("cache must stay empty after a not-found: keys=%v err=%v", keys, err)
	}

	rec = f.do(t, nethttp.MethodGet, "/api/guides/ketchup/silk", nil)
	if body := decode[errorBody](t, rec); rec.Code != nethttp.StatusNotFound || body.Error.Message != "Stain not found" {
		t.Fatalf("unknown stain: %d %+v", rec.Code, body.Error)
	}
	rec = f.do(t, nethttp.MethodGet, "/api/guides/ink/denim", nil)
	if body := decode[errorBody](t, rec); rec.Code != nethttp.StatusNotFound || body.Error.Message != "Material not found" {
		t.Fatalf("unknown material: %d %+v", rec.Code, body.Error)
	}
}

func TestGuideSecondReadServedFromCache(t *testing.T) {
	f := newAPIFixture(t)
	f.seedCoffeeCotton(t)

	first := f.do(t, nethttp.MethodGet, "/api/guides/coffee/cotton", nil)
	if first.Code != nethttp.StatusOK {
		t.Fatalf("first read: %d %s", first.Code, first.Body.String())
	}
	if first.Header().Get("X-Cache") != "MISS" {
		t.Fatalf("first read X-Cache=%q", first.Header().Get("X-Cache"))
	}

	f.clock.Advance(time.Minute)
	second := f.do(t, nethttp.MethodGet, "/api/guides/coffee/cotton", nil)
	if second.Code != nethttp.StatusOK || second.Header().Get("X-Cache") != "HIT" {
		t.Fatalf("second read: %d X-Cache=%q", second.Code, second.Header().Get("X-Cache"))
	}
	if got := second.Header().Get("Cache-Control"); got != "public, max-age=300, stale-while-revalidate=60" {
		t.Fatalf("fresh Cache-Control=%q", got)
	}
	if n := f.guides.loads.Load(); n != 1 {
		t.Fatalf("expected exactly one load, got %d", n)
	}
	if !bytes.Equal(first.Body.Bytes(), second.Body.Bytes()) {
		t.Fatalf("cached body differs from the loaded one")
	}

	bundle := decode[services.GuideBundle](t, second)
	if bundle.Stain == nil || bundle.Stain.Name != "coffee" || bundle.Material.Name != "cotton" {
		t.Fatalf("unexpected bundle entities: %+v", bundle)
	}
	if bundle.Guide.SuccessRate != 95 || len(bundle.RelatedGuides) != 1 {
		t.Fatalf("unexpected guide page: success=%d related=%d", bundle.Guide.SuccessRate, len(bundle.RelatedGuides))
	}
	if f.metrics.CacheLookups("HIT") != 1 || f.metrics.CacheLookups("MISS") != 1 {
		t.Fatalf("cache lookups not recorded")
	}
}

func TestGuideStaleReadRevalidatesInBackground(t *testing.T) {
	f := newAPIFixture(t)
	f.seedCoffeeCotton(t)

	if rec := f.do(t, nethttp.MethodGet, "/api/guides/coffee/cotton", nil); rec.Code != nethttp.StatusOK {
		t.Fatalf("prime: %d", rec.Code)
	}
	f.clock.Advance(6 * time.Minute)

	rec := f.do(t, nethttp.MethodGet, "/api/guides/coffee/cotton", nil)
	if rec.Code != nethttp.StatusOK || rec.Header().Get("X-Cache") != "STALE" {
		t.Fatalf("stale read: %d X-Cache=%q", rec.Code, rec.Header().Get("X-Cache"))
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=60, stale-while-revalidate=300" {
		t.Fatalf("stale Cache-Control=%q", got)
	}

	f.cache.Wait()
	if n := f.guides.loads.Load(); n != 2 {
		t.Fatalf("expected one background refresh, loads=%d", n)
	}
	rec = f.do(t, nethttp.MethodGet, "/api/guides/coffee/cotton", nil)
	if rec.Header().Get("X-Cache") != "HIT" {
		t.Fatalf("refreshed entry should be fresh, X-Cache=%q", rec.Header().Get("X-Cache"))
	}
}

func TestCatalogEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	stain := map[string]any{
		"name":        "red_wine",
		"displayName": "Red Wine",
		"color":       "#722F37",
		"category":    "beverage",
	}
	rec := f.do(t, nethttp.MethodPost, "/api/stains", stain)
	if rec.Code != nethttp.StatusCreated {
		t.Fatalf("create stain: %d %s", rec.Code, rec.Body.String())
	}
	if rec = f.do(t, nethttp.MethodPost, "/api/stains", stain); rec.Code != nethttp.StatusConflict {
		t.Fatalf("duplicate stain: expected 409, got %d", rec.Code)
	}
	rec = f.do(t, nethttp.MethodPost, "/api/stains", map[string]any{"name": "x", "category": "lava"})
	if body := decode[errorBody](t, rec); rec.Code != nethttp.StatusBadRequest || body.Error.Code != "invalid_request" {
		t.Fatalf("invalid stain: %d %+v", rec.Code, body.Error)
	}

	rec = f.do(t, nethttp.MethodPost, "/api/materials", map[string]any{
		"name":        "denim",
		"displayName": "Denim",
		"type":        "natural",
		"careNotes":   "Wash inside out.",
		"description": "Sturdy cotton twill.",
		"commonUses":  "Jeans, jackets",
	})
	if rec.Code != nethttp.StatusCreated {
		t.Fatalf("create material: %d %s", rec.Code, rec.Body.String())
	}

	if rec = f.do(t, nethttp.MethodGet, "/api/stains/red_wine", nil); rec.Code != nethttp.StatusOK {
		t.Fatalf("get stain: %d", rec.Code)
	}
	rec = f.do(t, nethttp.MethodGet, "/api/materials/velvet", nil)
	if body := decode[errorBody](t, rec); rec.Code != nethttp.StatusNotFound || body.Error.Message != "Material not found" {
		t.Fatalf("missing material: %d %+v", rec.Code, body.Error)
	}

	rec = f.do(t, nethttp.MethodPost, "/api/guides", map[string]any{
		"stainName":     "red_wine",
		"materialName":  "denim",
		"preTreatment":  "<b>Blot</b> the wine right away.",
		"products":      []string{"salt", "cold water", "dish soap"},
		"washMethod":    "Cover with salt. Rinse with cold water. Wash as usual.",
		"warnings":      []string{"Avoid hot water"},
		"effectiveness": "good",
	})
	if rec.Code != nethttp.StatusCreated {
		t.Fatalf("create guide: %d %s", rec.Code, rec.Body.String())
	}

	rec = f.do(t, nethttp.MethodPost, "/api/guides", map[string]any{
		"stainName":     "red_wine",
		"materialName":  "denim",
		"preTreatment":  "Blot.",
		"products":      []string{"salt", "water"},
		"washMethod":    "Rinse.",
		"warnings":      []string{"Avoid hot water"},
		"effectiveness": "fair",
	})
	if body := decode[errorBody](t, rec); rec.Code != nethttp.StatusBadRequest || body.Error.Code != "invalid_request" {
		t.Fatalf("guide with two products: %d %+v", rec.Code, body.Error)
	}

	rec = f.do(t, nethttp.MethodGet, "/api/guides/red_wine/denim", nil)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("read created guide: %d %s", rec.Code, rec.Body.String())
	}
	bundle := decode[services.GuideBundle](t, rec)
	if bundle.Guide.PreTreatment != "Blot the wine right away." {
		t.Fatalf("markup must be stripped, got %q", bundle.Guide.PreTreatment)
	}

	list := f.do(t, nethttp.MethodGet, "/api/stains", nil)
	if stains := decode[[]map[string]any](t, list); len(stains) != 1 {
		t.Fatalf("expected 1 stain, got %d", len(stains))
	}
}

func TestSitemapAndTopGuides(t *testing.T) {
	f := newAPIFixture(t)
	f.seedCoffeeCotton(t)

	rec := f.do(t, nethttp.MethodGet, "/api/sitemap", nil)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("sitemap: %d", rec.Code)
	}
	sm := decode[struct {
		Total int      `json:"total"`
		URLs  []string `json:"urls"`
	}](t, rec)
	// 4 static pages, 1 stain, 2 materials, 2 guides.
	if sm.Total != 9 || len(sm.URLs) != 9 || sm.URLs[0] != "/" {
		t.Fatalf("unexpected sitemap: %+v", sm)
	}

	rec = f.do(t, nethttp.MethodGet, "/api/guides/top", nil)
	top := decode[[]services.GuideSummary](t, rec)
	if rec.Code != nethttp.StatusOK || len(top) != 2 || top[0].StainName != "coffee" {
		t.Fatalf("top guides: %d %+v", rec.Code, top)
	}

	rec = f.do(t, nethttp.MethodGet, "/metrics", nil)
	if rec.Code != nethttp.StatusOK || !bytes.Contains(rec.Body.Bytes(), []byte("ss_api_requests_total")) {
		t.Fatalf("metrics endpoint: %d", rec.Code)
	}
}
