package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/stainsolver/stainsolver-backend/internal/content"
	"github.com/stainsolver/stainsolver-backend/internal/data/repos"
	types "github.com/stainsolver/stainsolver-backend/internal/domain"
	"github.com/stainsolver/stainsolver-backend/internal/isr"
	"github.com/stainsolver/stainsolver-backend/internal/platform/apierr"
	"github.com/stainsolver/stainsolver-backend/internal/platform/dbctx"
	"github.com/stainsolver/stainsolver-backend/internal/platform/logger"
	"github.com/stainsolver/stainsolver-backend/internal/seo"
	"github.com/stainsolver/stainsolver-backend/internal/validation"
)

const (
	DefaultStoreTimeout = 3 * time.Second
	RelatedGuidesLimit  = 4
	TopGuidesLimit      = 10
	preloadConcurrency  = 4
)

// PriorityStains lead the top-guide list, in this order.
var PriorityStains = []string{"blood", "red_wine", "coffee", "ink", "oil", "makeup", "grass", "chocolate", "mud", "sweat"}

var tracer = otel.Tracer("github.com/stainsolver/stainsolver-backend/internal/services")

// GuidePage is the assembled guide as served to the frontend.
type GuidePage struct {
	ID                uint                      `json:"id"`
	StainID           uint                      `json:"stainId"`
	MaterialID        uint                      `json:"materialId"`
	PreTreatment      string                    `json:"preTreatment"`
	WashMethod        string                    `json:"washMethod"`
	Effectiveness     types.Effectiveness       `json:"effectiveness"`
	Intro             string                    `json:"intro"`
	Steps             []content.Step            `json:"steps"`
	Products          []content.Supply          `json:"products"`
	Warnings          []string                  `json:"warnings"`
	FAQ               []content.FAQ             `json:"faq"`
	EffectivenessData content.EffectivenessData `json:"effectivenessData"`
	Difficulty        string                    `json:"difficulty"`
	TimeRequired      string                    `json:"timeRequired"`
	SuccessRate       int                       `json:"successRate"`
	LastUpdated       time.Time                 `json:"lastUpdated"`
	StructuredData    StructuredData            `json:"structuredData"`
}

type StructuredData struct {
	HowTo   seo.HowTo   `json:"howTo"`
	FAQPage seo.FAQPage `json:"faqPage"`
}

// GuideSummary is the list form of a guide, used for related and top guides.
type GuideSummary struct {
	ID            uint                `json:"id"`
	StainID       uint                `json:"stainId"`
	MaterialID    uint                `json:"materialId"`
	StainName     string              `json:"stainName"`
	MaterialName  string              `json:"materialName"`
	Title         string              `json:"title"`
	Effectiveness types.Effectiveness `json:"effectiveness"`
	LastUpdated   time.Time           `json:"lastUpdated"`
}

type GuideBundle struct {
	Stain         *types.Stain    `json:"stain"`
	Material      *types.Material `json:"material"`
	Guide         GuidePage       `json:"guide"`
	RelatedGuides []GuideSummary  `json:"relatedGuides"`
}

type CreateGuideInput struct {
	StainName     string              `json:"stainName" binding:"required,max=64"`
	MaterialName  string              `json:"materialName" binding:"required,max=64"`
	PreTreatment  string              `json:"preTreatment" binding:"required,max=4000"`
	Products      []string            `json:"products" binding:"required,min=3,max=30,dive,required,max=200"`
	WashMethod    string              `json:"washMethod" binding:"required,max=8000"`
	Warnings      []string            `json:"warnings" binding:"required,min=1,max=20,dive,required,max=500"`
	Effectiveness types.Effectiveness `json:"effectiveness" binding:"required,oneof=excellent good fair poor"`
}

type GuideService interface {
	// GetGuide serves the guide bundle through the revalidating cache.
	GetGuide(ctx context.Context, stainName, materialName string) (isr.Result[GuideBundle], error)
	ListGuides(ctx context.Context) ([]GuideSummary, error)
	TopGuides(ctx context.Context, limit int) ([]GuideSummary, error)
	CreateGuide(ctx context.Context, in CreateGuideInput) (*types.Guide, error)
	// Preload warms the cache with the top guides. Per-guide failures are logged, not returned.
	Preload(ctx context.Context) (int, error)
}

type GuideServiceConfig struct {
	StoreTimeout time.Duration
}

type guideService struct {
	log          *logger.Logger
	stains       repos.StainRepo
	materials    repos.MaterialRepo
	guides       repos.GuideRepo
	cache        *isr.Cache[GuideBundle]
	storeTimeout time.Duration
}

func NewGuideService(
	log *logger.Logger,
	stains repos.StainRepo,
	materials repos.MaterialRepo,
	guides repos.GuideRepo,
	cache *isr.Cache[GuideBundle],
	cfg GuideServiceConfig,
) GuideService {
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = DefaultStoreTimeout
	}
	return &guideService{
		log:          log.With("service", "GuideService"),
		stains:       stains,
		materials:    materials,
		guides:       guides,
		cache:        cache,
		storeTimeout: cfg.StoreTimeout,
	}
}

func GuideCacheKey(stainName, materialName string) string {
	return "guide:" + stainName + ":" + materialName
}

func (s *guideService) GetGuide(ctx context.Context, stainName, materialName string) (isr.Result[GuideBundle], error) {
	stainName, materialName = normalizeSlug(stainName), normalizeSlug(materialName)
	ctx, span := tracer.Start(ctx, "GuideService.GetGuide")
	defer span.End()
	span.SetAttributes(attribute.String("guide.stain", stainName), attribute.String("guide.material", materialName))

	key := GuideCacheKey(stainName, materialName)
	res, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (GuideBundle, error) {
		return s.loadBundle(ctx, stainName, materialName)
	})
	if err != nil {
		if !apierr.IsNotFound(err) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "load guide")
			s.log.Error("guide load failed", "key", key, "error", err)
		}
		return res, err
	}
	span.SetAttributes(attribute.String("cache.state", res.State.String()))
	return res, nil
}

// loadBundle reads the pair from storage and assembles the page. Each read gets its own
// store timeout so a slow database cannot hold a request or a refresh indefinitely.
func (s *guideService) loadBundle(ctx context.Context, stainName, materialName string) (GuideBundle, error) {
	ctx, span := tracer.Start(ctx, "GuideService.loadBundle")
	defer span.End()

	stain, err := withTimeout(ctx, s.storeTimeout, func(dbc dbctx.Context) (*types.Stain, error) {
		return findStain(dbc, s.stains, stainName)
	})
	if err != nil {
		return GuideBundle{}, err
	}
	material, err := withTimeout(ctx, s.storeTimeout, func(dbc dbctx.Context) (*types.Material, error) {
		return findMaterial(dbc, s.materials, materialName)
	})
	if err != nil {
		return GuideBundle{}, err
	}
	guide, err := withTimeout(ctx, s.storeTimeout, func(dbc dbctx.Context) (*types.Guide, error) {
		rows, err := s.guides.GetByPair(dbc, stain.ID, material.ID)
		if err != nil {
			return nil, apierr.Upstream("get guide", err)
		}
		if len(rows) == 0 || rows[0] == nil {
			return nil, apierr.NotFound("guide")
		}
		return rows[0], nil
	})
	if err != nil {
		return GuideBundle{}, err
	}
	related, err := withTimeout(ctx, s.storeTimeout, func(dbc dbctx.Context) ([]*types.Guide, error) {
		rows, err := s.guides.ListRelated(dbc, stain.ID, material.ID, RelatedGuidesLimit)
		if err != nil {
			return nil, apierr.Upstream("list related guides", err)
		}
		return rows, nil
	})
	if err != nil {
		return GuideBundle{}, err
	}

	return GuideBundle{
		Stain:         stain,
		Material:      material,
		Guide:         buildPage(stain, material, guide),
		RelatedGuides: summarize(related),
	}, nil
}

func buildPage(stain *types.Stain, material *types.Material, g *types.Guide) GuidePage {
	generated := content.Assemble(stain, material, content.RawGuideFrom(g))
	return GuidePage{
		ID:                g.ID,
		StainID:           g.StainID,
		MaterialID:        g.MaterialID,
		PreTreatment:      g.PreTreatment,
		WashMethod:        g.WashMethod,
		Effectiveness:     g.Effectiveness,
		Intro:             generated.Intro,
		Steps:             generated.Steps,
		Products:          generated.Supplies,
		Warnings:          generated.Warnings,
		FAQ:               generated.FAQs,
		EffectivenessData: generated.Effectiveness,
		Difficulty:        generated.Difficulty,
		TimeRequired:      generated.TimeRequired,
		SuccessRate:       generated.SuccessRate,
		LastUpdated:       g.UpdatedAt,
		StructuredData: StructuredData{
			HowTo:   seo.BuildHowTo(stain.DisplayName, material.DisplayName, generated.Steps, generated.Supplies),
			FAQPage: seo.BuildFAQPage(generated.FAQs),
		},
	}
}

func summarize(guides []*types.Guide) []GuideSummary {
	out := make([]GuideSummary, 0, len(guides))
	for _, g := range guides {
		if g == nil {
			continue
		}
		sum := GuideSummary{
			ID:            g.ID,
			StainID:       g.StainID,
			MaterialID:    g.MaterialID,
			Effectiveness: g.Effectiveness,
			LastUpdated:   g.UpdatedAt,
		}
		if g.Stain != nil && g.Material != nil {
			sum.StainName = g.Stain.Name
			sum.MaterialName = g.Material.Name
			sum.Title = fmt.Sprintf("How to Remove %s from %s", g.Stain.DisplayName, g.Material.DisplayName)
		}
		out = append(out, sum)
	}
	return out
}

func (s *guideService) ListGuides(ctx context.Context) ([]GuideSummary, error) {
	rows, err := withTimeout(ctx, s.storeTimeout, s.guides.List)
	if err != nil {
		return nil, apierr.Upstream("list guides", err)
	}
	return summarize(rows), nil
}

func (s *guideService) TopGuides(ctx context.Context, limit int) ([]GuideSummary, error) {
	if limit <= 0 || limit > TopGuidesLimit {
		limit = TopGuidesLimit
	}
	rows, err := withTimeout(ctx, s.storeTimeout, s.guides.List)
	if err != nil {
		return nil, apierr.Upstream("list guides", err)
	}
	rankTopGuides(rows)
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return summarize(rows), nil
}

// rankTopGuides orders priority stains first (in PriorityStains order), then by most recent update.
func rankTopGuides(rows []*types.Guide) {
	rank := make(map[string]int, len(PriorityStains))
	for i, name := range PriorityStains {
		rank[name] = i
	}
	priority := func(g *types.Guide) int {
		if g.Stain != nil {
			if r, ok := rank[g.Stain.Name]; ok {
				return r
			}
		}
		return len(PriorityStains)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		pi, pj := priority(rows[i]), priority(rows[j])
		if pi != pj {
			return pi < pj
		}
		if !rows[i].UpdatedAt.Equal(rows[j].UpdatedAt) {
			return rows[i].UpdatedAt.After(rows[j].UpdatedAt)
		}
		return rows[i].ID < rows[j].ID
	})
}

func (s *guideService) CreateGuide(ctx context.Context, in CreateGuideInput) (*types.Guide, error) {
	if !in.Effectiveness.Valid() {
		return nil, apierr.BadRequest(fmt.Errorf("unknown effectiveness %q", in.Effectiveness))
	}
	row := &types.Guide{
		PreTreatment:  cleanText(in.PreTreatment),
		Products:      cleanList(in.Products),
		WashMethod:    cleanText(in.WashMethod),
		Warnings:      cleanList(in.Warnings),
		Effectiveness: in.Effectiveness,
	}
	if row.PreTreatment == "" || row.WashMethod == "" || len(row.Products) == 0 || len(row.Warnings) == 0 {
		return nil, apierr.BadRequest(errors.New("preTreatment, washMethod, products and warnings must not be empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	dbc := dbctx.New(ctx)

	stain, err := findStain(dbc, s.stains, slugify(in.StainName))
	if err != nil {
		return nil, err
	}
	material, err := findMaterial(dbc, s.materials, slugify(in.MaterialName))
	if err != nil {
		return nil, err
	}
	row.StainID, row.MaterialID = stain.ID, material.ID

	candidate := *row
	candidate.Stain, candidate.Material = stain, material
	if failure, ok := validation.CheckGuide(&candidate); !ok {
		return nil, apierr.BadRequest(errors.New(strings.Join(failure.Errors, "; ")))
	}

	existing, err := s.guides.GetByPair(dbc, stain.ID, material.ID)
	if err != nil {
		return nil, apierr.Upstream("lookup guide", err)
	}
	if len(existing) > 0 {
		return nil, apierr.Conflict("guide", fmt.Errorf("guide for %s on %s already exists", stain.Name, material.Name))
	}
	created, err := s.guides.Create(dbc, []*types.Guide{row})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierr.Conflict("guide", fmt.Errorf("guide for %s on %s already exists", stain.Name, material.Name))
		}
		return nil, apierr.Upstream("create guide", err)
	}
	out := created[0]
	out.Stain, out.Material = stain, material
	s.log.Info("guide created", "guide_id", out.ID, "slug", out.Slug())
	return out, nil
}

func (s *guideService) Preload(ctx context.Context) (int, error) {
	top, err := s.TopGuides(ctx, TopGuidesLimit)
	if err != nil {
		return 0, err
	}

	var warmed atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(preloadConcurrency)
	for _, sum := range top {
		if sum.StainName == "" || sum.MaterialName == "" {
			continue
		}
		g.Go(func() error {
			bundle, err := s.loadBundle(gctx, sum.StainName, sum.MaterialName)
			if err != nil {
				s.log.Warn("preload guide failed", "guide_id", sum.ID, "error", err)
				return nil
			}
			if err := s.cache.Set(gctx, GuideCacheKey(sum.StainName, sum.MaterialName), bundle); err != nil {
				s.log.Warn("preload cache set failed", "guide_id", sum.ID, "error", err)
				return nil
			}
			warmed.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(warmed.Load()), err
	}
	s.log.Info("preloaded top guides", "count", int(warmed.Load()), "candidates", len(top))
	return int(warmed.Load()), nil
}

// withTimeout runs fn under a store timeout derived from ctx.
func withTimeout[T any](ctx context.Context, d time.Duration, fn func(dbctx.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	return fn(dbctx.New(ctx))
}

func normalizeSlug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
