package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/stainsolver/stainsolver-backend/internal/data/repos"
	types "github.com/stainsolver/stainsolver-backend/internal/domain"
	"github.com/stainsolver/stainsolver-backend/internal/platform/apierr"
	"github.com/stainsolver/stainsolver-backend/internal/platform/dbctx"
	"github.com/stainsolver/stainsolver-backend/internal/platform/logger"
	"github.com/stainsolver/stainsolver-backend/internal/seo"
)

type SitemapService interface {
	// Paths lists every public page path.
	Paths(ctx context.Context) ([]string, error)
	// XML renders sitemap.xml for the configured base URL.
	XML(ctx context.Context, now time.Time) ([]byte, error)
}

type sitemapService struct {
	log          *logger.Logger
	stains       repos.StainRepo
	materials    repos.MaterialRepo
	guides       repos.GuideRepo
	baseURL      string
	storeTimeout time.Duration
}

func NewSitemapService(log *logger.Logger, stains repos.StainRepo, materials repos.MaterialRepo, guides repos.GuideRepo, baseURL string, storeTimeout time.Duration) SitemapService {
	if storeTimeout <= 0 {
		storeTimeout = DefaultStoreTimeout
	}
	return &sitemapService{
		log:          log.With("service", "SitemapService"),
		stains:       stains,
		materials:    materials,
		guides:       guides,
		baseURL:      baseURL,
		storeTimeout: storeTimeout,
	}
}

func (s *sitemapService) Paths(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	var (
		stains    []*types.Stain
		materials []*types.Material
		guides    []*types.Guide
	)
	g, gctx := errgroup.WithContext(ctx)
	dbc := dbctx.New(gctx)
	g.Go(func() (err error) {
		stains, err = s.stains.List(dbc)
		return err
	})
	g.Go(func() (err error) {
		materials, err = s.materials.List(dbc)
		return err
	})
	g.Go(func() (err error) {
		guides, err = s.guides.List(dbc)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apierr.Upstream("load sitemap catalog", err)
	}
	return seo.Paths(stains, materials, guides), nil
}

func (s *sitemapService) XML(ctx context.Context, now time.Time) ([]byte, error) {
	paths, err := s.Paths(ctx)
	if err != nil {
		return nil, err
	}
	body, err := seo.BuildSitemap(s.baseURL, paths, now)
	if err != nil {
		return nil, err
	}
	s.log.Info("sitemap rendered", "urls", len(paths))
	return body, nil
}
