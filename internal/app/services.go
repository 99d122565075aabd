package app

import (
	"context"

	"github.com/stainsolver/stainsolver-backend/internal/isr"
	"github.com/stainsolver/stainsolver-backend/internal/observability"
	"github.com/stainsolver/stainsolver-backend/internal/platform/logger"
	"github.com/stainsolver/stainsolver-backend/internal/services"
)

type Services struct {
	GuideCache *isr.Cache[services.GuideBundle]
	Catalog    services.CatalogService
	Guide      services.GuideService
	Sitemap    services.SitemapService
}

// guideStore picks the shared redis store when a client is configured.
func guideStore(log *logger.Logger, cfg Config, clients Clients) isr.Store[services.GuideBundle] {
	if clients.Redis != nil {
		log.Info("Guide cache backed by redis", "ttl", cfg.RedisTTL)
		return isr.NewRedisStore[services.GuideBundle](clients.Redis, "stainsolver:isr", cfg.RedisTTL)
	}
	log.Info("Guide cache held in memory", "max_entries", cfg.ISRMaxEntries)
	return isr.NewMemoryStore[services.GuideBundle](cfg.ISRMaxEntries)
}

// wireServices builds the services. baseCtx outlives requests and parents cache refreshes.
func wireServices(baseCtx context.Context, log *logger.Logger, cfg Config, reposet Repos, clients Clients, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")

	cache := isr.New[services.GuideBundle](guideStore(log, cfg, clients), log, isr.Config{
		Window:            cfg.ISRWindow,
		RevalidateTimeout: cfg.ISRRevalidateTimeout,
		BaseContext:       baseCtx,
		OnRevalidate:      metrics.ObserveRevalidation,
	})

	return Services{
		GuideCache: cache,
		Catalog:    services.NewCatalogService(log, reposet.Stain, reposet.Material, cfg.StoreTimeout),
		Guide: services.NewGuideService(log, reposet.Stain, reposet.Material, reposet.Guide, cache, services.GuideServiceConfig{
			StoreTimeout: cfg.StoreTimeout,
		}),
		Sitemap: services.NewSitemapService(log, reposet.Stain, reposet.Material, reposet.Guide, cfg.SitemapBaseURL, cfg.StoreTimeout),
	}
}
