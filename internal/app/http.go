package app

import (
	"github.com/stainsolver/stainsolver-backend/internal/http"
	httpH "github.com/stainsolver/stainsolver-backend/internal/http/handlers"
	httpMW "github.com/stainsolver/stainsolver-backend/internal/http/middleware"
	"github.com/stainsolver/stainsolver-backend/internal/observability"
	"github.com/stainsolver/stainsolver-backend/internal/platform/logger"
)

type Middleware struct {
	APILimiter     *httpMW.RateLimiter
	SitemapLimiter *httpMW.RateLimiter
}

type Handlers struct {
	Health   *httpH.HealthHandler
	Stain    *httpH.StainHandler
	Material *httpH.MaterialHandler
	Guide    *httpH.GuideHandler
	Sitemap  *httpH.SitemapHandler
}

func wireHandlers(log *logger.Logger, services Services, metrics *observability.Metrics) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(),
		Stain:    httpH.NewStainHandler(log, services.Catalog),
		Material: httpH.NewMaterialHandler(log, services.Catalog),
		Guide:    httpH.NewGuideHandler(log, services.Guide, metrics),
		Sitemap:  httpH.NewSitemapHandler(services.Sitemap),
	}
}

func wireMiddleware(log *logger.Logger, cfg Config) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		APILimiter:     httpMW.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		SitemapLimiter: httpMW.NewRateLimiter(cfg.SitemapRateLimitRPS, cfg.SitemapRateLimitBurst),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware, metrics *observability.Metrics) *http.Server {
	return http.NewServer(":"+cfg.Port, http.RouterConfig{
		Log:             log,
		Metrics:         metrics,
		ServiceName:     "stainsolver",
		CORSOrigins:     cfg.CORSOrigins,
		ExposeStack:     !cfg.IsProduction(),
		APILimiter:      middleware.APILimiter,
		SitemapLimiter:  middleware.SitemapLimiter,
		HealthHandler:   handlers.Health,
		StainHandler:    handlers.Stain,
		MaterialHandler: handlers.Material,
		GuideHandler:    handlers.Guide,
		SitemapHandler:  handlers.Sitemap,
	})
}
