package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/stainsolver/stainsolver-backend/internal/http/handlers"
	httpMW "github.com/stainsolver/stainsolver-backend/internal/http/middleware"
	"github.com/stainsolver/stainsolver-backend/internal/observability"
	"github.com/stainsolver/stainsolver-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	ServiceName string
	CORSOrigins []string
	// ExposeStack adds panic stacks to 500 bodies. Never set in production.
	ExposeStack bool

	APILimiter     *httpMW.RateLimiter
	SitemapLimiter *httpMW.RateLimiter

	HealthHandler   *httpH.HealthHandler
	StainHandler    *httpH.StainHandler
	MaterialHandler *httpH.MaterialHandler
	GuideHandler    *httpH.GuideHandler
	SitemapHandler  *httpH.SitemapHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "stainsolver"
	}

	r := gin.New()
	r.Use(httpMW.Recover(log, cfg.ExposeStack))
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.FlagCrawlers())
	r.Use(httpMW.RequestLogger(log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.SecurityHeaders())
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	api := r.Group("/api")
	api.Use(httpMW.RateLimit(cfg.APILimiter))
	{
		// Stains
		if cfg.StainHandler != nil {
			api.GET("/stains", cfg.StainHandler.ListStains)
			api.GET("/stains/:name", cfg.StainHandler.GetStain)
			api.POST("/stains", cfg.StainHandler.CreateStain)
		}

		// Materials
		if cfg.MaterialHandler != nil {
			api.GET("/materials", cfg.MaterialHandler.ListMaterials)
			api.GET("/materials/:name", cfg.MaterialHandler.GetMaterial)
			api.POST("/materials", cfg.MaterialHandler.CreateMaterial)
		}

		// Guides
		if cfg.GuideHandler != nil {
			api.GET("/guides", cfg.GuideHandler.ListGuides)
			api.GET("/guides/top", cfg.GuideHandler.TopGuides)
			api.GET("/guides/:stainName/:materialName", cfg.GuideHandler.GetGuide)
			api.POST("/guides", cfg.GuideHandler.CreateGuide)
		}

		// Sitemap
		if cfg.SitemapHandler != nil {
			api.GET("/sitemap", httpMW.RateLimit(cfg.SitemapLimiter), cfg.SitemapHandler.GetSitemap)
		}
	}

	return r
}
