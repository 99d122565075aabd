package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stainsolver/stainsolver-backend/internal/observability"
	"github.com/stainsolver/stainsolver-backend/internal/platform/ctxutil"
)

// Metrics instruments HTTP request counts and latency when metrics are enabled.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		m.APIInflightInc()
		defer m.APIInflightDec()

		c.Next()

		if cd := ctxutil.GetClientData(c.Request.Context()); cd != nil {
			m.IncCrawler(cd.Crawler)
		}
		m.ObserveAPI(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
