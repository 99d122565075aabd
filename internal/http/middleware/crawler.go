package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stainsolver/stainsolver-backend/internal/platform/ctxutil"
)

// crawlerSignatures are matched case-insensitively against the User-Agent, in order.
var crawlerSignatures = []string{
	"chatgpt",
	"openai",
	"gpt",
	"bingbot",
	"perplexity",
	"claude",
	"anthropic",
	"googlebot",
	"slurp",
	"duckduckbot",
	"baiduspider",
	"yandex",
}

// DetectCrawler returns the first crawler signature found in ua.
func DetectCrawler(ua string) (string, bool) {
	lower := strings.ToLower(ua)
	if lower == "" {
		return "", false
	}
	for _, sig := range crawlerSignatures {
		if strings.Contains(lower, sig) {
			return sig, true
		}
	}
	return "", false
}

// FlagCrawlers records the caller's user agent and crawler signature on the request context.
func FlagCrawlers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ua := c.Request.UserAgent()
		sig, _ := DetectCrawler(ua)
		ctx := ctxutil.WithClientData(c.Request.Context(), &ctxutil.ClientData{
			UserAgent: ua,
			Crawler:   sig,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
