package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/stainsolver/stainsolver-backend/internal/http/response"
	"github.com/stainsolver/stainsolver-backend/internal/platform/ctxutil"
	"github.com/stainsolver/stainsolver-backend/internal/platform/logger"
)

type panicEnvelope struct {
	Error response.APIError `json:"error"`
	Stack string            `json:"stack,omitempty"`
}

// Recover turns a handler panic into a 500. exposeStack adds the stack trace to the body and
// must stay off in production.
func Recover(log *logger.Logger, exposeStack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			stack := string(debug.Stack())
			if log != nil {
				fields := []interface{}{"panic", rec, "path", c.Request.URL.Path, "stack", stack}
				fields = append(fields, ctxutil.GetTraceData(c.Request.Context()).LogFields()...)
				log.Error("panic recovered", fields...)
			}
			body := panicEnvelope{Error: response.APIError{
				Message: "Internal Server Error",
				Code:    "internal_error",
			}}
			if exposeStack {
				body.Error.Message = fmt.Sprint(rec)
				body.Stack = stack
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, body)
		}()
		c.Next()
	}
}
