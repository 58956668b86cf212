package middleware

import (
	"fmt"
	"net/http"
	"time"

	"repair_desk/pkg"
	"repair_desk/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// RequestLogger tags the request context with a request id and logs one line
// per request once it is served.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := c.GetHeader(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header(HeaderRequestID, reqID)

		ctx := log.WithFields(c.Request.Context(), map[string]any{
			"request_id": reqID,
			"method":     c.Request.Method,
			"path":       c.FullPath(),
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		ctx = log.WithFields(c.Request.Context(), map[string]any{
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
		})
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.Error(ctx, "request served", lastError(c))
		case c.Writer.Status() >= http.StatusBadRequest:
			log.Warn(ctx, "request served", lastError(c))
		default:
			log.Debug(ctx, "request served")
		}
	}
}

// Recovery turns a panic into a 500 with the usual error body.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error(c.Request.Context(), "recovered from panic", fmt.Errorf("%v", recovered))
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}

func lastError(c *gin.Context) error {
	if e := c.Errors.Last(); e != nil {
		return e.Err
	}
	return nil
}
