package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shashitejag2k2/employee-management/internal/shared/contextutil"
)

const CorrelationIDHeader = "X-Correlation-Id"

// CorrelationID threads an opaque correlation identifier through every
// request: taken from the inbound header when present, generated
// otherwise, echoed on the response, and attached to a request-scoped
// logger so every log line downstream carries it.
func CorrelationID(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cid := c.GetHeader(CorrelationIDHeader)
		if cid == "" {
			cid = uuid.New().String()
		}
		c.Header(CorrelationIDHeader, cid)

		reqLogger := logger.With(zap.String("correlation_id", cid))

		ctx := c.Request.Context()
		ctx = contextutil.WithCorrelationID(ctx, cid)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
