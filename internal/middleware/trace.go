package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cruise-booking-api/internal/dto"
	"cruise-booking-api/internal/logger"
)

// TraceAudit assigns a trace id to each payment-surface request and writes
// the accumulated audit context when the request finishes.
func TraceAudit() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := uuid.New().String()
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		ctx := &dto.AuditContextPayload{
			TraceID:     traceID,
			RequestBody: string(bodyBytes),
			IP:          c.ClientIP(),
			UserAgent:   c.GetHeader("User-Agent"),
			StartTime:   time.Now(),
			CreatedAt:   time.Now(),
		}
		c.Set("audit_ctx", ctx)
		c.Writer.Header().Set("X-Trace-ID", traceID)

		c.Next()

		ctx.LatencyMs = time.Since(ctx.StartTime).Milliseconds()
		logger.WriteAuditLog(ctx)
	}
}
