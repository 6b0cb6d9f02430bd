package handler

import (
	"github.com/gin-gonic/gin"

	"cruise-booking-api/internal/dto"
)

// auditCtx pulls the per-request audit payload placed by the trace
// middleware, or nil outside the traced surface.
func auditCtx(c *gin.Context) *dto.AuditContextPayload {
	v, ok := c.Get("audit_ctx")
	if !ok {
		return nil
	}
	ctx, _ := v.(*dto.AuditContextPayload)
	return ctx
}

func traceID(c *gin.Context) string {
	if ctx := auditCtx(c); ctx != nil {
		return ctx.TraceID
	}
	return ""
}
