package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cruise-booking-api/internal/dal"
	"cruise-booking-api/internal/gateway"
)

type HealthHandler struct {
	gw *gateway.Client
}

func NewHealthHandler(gw *gateway.Client) *HealthHandler {
	return &HealthHandler{gw: gw}
}

// Healthz reports process liveness plus dependency snapshots. The gateway
// figure is the observed success rate, not a probe.
func (h *HealthHandler) Healthz(c *gin.Context) {
	out := gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}

	dbStatus := "ok"
	if dal.DB == nil {
		dbStatus = "down"
	} else if sqlDB, err := dal.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}
	out["mysql"] = dbStatus

	redisStatus := "ok"
	if dal.RedisClient == nil {
		redisStatus = "down"
	} else if err := dal.RedisClient.Ping(c.Request.Context()).Err(); err != nil {
		redisStatus = "down"
	}
	out["redis"] = redisStatus

	if h.gw != nil {
		out["gateway"] = h.gw.Health.Snapshot()
	}
	c.JSON(http.StatusOK, out)
}
