package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cruise-booking-api/internal/constant"
	"cruise-booking-api/internal/service"
	"cruise-booking-api/internal/utils"
)

type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Overview(c *gin.Context) {
	resp, err := h.svc.Build(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.CustomError(constant.CodeInternalError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.Success(resp))
}
