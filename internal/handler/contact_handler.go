package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cruise-booking-api/internal/constant"
	"cruise-booking-api/internal/dto"
	"cruise-booking-api/internal/service"
	"cruise-booking-api/internal/utils"
)

type ContactHandler struct {
	svc *service.ContactService
}

func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.CreateContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := utils.ValidationErrorFields(err); fields != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorWithData(constant.CodeInvalidParams, fields))
			return
		}
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeParamsTypeError))
		return
	}
	contact, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error(constant.CodeInternalError))
		return
	}
	c.JSON(http.StatusOK, utils.Success(contact))
}

func (h *ContactHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	items, total, err := h.svc.List(c.Request.Context(), c.Query("status"), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error(constant.CodeInternalError))
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"items": items, "total": total}))
}

func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := utils.ValidationErrorFields(err); fields != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorWithData(constant.CodeInvalidParams, fields))
			return
		}
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeParamsTypeError))
		return
	}
	if err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error(constant.CodeInternalError))
		return
	}
	c.JSON(http.StatusOK, utils.Success(nil))
}
