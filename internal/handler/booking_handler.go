package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cruise-booking-api/internal/constant"
	"cruise-booking-api/internal/dto"
	"cruise-booking-api/internal/gateway"
	"cruise-booking-api/internal/service"
	"cruise-booking-api/internal/utils"
)

type BookingHandler struct {
	svc *service.PaymentService
}

func NewBookingHandler(svc *service.PaymentService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// CreateCruiseBooking takes a booking submission, creates the payment and
// booking rows, and returns the gateway redirect URL as data.
func (h *BookingHandler) CreateCruiseBooking(c *gin.Context) {
	var req dto.CreateCruiseBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := utils.ValidationErrorFields(err); fields != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorWithData(constant.CodeInvalidParams, fields))
			return
		}
		c.JSON(http.StatusBadRequest, utils.ErrorWithTrace(constant.CodeParamsTypeError, traceID(c)))
		return
	}
	if ctx := auditCtx(c); ctx != nil {
		ctx.RequestType = "cruise_booking"
	}

	resp, err := h.svc.CreateCruiseBooking(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.done(c, resp)
}

// CreateMealOrder is the meal-order intake.
func (h *BookingHandler) CreateMealOrder(c *gin.Context) {
	var req dto.CreateMealOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := utils.ValidationErrorFields(err); fields != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorWithData(constant.CodeInvalidParams, fields))
			return
		}
		c.JSON(http.StatusBadRequest, utils.ErrorWithTrace(constant.CodeParamsTypeError, traceID(c)))
		return
	}
	if ctx := auditCtx(c); ctx != nil {
		ctx.RequestType = "meal_order"
	}

	resp, err := h.svc.CreateMealOrder(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.done(c, resp)
}

func (h *BookingHandler) done(c *gin.Context, resp dto.BookingPaymentResp) {
	if ctx := auditCtx(c); ctx != nil {
		ctx.Reference = resp.Reference
		ctx.PaymentID = resp.PaymentID
		ctx.Status = "created"
		ctx.ResponseBody = utils.MapToJSON(resp)
	}
	resp.TraceID = traceID(c)
	c.JSON(http.StatusOK, utils.Success(resp))
}

func (h *BookingHandler) fail(c *gin.Context, err error) {
	if ctx := auditCtx(c); ctx != nil {
		ctx.Status = "failed"
		ctx.ErrorMsg = err.Error()
	}
	switch {
	case errors.Is(err, service.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, utils.CustomErrorWithTrace(constant.CodeInvalidAmount, err.Error(), traceID(c)))
	case errors.Is(err, gateway.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, utils.ErrorWithTrace(constant.CodeConfigError, traceID(c)))
	case errors.Is(err, service.ErrGatewayOrder):
		c.JSON(http.StatusBadGateway, utils.CustomErrorWithTrace(constant.CodeGatewayError, err.Error(), traceID(c)))
	default:
		c.JSON(http.StatusInternalServerError, utils.CustomErrorWithTrace(constant.CodeTransactionFailed, err.Error(), traceID(c)))
	}
}
