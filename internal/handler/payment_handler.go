package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"cruise-booking-api/internal/constant"
	"cruise-booking-api/internal/dto"
	"cruise-booking-api/internal/gateway"
	"cruise-booking-api/internal/service"
	"cruise-booking-api/internal/utils"
)

type PaymentHandler struct {
	svc *service.PaymentService
}

func NewPaymentHandler(svc *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// InitiatePayment serves /api/initiate-payment on GET and POST. Missing or
// malformed parameters are rejected before any store or gateway work starts.
// On success the browser is sent to the gateway's redirect URL.
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	var params dto.InitiatePaymentParams
	if err := c.ShouldBind(&params); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorWithTrace(constant.CodeParamsTypeError, traceID(c)))
		return
	}
	if missing := params.Missing(); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, utils.ErrorWithData(constant.CodeMissingParams,
			gin.H{"missing": missing}))
		return
	}
	amount, err := decimal.NewFromString(params.Amount)
	if err != nil || amount.Cmp(decimal.Zero) <= 0 {
		c.JSON(http.StatusBadRequest, utils.ErrorWithTrace(constant.CodeInvalidAmount, traceID(c)))
		return
	}

	intent := dto.PaymentIntent{
		Reference:     params.Reference,
		PaymentType:   params.Type,
		Amount:        params.Amount,
		CustomerName:  params.Name,
		CustomerEmail: params.Email,
		CustomerPhone: params.Phone,
		Description:   params.Description,
	}
	if ctx := auditCtx(c); ctx != nil {
		ctx.RequestType = "initiate_payment"
		ctx.Reference = params.Reference
	}

	result, err := h.svc.Initiate(c.Request.Context(), intent)
	if err != nil {
		h.writeAudit(c, "failed", err.Error())
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, utils.CustomErrorWithTrace(constant.CodeInvalidAmount, err.Error(), traceID(c)))
		case errors.Is(err, service.ErrInvalidType):
			c.JSON(http.StatusBadRequest, utils.CustomErrorWithTrace(constant.CodeInvalidParams, err.Error(), traceID(c)))
		case errors.Is(err, gateway.ErrNotConfigured):
			c.JSON(http.StatusInternalServerError, utils.ErrorWithTrace(constant.CodeConfigError, traceID(c)))
		case errors.Is(err, service.ErrGatewayOrder):
			c.JSON(http.StatusBadGateway, utils.CustomErrorWithTrace(constant.CodeGatewayError, err.Error(), traceID(c)))
		default:
			c.JSON(http.StatusInternalServerError, utils.CustomErrorWithTrace(constant.CodeInternalError, err.Error(), traceID(c)))
		}
		return
	}
	h.writeAudit(c, "redirected", "")

	// browsers follow the redirect; API clients can ask for the URL as data
	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, utils.Success(result))
		return
	}
	c.Redirect(http.StatusFound, result.RedirectURL)
}

// Callback handles the browser return from the gateway. The query parameters
// identify the payment; the outcome is read back from the gateway itself.
func (h *PaymentHandler) Callback(c *gin.Context) {
	ref := c.Query("ref")
	if ref == "" {
		c.JSON(http.StatusBadRequest, utils.ErrorWithData(constant.CodeMissingParams,
			gin.H{"missing": []string{"ref"}}))
		return
	}
	if ctx := auditCtx(c); ctx != nil {
		ctx.RequestType = "payment_callback"
		ctx.Reference = ref
	}

	result, err := h.svc.Reconcile(c.Request.Context(), ref)
	if err != nil {
		h.writeAudit(c, "failed", err.Error())
		if errors.Is(err, service.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorWithTrace(constant.CodeNotFound, traceID(c)))
			return
		}
		c.JSON(http.StatusBadGateway, utils.CustomErrorWithTrace(constant.CodeGatewayError, err.Error(), traceID(c)))
		return
	}
	h.writeAudit(c, result.Status, "")
	c.JSON(http.StatusOK, utils.Success(result))
}

// IPN handles the gateway's server-to-server notification. The source IP is
// already checked by middleware; the tracking id must match the stored one.
func (h *PaymentHandler) IPN(c *gin.Context) {
	var req dto.IPNReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := utils.ValidationErrorFields(err); fields != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorWithData(constant.CodeInvalidParams, fields))
			return
		}
		c.JSON(http.StatusBadRequest, utils.ErrorWithTrace(constant.CodeParamsTypeError, traceID(c)))
		return
	}
	if ctx := auditCtx(c); ctx != nil {
		ctx.RequestType = "payment_ipn"
		ctx.Reference = req.MerchantReference
	}

	result, err := h.svc.ReconcileIPN(c.Request.Context(), req)
	if err != nil {
		h.writeAudit(c, "failed", err.Error())
		if errors.Is(err, service.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorWithTrace(constant.CodeNotFound, traceID(c)))
			return
		}
		c.JSON(http.StatusBadGateway, utils.CustomErrorWithTrace(constant.CodeGatewayError, err.Error(), traceID(c)))
		return
	}
	h.writeAudit(c, result.Status, "")
	c.JSON(http.StatusOK, utils.Success(result))
}

// Status answers GET /api/v1/payments/:ref.
func (h *PaymentHandler) Status(c *gin.Context) {
	ref := c.Param("ref")
	resp, err := h.svc.Status(c.Request.Context(), ref)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorWithTrace(constant.CodeNotFound, traceID(c)))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorWithTrace(constant.CodeInternalError, traceID(c)))
		return
	}
	c.JSON(http.StatusOK, utils.Success(resp))
}

func (h *PaymentHandler) writeAudit(c *gin.Context, status, errMsg string) {
	if ctx := auditCtx(c); ctx != nil {
		ctx.Status = status
		ctx.ErrorMsg = errMsg
	}
}
