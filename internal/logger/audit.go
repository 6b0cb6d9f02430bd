package logger

import (
	"log"

	"github.com/sirupsen/logrus"

	"cruise-booking-api/internal/dto"
)

var auditLog *logrus.Logger

func InitAudit() {
	auditLog = NewLogger("audit")
}

// WriteAuditLog records one payment-surface request. Writes are asynchronous
// and must never block or fail the request path.
func WriteAuditLog(payload *dto.AuditContextPayload) {
	if payload == nil {
		log.Printf("[AuditLogger] empty payload, skipping")
		return
	}
	if auditLog == nil {
		return
	}

	entry := logrus.Fields{
		"trace_id":      payload.TraceID,
		"request_type":  payload.RequestType,
		"reference":     payload.Reference,
		"payment_id":    payload.PaymentID,
		"ip":            payload.IP,
		"user_agent":    payload.UserAgent,
		"status":        payload.Status,
		"error_msg":     payload.ErrorMsg,
		"latency_ms":    payload.LatencyMs,
		"request_body":  payload.RequestBody,
		"response_body": payload.ResponseBody,
	}

	go func(fields logrus.Fields) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[AuditLogger] goroutine panic: %v", r)
			}
		}()
		auditLog.WithFields(fields).Info("request audited")
	}(entry)
}
