package dto

import "time"

// AuditContextPayload accumulates per-request audit fields across the
// middleware chain and handler, and is written to the request log at the end.
type AuditContextPayload struct {
	TraceID      string    `json:"trace_id"`
	RequestType  string    `json:"request_type"`
	RequestBody  string    `json:"request_body"`
	ResponseBody string    `json:"response_body"`
	Reference    string    `json:"reference"`
	PaymentID    uint64    `json:"payment_id"`
	IP           string    `json:"ip"`
	UserAgent    string    `json:"user_agent"`
	Status       string    `json:"status"`
	ErrorMsg     string    `json:"error_msg"`
	StartTime    time.Time `json:"start_time"`
	LatencyMs    int64     `json:"latency_ms"`
	CreatedAt    time.Time `json:"created_at"`
}
