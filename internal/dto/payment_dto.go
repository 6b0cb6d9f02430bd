package dto

import "time"

// InitiatePaymentParams is the query surface of /api/initiate-payment.
type InitiatePaymentParams struct {
	Reference   string `form:"reference"`
	Amount      string `form:"amount"`
	Email       string `form:"email"`
	Phone       string `form:"phone"`
	Name        string `form:"name"`
	Type        string `form:"type"`
	Description string `form:"description"`
}

// Missing lists required parameters that are absent.
func (p InitiatePaymentParams) Missing() []string {
	var missing []string
	check := func(name, v string) {
		if v == "" {
			missing = append(missing, name)
		}
	}
	check("reference", p.Reference)
	check("amount", p.Amount)
	check("email", p.Email)
	check("phone", p.Phone)
	check("name", p.Name)
	check("type", p.Type)
	return missing
}

// PaymentIntent is the validated input to the payment initiation flow.
type PaymentIntent struct {
	Reference     string
	PaymentType   string
	Amount        string
	Currency      string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Description   string
}

// InitiatePaymentResult is the success outcome: data, not control flow.
// The HTTP layer decides whether to 302 or return JSON.
type InitiatePaymentResult struct {
	PaymentID       uint64 `json:"payment_id"`
	Reference       string `json:"reference"`
	OrderTrackingID string `json:"order_tracking_id"`
	RedirectURL     string `json:"redirect_url"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
}

// PaymentStatusResp answers GET /api/v1/payments/:ref.
type PaymentStatusResp struct {
	Reference       string    `json:"reference"`
	PaymentType     string    `json:"payment_type"`
	Status          string    `json:"status"`
	Amount          string    `json:"amount"`
	Currency        string    `json:"currency"`
	OrderTrackingID string    `json:"order_tracking_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// IPNReq is the gateway's server-to-server notification body.
type IPNReq struct {
	OrderTrackingID   string `json:"order_tracking_id" binding:"required"`
	MerchantReference string `json:"merchant_reference" binding:"required"`
}

// ReconcileResult reports the outcome of a callback/IPN reconciliation.
type ReconcileResult struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Changed   bool   `json:"changed"`
}
