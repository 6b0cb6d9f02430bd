package dto

// GatewayOrderRequest is the provider's order submission contract.
type GatewayOrderRequest struct {
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Type        string `json:"type"` // always "MERCHANT"
	Reference   string `json:"reference"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	CountryCode string `json:"country_code"`
	Currency    string `json:"currency"`
	CallbackURL string `json:"callback_url"`
}

// GatewayOrderResponse is the provider's accept/reject answer.
type GatewayOrderResponse struct {
	OrderTrackingID string `json:"order_tracking_id"`
	RedirectURL     string `json:"redirect_url"`
	Error           string `json:"error,omitempty"`
}

// GatewayAuthResponse carries the bearer token for subsequent calls.
type GatewayAuthResponse struct {
	Token      string `json:"token"`
	ExpiryDate string `json:"expiryDate"`
	Error      string `json:"error,omitempty"`
}

// Gateway transaction status values.
const (
	GatewayStatusCompleted = "COMPLETED"
	GatewayStatusFailed    = "FAILED"
	GatewayStatusPending   = "PENDING"
	GatewayStatusInvalid   = "INVALID"
)

// GatewayTransactionStatus is the provider's status-query answer, used for
// callback reconciliation instead of trusting redirect query parameters.
type GatewayTransactionStatus struct {
	OrderTrackingID   string `json:"order_tracking_id"`
	MerchantReference string `json:"merchant_reference"`
	PaymentStatus     string `json:"payment_status_description"`
	ConfirmationCode  string `json:"confirmation_code"`
	PaymentMethod     string `json:"payment_method"`
	Amount            string `json:"amount"`
	Currency          string `json:"currency"`
	Error             string `json:"error,omitempty"`
}
