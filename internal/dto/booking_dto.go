package dto

import "cruise-booking-api/internal/model"

// CreateCruiseBookingReq is the JSON cruise booking submission.
type CreateCruiseBookingReq struct {
	CustomerName  string            `json:"customer_name" binding:"required"`
	CustomerEmail string            `json:"customer_email" binding:"required,email"`
	CustomerPhone string            `json:"customer_phone" binding:"required"`
	CabinType     string            `json:"cabin_type" binding:"required"`
	DepartureDate string            `json:"departure_date" binding:"required"` // YYYY-MM-DD
	Passengers    []model.Passenger `json:"passengers" binding:"required,min=1"`
	Amount        string            `json:"amount" binding:"required"`
	Currency      string            `json:"currency"`
	Description   string            `json:"description"`
}

// CreateMealOrderReq is the JSON meal order submission. The total is computed
// server-side from the line items.
type CreateMealOrderReq struct {
	CustomerName    string           `json:"customer_name" binding:"required"`
	CustomerEmail   string           `json:"customer_email" binding:"required,email"`
	CustomerPhone   string           `json:"customer_phone" binding:"required"`
	Items           []model.MealItem `json:"items" binding:"required,min=1"`
	DeliveryAddress string           `json:"delivery_address" binding:"required"`
	Currency        string           `json:"currency"`
	Description     string           `json:"description"`
}

// BookingPaymentResp is returned from both booking intakes.
type BookingPaymentResp struct {
	PaymentID       uint64 `json:"payment_id"`
	BookingID       uint64 `json:"booking_id"`
	Reference       string `json:"reference"`
	OrderTrackingID string `json:"order_tracking_id"`
	RedirectURL     string `json:"redirect_url"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	Status          string `json:"status"`
	TraceID         string `json:"trace_id,omitempty"`
}
