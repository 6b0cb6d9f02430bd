package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment status values. Only StatusPending is written on the create path;
// terminal transitions happen in reconciliation and are written exactly once.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

const (
	PaymentTypeCruiseBooking = "cruise_booking"
	PaymentTypeMealOrder     = "meal_order"
)

type Payment struct {
	ID              uint64          `gorm:"column:id;primaryKey"`
	MerchantRef     string          `gorm:"column:merchant_ref;uniqueIndex;size:64"`
	PaymentType     string          `gorm:"column:payment_type;size:32"`
	Amount          decimal.Decimal `gorm:"column:amount;type:decimal(12,2)"`
	Currency        string          `gorm:"column:currency;size:8"`
	Status          string          `gorm:"column:status;size:16;index"`
	CustomerName    string          `gorm:"column:customer_name;size:128"`
	CustomerEmail   string          `gorm:"column:customer_email;size:128"`
	CustomerPhone   string          `gorm:"column:customer_phone;size:32"`
	Description     string          `gorm:"column:description;size:255"`
	OrderTrackingID *string         `gorm:"column:order_tracking_id;size:64"`
	NotifyStatus    int8            `gorm:"column:notify_status;default:0"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
	FinishedAt      *time.Time      `gorm:"column:finished_at"`
}

func (Payment) TableName() string { return "payments" }

// Terminal reports whether the payment has reached a final state.
func (p *Payment) Terminal() bool {
	return p.Status == PaymentStatusCompleted || p.Status == PaymentStatusFailed
}
