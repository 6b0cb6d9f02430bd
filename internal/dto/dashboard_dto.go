package dto

import "github.com/shopspring/decimal"

// PaymentAggregate is one row of the dashboard totals: payments grouped by
// type and status with their summed amounts.
type PaymentAggregate struct {
	PaymentType string          `json:"payment_type"`
	Status      string          `json:"status"`
	Count       int64           `json:"count"`
	Total       decimal.Decimal `json:"total"`
	Currency    string          `json:"currency"`
}

// DashboardResp answers GET /api/v1/admin/dashboard.
type DashboardResp struct {
	Aggregates      []PaymentAggregate  `json:"aggregates"`
	RecentPayments  []PaymentStatusResp `json:"recent_payments"`
	OpenJobs        int64               `json:"open_jobs"`
	NewApplications int64               `json:"new_applications"`
	UnreadContacts  int64               `json:"unread_contacts"`
}
