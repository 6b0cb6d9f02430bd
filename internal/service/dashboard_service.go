package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"cruise-booking-api/internal/dao"
	"cruise-booking-api/internal/dto"
	"cruise-booking-api/internal/model"
)

type DashboardService struct {
	paymentDao *dao.PaymentDao
	jobDao     *dao.JobDao
	contactDao *dao.ContactDao
}

func NewDashboardService(paymentDao *dao.PaymentDao, jobDao *dao.JobDao, contactDao *dao.ContactDao) *DashboardService {
	return &DashboardService{paymentDao: paymentDao, jobDao: jobDao, contactDao: contactDao}
}

// Build assembles the admin overview in one call. Count failures on the side
// panels degrade to zero rather than failing the whole page.
func (s *DashboardService) Build(ctx context.Context) (dto.DashboardResp, error) {
	var resp dto.DashboardResp

	rows, err := s.paymentDao.Aggregate(ctx)
	if err != nil {
		return resp, fmt.Errorf("aggregate payments failed: %w", err)
	}
	for _, row := range rows {
		total, err := decimal.NewFromString(row.Total)
		if err != nil {
			total = decimal.Zero
		}
		resp.Aggregates = append(resp.Aggregates, dto.PaymentAggregate{
			PaymentType: row.PaymentType,
			Status:      row.Status,
			Count:       row.Count,
			Total:       total,
			Currency:    row.Currency,
		})
	}

	recent, err := s.paymentDao.Recent(ctx, 10)
	if err != nil {
		return resp, fmt.Errorf("recent payments failed: %w", err)
	}
	for _, p := range recent {
		item := dto.PaymentStatusResp{
			Reference:   p.MerchantRef,
			PaymentType: p.PaymentType,
			Status:      p.Status,
			Amount:      p.Amount.StringFixed(2),
			Currency:    p.Currency,
			CreatedAt:   p.CreatedAt,
		}
		if p.OrderTrackingID != nil {
			item.OrderTrackingID = *p.OrderTrackingID
		}
		resp.RecentPayments = append(resp.RecentPayments, item)
	}

	resp.OpenJobs, _ = s.jobDao.CountByStatus(ctx, model.JobStatusOpen)
	resp.NewApplications, _ = s.jobDao.CountApplicationsByStatus(ctx, model.ApplicationStatusSubmitted)
	resp.UnreadContacts, _ = s.contactDao.CountByStatus(ctx, model.ContactStatusNew)
	return resp, nil
}
