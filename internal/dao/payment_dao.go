package dao

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"cruise-booking-api/internal/dal"
	"cruise-booking-api/internal/model"
)

type PaymentDao struct {
	DB *gorm.DB
}

func NewPaymentDao() *PaymentDao {
	if dal.DB == nil {
		log.Panic("[FATAL] dal.DB is nil - database not initialized")
	}
	return &PaymentDao{DB: dal.DB}
}

func NewPaymentDaoWithDB(db *gorm.DB) *PaymentDao {
	if db == nil {
		log.Panic("[FATAL] db cannot be nil")
	}
	return &PaymentDao{DB: db}
}

func (r *PaymentDao) checkDB() error {
	if r == nil || r.DB == nil {
		return errors.New("DB connection is nil")
	}
	return nil
}

// CreatePayment inserts a bare payment row. Used by the generic initiation
// surface where the caller owns the domain record.
func (r *PaymentDao) CreatePayment(ctx context.Context, p *model.Payment) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("create payment failed: %w", err)
	}
	return r.DB.WithContext(ctx).Create(p).Error
}

// CreateWithCruiseBooking inserts the payment and its booking row in one
// transaction. A failure on either write leaves no partial state.
func (r *PaymentDao) CreateWithCruiseBooking(ctx context.Context, p *model.Payment, b *model.CruiseBooking) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("create payment failed: %w", err)
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		b.PaymentID = p.ID
		return tx.Create(b).Error
	})
}

// CreateWithMealOrder is the meal-order variant of the transactional create.
func (r *PaymentDao) CreateWithMealOrder(ctx context.Context, p *model.Payment, o *model.MealOrder) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("create payment failed: %w", err)
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		o.PaymentID = p.ID
		return tx.Create(o).Error
	})
}

func (r *PaymentDao) GetByRef(ctx context.Context, ref string) (*model.Payment, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get by ref failed: %w", err)
	}
	var p model.Payment
	err := r.DB.WithContext(ctx).Where("merchant_ref = ?", ref).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &p, nil
}

func (r *PaymentDao) GetByTrackingID(ctx context.Context, trackingID string) (*model.Payment, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get by tracking id failed: %w", err)
	}
	var p model.Payment
	err := r.DB.WithContext(ctx).Where("order_tracking_id = ?", trackingID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &p, nil
}

// SetTrackingID attaches the gateway tracking id after order acceptance.
func (r *PaymentDao) SetTrackingID(ctx context.Context, id uint64, trackingID string) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("set tracking id failed: %w", err)
	}
	return r.DB.WithContext(ctx).Model(&model.Payment{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"order_tracking_id": trackingID,
			"updated_at":        time.Now(),
		}).Error
}

// UpdateStatus transitions a payment, guarding terminal rows: a row already
// completed or failed is never overwritten. Returns the number of rows
// changed so callers can tell a no-op from a transition.
func (r *PaymentDao) UpdateStatus(ctx context.Context, id uint64, status string) (int64, error) {
	if err := r.checkDB(); err != nil {
		return 0, fmt.Errorf("update status failed: %w", err)
	}
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if status == model.PaymentStatusCompleted || status == model.PaymentStatusFailed {
		updates["finished_at"] = time.Now()
	}
	res := r.DB.WithContext(ctx).Model(&model.Payment{}).
		Where("id = ? AND status = ?", id, model.PaymentStatusPending).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *PaymentDao) GetCruiseBookingByPaymentID(ctx context.Context, paymentID uint64) (*model.CruiseBooking, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	var b model.CruiseBooking
	err := r.DB.WithContext(ctx).Where("payment_id = ?", paymentID).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &b, nil
}

func (r *PaymentDao) GetMealOrderByPaymentID(ctx context.Context, paymentID uint64) (*model.MealOrder, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get meal order failed: %w", err)
	}
	var o model.MealOrder
	err := r.DB.WithContext(ctx).Where("payment_id = ?", paymentID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &o, nil
}

// Aggregate returns payment counts and amount sums grouped by type and status.
func (r *PaymentDao) Aggregate(ctx context.Context) ([]AggregateRow, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("aggregate failed: %w", err)
	}
	var rows []AggregateRow
	err := r.DB.WithContext(ctx).Model(&model.Payment{}).
		Select("payment_type, status, currency, COUNT(*) AS count, COALESCE(SUM(amount),0) AS total").
		Group("payment_type, status, currency").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return rows, nil
}

type AggregateRow struct {
	PaymentType string `gorm:"column:payment_type"`
	Status      string `gorm:"column:status"`
	Currency    string `gorm:"column:currency"`
	Count       int64  `gorm:"column:count"`
	Total       string `gorm:"column:total"`
}

// Recent returns the latest payments for the dashboard.
func (r *PaymentDao) Recent(ctx context.Context, limit int) ([]model.Payment, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("recent failed: %w", err)
	}
	var out []model.Payment
	err := r.DB.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return out, nil
}
