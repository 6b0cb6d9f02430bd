package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"

	"cruise-booking-api/internal/config"
	"cruise-booking-api/internal/dal"
	"cruise-booking-api/internal/dto"
	"cruise-booking-api/internal/event"
	"cruise-booking-api/internal/gateway"
	"cruise-booking-api/internal/idgen"
	"cruise-booking-api/internal/model"
	"cruise-booking-api/internal/notify"
	"cruise-booking-api/internal/system"
	"cruise-booking-api/internal/utils"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrGatewayOrder    = errors.New("gateway order failed")
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrInvalidType     = errors.New("unknown payment type")
	ErrTrackingMissing = errors.New("payment has no tracking id yet")
)

// PaymentStore is the persistence surface the payment flow needs. The dao
// satisfies it; tests use in-memory fakes.
type PaymentStore interface {
	CreatePayment(ctx context.Context, p *model.Payment) error
	CreateWithCruiseBooking(ctx context.Context, p *model.Payment, b *model.CruiseBooking) error
	CreateWithMealOrder(ctx context.Context, p *model.Payment, o *model.MealOrder) error
	GetByRef(ctx context.Context, ref string) (*model.Payment, error)
	SetTrackingID(ctx context.Context, id uint64, trackingID string) error
	UpdateStatus(ctx context.Context, id uint64, status string) (int64, error)
}

// Gateway is the provider surface: submit an order, read a transaction.
type Gateway interface {
	SubmitOrder(ctx context.Context, req dto.GatewayOrderRequest) (dto.GatewayOrderResponse, error)
	TransactionStatus(ctx context.Context, trackingID string) (dto.GatewayTransactionStatus, error)
}

// Guard is an idempotency latch keyed by merchant reference.
type Guard interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) bool
}

type PaymentService struct {
	store PaymentStore
	gw    Gateway
	pub   event.Publisher
	guard Guard
}

func NewPaymentService(store PaymentStore, gw Gateway, pub event.Publisher, guard Guard) *PaymentService {
	return &PaymentService{store: store, gw: gw, pub: pub, guard: guard}
}

// CreateCruiseBooking runs the full booking flow: transactional payment +
// booking create, gateway order submission, tracking id persist, redirect URL
// returned as data.
func (s *PaymentService) CreateCruiseBooking(ctx context.Context, req dto.CreateCruiseBookingReq) (dto.BookingPaymentResp, error) {
	var resp dto.BookingPaymentResp

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.Cmp(decimal.Zero) <= 0 {
		return resp, ErrInvalidAmount
	}
	departure, err := time.Parse("2006-01-02", req.DepartureDate)
	if err != nil {
		return resp, fmt.Errorf("invalid departure date: %v", err)
	}

	p := s.newPayment(model.PaymentTypeCruiseBooking, amount, req.Currency,
		req.CustomerName, req.CustomerEmail, req.CustomerPhone, req.Description)
	if p.Description == "" {
		p.Description = fmt.Sprintf("Cruise booking, %s cabin", req.CabinType)
	}

	b := &model.CruiseBooking{
		ID:            idgen.New(),
		CabinType:     req.CabinType,
		DepartureDate: departure,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	_ = copier.Copy(&b.Passengers, &req.Passengers)

	if err := s.store.CreateWithCruiseBooking(ctx, p, b); err != nil {
		return resp, fmt.Errorf("create booking failed: %w", err)
	}

	result, err := s.submitToGateway(ctx, p)
	if err != nil {
		return resp, err
	}
	resp = dto.BookingPaymentResp{
		PaymentID:       p.ID,
		BookingID:       b.ID,
		Reference:       p.MerchantRef,
		OrderTrackingID: result.OrderTrackingID,
		RedirectURL:     result.RedirectURL,
		Amount:          p.Amount.StringFixed(2),
		Currency:        p.Currency,
		Status:          p.Status,
	}
	return resp, nil
}

// CreateMealOrder is the meal-order variant. The total is computed from the
// line items server-side; a client-sent total is never trusted.
func (s *PaymentService) CreateMealOrder(ctx context.Context, req dto.CreateMealOrderReq) (dto.BookingPaymentResp, error) {
	var resp dto.BookingPaymentResp

	total := decimal.Zero
	for _, item := range req.Items {
		if item.Quantity <= 0 || item.UnitPrice.Cmp(decimal.Zero) <= 0 {
			return resp, ErrInvalidAmount
		}
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if total.Cmp(decimal.Zero) <= 0 {
		return resp, ErrInvalidAmount
	}

	p := s.newPayment(model.PaymentTypeMealOrder, total, req.Currency,
		req.CustomerName, req.CustomerEmail, req.CustomerPhone, req.Description)
	if p.Description == "" {
		p.Description = fmt.Sprintf("Meal order, %d items", len(req.Items))
	}

	o := &model.MealOrder{
		ID:              idgen.New(),
		DeliveryAddress: req.DeliveryAddress,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	_ = copier.Copy(&o.Items, &req.Items)

	if err := s.store.CreateWithMealOrder(ctx, p, o); err != nil {
		return resp, fmt.Errorf("create meal order failed: %w", err)
	}

	result, err := s.submitToGateway(ctx, p)
	if err != nil {
		return resp, err
	}
	resp = dto.BookingPaymentResp{
		PaymentID:       p.ID,
		BookingID:       o.ID,
		Reference:       p.MerchantRef,
		OrderTrackingID: result.OrderTrackingID,
		RedirectURL:     result.RedirectURL,
		Amount:          p.Amount.StringFixed(2),
		Currency:        p.Currency,
		Status:          p.Status,
	}
	return resp, nil
}

// Initiate serves the generic /api/initiate-payment surface: an existing
// pending payment is re-initiated, an unknown reference gets a fresh payment
// row (no domain row on this surface).
func (s *PaymentService) Initiate(ctx context.Context, intent dto.PaymentIntent) (dto.InitiatePaymentResult, error) {
	var out dto.InitiatePaymentResult

	amount, err := decimal.NewFromString(intent.Amount)
	if err != nil || amount.Cmp(decimal.Zero) <= 0 {
		return out, ErrInvalidAmount
	}
	if intent.PaymentType != model.PaymentTypeCruiseBooking && intent.PaymentType != model.PaymentTypeMealOrder {
		return out, ErrInvalidType
	}

	// resubmission guard: the same reference cannot start two gateway orders
	// inside the latch window
	if s.guard != nil && !s.guard.Acquire(ctx, "initiate:"+intent.Reference, 30*time.Second) {
		return out, fmt.Errorf("payment %s is already being processed", intent.Reference)
	}

	p, err := s.store.GetByRef(ctx, intent.Reference)
	if err != nil {
		return out, err
	}
	if p != nil && p.Terminal() {
		return out, fmt.Errorf("payment %s already %s", p.MerchantRef, p.Status)
	}
	if p == nil {
		p = s.newPayment(intent.PaymentType, amount, intent.Currency,
			intent.CustomerName, intent.CustomerEmail, intent.CustomerPhone, intent.Description)
		p.MerchantRef = intent.Reference
		// no domain row on this surface; the caller owns the booking record
		if err := s.store.CreatePayment(ctx, p); err != nil {
			return out, fmt.Errorf("create payment failed: %w", err)
		}
	}

	result, err := s.submitToGateway(ctx, p)
	if err != nil {
		return out, err
	}
	out = dto.InitiatePaymentResult{
		PaymentID:       p.ID,
		Reference:       p.MerchantRef,
		OrderTrackingID: result.OrderTrackingID,
		RedirectURL:     result.RedirectURL,
		Amount:          p.Amount.StringFixed(2),
		Currency:        p.Currency,
	}
	return out, nil
}

// newPayment builds a pending payment row with a fresh merchant reference.
func (s *PaymentService) newPayment(paymentType string, amount decimal.Decimal, currency, name, email, phone, description string) *model.Payment {
	if currency == "" {
		currency = config.C.Gateway.Currency
	}
	return &model.Payment{
		ID:            idgen.New(),
		MerchantRef:   utils.NewMerchantRef(config.C.Payment.ReferencePrefix),
		PaymentType:   paymentType,
		Amount:        amount,
		Currency:      currency,
		Status:        model.PaymentStatusPending,
		CustomerName:  name,
		CustomerEmail: email,
		CustomerPhone: phone,
		Description:   description,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

// submitToGateway sends the order and persists the tracking id. On gateway
// failure the payment is marked failed rather than left pending forever.
func (s *PaymentService) submitToGateway(ctx context.Context, p *model.Payment) (dto.GatewayOrderResponse, error) {
	first, last := utils.SplitName(p.CustomerName)
	req := dto.GatewayOrderRequest{
		Amount:      p.Amount.StringFixed(2),
		Description: p.Description,
		Type:        "MERCHANT",
		Reference:   p.MerchantRef,
		FirstName:   first,
		LastName:    last,
		Email:       p.CustomerEmail,
		PhoneNumber: utils.NormalizePhone(p.CustomerPhone, config.C.Gateway.DefaultDialCode),
		CountryCode: config.C.Gateway.DefaultCountry,
		Currency:    p.Currency,
		CallbackURL: gateway.CallbackURL(config.C.Gateway.CallbackBase, p.PaymentType, p.MerchantRef),
	}

	result, err := s.gw.SubmitOrder(ctx, req)
	if err != nil {
		// compensate: the local rows stay but are no longer "pending forever"
		if _, markErr := s.store.UpdateStatus(ctx, p.ID, model.PaymentStatusFailed); markErr != nil {
			log.Printf("[PAYMENT] mark failed error for %s: %v", p.MerchantRef, markErr)
		}
		notify.Notify(system.OpsChatID, "error", "gateway order failed",
			fmt.Sprintf("reference: %s\namount: %s %s\nerror: %v", p.MerchantRef, p.Amount.StringFixed(2), p.Currency, err))
		return result, fmt.Errorf("%w: %w", ErrGatewayOrder, err)
	}

	// best-effort: a lost tracking id degrades reconciliation, not the flow
	if err := s.store.SetTrackingID(ctx, p.ID, result.OrderTrackingID); err != nil {
		log.Printf("[PAYMENT] persist tracking id failed for %s: %v", p.MerchantRef, err)
	} else {
		p.OrderTrackingID = &result.OrderTrackingID
	}
	cachePayment(ctx, p)
	return result, nil
}

// cachePayment keeps a short-lived copy for status polling while the user is
// on the gateway page. Redis trouble is ignored.
func cachePayment(ctx context.Context, p *model.Payment) {
	if dal.RedisClient == nil {
		return
	}
	if err := dal.RedisClient.Set(ctx, "payment:"+p.MerchantRef, utils.MapToJSON(p), 30*time.Minute).Err(); err != nil {
		log.Printf("[PAYMENT] cache write failed for %s: %v", p.MerchantRef, err)
	}
}

// Reconcile finalizes a payment after a gateway redirect or IPN. The status
// is read back from the gateway, never from the callback parameters. Safe to
// call any number of times.
func (s *PaymentService) Reconcile(ctx context.Context, ref string) (dto.ReconcileResult, error) {
	var out dto.ReconcileResult

	p, err := s.store.GetByRef(ctx, ref)
	if err != nil {
		return out, err
	}
	if p == nil {
		return out, ErrPaymentNotFound
	}
	out.Reference = p.MerchantRef
	out.Status = p.Status

	if p.Terminal() {
		// duplicate or late callback
		return out, nil
	}
	if p.OrderTrackingID == nil || *p.OrderTrackingID == "" {
		return out, ErrTrackingMissing
	}

	tx, err := s.gw.TransactionStatus(ctx, *p.OrderTrackingID)
	if err != nil {
		return out, fmt.Errorf("status query failed: %w", err)
	}

	var next string
	switch tx.PaymentStatus {
	case dto.GatewayStatusCompleted:
		next = model.PaymentStatusCompleted
	case dto.GatewayStatusFailed, dto.GatewayStatusInvalid:
		next = model.PaymentStatusFailed
	default:
		// still pending at the provider; nothing to write
		return out, nil
	}

	affected, err := s.store.UpdateStatus(ctx, p.ID, next)
	if err != nil {
		return out, fmt.Errorf("status update failed: %w", err)
	}
	out.Status = next
	out.Changed = affected > 0
	if out.Changed {
		p.Status = next
		cachePayment(ctx, p)
	}

	if out.Changed && next == model.PaymentStatusCompleted && s.pub != nil {
		evt := event.PaymentCompletedEvent{
			PaymentID:   p.ID,
			Reference:   p.MerchantRef,
			PaymentType: p.PaymentType,
			Amount:      p.Amount.StringFixed(2),
			Currency:    p.Currency,
			Email:       p.CustomerEmail,
			CompletedAt: time.Now().Unix(),
		}
		if err := s.pub.Publish("payment.completed", &evt); err != nil {
			log.Printf("[PAYMENT] publish payment.completed failed for %s: %v", p.MerchantRef, err)
		}
	}
	return out, nil
}

// ReconcileIPN handles the server-to-server notification. The tracking id in
// the body must match the stored one before any state is touched.
func (s *PaymentService) ReconcileIPN(ctx context.Context, req dto.IPNReq) (dto.ReconcileResult, error) {
	var out dto.ReconcileResult

	p, err := s.store.GetByRef(ctx, req.MerchantReference)
	if err != nil {
		return out, err
	}
	if p == nil {
		return out, ErrPaymentNotFound
	}
	if p.OrderTrackingID == nil || *p.OrderTrackingID != req.OrderTrackingID {
		return out, fmt.Errorf("tracking id mismatch for %s", req.MerchantReference)
	}
	return s.Reconcile(ctx, req.MerchantReference)
}

// Status answers the payment status query.
func (s *PaymentService) Status(ctx context.Context, ref string) (dto.PaymentStatusResp, error) {
	var out dto.PaymentStatusResp

	p, err := s.store.GetByRef(ctx, ref)
	if err != nil {
		return out, err
	}
	if p == nil {
		return out, ErrPaymentNotFound
	}
	out = dto.PaymentStatusResp{
		Reference:   p.MerchantRef,
		PaymentType: p.PaymentType,
		Status:      p.Status,
		Amount:      p.Amount.StringFixed(2),
		Currency:    p.Currency,
		CreatedAt:   p.CreatedAt,
	}
	if p.OrderTrackingID != nil {
		out.OrderTrackingID = *p.OrderTrackingID
	}
	return out, nil
}
