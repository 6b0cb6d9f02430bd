package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"cruise-booking-api/internal/config"
	"cruise-booking-api/internal/dto"
	"cruise-booking-api/internal/idgen"
	"cruise-booking-api/internal/model"
)

var initOnce sync.Once

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func mustDecimalNoT(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func setupTest() {
	initOnce.Do(func() {
		idgen.Init(1)
	})
	config.C.Payment.ReferencePrefix = "CRS"
	config.C.Gateway.Currency = "KES"
	config.C.Gateway.DefaultCountry = "KE"
	config.C.Gateway.DefaultDialCode = "+254"
	config.C.Gateway.CallbackBase = "https://api.example.com"
}

type fakeStore struct {
	payments  map[string]*model.Payment
	bookings  []*model.CruiseBooking
	orders    []*model.MealOrder
	createErr error
	calls     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{payments: map[string]*model.Payment{}}
}

func (s *fakeStore) CreatePayment(ctx context.Context, p *model.Payment) error {
	s.calls++
	if s.createErr != nil {
		return s.createErr
	}
	s.payments[p.MerchantRef] = p
	return nil
}

func (s *fakeStore) CreateWithCruiseBooking(ctx context.Context, p *model.Payment, b *model.CruiseBooking) error {
	s.calls++
	if s.createErr != nil {
		return s.createErr
	}
	b.PaymentID = p.ID
	s.payments[p.MerchantRef] = p
	s.bookings = append(s.bookings, b)
	return nil
}

func (s *fakeStore) CreateWithMealOrder(ctx context.Context, p *model.Payment, o *model.MealOrder) error {
	s.calls++
	if s.createErr != nil {
		return s.createErr
	}
	o.PaymentID = p.ID
	s.payments[p.MerchantRef] = p
	s.orders = append(s.orders, o)
	return nil
}

func (s *fakeStore) GetByRef(ctx context.Context, ref string) (*model.Payment, error) {
	s.calls++
	return s.payments[ref], nil
}

func (s *fakeStore) SetTrackingID(ctx context.Context, id uint64, trackingID string) error {
	s.calls++
	for _, p := range s.payments {
		if p.ID == id {
			p.OrderTrackingID = &trackingID
		}
	}
	return nil
}

func (s *fakeStore) UpdateStatus(ctx context.Context, id uint64, status string) (int64, error) {
	s.calls++
	for _, p := range s.payments {
		if p.ID == id && p.Status == model.PaymentStatusPending {
			p.Status = status
			return 1, nil
		}
	}
	return 0, nil
}

type fakeGateway struct {
	submitResp dto.GatewayOrderResponse
	submitErr  error
	lastOrder  dto.GatewayOrderRequest
	statusResp dto.GatewayTransactionStatus
	statusErr  error
	statusHits int
}

func (g *fakeGateway) SubmitOrder(ctx context.Context, req dto.GatewayOrderRequest) (dto.GatewayOrderResponse, error) {
	g.lastOrder = req
	return g.submitResp, g.submitErr
}

func (g *fakeGateway) TransactionStatus(ctx context.Context, trackingID string) (dto.GatewayTransactionStatus, error) {
	g.statusHits++
	return g.statusResp, g.statusErr
}

type fakePublisher struct {
	topics []string
	msgs   []any
}

func (p *fakePublisher) Publish(topic string, msg any) error {
	p.topics = append(p.topics, topic)
	p.msgs = append(p.msgs, msg)
	return nil
}

func okGateway() *fakeGateway {
	return &fakeGateway{
		submitResp: dto.GatewayOrderResponse{
			OrderTrackingID: "trk-100",
			RedirectURL:     "https://pay.example.com/iframe?id=trk-100",
		},
	}
}

func cruiseReq() dto.CreateCruiseBookingReq {
	return dto.CreateCruiseBookingReq{
		CustomerName:  "Jane Wanjiku",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "0712345678",
		CabinType:     "balcony",
		DepartureDate: "2026-10-15",
		Passengers:    []model.Passenger{{Name: "Jane Wanjiku", Age: 34}},
		Amount:        "45000.00",
	}
}

func TestCreateCruiseBooking(t *testing.T) {
	setupTest()
	store := newFakeStore()
	gw := okGateway()
	svc := NewPaymentService(store, gw, nil, nil)

	resp, err := svc.CreateCruiseBooking(context.Background(), cruiseReq())
	if err != nil {
		t.Fatalf("CreateCruiseBooking: %v", err)
	}
	if len(store.bookings) != 1 {
		t.Fatalf("bookings = %d, want 1", len(store.bookings))
	}
	p := store.payments[resp.Reference]
	if p == nil {
		t.Fatal("payment not stored")
	}
	if p.Status != model.PaymentStatusPending {
		t.Errorf("status = %q, want pending", p.Status)
	}
	if store.bookings[0].PaymentID != p.ID {
		t.Error("booking not linked to payment")
	}
	if p.OrderTrackingID == nil || *p.OrderTrackingID != "trk-100" {
		t.Error("tracking id not persisted")
	}
	if resp.RedirectURL != gw.submitResp.RedirectURL {
		t.Errorf("redirect url = %q", resp.RedirectURL)
	}

	// the gateway order carries normalized customer fields
	if gw.lastOrder.PhoneNumber != "+254712345678" {
		t.Errorf("phone = %q", gw.lastOrder.PhoneNumber)
	}
	if gw.lastOrder.FirstName != "Jane" || gw.lastOrder.LastName != "Wanjiku" {
		t.Errorf("name split = %q / %q", gw.lastOrder.FirstName, gw.lastOrder.LastName)
	}
	if gw.lastOrder.Currency != "KES" {
		t.Errorf("currency = %q, want KES", gw.lastOrder.Currency)
	}
	if !strings.Contains(gw.lastOrder.CallbackURL, "/payment/callback?") ||
		!strings.Contains(gw.lastOrder.CallbackURL, "ref="+resp.Reference) {
		t.Errorf("callback url = %q", gw.lastOrder.CallbackURL)
	}
	if !strings.HasPrefix(resp.Reference, "CRS-") {
		t.Errorf("reference = %q", resp.Reference)
	}
}

func TestCreateCruiseBookingGatewayFailure(t *testing.T) {
	setupTest()
	store := newFakeStore()
	gw := &fakeGateway{submitErr: errors.New("connection refused")}
	svc := NewPaymentService(store, gw, nil, nil)

	_, err := svc.CreateCruiseBooking(context.Background(), cruiseReq())
	if !errors.Is(err, ErrGatewayOrder) {
		t.Fatalf("err = %v, want ErrGatewayOrder", err)
	}
	if len(store.payments) != 1 {
		t.Fatal("payment row should still exist")
	}
	for _, p := range store.payments {
		if p.Status != model.PaymentStatusFailed {
			t.Errorf("status = %q, want failed after compensation", p.Status)
		}
	}
}

func TestCreateCruiseBookingInvalidAmount(t *testing.T) {
	setupTest()
	store := newFakeStore()
	svc := NewPaymentService(store, okGateway(), nil, nil)

	for _, amount := range []string{"", "abc", "0", "-10"} {
		req := cruiseReq()
		req.Amount = amount
		if _, err := svc.CreateCruiseBooking(context.Background(), req); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("amount %q: err = %v, want ErrInvalidAmount", amount, err)
		}
	}
	if store.calls != 0 {
		t.Errorf("store touched %d times before validation passed", store.calls)
	}
}

func TestCreateMealOrderTotal(t *testing.T) {
	setupTest()
	store := newFakeStore()
	gw := okGateway()
	svc := NewPaymentService(store, gw, nil, nil)

	req := dto.CreateMealOrderReq{
		CustomerName:    "John Omondi",
		CustomerEmail:   "john@example.com",
		CustomerPhone:   "0722000111",
		DeliveryAddress: "Deck 7, Cabin 712",
		Items: []model.MealItem{
			{Name: "Grilled tilapia", Quantity: 2, UnitPrice: mustDecimal(t, "850.00")},
			{Name: "Ugali", Quantity: 3, UnitPrice: mustDecimal(t, "150.00")},
		},
	}
	resp, err := svc.CreateMealOrder(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateMealOrder: %v", err)
	}
	if resp.Amount != "2150.00" {
		t.Errorf("total = %q, want 2150.00", resp.Amount)
	}
	if gw.lastOrder.Amount != "2150.00" {
		t.Errorf("gateway amount = %q", gw.lastOrder.Amount)
	}
	if len(store.orders) != 1 {
		t.Fatalf("orders = %d, want 1", len(store.orders))
	}
}

func TestCreateMealOrderBadItem(t *testing.T) {
	setupTest()
	store := newFakeStore()
	svc := NewPaymentService(store, okGateway(), nil, nil)

	req := dto.CreateMealOrderReq{
		CustomerName:    "John Omondi",
		CustomerEmail:   "john@example.com",
		CustomerPhone:   "0722000111",
		DeliveryAddress: "Deck 7",
		Items:           []model.MealItem{{Name: "Tea", Quantity: 0, UnitPrice: mustDecimal(t, "100.00")}},
	}
	if _, err := svc.CreateMealOrder(context.Background(), req); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("err = %v, want ErrInvalidAmount", err)
	}
	if store.calls != 0 {
		t.Error("store touched for a rejected order")
	}
}

func pendingPayment(store *fakeStore, ref, tracking string) *model.Payment {
	p := &model.Payment{
		ID:          42,
		MerchantRef: ref,
		PaymentType: model.PaymentTypeCruiseBooking,
		Amount:      mustDecimalNoT("45000.00"),
		Currency:    "KES",
		Status:      model.PaymentStatusPending,
	}
	if tracking != "" {
		p.OrderTrackingID = &tracking
	}
	store.payments[ref] = p
	return p
}

func TestReconcileCompleted(t *testing.T) {
	setupTest()
	store := newFakeStore()
	gw := &fakeGateway{statusResp: dto.GatewayTransactionStatus{PaymentStatus: dto.GatewayStatusCompleted}}
	pub := &fakePublisher{}
	svc := NewPaymentService(store, gw, pub, nil)
	pendingPayment(store, "CRS-1-AAAAAA", "trk-100")

	out, err := svc.Reconcile(context.Background(), "CRS-1-AAAAAA")
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if out.Status != model.PaymentStatusCompleted || !out.Changed {
		t.Errorf("result = %+v", out)
	}
	if len(pub.topics) != 1 || pub.topics[0] != "payment.completed" {
		t.Errorf("published topics = %v", pub.topics)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	setupTest()
	store := newFakeStore()
	gw := &fakeGateway{statusResp: dto.GatewayTransactionStatus{PaymentStatus: dto.GatewayStatusCompleted}}
	pub := &fakePublisher{}
	svc := NewPaymentService(store, gw, pub, nil)
	pendingPayment(store, "CRS-1-BBBBBB", "trk-100")

	if _, err := svc.Reconcile(context.Background(), "CRS-1-BBBBBB"); err != nil {
		t.Fatalf("first Reconcile: %v", err)
	}
	out, err := svc.Reconcile(context.Background(), "CRS-1-BBBBBB")
	if err != nil {
		t.Fatalf("second Reconcile: %v", err)
	}
	if out.Changed {
		t.Error("second reconciliation reported a change")
	}
	if gw.statusHits != 1 {
		t.Errorf("gateway queried %d times, want 1 (terminal rows short-circuit)", gw.statusHits)
	}
	if len(pub.topics) != 1 {
		t.Errorf("event published %d times, want 1", len(pub.topics))
	}
}

func TestReconcileFailedOutcome(t *testing.T) {
	setupTest()
	store := newFakeStore()
	gw := &fakeGateway{statusResp: dto.GatewayTransactionStatus{PaymentStatus: dto.GatewayStatusFailed}}
	pub := &fakePublisher{}
	svc := NewPaymentService(store, gw, pub, nil)
	pendingPayment(store, "CRS-1-CCCCCC", "trk-100")

	out, err := svc.Reconcile(context.Background(), "CRS-1-CCCCCC")
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if out.Status != model.PaymentStatusFailed || !out.Changed {
		t.Errorf("result = %+v", out)
	}
	if len(pub.topics) != 0 {
		t.Error("failed outcome must not publish a completion event")
	}
}

func TestReconcileStillPending(t *testing.T) {
	setupTest()
	store := newFakeStore()
	gw := &fakeGateway{statusResp: dto.GatewayTransactionStatus{PaymentStatus: dto.GatewayStatusPending}}
	svc := NewPaymentService(store, gw, nil, nil)
	p := pendingPayment(store, "CRS-1-DDDDDD", "trk-100")

	out, err := svc.Reconcile(context.Background(), "CRS-1-DDDDDD")
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if out.Changed || p.Status != model.PaymentStatusPending {
		t.Errorf("pending payment was written: %+v", out)
	}
}

func TestReconcileUnknownRef(t *testing.T) {
	setupTest()
	svc := NewPaymentService(newFakeStore(), okGateway(), nil, nil)
	if _, err := svc.Reconcile(context.Background(), "CRS-0-ZZZZZZ"); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("err = %v, want ErrPaymentNotFound", err)
	}
}

func TestReconcileMissingTracking(t *testing.T) {
	setupTest()
	store := newFakeStore()
	gw := okGateway()
	svc := NewPaymentService(store, gw, nil, nil)
	pendingPayment(store, "CRS-1-EEEEEE", "")

	if _, err := svc.Reconcile(context.Background(), "CRS-1-EEEEEE"); !errors.Is(err, ErrTrackingMissing) {
		t.Fatalf("err = %v, want ErrTrackingMissing", err)
	}
	if gw.statusHits != 0 {
		t.Error("gateway queried without a tracking id")
	}
}

func TestReconcileIPNTrackingMismatch(t *testing.T) {
	setupTest()
	store := newFakeStore()
	svc := NewPaymentService(store, okGateway(), nil, nil)
	pendingPayment(store, "CRS-1-FFFFFF", "trk-100")

	_, err := svc.ReconcileIPN(context.Background(), dto.IPNReq{
		OrderTrackingID:   "trk-999",
		MerchantReference: "CRS-1-FFFFFF",
	})
	if err == nil {
		t.Fatal("want error on tracking id mismatch")
	}
}

func TestInitiateReusesPendingPayment(t *testing.T) {
	setupTest()
	store := newFakeStore()
	gw := okGateway()
	svc := NewPaymentService(store, gw, nil, nil)
	pendingPayment(store, "CRS-1-GGGGGG", "")

	out, err := svc.Initiate(context.Background(), dto.PaymentIntent{
		Reference:     "CRS-1-GGGGGG",
		PaymentType:   model.PaymentTypeCruiseBooking,
		Amount:        "45000.00",
		CustomerName:  "Jane Wanjiku",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "0712345678",
	})
	if err != nil {
		t.Fatalf("Initiate: %v", err)
	}
	if out.Reference != "CRS-1-GGGGGG" {
		t.Errorf("reference = %q", out.Reference)
	}
	if len(store.payments) != 1 {
		t.Errorf("payments = %d, want 1 (reused row)", len(store.payments))
	}
}

func TestInitiateRejectsTerminalPayment(t *testing.T) {
	setupTest()
	store := newFakeStore()
	svc := NewPaymentService(store, okGateway(), nil, nil)
	p := pendingPayment(store, "CRS-1-HHHHHH", "trk-100")
	p.Status = model.PaymentStatusCompleted

	_, err := svc.Initiate(context.Background(), dto.PaymentIntent{
		Reference:   "CRS-1-HHHHHH",
		PaymentType: model.PaymentTypeCruiseBooking,
		Amount:      "45000.00",
	})
	if err == nil {
		t.Fatal("want error re-initiating a completed payment")
	}
}
