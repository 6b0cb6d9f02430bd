package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"cruise-booking-api/internal/config"
	"cruise-booking-api/internal/dto"
	"cruise-booking-api/internal/idgen"
	"cruise-booking-api/internal/model"
	"cruise-booking-api/internal/service"
)

var initOnce sync.Once

func setupTest() {
	initOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		idgen.Init(2)
	})
	config.C.Payment.ReferencePrefix = "CRS"
	config.C.Gateway.Currency = "KES"
	config.C.Gateway.DefaultCountry = "KE"
	config.C.Gateway.DefaultDialCode = "+254"
	config.C.Gateway.CallbackBase = "https://api.example.com"
}

// countingStore fails loudly if any method is reached; used to prove that
// invalid requests are rejected before persistence work starts.
type countingStore struct {
	calls int
	p     *model.Payment
}

func (s *countingStore) CreatePayment(ctx context.Context, p *model.Payment) error {
	s.calls++
	s.p = p
	return nil
}

func (s *countingStore) CreateWithCruiseBooking(ctx context.Context, p *model.Payment, b *model.CruiseBooking) error {
	s.calls++
	s.p = p
	return nil
}

func (s *countingStore) CreateWithMealOrder(ctx context.Context, p *model.Payment, o *model.MealOrder) error {
	s.calls++
	s.p = p
	return nil
}

func (s *countingStore) GetByRef(ctx context.Context, ref string) (*model.Payment, error) {
	s.calls++
	if s.p != nil && s.p.MerchantRef == ref {
		return s.p, nil
	}
	return nil, nil
}

func (s *countingStore) SetTrackingID(ctx context.Context, id uint64, trackingID string) error {
	s.calls++
	if s.p != nil {
		s.p.OrderTrackingID = &trackingID
	}
	return nil
}

func (s *countingStore) UpdateStatus(ctx context.Context, id uint64, status string) (int64, error) {
	s.calls++
	if s.p != nil && s.p.Status == model.PaymentStatusPending {
		s.p.Status = status
		return 1, nil
	}
	return 0, nil
}

type countingGateway struct {
	calls int
}

func (g *countingGateway) SubmitOrder(ctx context.Context, req dto.GatewayOrderRequest) (dto.GatewayOrderResponse, error) {
	g.calls++
	return dto.GatewayOrderResponse{
		OrderTrackingID: "trk-500",
		RedirectURL:     "https://pay.example.com/iframe?id=trk-500",
	}, nil
}

func (g *countingGateway) TransactionStatus(ctx context.Context, trackingID string) (dto.GatewayTransactionStatus, error) {
	g.calls++
	return dto.GatewayTransactionStatus{PaymentStatus: dto.GatewayStatusCompleted}, nil
}

func initiateRouter(store *countingStore, gw *countingGateway) *gin.Engine {
	svc := service.NewPaymentService(store, gw, nil, nil)
	h := NewPaymentHandler(svc)
	r := gin.New()
	r.GET("/api/initiate-payment", h.InitiatePayment)
	r.GET("/payment/callback", h.Callback)
	return r
}

func TestInitiatePaymentMissingParams(t *testing.T) {
	setupTest()
	store := &countingStore{}
	gw := &countingGateway{}
	r := initiateRouter(store, gw)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/initiate-payment?amount=100", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if store.calls != 0 || gw.calls != 0 {
		t.Errorf("side effects before validation: store=%d gateway=%d", store.calls, gw.calls)
	}
	var body struct {
		Data struct {
			Missing []string `json:"missing"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	for _, want := range []string{"reference", "email", "phone", "name", "type"} {
		found := false
		for _, m := range body.Data.Missing {
			if m == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing list lacks %q: %v", want, body.Data.Missing)
		}
	}
}

func TestInitiatePaymentBadAmount(t *testing.T) {
	setupTest()
	store := &countingStore{}
	gw := &countingGateway{}
	r := initiateRouter(store, gw)

	q := url.Values{}
	q.Set("reference", "CRS-1-AAAAAA")
	q.Set("amount", "not-a-number")
	q.Set("email", "jane@example.com")
	q.Set("phone", "0712345678")
	q.Set("name", "Jane Wanjiku")
	q.Set("type", "cruise_booking")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/initiate-payment?"+q.Encode(), nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if store.calls != 0 || gw.calls != 0 {
		t.Errorf("side effects for bad amount: store=%d gateway=%d", store.calls, gw.calls)
	}
}

func TestInitiatePaymentRedirect(t *testing.T) {
	setupTest()
	store := &countingStore{}
	gw := &countingGateway{}
	r := initiateRouter(store, gw)

	q := url.Values{}
	q.Set("reference", "CRS-1-AAAAAA")
	q.Set("amount", "45000.00")
	q.Set("email", "jane@example.com")
	q.Set("phone", "0712345678")
	q.Set("name", "Jane Wanjiku")
	q.Set("type", "cruise_booking")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/initiate-payment?"+q.Encode(), nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302; body=%s", w.Code, w.Body.String())
	}
	loc := w.Header().Get("Location")
	if !strings.HasPrefix(loc, "https://pay.example.com/") {
		t.Errorf("Location = %q", loc)
	}
	if store.calls == 0 || gw.calls == 0 {
		t.Error("valid request did not reach store and gateway")
	}
}

func TestCallbackReconciles(t *testing.T) {
	setupTest()
	store := &countingStore{}
	gw := &countingGateway{}
	tracking := "trk-500"
	store.p = &model.Payment{
		ID:              7,
		MerchantRef:     "CRS-1-BBBBBB",
		Status:          model.PaymentStatusPending,
		OrderTrackingID: &tracking,
	}
	r := initiateRouter(store, gw)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payment/callback?type=cruise_booking&ref=CRS-1-BBBBBB", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body=%s", w.Code, w.Body.String())
	}
	if store.p.Status != model.PaymentStatusCompleted {
		t.Errorf("payment status = %q, want completed", store.p.Status)
	}
}

func TestCallbackMissingRef(t *testing.T) {
	setupTest()
	r := initiateRouter(&countingStore{}, &countingGateway{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payment/callback?type=cruise_booking", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCallbackUnknownRef(t *testing.T) {
	setupTest()
	r := initiateRouter(&countingStore{}, &countingGateway{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payment/callback?type=cruise_booking&ref=CRS-0-NOPE", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
