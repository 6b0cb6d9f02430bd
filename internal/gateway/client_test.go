package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"cruise-booking-api/internal/config"
	"cruise-booking-api/internal/dto"
)

type memTokenCache struct {
	mu  sync.Mutex
	tok string
}

func (c *memTokenCache) Get(ctx context.Context) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tok, c.tok != ""
}

func (c *memTokenCache) Set(ctx context.Context, token string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tok = token
}

func testGatewayServer(t *testing.T, orderHandler http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/token", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dto.GatewayAuthResponse{Token: "tok-abc"})
	})
	if orderHandler == nil {
		orderHandler = func(w http.ResponseWriter, r *http.Request) {}
	}
	mux.HandleFunc("/orders", orderHandler)
	mux.HandleFunc("/transactions/status", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dto.GatewayTransactionStatus{
			OrderTrackingID: r.URL.Query().Get("tracking_id"),
			PaymentStatus:   dto.GatewayStatusCompleted,
		})
	})
	return httptest.NewServer(mux)
}

func testCfg(apiURL string) config.GatewayCfg {
	return config.GatewayCfg{
		ApiUrl:         apiURL,
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		Currency:       "KES",
		SubmitTimeout:  5 * time.Second,
		RetryTimes:     1,
		RetryInterval:  10 * time.Millisecond,
		TokenCacheTTL:  time.Minute,
	}
}

func TestSubmitOrder(t *testing.T) {
	var gotAuth string
	srv := testGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var req dto.GatewayOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode order request: %v", err)
			return
		}
		if req.Type != "MERCHANT" {
			t.Errorf("order type = %q, want MERCHANT", req.Type)
		}
		json.NewEncoder(w).Encode(dto.GatewayOrderResponse{
			OrderTrackingID: "trk-001",
			RedirectURL:     srvRedirect,
		})
	})
	defer srv.Close()

	c := NewClient(testCfg(srv.URL), &memTokenCache{})
	out, err := c.SubmitOrder(context.Background(), dto.GatewayOrderRequest{
		Amount: "1500.00", Type: "MERCHANT", Reference: "CRS-1-ABCDEF",
	})
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}
	if out.OrderTrackingID != "trk-001" {
		t.Errorf("tracking id = %q", out.OrderTrackingID)
	}
	if gotAuth != "Bearer tok-abc" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if snap := c.Health.Snapshot(); snap.SuccessRate < 100 {
		t.Errorf("success rate dropped after success: %v", snap.SuccessRate)
	}
}

const srvRedirect = "https://pay.example.com/iframe?id=trk-001"

func TestSubmitOrderRejection(t *testing.T) {
	srv := testGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dto.GatewayOrderResponse{Error: "invalid currency"})
	})
	defer srv.Close()

	c := NewClient(testCfg(srv.URL), &memTokenCache{})
	_, err := c.SubmitOrder(context.Background(), dto.GatewayOrderRequest{})
	if err == nil {
		t.Fatal("want error on provider rejection")
	}
	if snap := c.Health.Snapshot(); snap.LastError == "" {
		t.Error("tracker did not record the failure")
	}
}

func TestSubmitOrderMissingRedirect(t *testing.T) {
	srv := testGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dto.GatewayOrderResponse{OrderTrackingID: "trk-002"})
	})
	defer srv.Close()

	c := NewClient(testCfg(srv.URL), &memTokenCache{})
	_, err := c.SubmitOrder(context.Background(), dto.GatewayOrderRequest{})
	if err == nil {
		t.Fatal("want error when redirect_url is absent")
	}
}

func TestSubmitOrderNotConfigured(t *testing.T) {
	c := NewClient(config.GatewayCfg{}, nil)
	_, err := c.SubmitOrder(context.Background(), dto.GatewayOrderRequest{})
	if err != ErrNotConfigured {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}

func TestTransactionStatus(t *testing.T) {
	srv := testGatewayServer(t, nil)
	defer srv.Close()

	cache := &memTokenCache{tok: "cached-tok"}
	c := NewClient(testCfg(srv.URL), cache)
	out, err := c.TransactionStatus(context.Background(), "trk-009")
	if err != nil {
		t.Fatalf("TransactionStatus: %v", err)
	}
	if out.OrderTrackingID != "trk-009" || out.PaymentStatus != dto.GatewayStatusCompleted {
		t.Errorf("unexpected status: %+v", out)
	}
}

func TestCallbackURL(t *testing.T) {
	got := CallbackURL("https://api.example.com", "cruise_booking", "CRS-1-ABCDEF")
	want := "https://api.example.com/payment/callback?ref=CRS-1-ABCDEF&type=cruise_booking"
	if got != want {
		t.Errorf("CallbackURL = %q, want %q", got, want)
	}
}
