package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"cruise-booking-api/internal/config"
)

func adminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/ping", AdminAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func sign(secret, ts, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestAdminAuth(t *testing.T) {
	config.C.Security.HMACSecret = "test-secret"
	r := adminRouter()
	body := `{"title":"Deck Officer"}`
	ts := fmt.Sprintf("%d", time.Now().UnixMilli())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/ping", strings.NewReader(body))
	req.Header.Set("X-Timestamp", ts)
	req.Header.Set("X-Signature", sign("test-secret", ts, body))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", w.Code, w.Body.String())
	}
}

func TestAdminAuthBadSignature(t *testing.T) {
	config.C.Security.HMACSecret = "test-secret"
	r := adminRouter()
	ts := fmt.Sprintf("%d", time.Now().UnixMilli())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/ping", strings.NewReader("{}"))
	req.Header.Set("X-Timestamp", ts)
	req.Header.Set("X-Signature", sign("wrong-secret", ts, "{}"))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAdminAuthMissingHeaders(t *testing.T) {
	config.C.Security.HMACSecret = "test-secret"
	r := adminRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/ping", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAdminAuthStaleTimestamp(t *testing.T) {
	config.C.Security.HMACSecret = "test-secret"
	r := adminRouter()
	ts := fmt.Sprintf("%d", time.Now().Add(-time.Hour).UnixMilli())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/ping", strings.NewReader("{}"))
	req.Header.Set("X-Timestamp", ts)
	req.Header.Set("X-Signature", sign("test-secret", ts, "{}"))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}
