package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"cruise-booking-api/internal/config"
	"cruise-booking-api/internal/dto"
	"cruise-booking-api/internal/gateway/health"
	"cruise-booking-api/internal/utils"
)

// ErrNotConfigured is returned when gateway credentials are absent; handlers
// map it to a configuration error rather than a downstream failure.
var ErrNotConfigured = errors.New("gateway credentials not configured")

// TokenCache stores the gateway bearer token between calls.
type TokenCache interface {
	Get(ctx context.Context) (string, bool)
	Set(ctx context.Context, token string, ttl time.Duration)
}

// Client talks to the hosted payment provider. All money stays on the
// provider's side; this client only submits orders and reads status.
type Client struct {
	cfg    config.GatewayCfg
	tokens TokenCache
	Health *health.Tracker
}

func NewClient(cfg config.GatewayCfg, tokens TokenCache) *Client {
	return &Client{
		cfg:    cfg,
		tokens: tokens,
		Health: health.NewTracker(&health.SlidingStrategy{StepUp: 2, StepDown: 10}),
	}
}

func (c *Client) configured() bool {
	return c.cfg.ConsumerKey != "" && c.cfg.ConsumerSecret != "" && c.cfg.ApiUrl != ""
}

// token returns a bearer token, from cache when possible.
func (c *Client) token(ctx context.Context) (string, error) {
	if c.tokens != nil {
		if tok, ok := c.tokens.Get(ctx); ok {
			return tok, nil
		}
	}

	body := map[string]string{
		"consumer_key":    c.cfg.ConsumerKey,
		"consumer_secret": c.cfg.ConsumerSecret,
	}
	resp, err := utils.HttpPostJson(ctx, c.cfg.ApiUrl+"/auth/token", body, nil)
	if err != nil {
		return "", fmt.Errorf("gateway auth request failed: %w", err)
	}
	var auth dto.GatewayAuthResponse
	if err := json.Unmarshal([]byte(resp), &auth); err != nil {
		return "", fmt.Errorf("gateway auth response parse failed: %w", err)
	}
	if auth.Error != "" || auth.Token == "" {
		return "", fmt.Errorf("gateway auth rejected: %s", auth.Error)
	}
	if c.tokens != nil {
		c.tokens.Set(ctx, auth.Token, c.cfg.TokenCacheTTL)
	}
	return auth.Token, nil
}

// SubmitOrder submits a MERCHANT order and returns the tracking id and the
// hosted payment page URL. The request is retried on transport errors within
// the configured timeout; a provider-level rejection is not retried.
func (c *Client) SubmitOrder(ctx context.Context, req dto.GatewayOrderRequest) (dto.GatewayOrderResponse, error) {
	var out dto.GatewayOrderResponse
	if !c.configured() {
		return out, ErrNotConfigured
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, c.cfg.SubmitTimeout)
	defer cancel()

	tok, err := c.token(ctxTimeout)
	if err != nil {
		c.Health.Record(false, err.Error())
		return out, err
	}
	headers := map[string]string{"Authorization": "Bearer " + tok}

	var resp string
	err = utils.DoWithRetry(ctxTimeout, c.cfg.RetryTimes, c.cfg.RetryInterval, func() error {
		r, err := utils.HttpPostJson(ctxTimeout, c.cfg.ApiUrl+"/orders", req, headers)
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		c.Health.Record(false, err.Error())
		return out, fmt.Errorf("gateway order request failed: %w", err)
	}

	if err := json.Unmarshal([]byte(resp), &out); err != nil {
		c.Health.Record(false, err.Error())
		return out, fmt.Errorf("gateway order response parse failed: %w", err)
	}
	if out.Error != "" {
		c.Health.Record(false, out.Error)
		return out, fmt.Errorf("gateway rejected order: %s", out.Error)
	}
	if out.RedirectURL == "" || !isValidURL(out.RedirectURL) {
		c.Health.Record(false, "missing redirect_url")
		return out, errors.New("gateway returned no redirect_url")
	}

	c.Health.Record(true, "")
	log.Printf("[GATEWAY] order accepted, reference=%s tracking=%s", req.Reference, out.OrderTrackingID)
	return out, nil
}

// TransactionStatus queries the provider's status for a tracking id. This is
// the only trusted status source during callback reconciliation.
func (c *Client) TransactionStatus(ctx context.Context, trackingID string) (dto.GatewayTransactionStatus, error) {
	var out dto.GatewayTransactionStatus
	if !c.configured() {
		return out, ErrNotConfigured
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, c.cfg.SubmitTimeout)
	defer cancel()

	tok, err := c.token(ctxTimeout)
	if err != nil {
		c.Health.Record(false, err.Error())
		return out, err
	}
	headers := map[string]string{"Authorization": "Bearer " + tok}

	statusURL := fmt.Sprintf("%s/transactions/status?tracking_id=%s", c.cfg.ApiUrl, url.QueryEscape(trackingID))
	resp, err := utils.HttpGetJson(ctxTimeout, statusURL, headers)
	if err != nil {
		c.Health.Record(false, err.Error())
		return out, fmt.Errorf("gateway status request failed: %w", err)
	}
	if err := json.Unmarshal([]byte(resp), &out); err != nil {
		c.Health.Record(false, err.Error())
		return out, fmt.Errorf("gateway status response parse failed: %w", err)
	}
	if out.Error != "" {
		c.Health.Record(false, out.Error)
		return out, fmt.Errorf("gateway status error: %s", out.Error)
	}

	c.Health.Record(true, "")
	return out, nil
}

// CallbackURL builds the redirect-back target the gateway is told to use.
func CallbackURL(base, paymentType, reference string) string {
	v := url.Values{}
	v.Set("type", paymentType)
	v.Set("ref", reference)
	return base + "/payment/callback?" + v.Encode()
}

func isValidURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
