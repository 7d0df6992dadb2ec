// Package mpesa talks to the Safaricom Daraja API: OAuth client-credential
// tokens and Lipa na M-Pesa Online (STK push).
package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/Ka-few/Beauty-parlor-app/internal/cache"
	"github.com/Ka-few/Beauty-parlor-app/internal/config"
)

const (
	tokenPath = "/oauth/v1/generate?grant_type=client_credentials"
	stkPath   = "/mpesa/stkpush/v1/processrequest"

	CallbackPath = "/mpesa-callback"

	TransactionTypePayBill = "CustomerPayBillOnline"

	timestampLayout = "20060102150405"
	tokenCacheKey   = "mpesa:access_token"
	// Daraja tokens live for an hour; refresh a little early.
	tokenSafetyMargin = 60 * time.Second
	maxResponseBytes  = 1 << 20
)

var ErrAccessToken = errors.New("mpesa access token unavailable")

type Client struct {
	baseURL        string
	consumerKey    string
	consumerSecret string
	shortCode      string
	passkey        string
	callbackURL    string

	cache      cache.Cache
	httpClient *http.Client
	now        func() time.Time
	loc        *time.Location
}

func NewClient(cfg config.MpesaConfig, c cache.Cache, loc *time.Location) *Client {
	if c == nil {
		c = cache.NewNoop()
	}
	if loc == nil {
		loc = time.UTC
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		consumerKey:    cfg.ConsumerKey,
		consumerSecret: cfg.ConsumerSecret,
		shortCode:      cfg.ShortCode,
		passkey:        cfg.Passkey,
		callbackURL:    strings.TrimRight(cfg.CallbackBaseURL, "/") + CallbackPath,
		cache:          c,
		httpClient:     &http.Client{Timeout: timeout},
		now:            time.Now,
		loc:            loc,
	}
}

// --------- Token ---------

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

// AccessToken returns a cached token or fetches a fresh one. Any failure is
// reported as ErrAccessToken.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	if v, ok, err := c.cache.Get(ctx, tokenCacheKey); err == nil && ok && len(v) > 0 {
		return string(v), nil
	} else if err != nil {
		zap.L().Warn("mpesa token cache read failed", zap.Error(err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+tokenPath, nil)
	if err != nil {
		return "", errors.Wrap(ErrAccessToken, err.Error())
	}
	req.SetBasicAuth(c.consumerKey, c.consumerSecret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(ErrAccessToken, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", errors.Wrapf(ErrAccessToken, "status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out tokenResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return "", errors.Wrap(ErrAccessToken, "decode: "+err.Error())
	}
	if strings.TrimSpace(out.AccessToken) == "" {
		return "", errors.Wrap(ErrAccessToken, "empty access_token")
	}

	ttl := tokenTTL(out.ExpiresIn)
	if ttl > 0 {
		if err := c.cache.Set(ctx, tokenCacheKey, []byte(out.AccessToken), ttl); err != nil {
			zap.L().Warn("mpesa token cache write failed", zap.Error(err))
		}
	}
	return out.AccessToken, nil
}

func tokenTTL(expiresIn string) time.Duration {
	secs, err := cast.ToIntE(strings.TrimSpace(expiresIn))
	if err != nil || secs <= 0 {
		secs = 3599
	}
	ttl := time.Duration(secs)*time.Second - tokenSafetyMargin
	if ttl < 0 {
		return 0
	}
	return ttl
}

// --------- STK push ---------

type STKPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int    `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

// GatewayResponse is the gateway's reply, passed back to the caller as is.
type GatewayResponse struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

func (r GatewayResponse) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

type Payment struct {
	Amount      int
	PhoneNumber string
	Reference   string
	Description string
}

// BuildSTKPush assembles the request body for a payment at the given time.
func (c *Client) BuildSTKPush(p Payment, at time.Time) STKPushRequest {
	timestamp := at.In(c.loc).Format(timestampLayout)
	msisdn := NormalizeMSISDN(p.PhoneNumber)
	return STKPushRequest{
		BusinessShortCode: c.shortCode,
		Password:          Password(c.shortCode, c.passkey, timestamp),
		Timestamp:         timestamp,
		TransactionType:   TransactionTypePayBill,
		Amount:            p.Amount,
		PartyA:            msisdn,
		PartyB:            c.shortCode,
		PhoneNumber:       msisdn,
		CallBackURL:       c.callbackURL,
		AccountReference:  p.Reference,
		TransactionDesc:   p.Description,
	}
}

// STKPush forwards the payment to the gateway. A non-nil error means the
// gateway could not be reached or returned an unreadable reply; gateway
// rejections come back as a GatewayResponse with their own status.
func (c *Client) STKPush(ctx context.Context, token string, p Payment) (*GatewayResponse, error) {
	payload := c.BuildSTKPush(p, c.now())

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "mpesa marshal stk push")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+stkPath, bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(err, "mpesa create request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "mpesa stk push request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "mpesa read response")
	}

	return &GatewayResponse{
		StatusCode:  resp.StatusCode,
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

// Password is base64(shortcode + passkey + timestamp).
func Password(shortCode, passkey, timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(shortCode + passkey + timestamp))
}

// NormalizeMSISDN rewrites local (07..., 01...) and +254 numbers to the
// 2547XXXXXXXX form the gateway expects.
func NormalizeMSISDN(phone string) string {
	p := strings.TrimSpace(phone)
	p = strings.NewReplacer(" ", "", "-", "").Replace(p)
	p = strings.TrimPrefix(p, "+")
	if strings.HasPrefix(p, "0") {
		p = "254" + p[1:]
	}
	return p
}
