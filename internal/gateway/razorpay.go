// Package gateway wraps the Razorpay Orders REST API. Only the slice of
// the API this service consumes is modeled: creating a gateway order for a
// checkout total and verifying the signature Razorpay hands back through
// the browser after payment.
package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/config"
)

var ErrMissingKeys = errors.New("razorpay keys are missing")

type CreateOrderRequest struct {
	Amount   int64             `json:"amount"` // smallest currency unit (paise)
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt,omitempty"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type Client struct {
	keyID     string
	keySecret string
	baseURL   string
	http      *http.Client
}

func NewClient(cfg config.RazorpayConfig) *Client {
	return &Client{
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		baseURL:   cfg.BaseURL,
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) KeyID() string { return c.keyID }

// CreateOrder creates a gateway order matching an internal checkout total.
// Transport-level failures are retried once; a non-2xx response is not,
// since order creation is not idempotent on the gateway side.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	if c.keyID == "" || c.keySecret == "" {
		return nil, ErrMissingKeys
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal order request: %w", err)
	}

	resp, err := c.post(ctx, c.baseURL+"/orders", body)
	if err != nil {
		resp, err = c.post(ctx, c.baseURL+"/orders", body)
	}
	if err != nil {
		return nil, fmt.Errorf("razorpay create order: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read razorpay response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("razorpay create order: status %d: %s", resp.StatusCode, data)
	}

	var order Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("decode razorpay order: %w", err)
	}
	return &order, nil
}

func (c *Client) post(ctx context.Context, url string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")
	return c.http.Do(req)
}

// VerifySignature checks the payment signature Razorpay issues to the
// browser: HMAC-SHA256 over "<orderID>|<paymentID>" with the key secret,
// hex encoded, compared in constant time.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(c.keySecret, orderID, paymentID, signature)
}

func VerifySignature(secret, orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
