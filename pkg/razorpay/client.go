package razorpay

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
	"time"
)

const defaultBaseURL = "https://api.razorpay.com/v1"

// ErrNotConfigured is returned when gateway credentials were absent at
// startup. Callers translate it into their not-configured error kind.
var ErrNotConfigured = errors.New("razorpay credentials not configured")

// Client is a minimal Razorpay Orders API client
type Client struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	client    *http.Client
}

// Order is a gateway order as returned by the Orders API. Amount is in minor
// currency units (paise).
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// NewClient creates a new Razorpay client. Empty credentials produce an
// unconfigured client whose operations fail fast with ErrNotConfigured.
func NewClient(keyID, keySecret string) *Client {
	return &Client{
		BaseURL:   defaultBaseURL,
		KeyID:     keyID,
		KeySecret: keySecret,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether gateway credentials are present
func (c *Client) Configured() bool {
	return c.KeyID != "" && c.KeySecret != ""
}

// CreateOrder creates a gateway order for the given amount in paise
func (c *Client) CreateOrder(ctx context.Context, amountPaise int64, receipt string) (*Order, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	payload := map[string]interface{}{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  receipt,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/orders", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.KeyID, c.KeySecret)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read order response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("order request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var order Order
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, fmt.Errorf("failed to parse order response: %w", err)
	}
	return &order, nil
}

// VerifySignature checks the checkout callback signature: HMAC-SHA256 over
// "orderID|paymentID" with the key secret, hex encoded, compared in constant
// time.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	if !c.Configured() {
		return false
	}
	mac := hmac.New(sha256.New, []byte(c.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
