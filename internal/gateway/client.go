package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"
)

const (
	// defaultBaseURL is the production gateway API endpoint.
	defaultBaseURL = "https://api.razorpay.com"

	// clientTimeout is the total request timeout.
	clientTimeout = 30 * time.Second
	// dialTimeout is the connection timeout.
	dialTimeout = 10 * time.Second
	// tlsHandshakeTimeout is the TLS negotiation timeout.
	tlsHandshakeTimeout = 10 * time.Second
	// responseHeaderTimeout is time to wait for response headers.
	responseHeaderTimeout = 15 * time.Second
)

// Client is a minimal Razorpay orders client authenticated with the
// key id / key secret pair.
type Client struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the gateway endpoint. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a gateway client with bounded timeouts.
func NewClient(keyID, keySecret string, opts ...Option) *Client {
	c := &Client{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   defaultBaseURL,
		httpClient: &http.Client{
			Timeout: clientTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   dialTimeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   tlsHandshakeTimeout,
				ResponseHeaderTimeout: responseHeaderTimeout,
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
				IdleConnTimeout:       90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// KeyID returns the public key id, which clients need for checkout.
func (c *Client) KeyID() string {
	return c.keyID
}

// KeySecret returns the shared secret used for signature verification.
func (c *Client) KeySecret() string {
	return c.keySecret
}

// CreateOrderInput describes a new gateway order. Amount is in the
// currency's smallest unit.
type CreateOrderInput struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// Order is the gateway's view of a created order. Orders are transient:
// creating one grants nothing until its payment signature verifies.
type Order struct {
	ID       string            `json:"id"`
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Status   string            `json:"status"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// apiError is the gateway's error envelope.
type apiError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder creates an order via POST /v1/orders.
func (c *Client) CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Description != "" {
			return nil, fmt.Errorf("gateway rejected order: %s", apiErr.Error.Description)
		}
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}
	return &order, nil
}
